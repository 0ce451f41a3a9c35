package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"texinroistot-web/identity"
	"texinroistot-web/session"
)

type IndexPageData struct {
	Title       string
	Widget      identity.WidgetConfig
	WidgetReady bool
	User        session.User
	Status      session.AppStatus
}

func (h *Handler) Index(c *gin.Context) {
	h.renderShell(c, "Etusivu")
}

func (h *Handler) Manage(c *gin.Context) {
	h.renderShell(c, "Hallinta")
}

// renderShell bootstraps the sign-in widget and the page state for one page
// load and renders the shell around it.
func (h *Handler) renderShell(c *gin.Context, title string) {
	state := session.NewState()
	unsubscribe := state.Status.Subscribe(func(s session.AppStatus) {
		h.log.Debug("app status", zap.Bool("login_initialized", s.LoginInitialized))
	})
	defer unsubscribe()

	widget := identity.NewGoogleWidget()
	if err := identity.Bootstrap(widget, h.widget, state); err != nil {
		h.log.Warn("identity bootstrap failed", zap.Error(err))
	}

	h.loadUser(forward(c), state)

	payload, ready := widget.Payload()
	c.HTML(http.StatusOK, "index.html", IndexPageData{
		Title:       title,
		Widget:      payload,
		WidgetReady: ready,
		User:        state.User.Get(),
		Status:      state.Status.Get(),
	})
}

// loadUser resolves the signed-in user. Any failure leaves the page logged
// out.
func (h *Handler) loadUser(ctx context.Context, state *session.State) {
	res, err := h.client.Auth.Me.Read(ctx)
	if err != nil {
		h.log.Debug("user lookup failed", zap.Error(err))
		return
	}

	var user session.User
	if err := json.Unmarshal(res.Body, &user); err != nil {
		h.log.Debug("user lookup returned unexpected body", zap.Error(err))
		return
	}
	state.User.Set(user)
}
