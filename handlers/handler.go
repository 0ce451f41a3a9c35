package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"texinroistot-web/identity"
	"texinroistot-web/upstream"
)

type Handler struct {
	client *upstream.Client
	db     *gorm.DB
	widget identity.WidgetConfig
	log    *zap.Logger
}

func NewHandler(client *upstream.Client, db *gorm.DB, widget identity.WidgetConfig, log *zap.Logger) *Handler {
	return &Handler{client: client, db: db, widget: widget, log: log}
}

func (h *Handler) Routes(r gin.IRouter) {
	r.GET("/", h.Index)
	r.GET("/manage", h.Manage)
	r.GET("/tarinat", h.StoriesPage)
	r.GET("/health", h.GetHealth)

	api := r.Group("/api")
	{
		api.GET("/tarinat", h.ListStories)
		api.GET("/me", h.Me)
		api.POST("/logout", h.Logout)
		api.GET("/admin/users", h.ListUsers)
		api.GET("/status", h.GetStatus)
		api.GET("/status/calls", h.GetCalls)
	}
}

// forward carries the browser's cookies to the backend.
func forward(c *gin.Context) context.Context {
	return upstream.WithCookies(c.Request.Context(), c.Request.Cookies())
}

func apiError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"error": gin.H{"code": code, "message": message}})
}

// upstreamFailure maps an upstream error to a response status, a stable
// error code and a user facing message.
func upstreamFailure(err error) (int, string, string) {
	var statusErr *upstream.StatusError
	switch {
	case errors.Is(err, upstream.ErrUpstreamTimeout):
		return http.StatusGatewayTimeout, "upstream_timeout", "Backend did not respond in time"
	case errors.Is(err, upstream.ErrMalformedResponse):
		return http.StatusBadGateway, "malformed_upstream_response", "Backend returned an unexpected response"
	case errors.As(err, &statusErr):
		return http.StatusBadGateway, "upstream_status", fmt.Sprintf("Backend returned status %d", statusErr.Result.StatusCode)
	default:
		return http.StatusBadGateway, "upstream_unavailable", "Backend is unavailable"
	}
}

func (h *Handler) logUpstream(c *gin.Context, err error) {
	h.log.Error("upstream request failed",
		zap.String("route", c.FullPath()),
		zap.String("outcome", upstream.Outcome(err)),
		zap.Error(err),
	)
	c.Error(err)
}

func (h *Handler) abortUpstream(c *gin.Context, err error) {
	h.logUpstream(c, err)
	status, code, message := upstreamFailure(err)
	apiError(c, status, code, message)
}

// relay writes an upstream result back verbatim. Non-2xx responses with a
// JSON body are relayed too, so a backend 401 stays a 401.
func (h *Handler) relay(c *gin.Context, res *upstream.Result, err error) {
	var statusErr *upstream.StatusError
	if errors.As(err, &statusErr) && statusErr.Result.Body != nil {
		res, err = statusErr.Result, nil
	}
	if err != nil {
		h.abortUpstream(c, err)
		return
	}

	for _, cookie := range res.SetCookies {
		c.Writer.Header().Add("Set-Cookie", cookie)
	}
	c.Data(res.StatusCode, "application/json; charset=utf-8", res.Body)
}
