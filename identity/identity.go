// Package identity wires the Google Identity Services sign-in widget.
package identity

import (
	"errors"
	"fmt"

	"texinroistot-web/session"
)

const (
	ContextSignIn  = "signin"
	UXModeRedirect = "redirect"
)

// WidgetConfig is the argument passed to google.accounts.id.initialize.
type WidgetConfig struct {
	ClientID   string `json:"client_id"`
	Context    string `json:"context"`
	UXMode     string `json:"ux_mode"`
	LoginURI   string `json:"login_uri"`
	Nonce      string `json:"nonce"`
	AutoSelect bool   `json:"auto_select"`
}

func NewWidgetConfig(clientID, loginURI string) WidgetConfig {
	return WidgetConfig{
		ClientID:   clientID,
		Context:    ContextSignIn,
		UXMode:     UXModeRedirect,
		LoginURI:   loginURI,
		Nonce:      "",
		AutoSelect: false,
	}
}

type Provider interface {
	Initialize(cfg WidgetConfig) error
}

// GoogleWidget records the configuration the page hands to the Google
// widget on load.
type GoogleWidget struct {
	cfg         WidgetConfig
	initialized bool
}

func NewGoogleWidget() *GoogleWidget {
	return &GoogleWidget{}
}

func (w *GoogleWidget) Initialize(cfg WidgetConfig) error {
	if cfg.ClientID == "" {
		return errors.New("identity: client id is required")
	}
	if cfg.LoginURI == "" {
		return errors.New("identity: login uri is required")
	}
	switch cfg.UXMode {
	case "popup", UXModeRedirect:
	default:
		return fmt.Errorf("identity: unsupported ux mode %q", cfg.UXMode)
	}
	switch cfg.Context {
	case ContextSignIn, "signup", "use":
	default:
		return fmt.Errorf("identity: unsupported context %q", cfg.Context)
	}

	w.cfg = cfg
	w.initialized = true
	return nil
}

// Payload returns the recorded configuration and whether Initialize succeeded.
func (w *GoogleWidget) Payload() (WidgetConfig, bool) {
	return w.cfg, w.initialized
}

// Bootstrap configures the provider and marks login as initialized in the
// page state. The flag is left untouched when the provider fails.
func Bootstrap(p Provider, cfg WidgetConfig, state *session.State) error {
	if err := p.Initialize(cfg); err != nil {
		return err
	}
	state.Status.Update(func(s session.AppStatus) session.AppStatus {
		s.LoginInitialized = true
		return s
	})
	return nil
}
