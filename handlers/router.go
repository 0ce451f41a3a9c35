package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"texinroistot-web/logger"
	"texinroistot-web/metrics"
	"texinroistot-web/templates"
)

type RouterOptions struct {
	AllowedOrigins []string
	Log            *zap.Logger
}

// NewRouter builds the engine with middleware, templates and all routes.
func NewRouter(h *Handler, opts RouterOptions) (*gin.Engine, error) {
	tmpl, err := templates.Load()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery(), logger.Gin(opts.Log), metrics.Middleware())

	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     opts.AllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
		}))
	}

	r.SetHTMLTemplate(tmpl)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	h.Routes(r)

	return r, nil
}
