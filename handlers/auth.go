package handlers

import (
	"github.com/gin-gonic/gin"
)

func (h *Handler) Me(c *gin.Context) {
	res, err := h.client.Auth.Me.Read(forward(c))
	h.relay(c, res, err)
}

func (h *Handler) Logout(c *gin.Context) {
	res, err := h.client.Auth.Logout.Post(forward(c))
	h.relay(c, res, err)
}

func (h *Handler) ListUsers(c *gin.Context) {
	res, err := h.client.Admin.Users.List(forward(c))
	h.relay(c, res, err)
}
