package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"texinroistot-web/models"
)

type StoriesPageData struct {
	Title   string
	Stories []models.StorySummary
}

type ErrorPageData struct {
	Title string
	Error string
}

// ListStories fetches the backend story list once and returns it projected
// to summaries. Failures never return partial data.
func (h *Handler) ListStories(c *gin.Context) {
	limit, ok := storiesLimit(c)
	if !ok {
		apiError(c, http.StatusBadRequest, "invalid_limit", "limit must be a positive integer")
		return
	}

	payload, err := h.client.Stories.List(forward(c), limit)
	if err != nil {
		h.abortUpstream(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SummarizeAll(payload))
}

func (h *Handler) StoriesPage(c *gin.Context) {
	limit, ok := storiesLimit(c)
	if !ok {
		c.HTML(http.StatusBadRequest, "error.html", ErrorPageData{Title: "Virhe", Error: "Virheellinen limit"})
		return
	}

	payload, err := h.client.Stories.List(forward(c), limit)
	if err != nil {
		h.logUpstream(c, err)
		status, _, message := upstreamFailure(err)
		c.HTML(status, "error.html", ErrorPageData{Title: "Virhe", Error: message})
		return
	}

	c.HTML(http.StatusOK, "stories.html", StoriesPageData{
		Title:   "Tarinat",
		Stories: models.SummarizeAll(payload).Stories,
	})
}

// storiesLimit reads the optional limit parameter; zero means the backend
// default.
func storiesLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, false
	}
	return limit, true
}
