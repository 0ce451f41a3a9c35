package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"texinroistot-web/models"
)

type StatusResponse struct {
	Total        int64   `json:"total"`
	OK           int64   `json:"ok"`
	Failed       int64   `json:"failed"`
	Unavailable  int64   `json:"unavailable"`
	Timeout      int64   `json:"timeout"`
	Malformed    int64   `json:"malformed"`
	BadStatus    int64   `json:"bad_status"`
	AvgLatencyMs float64 `json:"avg_latency_ms"`
}

// GetStatus summarizes the upstream call journal.
func (h *Handler) GetStatus(c *gin.Context) {
	var res StatusResponse

	if err := h.db.Model(&models.UpstreamCall{}).Count(&res.Total).Error; err != nil {
		h.journalError(c, err)
		return
	}

	byOutcome := map[string]*int64{
		models.OutcomeOK:          &res.OK,
		models.OutcomeUnavailable: &res.Unavailable,
		models.OutcomeTimeout:     &res.Timeout,
		models.OutcomeMalformed:   &res.Malformed,
		models.OutcomeBadStatus:   &res.BadStatus,
	}
	for outcome, dst := range byOutcome {
		if err := h.db.Model(&models.UpstreamCall{}).Where("outcome = ?", outcome).Count(dst).Error; err != nil {
			h.journalError(c, err)
			return
		}
	}
	res.Failed = res.Total - res.OK

	err := h.db.Model(&models.UpstreamCall{}).Select("COALESCE(AVG(latency_ms), 0)").Scan(&res.AvgLatencyMs).Error
	if err != nil {
		h.journalError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// GetCalls lists the latest journaled calls, newest first.
func (h *Handler) GetCalls(c *gin.Context) {
	limit := h.callsLimit(c)
	path := c.Query("path")
	outcome := c.Query("outcome")

	query := h.db.Model(&models.UpstreamCall{})
	if path != "" {
		query = query.Where("path = ?", path)
	}
	if outcome != "" {
		query = query.Where("outcome = ?", outcome)
	}

	calls := []models.UpstreamCall{}
	if err := query.Order("created_at DESC, id DESC").Limit(limit).Find(&calls).Error; err != nil {
		h.journalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"calls": calls, "limit": limit})
}

func (h *Handler) GetHealth(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		h.log.Warn("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "journal": "disconnected"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "healthy", "journal": "connected"})
}

func (h *Handler) journalError(c *gin.Context, err error) {
	h.log.Error("journal query failed", zap.Error(err))
	apiError(c, http.StatusInternalServerError, "journal_error", "Journal query failed")
}

func (h *Handler) callsLimit(c *gin.Context) int {
	const (
		defaultLimit = 50
		maxLimit     = 200
	)

	raw := c.Query("limit")
	if raw == "" {
		return defaultLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		h.log.Debug("invalid limit, using default", zap.String("value", raw))
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
