package models

import "time"

const (
	OutcomeOK          = "ok"
	OutcomeUnavailable = "unavailable"
	OutcomeTimeout     = "timeout"
	OutcomeMalformed   = "malformed"
	OutcomeBadStatus   = "bad_status"
)

// UpstreamCall is one journaled exchange with the backend. Response bodies
// are never stored.
type UpstreamCall struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Method     string    `json:"method"`
	Path       string    `json:"path" gorm:"index"`
	Outcome    string    `json:"outcome" gorm:"index"`
	StatusCode int       `json:"status_code"`
	LatencyMs  int64     `json:"latency_ms"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
}
