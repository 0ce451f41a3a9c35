package upstream

import (
	"errors"
	"fmt"

	"texinroistot-web/models"
)

var (
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrUpstreamTimeout     = errors.New("upstream timed out")
	ErrMalformedResponse   = errors.New("malformed upstream response")
)

// StatusError is returned for non-2xx upstream responses. Result is set and
// Result.Body holds the upstream body when it was valid JSON.
type StatusError struct {
	Result *Result
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.Result.StatusCode)
}

// Outcome classifies an exchange error for the journal and metrics.
func Outcome(err error) string {
	var statusErr *StatusError
	switch {
	case err == nil:
		return models.OutcomeOK
	case errors.Is(err, ErrUpstreamTimeout):
		return models.OutcomeTimeout
	case errors.Is(err, ErrMalformedResponse):
		return models.OutcomeMalformed
	case errors.As(err, &statusErr):
		return models.OutcomeBadStatus
	default:
		return models.OutcomeUnavailable
	}
}
