package database

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"texinroistot-web/models"
	"texinroistot-web/upstream"
)

// Journal appends every upstream exchange to the calls table.
type Journal struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewJournal(db *gorm.DB, log *zap.Logger) *Journal {
	return &Journal{db: db, log: log}
}

// ObserveCall never fails the request; write errors are only logged.
func (j *Journal) ObserveCall(ctx context.Context, call upstream.Call) {
	record := models.UpstreamCall{
		Method:     call.Method,
		Path:       call.Path,
		Outcome:    upstream.Outcome(call.Err),
		StatusCode: call.StatusCode,
		LatencyMs:  call.Duration.Milliseconds(),
		CreatedAt:  time.Now().UTC(),
	}
	if call.Err != nil {
		record.Error = call.Err.Error()
	}

	// detached from the request so a cancelled request is still journaled
	if err := j.db.WithContext(context.WithoutCancel(ctx)).Create(&record).Error; err != nil {
		j.log.Warn("journal write failed", zap.String("path", call.Path), zap.Error(err))
	}
}
