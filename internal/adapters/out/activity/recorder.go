// Package activity persists audit records of workflow actions.
package activity

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/bintangns/WMS-Prototype/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityLogDTO maps an audit record to the activity_logs table.
type ActivityLogDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Action          string    `gorm:"type:varchar(100);index"`
	Actor           string    `gorm:"type:varchar(150);index"`
	WorkstationCode string    `gorm:"type:varchar(50)"`
	HUCode          string    `gorm:"type:varchar(100)"`
	ClientCode      string    `gorm:"type:varchar(50)"`
	Method          string    `gorm:"type:varchar(10)"`
	Path            string    `gorm:"type:varchar(255)"`
	StatusCode      int
	IPAddress       string `gorm:"type:varchar(45)"`
	UserAgent       string `gorm:"type:text"`
	RequestBody     []byte `gorm:"type:jsonb"`
	Extra           []byte `gorm:"type:jsonb"`
	DurationMs      float64
	CreatedAt       time.Time `gorm:"index"`
}

// TableName returns the database table name for activity logs.
func (ActivityLogDTO) TableName() string {
	return "activity_logs"
}

// GormActivityRecorder implements ActivityRecorder using GORM. Failures are
// logged and swallowed so an audit outage never reaches the workflow.
type GormActivityRecorder struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormActivityRecorder creates a new GORM activity recorder.
func NewGormActivityRecorder(db *gorm.DB, logger *slog.Logger) *GormActivityRecorder {
	return &GormActivityRecorder{db: db, logger: logger}
}

// Record implements ports.ActivityRecorder.
func (r *GormActivityRecorder) Record(ctx context.Context, entry ports.ActivityEntry) {
	at := entry.At
	if at.IsZero() {
		at = time.Now().UTC()
	}

	dto := ActivityLogDTO{
		ID:              uuid.New(),
		Action:          entry.Action,
		Actor:           entry.Actor,
		WorkstationCode: entry.WorkstationCode,
		HUCode:          entry.HUCode,
		ClientCode:      entry.ClientCode,
		Method:          entry.Method,
		Path:            entry.Path,
		StatusCode:      entry.StatusCode,
		IPAddress:       entry.IPAddress,
		UserAgent:       entry.UserAgent,
		RequestBody:     r.marshal(entry.Action, "request_body", entry.RequestBody),
		Extra:           r.marshal(entry.Action, "extra", entry.Extra),
		DurationMs:      entry.DurationMs,
		CreatedAt:       at,
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		r.logger.Error("failed to record activity",
			"action", entry.Action,
			"actor", entry.Actor,
			"error", err)
	}
}

func (r *GormActivityRecorder) marshal(action, field string, payload map[string]any) []byte {
	if len(payload) == 0 {
		return nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		r.logger.Warn("failed to serialize activity payload",
			"action", action,
			"field", field,
			"error", err)
		return nil
	}
	return data
}
