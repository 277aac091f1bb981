// Package sessionrepo provides data transfer objects and mapping functions
// for packing session and workstation persistence.
package sessionrepo

import (
	"time"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/session"

	"github.com/google/uuid"
)

// SessionDTO represents the database structure for persisting packing
// sessions. One picker can accumulate many closed sessions but at most one
// active; the partial unique index rejects a second active row even when
// two logins race.
type SessionDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Picker            string    `gorm:"type:varchar(150);not null;index;uniqueIndex:uniq_active_picker_session,where:is_active"`
	WorkstationID     uuid.UUID `gorm:"type:uuid;not null;index"`
	LoginTime         time.Time `gorm:"not null"`
	LogoutTime        *time.Time
	IsActive          bool `gorm:"not null;default:true;index"`
	CurrentHUCode     *string `gorm:"type:varchar(64)"`
	CurrentClientCode *string `gorm:"type:varchar(64)"`
	LastActivity      time.Time `gorm:"not null"`
}

// TableName specifies the database table name for session entities.
// Overrides GORM's default naming convention to use "packing_sessions"
// instead of "session_dtos".
func (SessionDTO) TableName() string {
	return "packing_sessions"
}

// WorkstationDTO represents the database structure for persisting packing
// stations.
type WorkstationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code        string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Area        string    `gorm:"type:varchar(64)"`
	Description string    `gorm:"type:varchar(255)"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the database table name for workstation entities.
func (WorkstationDTO) TableName() string {
	return "workstations"
}

func sessionFromDomain(s *session.Session) SessionDTO {
	return SessionDTO{
		ID:                s.ID().Bytes(),
		Picker:            s.Picker(),
		WorkstationID:     s.WorkstationID().Bytes(),
		LoginTime:         s.LoginTime(),
		LogoutTime:        s.LogoutTime(),
		IsActive:          s.IsActive(),
		CurrentHUCode:     s.CurrentHUCode(),
		CurrentClientCode: s.CurrentClientCode(),
		LastActivity:      s.LastActivity(),
	}
}

func sessionToDomain(dto SessionDTO) (*session.Session, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	wsID, err := kernel.UUIDFromBytes(dto.WorkstationID[:])
	if err != nil {
		return nil, err
	}

	return session.RestoreSession(
		id,
		dto.Picker,
		wsID,
		dto.LoginTime,
		dto.LogoutTime,
		dto.IsActive,
		dto.CurrentHUCode,
		dto.CurrentClientCode,
		dto.LastActivity,
	)
}

func workstationFromDomain(ws *session.Workstation) WorkstationDTO {
	return WorkstationDTO{
		ID:          ws.ID().Bytes(),
		Code:        ws.Code(),
		Area:        ws.Area(),
		Description: ws.Description(),
		IsActive:    ws.IsActive(),
		CreatedAt:   ws.CreatedAt(),
	}
}

func workstationToDomain(dto WorkstationDTO) (*session.Workstation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return session.RestoreWorkstation(
		id,
		dto.Code,
		dto.Area,
		dto.Description,
		dto.IsActive,
		dto.CreatedAt,
	)
}
