package sessionrepo

import (
	"context"
	"errors"
	"time"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/session"
	"github.com/bintangns/WMS-Prototype/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSessionRepository implements SessionRepository using GORM.
type GormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a new GORM session repository.
func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

// Add saves a new session to the database.
func (r *GormSessionRepository) Add(ctx context.Context, s *session.Session) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := sessionFromDomain(s)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing session to the database.
func (r *GormSessionRepository) Update(ctx context.Context, s *session.Session) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := sessionFromDomain(s)
	result := r.db.WithContext(ctx).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("session", s.ID().String())
	}

	return nil
}

// Get retrieves a session by ID.
func (r *GormSessionRepository) Get(ctx context.Context, id kernel.UUID) (*session.Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SessionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("session", id.String())
		}
		return nil, err
	}

	return sessionToDomain(dto)
}

// GetActiveByPicker retrieves every active session of one picker, oldest
// login first.
func (r *GormSessionRepository) GetActiveByPicker(ctx context.Context, picker string) ([]*session.Session, error) {
	return r.getActiveByPicker(ctx, picker, false)
}

// GetActiveByPickerForUpdate retrieves the picker's active sessions and
// locks their rows until the surrounding transaction ends. Login takeover
// reads through this so two concurrent logins for the same picker
// serialize. The partial unique index on (picker) WHERE is_active backs
// this up when the picker has no session rows to lock yet.
func (r *GormSessionRepository) GetActiveByPickerForUpdate(ctx context.Context, picker string) ([]*session.Session, error) {
	return r.getActiveByPicker(ctx, picker, true)
}

func (r *GormSessionRepository) getActiveByPicker(ctx context.Context, picker string, forUpdate bool) ([]*session.Session, error) {
	query := r.db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	var dtos []SessionDTO
	err := query.
		Where("picker = ? AND is_active", picker).
		Order("login_time").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return sessionsToDomain(dtos)
}

// GetAllActive retrieves every active session in the system.
func (r *GormSessionRepository) GetAllActive(ctx context.Context) ([]*session.Session, error) {
	var dtos []SessionDTO
	err := r.db.WithContext(ctx).
		Where("is_active").
		Order("login_time").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return sessionsToDomain(dtos)
}

// GetStale retrieves every active session whose last activity predates the
// cutoff. The sweeper job closes these.
func (r *GormSessionRepository) GetStale(ctx context.Context, cutoff time.Time) ([]*session.Session, error) {
	var dtos []SessionDTO
	err := r.db.WithContext(ctx).
		Where("is_active AND last_activity < ?", cutoff).
		Order("login_time").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return sessionsToDomain(dtos)
}

func sessionsToDomain(dtos []SessionDTO) ([]*session.Session, error) {
	sessions := make([]*session.Session, 0, len(dtos))
	for _, dto := range dtos {
		s, err := sessionToDomain(dto)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

// GormWorkstationRepository implements WorkstationRepository using GORM.
type GormWorkstationRepository struct {
	db *gorm.DB
}

// NewGormWorkstationRepository creates a new GORM workstation repository.
func NewGormWorkstationRepository(db *gorm.DB) *GormWorkstationRepository {
	return &GormWorkstationRepository{db: db}
}

// Add saves a new workstation to the database.
func (r *GormWorkstationRepository) Add(ctx context.Context, ws *session.Workstation) error {
	if err := ws.Validate(); err != nil {
		return err
	}

	dto := workstationFromDomain(ws)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing workstation to the database.
func (r *GormWorkstationRepository) Update(ctx context.Context, ws *session.Workstation) error {
	if err := ws.Validate(); err != nil {
		return err
	}

	dto := workstationFromDomain(ws)
	result := r.db.WithContext(ctx).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("workstation_id", ws.ID().String())
	}

	return nil
}

// Get retrieves a workstation by ID.
func (r *GormWorkstationRepository) Get(ctx context.Context, id kernel.UUID) (*session.Workstation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkstationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("workstation_id", id.String())
		}
		return nil, err
	}

	return workstationToDomain(dto)
}

// GetByCode retrieves a workstation by its station code.
func (r *GormWorkstationRepository) GetByCode(ctx context.Context, code string) (*session.Workstation, error) {
	var dto WorkstationDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("workstation_id", code)
		}
		return nil, err
	}

	return workstationToDomain(dto)
}

// GetAll retrieves every workstation ordered by code.
func (r *GormWorkstationRepository) GetAll(ctx context.Context) ([]*session.Workstation, error) {
	var dtos []WorkstationDTO
	if err := r.db.WithContext(ctx).Order("code").Find(&dtos).Error; err != nil {
		return nil, err
	}

	stations := make([]*session.Workstation, 0, len(dtos))
	for _, dto := range dtos {
		ws, err := workstationToDomain(dto)
		if err != nil {
			return nil, err
		}
		stations = append(stations, ws)
	}

	return stations, nil
}
