package session

import (
	"errors"
	"strings"
	"time"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
	"github.com/bintangns/WMS-Prototype/internal/pkg/errs"
)

// ErrWorkstationIsNotConstructed is returned when a Workstation instance
// was not created through NewWorkstation or RestoreWorkstation.
var ErrWorkstationIsNotConstructed = errors.New(
	"Workstation must be created via NewWorkstation constructor")

// Workstation is a registered packing station. Packers log in against a
// station code; only active stations accept logins.
type Workstation struct {
	id kernel.UUID

	// code is the human-visible station identifier painted on the desk,
	// unique across the warehouse
	code string

	area        string
	description string
	isActive    bool

	createdAt time.Time

	isConstructed bool
}

// NewWorkstation registers a new active workstation.
func NewWorkstation(id kernel.UUID, code, area, description string, now time.Time) (*Workstation, error) {
	ws := &Workstation{
		isActive:      true,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		ws.setID(id),
		ws.setCode(code),
	); err != nil {
		return nil, err
	}

	ws.area = strings.TrimSpace(area)
	ws.description = strings.TrimSpace(description)
	return ws, nil
}

// RestoreWorkstation reconstructs a Workstation from persistence.
func RestoreWorkstation(
	id kernel.UUID,
	code, area, description string,
	isActive bool,
	createdAt time.Time,
) (*Workstation, error) {
	ws, err := NewWorkstation(id, code, area, description, createdAt)
	if err != nil {
		return nil, err
	}

	ws.isActive = isActive
	return ws, nil
}

// Validate ensures the Workstation was created through a constructor.
func (w *Workstation) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWorkstationIsNotConstructed
	}
	return nil
}

// IsEqual compares two workstations by identifier.
func (w *Workstation) IsEqual(other *Workstation) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the workstation's unique identifier.
func (w *Workstation) ID() kernel.UUID {
	return w.id
}

// Code returns the station code packers type or scan at login.
func (w *Workstation) Code() string {
	return w.code
}

// Area returns the warehouse area the station belongs to.
func (w *Workstation) Area() string {
	return w.area
}

// Description returns the free-form station description.
func (w *Workstation) Description() string {
	return w.description
}

// IsActive reports whether the station accepts logins.
func (w *Workstation) IsActive() bool {
	return w.isActive
}

// CreatedAt returns the registration timestamp.
func (w *Workstation) CreatedAt() time.Time {
	return w.createdAt
}

// UpdateDetails overwrites area and description, used by the idempotent
// registration flow when a known station re-registers.
func (w *Workstation) UpdateDetails(area, description string) {
	w.area = strings.TrimSpace(area)
	w.description = strings.TrimSpace(description)
}

// SetActive switches the station in or out of service.
func (w *Workstation) SetActive(active bool) {
	w.isActive = active
}

func (w *Workstation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Workstation) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("workstation_id")
	}
	w.code = code
	return nil
}
