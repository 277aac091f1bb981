// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"strings"
	"time"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
	"github.com/bintangns/WMS-Prototype/internal/pkg/guard"
)

var (
	ErrGetHandlingUnitQueryIsNotConstructed = errors.New(
		"GetHandlingUnitQuery must be created via NewGetHandlingUnitQuery constructor",
	)
	ErrHUCodeIsRequired = errors.New("hu_code is required")
)

// GetHandlingUnitQuery retrieves one handling unit by its scannable code,
// together with its content lines and the owning client.
//
// Example:
//
//	query, err := NewGetHandlingUnitQuery("HU-0001")
//	if err != nil {
//	    return err
//	}
//
//	detail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve handling unit: %w", err)
//	}
//
//	fmt.Printf("%s (%s): %d lines\n", detail.Code, detail.Status, len(detail.Lines))
type GetHandlingUnitQuery struct {
	huCode string

	guard guard.ConstructorGuard
}

// NewGetHandlingUnitQuery creates a query for one handling unit.
func NewGetHandlingUnitQuery(huCode string) (GetHandlingUnitQuery, error) {
	huCode = strings.TrimSpace(huCode)
	if huCode == "" {
		return GetHandlingUnitQuery{}, ErrHUCodeIsRequired
	}

	return GetHandlingUnitQuery{huCode: huCode, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetHandlingUnitQueryIsNotConstructed if validation fails.
func (q GetHandlingUnitQuery) Validate() error {
	return q.guard.Validate(ErrGetHandlingUnitQueryIsNotConstructed)
}

// HUCode returns the requested handling unit code.
func (q GetHandlingUnitQuery) HUCode() string {
	return q.huCode
}

// HandlingUnitLineResponse represents one content line in the read model.
type HandlingUnitLineResponse struct {
	ID         kernel.UUID
	LineNo     int
	SKU        string
	Name       string
	Qty        int
	Barcode    string
	Category   *string
	LengthCm   *float64
	WidthCm    *float64
	HeightCm   *float64
	WeightG    *float64
	VolumeCm3  *float64
	Verified   bool
	VerifiedBy *string
	VerifiedAt *time.Time
}

// GetHandlingUnitQueryResponse represents a handling unit in the read model.
// Lines come back ordered by line number.
type GetHandlingUnitQueryResponse struct {
	ID                  kernel.UUID
	Code                string
	Status              string
	ClientCode          string
	ClientName          string
	AssignedPicker      *string
	AssignedWorkstation *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
	Lines               []HandlingUnitLineResponse
}
