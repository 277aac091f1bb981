package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
	"github.com/bintangns/WMS-Prototype/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetHandlingUnitQueryHandler retrieves handling unit details from the
// database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetHandlingUnitQueryHandler struct {
	db *gorm.DB
}

// NewGetHandlingUnitQueryHandler creates a handler for handling unit
// detail queries. Requires a GORM database connection for query execution.
func NewGetHandlingUnitQueryHandler(db *gorm.DB) GetHandlingUnitQueryHandler {
	return GetHandlingUnitQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound when no unit
// carries the requested code.
func (h GetHandlingUnitQueryHandler) Handle(
	ctx context.Context,
	query GetHandlingUnitQuery,
) (GetHandlingUnitQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetHandlingUnitQueryResponse{}, err
	}

	var response GetHandlingUnitQueryResponse
	var id uuid.UUID
	var assignedPicker, assignedWorkstation sql.NullString

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			hu.id,
			hu.code,
			hu.status,
			c.code,
			c.name,
			hu.assigned_picker,
			hu.assigned_workstation,
			hu.created_at,
			hu.updated_at
		FROM handling_units hu
		JOIN clients c ON c.id = hu.client_id
		WHERE hu.code = ?
	`, query.HUCode()).Row()

	err := row.Scan(
		&id,
		&response.Code,
		&response.Status,
		&response.ClientCode,
		&response.ClientName,
		&assignedPicker,
		&assignedWorkstation,
		&response.CreatedAt,
		&response.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return GetHandlingUnitQueryResponse{}, errs.NewObjectNotFoundError("hu_code", query.HUCode())
		}
		return GetHandlingUnitQueryResponse{}, err
	}

	huID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetHandlingUnitQueryResponse{}, err
	}
	response.ID = huID
	if assignedPicker.Valid {
		response.AssignedPicker = &assignedPicker.String
	}
	if assignedWorkstation.Valid {
		response.AssignedWorkstation = &assignedWorkstation.String
	}

	lines, err := h.loadLines(ctx, id)
	if err != nil {
		return GetHandlingUnitQueryResponse{}, err
	}
	response.Lines = lines

	return response, nil
}

func (h GetHandlingUnitQueryHandler) loadLines(
	ctx context.Context,
	huID uuid.UUID,
) ([]HandlingUnitLineResponse, error) {
	lines := make([]HandlingUnitLineResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			line_no,
			sku,
			name,
			qty,
			barcode,
			category,
			length_cm,
			width_cm,
			height_cm,
			weight_g,
			verified,
			verified_by,
			verified_at
		FROM handling_unit_items
		WHERE handling_unit_id = ?
		ORDER BY line_no
	`, huID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line HandlingUnitLineResponse
		var lineID uuid.UUID
		var lineNo sql.NullInt64
		var category, verifiedBy sql.NullString
		var lengthCm, widthCm, heightCm, weightG sql.NullFloat64
		var verifiedAt sql.NullTime

		err = rows.Scan(
			&lineID,
			&lineNo,
			&line.SKU,
			&line.Name,
			&line.Qty,
			&line.Barcode,
			&category,
			&lengthCm,
			&widthCm,
			&heightCm,
			&weightG,
			&line.Verified,
			&verifiedBy,
			&verifiedAt,
		)
		if err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(lineID[:])
		if idErr != nil {
			return nil, idErr
		}
		line.ID = id
		if lineNo.Valid {
			line.LineNo = int(lineNo.Int64)
		}
		line.Category = nullableString(category)
		line.LengthCm = nullableFloat(lengthCm)
		line.WidthCm = nullableFloat(widthCm)
		line.HeightCm = nullableFloat(heightCm)
		line.WeightG = nullableFloat(weightG)
		line.VolumeCm3 = derivedVolume(line.LengthCm, line.WidthCm, line.HeightCm)
		line.VerifiedBy = nullableString(verifiedBy)
		line.VerifiedAt = nullableTime(verifiedAt)

		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// derivedVolume computes length*width*height when every dimension is
// captured; a line missing any dimension has no volume.
func derivedVolume(lengthCm, widthCm, heightCm *float64) *float64 {
	if lengthCm == nil || widthCm == nil || heightCm == nil {
		return nil
	}
	v := *lengthCm * *widthCm * *heightCm
	return &v
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

func nullableTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	return &v.Time
}
