package commands

import (
	"errors"
	"strings"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/handlingunit"
	"github.com/bintangns/WMS-Prototype/internal/pkg/guard"
)

var (
	ErrVerifyItemCommandIsNotConstructed = errors.New(
		"VerifyItemCommand must be created via NewVerifyItemCommand constructor",
	)
	ErrWorkstationCodeIsRequired = errors.New("workstation_id is required")
)

// VerifyItemCommand represents a packer confirming one physical item
// against a handling unit line. The line is selected by any combination of
// line number, SKU and barcode; measured corrections to the stored physical
// attributes ride along with the confirmation.
type VerifyItemCommand struct { //nolint:recvcheck //using for validation
	huCode          string
	picker          string
	workstationCode string

	lineNo  *int
	sku     string
	barcode string

	category *string
	lengthCm *float64
	widthCm  *float64
	heightCm *float64
	weightG  *float64

	guard guard.ConstructorGuard
}

// NewVerifyItemCommand creates a verification command.
func NewVerifyItemCommand(
	huCode, picker, workstationCode string,
	lineNo *int,
	sku, barcode string,
	category *string,
	lengthCm, widthCm, heightCm, weightG *float64,
) (VerifyItemCommand, error) {
	verifyCommand := VerifyItemCommand{
		lineNo:   lineNo,
		sku:      strings.TrimSpace(sku),
		barcode:  strings.TrimSpace(barcode),
		category: category,
		lengthCm: lengthCm,
		widthCm:  widthCm,
		heightCm: heightCm,
		weightG:  weightG,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		verifyCommand.setHUCode(huCode),
		verifyCommand.setPicker(picker),
		verifyCommand.setWorkstationCode(workstationCode),
	); err != nil {
		return VerifyItemCommand{}, err
	}

	return verifyCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyItemCommand) Validate() error {
	return c.guard.Validate(ErrVerifyItemCommandIsNotConstructed)
}

// HUCode returns the handling unit code being packed.
func (c VerifyItemCommand) HUCode() string { return c.huCode }

// Picker returns the verifying packer's username.
func (c VerifyItemCommand) Picker() string { return c.picker }

// WorkstationCode returns the station the verification happens at.
func (c VerifyItemCommand) WorkstationCode() string { return c.workstationCode }

// Selector returns the line selection predicates.
func (c VerifyItemCommand) Selector() handlingunit.LineSelector {
	return handlingunit.LineSelector{LineNo: c.lineNo, SKU: c.sku, Barcode: c.barcode}
}

// Corrections returns the attribute corrections to apply on verification.
func (c VerifyItemCommand) Corrections() handlingunit.Attributes {
	return handlingunit.Attributes{
		Category: c.category,
		LengthCm: c.lengthCm,
		WidthCm:  c.widthCm,
		HeightCm: c.heightCm,
		WeightG:  c.weightG,
	}
}

func (c *VerifyItemCommand) setHUCode(huCode string) error {
	huCode = strings.TrimSpace(huCode)
	if huCode == "" {
		return ErrHUCodeIsRequired
	}

	c.huCode = huCode
	return nil
}

func (c *VerifyItemCommand) setPicker(picker string) error {
	picker = strings.TrimSpace(picker)
	if picker == "" {
		return ErrPickerIsRequired
	}

	c.picker = picker
	return nil
}

func (c *VerifyItemCommand) setWorkstationCode(workstationCode string) error {
	workstationCode = strings.TrimSpace(workstationCode)
	if workstationCode == "" {
		return ErrWorkstationCodeIsRequired
	}

	c.workstationCode = workstationCode
	return nil
}
