package kernel

import (
	"errors"
	"fmt"

	"github.com/bintangns/WMS-Prototype/internal/pkg/errs"
	"github.com/bintangns/WMS-Prototype/internal/pkg/guard"
)

// ErrDimensionsAreNotConstructed is returned when attempting to use an
// improperly initialized Dimensions value. Dimensions must be created via
// NewDimensions to ensure every axis is positive.
var ErrDimensionsAreNotConstructed = errs.NewValueIsRequiredError(
	"dimensions must be created via NewDimensions constructor")

// Dimensions is an immutable value object holding the physical measurements
// of a single item: length, width and height in centimeters plus weight in
// grams. The zero value is invalid and fails validation - use NewDimensions.
//
// Dimensions is optional on an item while it sits in the pool; it becomes
// mandatory before the item set can be fed to container-size classification.
//
// Example:
//
//	dims, err := kernel.NewDimensions(20, 15, 10, 350)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(dims.VolumeCm3()) // 3000
type Dimensions struct { //nolint:recvcheck //using for validation
	lengthCm float64
	widthCm  float64
	heightCm float64
	weightG  float64

	guard guard.ConstructorGuard
}

// NewDimensions creates a validated Dimensions value.
// Length, width and height must be strictly positive; weight must not be
// negative (weightless voucher-style items are legal).
//
// Returns a validation error naming the offending axis otherwise.
func NewDimensions(lengthCm, widthCm, heightCm, weightG float64) (Dimensions, error) {
	d := Dimensions{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setAxis(&d.lengthCm, lengthCm, "length_cm"),
		d.setAxis(&d.widthCm, widthCm, "width_cm"),
		d.setAxis(&d.heightCm, heightCm, "height_cm"),
		d.setWeight(weightG),
	); err != nil {
		return Dimensions{}, err
	}

	return d, nil
}

// Validate checks that the Dimensions value was built via NewDimensions.
// The zero value fails with ErrDimensionsAreNotConstructed.
func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}

// LengthCm returns the length in centimeters.
func (d Dimensions) LengthCm() float64 {
	return d.lengthCm
}

// WidthCm returns the width in centimeters.
func (d Dimensions) WidthCm() float64 {
	return d.widthCm
}

// HeightCm returns the height in centimeters.
func (d Dimensions) HeightCm() float64 {
	return d.heightCm
}

// WeightG returns the weight in grams.
func (d Dimensions) WeightG() float64 {
	return d.weightG
}

// VolumeCm3 returns the item volume in cubic centimeters, the product of the
// three axes. Defined for every constructed Dimensions value since all axes
// are validated positive.
func (d Dimensions) VolumeCm3() float64 {
	return d.lengthCm * d.widthCm * d.heightCm
}

// String returns a human-readable representation, useful in logs.
func (d Dimensions) String() string {
	return fmt.Sprintf("Dimensions(%.1fx%.1fx%.1f cm, %.0f g)", d.lengthCm, d.widthCm, d.heightCm, d.weightG)
}

// IsEqual compares two Dimensions values axis by axis.
// Both values must be properly constructed for the comparison to succeed.
func (d Dimensions) IsEqual(other Dimensions) (bool, error) {
	if err := errors.Join(d.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return d == other, nil
}

func (d *Dimensions) setAxis(target *float64, value float64, name string) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is not greater than 0", value))
	}
	*target = value
	return nil
}

func (d *Dimensions) setWeight(weightG float64) error {
	if weightG < 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight_g", fmt.Errorf("%v is negative", weightG))
	}
	d.weightG = weightG
	return nil
}
