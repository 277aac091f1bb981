package handlingunit

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
	"github.com/bintangns/WMS-Prototype/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not
	// created through NewPoolItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewPoolItem or RestoreItem constructor")

	// ErrItemIsInPool indicates a verification attempt on an item that is
	// not attached to any handling unit.
	ErrItemIsInPool = errors.New("item in the pool cannot be verified")
)

// Attributes carries the optional physical properties of an item. Every
// field is a pointer: nil means "leave unset" at creation time and "keep the
// stored value" when applied as a correction during verification.
type Attributes struct {
	Category *string
	LengthCm *float64
	WidthCm  *float64
	HeightCm *float64
	WeightG  *float64
}

// LineSelector identifies one line of a handling unit by any combination of
// line number, SKU and barcode. All provided predicates are ANDed; the first
// line matching them in the unit's natural line order wins.
type LineSelector struct {
	LineNo  *int
	SKU     string
	Barcode string
}

// IsEmpty reports whether the selector carries no predicate at all.
func (s LineSelector) IsEmpty() bool {
	return s.LineNo == nil && strings.TrimSpace(s.SKU) == "" && strings.TrimSpace(s.Barcode) == ""
}

// Item represents one physical stock unit, either waiting in the shared pool
// or attached to a handling unit as a numbered line.
//
// Invariants:
//   - Must have a valid unique identifier, a non-empty SKU and name, and a
//     positive quantity
//   - An item in the pool is never verified and never carries a line number
//   - Moving an item (pool -> unit or unit -> pool) always clears its
//     verification state
type Item struct {
	id      kernel.UUID
	sku     string
	name    string
	barcode string
	qty     int

	location ItemLocation

	verified   bool
	verifiedBy *string
	verifiedAt *time.Time

	attrs Attributes

	isConstructed bool
}

// NewPoolItem creates a new unassigned item with validation. Dimensions and
// category are optional at intake time; they can be corrected later during
// verification.
func NewPoolItem(id kernel.UUID, sku, name string, qty int, barcode string, attrs Attributes) (*Item, error) {
	item := &Item{
		location:      PoolLocation(),
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setSKU(sku),
		item.setName(name),
		item.setQty(qty),
	); err != nil {
		return nil, err
	}

	item.barcode = strings.TrimSpace(barcode)
	item.applyAttributes(attrs)
	return item, nil
}

// NewLineItem creates an item directly attached to a handling unit with the
// given line number, used by the full-replace admin flow. The new line starts
// unverified.
func NewLineItem(id kernel.UUID, huID kernel.UUID, lineNo int, sku, name string, qty int, barcode string, attrs Attributes) (*Item, error) {
	item, err := NewPoolItem(id, sku, name, qty, barcode, attrs)
	if err != nil {
		return nil, err
	}

	location, err := AssignedLocation(huID, &lineNo)
	if err != nil {
		return nil, err
	}

	item.location = location
	return item, nil
}

// RestoreItem reconstructs an Item from persistence, including its location
// and verification state. The pool invariant is re-checked: a pool item that
// claims to be verified indicates corrupted data and fails restoration.
func RestoreItem(
	id kernel.UUID,
	sku, name string,
	qty int,
	barcode string,
	location ItemLocation,
	verified bool,
	verifiedBy *string,
	verifiedAt *time.Time,
	attrs Attributes,
) (*Item, error) {
	item, err := NewPoolItem(id, sku, name, qty, barcode, attrs)
	if err != nil {
		return nil, err
	}

	if location.IsPool() && verified {
		return nil, errs.NewValueIsInvalidErrorWithCause("verified",
			fmt.Errorf("pool item %s cannot be verified", id))
	}

	item.location = location
	item.verified = verified
	item.verifiedBy = verifiedBy
	item.verifiedAt = verifiedAt
	return item, nil
}

// Validate ensures the Item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two items by identifier.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// SKU returns the stock keeping unit code.
func (i *Item) SKU() string {
	return i.sku
}

// Name returns the item's display name.
func (i *Item) Name() string {
	return i.name
}

// Barcode returns the scannable barcode, possibly empty.
func (i *Item) Barcode() string {
	return i.barcode
}

// Qty returns the piece count of this line.
func (i *Item) Qty() int {
	return i.qty
}

// Location returns where the item currently lives.
func (i *Item) Location() ItemLocation {
	return i.location
}

// Verified reports whether a packer has verified this line.
func (i *Item) Verified() bool {
	return i.verified
}

// VerifiedBy returns the verifying picker's username, nil when unverified.
func (i *Item) VerifiedBy() *string {
	return i.verifiedBy
}

// VerifiedAt returns the verification timestamp, nil when unverified.
func (i *Item) VerifiedAt() *time.Time {
	return i.verifiedAt
}

// Category returns the item's handling category, nil when unknown.
func (i *Item) Category() *string {
	return i.attrs.Category
}

// LengthCm returns the stored length, nil when not yet measured.
func (i *Item) LengthCm() *float64 { return i.attrs.LengthCm }

// WidthCm returns the stored width, nil when not yet measured.
func (i *Item) WidthCm() *float64 { return i.attrs.WidthCm }

// HeightCm returns the stored height, nil when not yet measured.
func (i *Item) HeightCm() *float64 { return i.attrs.HeightCm }

// WeightG returns the stored weight, nil when not yet weighed.
func (i *Item) WeightG() *float64 { return i.attrs.WeightG }

// VolumeCm3 returns length*width*height when all three axes are present,
// nil otherwise.
func (i *Item) VolumeCm3() *float64 {
	if i.attrs.LengthCm == nil || i.attrs.WidthCm == nil || i.attrs.HeightCm == nil {
		return nil
	}
	v := *i.attrs.LengthCm * *i.attrs.WidthCm * *i.attrs.HeightCm
	return &v
}

// Dimensions builds the full kernel.Dimensions value for this item.
// Fails with a precondition error naming the item when any axis is missing;
// a missing weight is treated as zero.
func (i *Item) Dimensions() (kernel.Dimensions, error) {
	if i.attrs.LengthCm == nil || i.attrs.WidthCm == nil || i.attrs.HeightCm == nil {
		return kernel.Dimensions{}, errs.NewPreconditionFailedErrorWithCause("dimensions",
			fmt.Errorf("item %s is missing one or more dimensions", i.id))
	}

	weight := 0.0
	if i.attrs.WeightG != nil {
		weight = *i.attrs.WeightG
	}
	return kernel.NewDimensions(*i.attrs.LengthCm, *i.attrs.WidthCm, *i.attrs.HeightCm, weight)
}

// AssignTo moves the item onto a handling unit. The target location must not
// be the pool. Any prior verification state is cleared: a physical move
// always invalidates earlier checks.
func (i *Item) AssignTo(location ItemLocation) error {
	if location.IsPool() {
		return errs.NewValueIsInvalidError("location")
	}

	i.location = location
	i.clearVerification()
	return nil
}

// ReturnToPool detaches the item from its handling unit and clears its
// verification state. Detaching an item already in the pool is a no-op.
func (i *Item) ReturnToPool() {
	i.location = PoolLocation()
	i.clearVerification()
}

// ApplyAttributes overwrites the stored physical attributes with every
// non-nil field of attrs, leaving the rest untouched. Used for late
// attribute correction at verification time.
func (i *Item) ApplyAttributes(attrs Attributes) {
	i.applyAttributes(attrs)
}

// Verify marks the line as verified by the given picker at the given time.
//
// Returns:
//   - (true, nil) when the line was already verified: the call is a safe
//     no-op (double-scan), verifier and timestamp keep their original values
//   - (false, nil) when the line was freshly verified
//   - (false, error) when the item is in the pool
func (i *Item) Verify(by string, at time.Time) (bool, error) {
	if i.location.IsPool() {
		return false, ErrItemIsInPool
	}
	if i.verified {
		return true, nil
	}

	i.verified = true
	i.verifiedBy = &by
	i.verifiedAt = &at
	return false, nil
}

// MatchesSelector reports whether this item satisfies every predicate the
// selector carries. An empty selector matches nothing.
func (i *Item) MatchesSelector(sel LineSelector) bool {
	if sel.IsEmpty() {
		return false
	}

	if sel.LineNo != nil {
		lineNo := i.location.LineNo()
		if lineNo == nil || *lineNo != *sel.LineNo {
			return false
		}
	}
	if sku := strings.TrimSpace(sel.SKU); sku != "" && i.sku != sku {
		return false
	}
	if barcode := strings.TrimSpace(sel.Barcode); barcode != "" && i.barcode != barcode {
		return false
	}
	return true
}

func (i *Item) clearVerification() {
	i.verified = false
	i.verifiedBy = nil
	i.verifiedAt = nil
}

func (i *Item) applyAttributes(attrs Attributes) {
	if attrs.Category != nil {
		category := strings.TrimSpace(*attrs.Category)
		i.attrs.Category = &category
	}
	if attrs.LengthCm != nil {
		v := *attrs.LengthCm
		i.attrs.LengthCm = &v
	}
	if attrs.WidthCm != nil {
		v := *attrs.WidthCm
		i.attrs.WidthCm = &v
	}
	if attrs.HeightCm != nil {
		v := *attrs.HeightCm
		i.attrs.HeightCm = &v
	}
	if attrs.WeightG != nil {
		v := *attrs.WeightG
		i.attrs.WeightG = &v
	}
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setSKU(sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	i.sku = sku
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setQty(qty int) error {
	if qty < 1 {
		return errs.NewValueIsInvalidErrorWithCause("qty", fmt.Errorf("%d is not greater than 0", qty))
	}
	i.qty = qty
	return nil
}
