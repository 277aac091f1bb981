package handlingunit

import (
	"fmt"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
	"github.com/bintangns/WMS-Prototype/internal/pkg/errs"
)

// ItemLocation is a tagged value object describing where an item currently
// lives: either in the shared pool, or attached to a specific handling unit
// as a (possibly not yet numbered) line.
//
// Modeling the two states explicitly replaces the implicit "null HU reference
// means pool" convention and makes them exhaustively matchable: an item in
// the pool can never carry a line number or a verification mark.
type ItemLocation struct {
	assigned bool
	huID     kernel.UUID
	lineNo   *int
}

// PoolLocation returns the location of an unassigned item.
func PoolLocation() ItemLocation {
	return ItemLocation{}
}

// AssignedLocation returns the location of an item attached to the given
// handling unit. lineNo may be nil when the caller numbers lines itself
// later; when present it must be positive.
func AssignedLocation(huID kernel.UUID, lineNo *int) (ItemLocation, error) {
	if err := huID.Validate(); err != nil {
		return ItemLocation{}, err
	}
	if lineNo != nil && *lineNo < 1 {
		return ItemLocation{}, errs.NewValueIsInvalidErrorWithCause("line_no",
			fmt.Errorf("%d is not greater than 0", *lineNo))
	}

	loc := ItemLocation{assigned: true, huID: huID}
	if lineNo != nil {
		n := *lineNo
		loc.lineNo = &n
	}
	return loc, nil
}

// IsPool reports whether the item is unassigned.
func (l ItemLocation) IsPool() bool {
	return !l.assigned
}

// HandlingUnitID returns the owning handling unit id and true when the item
// is assigned, or a zero UUID and false for a pool item.
func (l ItemLocation) HandlingUnitID() (kernel.UUID, bool) {
	return l.huID, l.assigned
}

// LineNo returns a copy of the line number, or nil for a pool item or an
// assigned but unnumbered line.
func (l ItemLocation) LineNo() *int {
	if l.lineNo == nil {
		return nil
	}
	n := *l.lineNo
	return &n
}

// String renders the location for logs: "pool" or "hu:<id>#<line>".
func (l ItemLocation) String() string {
	if !l.assigned {
		return "pool"
	}
	if l.lineNo == nil {
		return fmt.Sprintf("hu:%s#-", l.huID)
	}
	return fmt.Sprintf("hu:%s#%d", l.huID, *l.lineNo)
}
