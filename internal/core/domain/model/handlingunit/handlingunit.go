package handlingunit

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
	"github.com/bintangns/WMS-Prototype/internal/pkg/errs"
)

var (
	// ErrHandlingUnitIsNotConstructed is returned when a HandlingUnit
	// instance was not created through NewHandlingUnit or
	// RestoreHandlingUnit. This ensures all units are properly validated.
	ErrHandlingUnitIsNotConstructed = errors.New(
		"HandlingUnit must be created via NewHandlingUnit constructor")

	// ErrLineDoesNotBelongToUnit indicates an attempt to attach a line
	// whose location points at a different handling unit.
	ErrLineDoesNotBelongToUnit = errors.New("line does not belong to this handling unit")
)

// HandlingUnit represents a physical grouping of items to be packed
// together. It is the aggregate root for the packing workflow: it owns its
// item lines while they are assigned, enforces line numbering uniqueness,
// and drives the status state machine from scanning through verification.
//
// HandlingUnit follows these invariants:
//   - Must have a valid unique identifier and a globally unique code
//   - Must reference an owning client
//   - No two lines share a line number
//   - Status transitions follow the workflow rules in Status
//   - Can only be created through its constructors
type HandlingUnit struct {
	// id is the unique identifier for the handling unit
	id kernel.UUID

	// code is the globally unique scannable HU code
	code string

	// clientID references the owning client
	clientID kernel.UUID

	// status is the current workflow state
	status Status

	// assignedPicker is the username of the packer working the unit,
	// nil until the first scan
	assignedPicker *string

	// assignedWorkstation is the workstation the unit is being packed at,
	// nil until the first scan
	assignedWorkstation *string

	// lines are the item lines owned by this unit, kept in natural line
	// order (line number ascending, unnumbered lines last)
	lines []*Item

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the unit was created via a constructor
	isConstructed bool
}

// NewHandlingUnit creates a new empty HandlingUnit in ReadyForPacking
// status. This is the entry point for the admin upsert flow; lines are
// attached afterwards through AttachItems or ReplaceLines.
func NewHandlingUnit(id kernel.UUID, code string, clientID kernel.UUID, now time.Time) (*HandlingUnit, error) {
	hu := &HandlingUnit{
		status:        ReadyForPacking,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		hu.setID(id),
		hu.setCode(code),
		hu.setClientID(clientID),
	); err != nil {
		return nil, err
	}

	return hu, nil
}

// RestoreHandlingUnit reconstructs a HandlingUnit from persistence,
// including its workflow state, assignment and lines. Lines must already be
// located on this unit; their order is normalized on restore.
func RestoreHandlingUnit(
	id kernel.UUID,
	code string,
	clientID kernel.UUID,
	status Status,
	assignedPicker *string,
	assignedWorkstation *string,
	lines []*Item,
	createdAt, updatedAt time.Time,
) (*HandlingUnit, error) {
	hu, err := NewHandlingUnit(id, code, clientID, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	for _, line := range lines {
		if err = hu.ensureOwned(line); err != nil {
			return nil, err
		}
	}

	hu.status = status
	hu.assignedPicker = assignedPicker
	hu.assignedWorkstation = assignedWorkstation
	hu.lines = append([]*Item(nil), lines...)
	hu.sortLines()
	hu.updatedAt = updatedAt
	return hu, nil
}

// Validate ensures the HandlingUnit was created through a constructor.
func (h *HandlingUnit) Validate() error {
	if h == nil || !h.isConstructed {
		return ErrHandlingUnitIsNotConstructed
	}
	return nil
}

// IsEqual compares two handling units by identifier.
func (h *HandlingUnit) IsEqual(other *HandlingUnit) bool {
	return other != nil && h.id.IsEqual(other.id)
}

// ID returns the unit's unique identifier.
func (h *HandlingUnit) ID() kernel.UUID {
	return h.id
}

// Code returns the unit's scannable code.
func (h *HandlingUnit) Code() string {
	return h.code
}

// ClientID returns the owning client's identifier.
func (h *HandlingUnit) ClientID() kernel.UUID {
	return h.clientID
}

// Status returns the current workflow state.
func (h *HandlingUnit) Status() Status {
	return h.status
}

// AssignedPicker returns the username of the packer working the unit,
// nil before the first scan.
func (h *HandlingUnit) AssignedPicker() *string {
	return h.assignedPicker
}

// AssignedWorkstation returns the workstation the unit is assigned to,
// nil before the first scan.
func (h *HandlingUnit) AssignedWorkstation() *string {
	return h.assignedWorkstation
}

// CreatedAt returns the creation timestamp.
func (h *HandlingUnit) CreatedAt() time.Time {
	return h.createdAt
}

// UpdatedAt returns the last-modification timestamp.
func (h *HandlingUnit) UpdatedAt() time.Time {
	return h.updatedAt
}

// Lines returns the unit's item lines in natural line order. The returned
// slice is a copy; the items themselves are shared.
func (h *HandlingUnit) Lines() []*Item {
	out := make([]*Item, len(h.lines))
	copy(out, h.lines)
	return out
}

// AllLinesVerified reports whether no line of the unit is unverified.
// A unit with zero lines is vacuously verified; the verification trigger
// relies on this.
func (h *HandlingUnit) AllLinesVerified() bool {
	for _, line := range h.lines {
		if !line.Verified() {
			return false
		}
	}
	return true
}

// NextLineNo returns the next free line number:
// max(existing line numbers, 0) + 1.
func (h *HandlingUnit) NextLineNo() int {
	maxLine := 0
	for _, line := range h.lines {
		if n := line.Location().LineNo(); n != nil && *n > maxLine {
			maxLine = *n
		}
	}
	return maxLine + 1
}

// SetClient re-points the unit at a different owning client, used by the
// idempotent upsert flow. Reports whether anything changed; status and
// assignment are left untouched.
func (h *HandlingUnit) SetClient(clientID kernel.UUID, now time.Time) (bool, error) {
	if err := clientID.Validate(); err != nil {
		return false, err
	}
	if h.clientID.IsEqual(clientID) {
		return false, nil
	}

	h.clientID = clientID
	h.touch(now)
	return true, nil
}

// ReplaceLines implements the idempotent full-replace admin flow: the
// current lines are dropped, the owning client is updated, the workflow is
// reset to ReadyForPacking with no picker or workstation, and the given
// lines become the unit's new content. Callers are responsible for
// detaching or deleting the dropped lines in the store.
func (h *HandlingUnit) ReplaceLines(clientID kernel.UUID, lines []*Item, now time.Time) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	seen := make(map[int]struct{}, len(lines))
	for _, line := range lines {
		if err := h.ensureOwned(line); err != nil {
			return err
		}
		if n := line.Location().LineNo(); n != nil {
			if _, dup := seen[*n]; dup {
				return errs.NewValueIsInvalidErrorWithCause("line_no",
					fmt.Errorf("line number %d is used twice", *n))
			}
			seen[*n] = struct{}{}
		}
	}

	h.clientID = clientID
	h.status = ReadyForPacking
	h.assignedPicker = nil
	h.assignedWorkstation = nil
	h.lines = append([]*Item(nil), lines...)
	h.sortLines()
	h.touch(now)
	return nil
}

// AttachItems moves the given pool items onto this unit. Items are attached
// in (SKU, id) ascending order for determinism. When autoLine is true each
// item receives the next consecutive line number continuing from the
// current maximum; otherwise items are attached unnumbered and the caller
// must resolve numbering itself. Moving always clears verification state.
//
// The effect is all-or-nothing at the store level: callers run this inside
// one transaction and persist either every moved item or none.
func (h *HandlingUnit) AttachItems(items []*Item, autoLine bool, now time.Time) error {
	sorted := append([]*Item(nil), items...)
	sort.Slice(sorted, func(a, b int) bool {
		if sorted[a].SKU() != sorted[b].SKU() {
			return sorted[a].SKU() < sorted[b].SKU()
		}
		return sorted[a].ID().String() < sorted[b].ID().String()
	})

	nextLine := h.NextLineNo()
	for _, item := range sorted {
		var lineNo *int
		if autoLine {
			n := nextLine
			lineNo = &n
			nextLine++
		}

		location, err := AssignedLocation(h.id, lineNo)
		if err != nil {
			return err
		}
		if err = item.AssignTo(location); err != nil {
			return err
		}
		h.lines = append(h.lines, item)
	}

	h.sortLines()
	h.touch(now)
	return nil
}

// Scan binds the unit to the resolved picker and workstation and moves
// ReadyForPacking units to InProgress. Re-scanning an InProgress unit is
// idempotent on status but still re-binds picker and workstation, so a unit
// can be handed over between stations.
func (h *HandlingUnit) Scan(picker, workstation string, now time.Time) error {
	picker = strings.TrimSpace(picker)
	if picker == "" {
		return errs.NewValueIsRequiredError("picker")
	}
	workstation = strings.TrimSpace(workstation)
	if workstation == "" {
		return errs.NewValueIsRequiredError("workstation_id")
	}

	newStatus, err := h.status.Scan()
	if err != nil {
		return err
	}

	h.status = newStatus
	h.assignedPicker = &picker
	h.assignedWorkstation = &workstation
	h.touch(now)
	return nil
}

// VerifyLine verifies the first line matching the selector in natural line
// order.
//
// Behavior:
//   - no matching line: an ObjectNotFoundError is returned
//   - the matched line is already verified: the call is a no-op reporting
//     success, attribute corrections are NOT applied and the original
//     verifier and timestamp are preserved (double-scan safety)
//   - otherwise the supplied attribute corrections overwrite the stored
//     values, the line is marked verified, and the unit transitions to
//     Verified if it has no unverified line left
//
// The status re-evaluation runs after every verification, not only the
// "last" one: the Verified transition is a pure function of line state.
//
// Returns the matched line and whether it had already been verified.
func (h *HandlingUnit) VerifyLine(
	selector LineSelector,
	correction Attributes,
	picker string,
	now time.Time,
) (*Item, bool, error) {
	if selector.IsEmpty() {
		return nil, false, errs.NewValueIsRequiredError("selector")
	}

	var match *Item
	for _, line := range h.lines {
		if line.MatchesSelector(selector) {
			match = line
			break
		}
	}
	if match == nil {
		return nil, false, errs.NewObjectNotFoundError("item", selectorDescription(selector))
	}

	if match.Verified() {
		return match, true, nil
	}

	match.ApplyAttributes(correction)
	if _, err := match.Verify(picker, now); err != nil {
		return nil, false, err
	}

	if h.AllLinesVerified() {
		newStatus, err := h.status.MarkVerified()
		if err != nil {
			return nil, false, err
		}
		h.status = newStatus
	}

	h.touch(now)
	return match, false, nil
}

func (h *HandlingUnit) ensureOwned(line *Item) error {
	if err := line.Validate(); err != nil {
		return err
	}
	huID, assigned := line.Location().HandlingUnitID()
	if !assigned || !huID.IsEqual(h.id) {
		return ErrLineDoesNotBelongToUnit
	}
	return nil
}

// sortLines keeps lines in natural order: numbered lines ascending first,
// unnumbered lines after them, ties broken by id for determinism.
func (h *HandlingUnit) sortLines() {
	sort.SliceStable(h.lines, func(a, b int) bool {
		na, nb := h.lines[a].Location().LineNo(), h.lines[b].Location().LineNo()
		switch {
		case na != nil && nb != nil && *na != *nb:
			return *na < *nb
		case na != nil && nb == nil:
			return true
		case na == nil && nb != nil:
			return false
		default:
			return h.lines[a].ID().String() < h.lines[b].ID().String()
		}
	})
}

func (h *HandlingUnit) touch(now time.Time) {
	h.updatedAt = now
}

func (h *HandlingUnit) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	h.id = id
	return nil
}

func (h *HandlingUnit) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("hu_code")
	}
	h.code = code
	return nil
}

func (h *HandlingUnit) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	h.clientID = clientID
	return nil
}

func selectorDescription(sel LineSelector) string {
	parts := make([]string, 0, 3)
	if sel.LineNo != nil {
		parts = append(parts, fmt.Sprintf("line_no=%d", *sel.LineNo))
	}
	if sku := strings.TrimSpace(sel.SKU); sku != "" {
		parts = append(parts, "sku="+sku)
	}
	if barcode := strings.TrimSpace(sel.Barcode); barcode != "" {
		parts = append(parts, "barcode="+barcode)
	}
	return strings.Join(parts, ",")
}
