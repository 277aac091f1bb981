package handlingunit

import (
	"fmt"

	"github.com/bintangns/WMS-Prototype/internal/pkg/errs"
)

// Status represents the lifecycle state of a handling unit.
// It implements a state machine with defined transitions so units follow the
// physical packing workflow.
//
// State transitions:
//
//	ReadyForPacking ──> InProgress ──> Verified ──> Done
//	       │                │
//	       └────────────────┴──────────> Exception
//	  (scan is idempotent on InProgress; Verified is re-entered
//	   freely while lines change; Done and Exception are terminal)
//
// Status is a value object that validates state transitions and provides
// the wire-level string names used by the API and the database.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// ReadyForPacking is the initial status of a freshly created or
	// repacked handling unit, waiting for a packer to scan it.
	ReadyForPacking

	// InProgress indicates a packer has scanned the unit at a workstation
	// and line verification is underway.
	InProgress

	// Verified indicates every line of the unit has been verified.
	Verified

	// Done indicates the unit left the packing area (dispatch). Terminal;
	// set by operations outside this workflow.
	Done

	// Exception marks a unit pulled out of the normal flow by a manual
	// override. Terminal within this workflow.
	Exception
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "unknown",
		ReadyForPacking: "ready_for_packing",
		InProgress:      "in_progress",
		Verified:        "verified",
		Done:            "done",
		Exception:       "exception",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		ReadyForPacking: "ready_for_packing",
		InProgress:      "in_progress",
		Verified:        "verified",
		Done:            "done",
		Exception:       "exception",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-level name of the status ("ready_for_packing",
// "in_progress", ...). Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString maps a wire-level name back to a Status value.
// Returns an error for unknown names.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status name", name))
}

// IsTerminal reports whether the status permits no further workflow
// transitions. Done and Exception are terminal.
func (s Status) IsTerminal() bool {
	return s == Done || s == Exception
}

// Scan transitions the status when a packer scans the unit.
//
// Valid transitions:
//   - ReadyForPacking -> InProgress (first scan)
//   - InProgress -> InProgress (re-scan is idempotent)
//   - Verified -> Verified (scanning a finished unit changes nothing)
//
// Invalid transitions:
//   - Done, Exception, Unknown
//
// Returns:
//   - (new status, nil) on valid transition
//   - (0, error) if the unit cannot be scanned in its current state
func (s Status) Scan() (Status, error) {
	switch s {
	case ReadyForPacking:
		return InProgress, nil
	case InProgress, Verified:
		return s, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to scan", s.String()),
		)
	}
}

// MarkVerified transitions the status once every line of the unit is
// verified. The transition is a pure function of line state, so it may be
// requested from any non-terminal status; re-marking a Verified unit is
// idempotent.
func (s Status) MarkVerified() (Status, error) {
	if s.IsTerminal() || s == Unknown {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to verify", s.String()),
		)
	}
	return Verified, nil
}
