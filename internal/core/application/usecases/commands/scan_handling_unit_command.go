package commands

import (
	"errors"
	"strings"

	"github.com/bintangns/WMS-Prototype/internal/pkg/guard"
)

var (
	ErrScanHandlingUnitCommandIsNotConstructed = errors.New(
		"ScanHandlingUnitCommand must be created via NewScanHandlingUnitCommand constructor",
	)
	ErrPickerIsRequired = errors.New("picker is required")
)

// ScanHandlingUnitCommand represents a packer scanning a handling unit at
// the start of packing. The workstation code is optional: when omitted, the
// station of the packer's active session is used.
type ScanHandlingUnitCommand struct { //nolint:recvcheck //using for validation
	huCode          string
	picker          string
	workstationCode string

	guard guard.ConstructorGuard
}

// NewScanHandlingUnitCommand creates a scan command.
func NewScanHandlingUnitCommand(huCode, picker, workstationCode string) (ScanHandlingUnitCommand, error) {
	scanCommand := ScanHandlingUnitCommand{
		workstationCode: strings.TrimSpace(workstationCode),
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		scanCommand.setHUCode(huCode),
		scanCommand.setPicker(picker),
	); err != nil {
		return ScanHandlingUnitCommand{}, err
	}

	return scanCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ScanHandlingUnitCommand) Validate() error {
	return c.guard.Validate(ErrScanHandlingUnitCommandIsNotConstructed)
}

// HUCode returns the scanned handling unit code.
func (c ScanHandlingUnitCommand) HUCode() string {
	return c.huCode
}

// Picker returns the scanning packer's username.
func (c ScanHandlingUnitCommand) Picker() string {
	return c.picker
}

// WorkstationCode returns the station code, empty to use the session's.
func (c ScanHandlingUnitCommand) WorkstationCode() string {
	return c.workstationCode
}

func (c *ScanHandlingUnitCommand) setHUCode(huCode string) error {
	huCode = strings.TrimSpace(huCode)
	if huCode == "" {
		return ErrHUCodeIsRequired
	}

	c.huCode = huCode
	return nil
}

func (c *ScanHandlingUnitCommand) setPicker(picker string) error {
	picker = strings.TrimSpace(picker)
	if picker == "" {
		return ErrPickerIsRequired
	}

	c.picker = picker
	return nil
}
