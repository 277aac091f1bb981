package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/handlingunit"
	"github.com/bintangns/WMS-Prototype/internal/pkg/errs"
)

// VerifyItemResult reports the outcome of one verification scan.
type VerifyItemResult struct {
	// Line is the handling unit line that matched the selector.
	Line *handlingunit.Item

	// AlreadyVerified is set when the scan hit a line that was verified
	// before; such scans change nothing.
	AlreadyVerified bool

	// HUStatus is the unit's status after the verification.
	HUStatus handlingunit.Status

	// AllVerified reports whether the unit now has no unverified line.
	AllVerified bool
}

// VerifyItemCommandHandler runs the per-item verification step. The packer
// must hold an active session at the named station. The first line matching
// the selector in line order is verified with the supplied corrections; a
// double scan of a verified line is a harmless no-op. When the last line
// verifies, the unit itself transitions to Verified in the same
// transaction.
type VerifyItemCommandHandler struct {
	uowFactory WorkflowUoWFactory
}

// NewVerifyItemCommandHandler creates a handler for item verification.
func NewVerifyItemCommandHandler(uowFactory WorkflowUoWFactory) VerifyItemCommandHandler {
	return VerifyItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the verification command.
func (h *VerifyItemCommandHandler) Handle(ctx context.Context, cmd VerifyItemCommand) (VerifyItemResult, error) {
	if err := cmd.Validate(); err != nil {
		return VerifyItemResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return VerifyItemResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ws, err := uow.WorkstationRepository().GetByCode(ctx, cmd.WorkstationCode())
	if err != nil {
		return VerifyItemResult{}, err
	}
	if !ws.IsActive() {
		return VerifyItemResult{}, errs.NewObjectNotFoundErrorWithCause("workstation_id", cmd.WorkstationCode(),
			fmt.Errorf("workstation %s is out of service", cmd.WorkstationCode()))
	}

	sessions, err := uow.SessionRepository().GetActiveByPicker(ctx, cmd.Picker())
	if err != nil {
		return VerifyItemResult{}, err
	}
	sessionAtStation := false
	for _, s := range sessions {
		if s.WorkstationID().IsEqual(ws.ID()) {
			sessionAtStation = true
			if err = s.Touch(time.Now().UTC()); err != nil {
				return VerifyItemResult{}, err
			}
			if err = uow.SessionRepository().Update(ctx, s); err != nil {
				return VerifyItemResult{}, err
			}
			break
		}
	}
	if !sessionAtStation {
		return VerifyItemResult{}, errs.NewPreconditionFailedErrorWithCause("session",
			fmt.Errorf("no active session for %s at workstation %s", cmd.Picker(), cmd.WorkstationCode()))
	}

	huRepo := uow.HandlingUnitRepository()
	hu, err := huRepo.GetByCodeForUpdate(ctx, cmd.HUCode())
	if err != nil {
		return VerifyItemResult{}, err
	}

	line, alreadyVerified, err := hu.VerifyLine(cmd.Selector(), cmd.Corrections(), cmd.Picker(), time.Now().UTC())
	if err != nil {
		return VerifyItemResult{}, err
	}

	if !alreadyVerified {
		if err = huRepo.Update(ctx, hu); err != nil {
			return VerifyItemResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return VerifyItemResult{}, err
	}

	return VerifyItemResult{
		Line:            line,
		AlreadyVerified: alreadyVerified,
		HUStatus:        hu.Status(),
		AllVerified:     hu.AllLinesVerified(),
	}, nil
}
