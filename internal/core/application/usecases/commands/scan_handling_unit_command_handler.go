package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/session"
	"github.com/bintangns/WMS-Prototype/internal/pkg/errs"
)

// ScanHandlingUnitCommandHandler runs the scan step of the packing
// workflow: it checks the packer has an active session, binds the unit to
// the packer and station, moves a fresh unit to InProgress, and records the
// unit as the session's working context.
type ScanHandlingUnitCommandHandler struct {
	uowFactory WorkflowUoWFactory
}

// NewScanHandlingUnitCommandHandler creates a handler for the scan step.
func NewScanHandlingUnitCommandHandler(uowFactory WorkflowUoWFactory) ScanHandlingUnitCommandHandler {
	return ScanHandlingUnitCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the scan and returns the station code that was used.
func (h *ScanHandlingUnitCommandHandler) Handle(ctx context.Context, cmd ScanHandlingUnitCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	activeSession, ws, err := h.resolveSession(ctx, uow, cmd)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	huRepo := uow.HandlingUnitRepository()
	hu, err := huRepo.GetByCodeForUpdate(ctx, cmd.HUCode())
	if err != nil {
		return "", err
	}

	if err = hu.Scan(cmd.Picker(), ws.Code(), now); err != nil {
		return "", err
	}
	if err = huRepo.Update(ctx, hu); err != nil {
		return "", err
	}

	owner, err := uow.ClientRepository().Get(ctx, hu.ClientID())
	if err != nil {
		return "", err
	}
	if err = activeSession.SetContext(hu.Code(), owner.Code(), now); err != nil {
		return "", err
	}
	if err = uow.SessionRepository().Update(ctx, activeSession); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return ws.Code(), nil
}

// resolveSession finds the packer's active session and the station to use.
// With an explicit station code the packer must hold an active session at
// that exact station; otherwise the most recent active session wins.
func (h *ScanHandlingUnitCommandHandler) resolveSession(
	ctx context.Context,
	uow WorkflowUoW,
	cmd ScanHandlingUnitCommand,
) (*session.Session, *session.Workstation, error) {
	sessions, err := uow.SessionRepository().GetActiveByPicker(ctx, cmd.Picker())
	if err != nil {
		return nil, nil, err
	}

	if code := cmd.WorkstationCode(); code != "" {
		ws, wsErr := uow.WorkstationRepository().GetByCode(ctx, code)
		if wsErr != nil {
			return nil, nil, wsErr
		}
		if !ws.IsActive() {
			return nil, nil, errs.NewObjectNotFoundErrorWithCause("workstation_id", code,
				fmt.Errorf("workstation %s is out of service", code))
		}
		for _, s := range sessions {
			if s.WorkstationID().IsEqual(ws.ID()) {
				return s, ws, nil
			}
		}
		return nil, nil, errs.NewPreconditionFailedErrorWithCause("session",
			fmt.Errorf("no active session for %s at workstation %s", cmd.Picker(), code))
	}

	if len(sessions) == 0 {
		return nil, nil, errs.NewPreconditionFailedErrorWithCause("session",
			fmt.Errorf("no active session for %s, log in at a workstation first", cmd.Picker()))
	}

	latest := sessions[0]
	for _, s := range sessions[1:] {
		if s.LoginTime().After(latest.LoginTime()) {
			latest = s
		}
	}

	ws, err := uow.WorkstationRepository().Get(ctx, latest.WorkstationID())
	if err != nil {
		return nil, nil, err
	}
	return latest, ws, nil
}
