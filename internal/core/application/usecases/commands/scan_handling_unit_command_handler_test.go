package commands_test

import (
	"testing"
	"time"

	"github.com/bintangns/WMS-Prototype/internal/core/application/usecases/commands"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/client"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/handlingunit"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/session"
	"github.com/bintangns/WMS-Prototype/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, id kernel.UUID, code string) *client.Client {
	t.Helper()
	c, err := client.NewClient(id, code+" GmbH", code)
	require.NoError(t, err)
	return c
}

func TestNewScanHandlingUnitCommand(t *testing.T) {
	t.Run("should trim and accept an empty workstation", func(t *testing.T) {
		cmd, err := commands.NewScanHandlingUnitCommand(" HU-0001 ", " alice ", "  ")

		require.NoError(t, err)
		assert.Equal(t, "HU-0001", cmd.HUCode())
		assert.Equal(t, "alice", cmd.Picker())
		assert.Empty(t, cmd.WorkstationCode())
	})

	t.Run("should fail without picker", func(t *testing.T) {
		_, err := commands.NewScanHandlingUnitCommand("HU-0001", "", "WS-01")

		require.ErrorIs(t, err, commands.ErrPickerIsRequired)
	})
}

func TestScanHandlingUnitCommandHandler_Handle_UsesSessionStation(t *testing.T) {
	ctx := t.Context()

	ws := newTestWorkstation(t, "WS-01")
	older := newTestSession(t, "alice", newTestWorkstation(t, "WS-09"))
	latest, err := session.RestoreSession(
		older.ID(), "alice", ws.ID(), time.Now().Add(time.Hour), nil, true, nil, nil, time.Now().Add(time.Hour))
	require.NoError(t, err)

	hu := newTestHU(t)
	owner := newTestClient(t, hu.ClientID(), "ACME")

	cmd, err := commands.NewScanHandlingUnitCommand(hu.Code(), "alice", "")
	require.NoError(t, err)

	wsRepo := new(MockWorkstationRepository)
	sessionRepo := new(MockSessionRepository)
	huRepo := new(MockHandlingUnitRepository)
	clientRepo := new(MockClientRepository)

	uow := new(MockUoW)
	uow.On("WorkstationRepository").Return(wsRepo)
	uow.On("SessionRepository").Return(sessionRepo)
	uow.On("HandlingUnitRepository").Return(huRepo)
	uow.On("ClientRepository").Return(clientRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		sessionRepo.On("GetActiveByPicker", mock.Anything, "alice").
			Return([]*session.Session{older, latest}, nil).Once(),
		wsRepo.On("Get", mock.Anything, ws.ID()).Return(ws, nil).Once(),
		huRepo.On("GetByCodeForUpdate", mock.Anything, hu.Code()).Return(hu, nil).Once(),
		huRepo.On("Update", mock.Anything, hu).Return(nil).Once(),
		clientRepo.On("Get", mock.Anything, hu.ClientID()).Return(owner, nil).Once(),
		sessionRepo.On("Update", mock.Anything, latest).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkflowUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewScanHandlingUnitCommandHandler(factory)
	usedStation, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "WS-01", usedStation)
	assert.Equal(t, handlingunit.InProgress, hu.Status())
	assert.Equal(t, "alice", *hu.AssignedPicker())
	assert.Equal(t, "WS-01", *hu.AssignedWorkstation())
	require.NotNil(t, latest.CurrentHUCode())
	assert.Equal(t, hu.Code(), *latest.CurrentHUCode())
	assert.Equal(t, "ACME", *latest.CurrentClientCode())
	uow.AssertExpectations(t)
	sessionRepo.AssertExpectations(t)
}

func TestScanHandlingUnitCommandHandler_Handle_ExplicitStationMustMatchSession(t *testing.T) {
	ctx := t.Context()

	ws := newTestWorkstation(t, "WS-01")
	elsewhere := newTestSession(t, "alice", newTestWorkstation(t, "WS-02"))

	cmd, err := commands.NewScanHandlingUnitCommand("HU-0001", "alice", "WS-01")
	require.NoError(t, err)

	wsRepo := new(MockWorkstationRepository)
	sessionRepo := new(MockSessionRepository)

	uow := new(MockUoW)
	uow.On("WorkstationRepository").Return(wsRepo)
	uow.On("SessionRepository").Return(sessionRepo)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	sessionRepo.On("GetActiveByPicker", mock.Anything, "alice").
		Return([]*session.Session{elsewhere}, nil)
	wsRepo.On("GetByCode", mock.Anything, "WS-01").Return(ws, nil)

	factory := new(MockWorkflowUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewScanHandlingUnitCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
}

func TestScanHandlingUnitCommandHandler_Handle_NoActiveSession(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewScanHandlingUnitCommand("HU-0001", "alice", "")
	require.NoError(t, err)

	sessionRepo := new(MockSessionRepository)

	uow := new(MockUoW)
	uow.On("SessionRepository").Return(sessionRepo)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	sessionRepo.On("GetActiveByPicker", mock.Anything, "alice").
		Return([]*session.Session{}, nil)

	factory := new(MockWorkflowUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewScanHandlingUnitCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
	assert.ErrorContains(t, err, "log in at a workstation first")
}

func TestScanHandlingUnitCommandHandler_Handle_TerminalUnitRejected(t *testing.T) {
	ctx := t.Context()

	ws := newTestWorkstation(t, "WS-01")
	packerSession := newTestSession(t, "alice", ws)

	done, err := handlingunit.RestoreHandlingUnit(
		kernel.NewUUID(), "HU-0001", kernel.NewUUID(), handlingunit.Done,
		nil, nil, nil, time.Now(), time.Now())
	require.NoError(t, err)

	cmd, err := commands.NewScanHandlingUnitCommand("HU-0001", "alice", "WS-01")
	require.NoError(t, err)

	wsRepo := new(MockWorkstationRepository)
	sessionRepo := new(MockSessionRepository)
	huRepo := new(MockHandlingUnitRepository)

	uow := new(MockUoW)
	uow.On("WorkstationRepository").Return(wsRepo)
	uow.On("SessionRepository").Return(sessionRepo)
	uow.On("HandlingUnitRepository").Return(huRepo)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	sessionRepo.On("GetActiveByPicker", mock.Anything, "alice").
		Return([]*session.Session{packerSession}, nil)
	wsRepo.On("GetByCode", mock.Anything, "WS-01").Return(ws, nil)
	huRepo.On("GetByCodeForUpdate", mock.Anything, "HU-0001").Return(done, nil)

	factory := new(MockWorkflowUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewScanHandlingUnitCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
