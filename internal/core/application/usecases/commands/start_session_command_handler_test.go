package commands_test

import (
	"testing"

	"github.com/bintangns/WMS-Prototype/internal/core/application/usecases/commands"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/session"
	"github.com/bintangns/WMS-Prototype/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewStartSessionCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewStartSessionCommand(kernel.NewUUID(), "alice", "WS-01")

		require.NoError(t, err)
		assert.Equal(t, "alice", cmd.Picker())
		assert.Equal(t, "WS-01", cmd.WorkstationCode())
	})

	t.Run("should fail without workstation", func(t *testing.T) {
		_, err := commands.NewStartSessionCommand(kernel.NewUUID(), "alice", "")

		require.ErrorIs(t, err, commands.ErrWorkstationCodeIsRequired)
	})
}

func TestStartSessionCommandHandler_Handle_ClosesPreviousSessions(t *testing.T) {
	ctx := t.Context()

	ws := newTestWorkstation(t, "WS-01")
	stale1 := newTestSession(t, "alice", newTestWorkstation(t, "WS-07"))
	stale2 := newTestSession(t, "alice", ws)

	sessionID := kernel.NewUUID()
	cmd, err := commands.NewStartSessionCommand(sessionID, "alice", "WS-01")
	require.NoError(t, err)

	wsRepo := new(MockWorkstationRepository)
	sessionRepo := new(MockSessionRepository)

	uow := new(MockUoW)
	uow.On("WorkstationRepository").Return(wsRepo)
	uow.On("SessionRepository").Return(sessionRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		wsRepo.On("GetByCode", mock.Anything, "WS-01").Return(ws, nil).Once(),
		sessionRepo.On("GetActiveByPickerForUpdate", mock.Anything, "alice").
			Return([]*session.Session{stale1, stale2}, nil).Once(),
		sessionRepo.On("Update", mock.Anything, stale1).Return(nil).Once(),
		sessionRepo.On("Update", mock.Anything, stale2).Return(nil).Once(),
		sessionRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSessionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartSessionCommandHandler(factory)
	opened, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, opened.ID().IsEqual(sessionID))
	assert.Equal(t, "alice", opened.Picker())
	assert.True(t, opened.WorkstationID().IsEqual(ws.ID()))
	assert.True(t, opened.IsActive())
	assert.False(t, stale1.IsActive())
	assert.False(t, stale2.IsActive())
	uow.AssertExpectations(t)
	sessionRepo.AssertExpectations(t)
	// Takeover must read under a row lock, never through the plain read.
	sessionRepo.AssertNotCalled(t, "GetActiveByPicker", mock.Anything, mock.Anything)
}

func TestStartSessionCommandHandler_Handle_InactiveWorkstation(t *testing.T) {
	ctx := t.Context()

	ws := newTestWorkstation(t, "WS-01")
	ws.SetActive(false)

	cmd, err := commands.NewStartSessionCommand(kernel.NewUUID(), "alice", "WS-01")
	require.NoError(t, err)

	wsRepo := new(MockWorkstationRepository)

	uow := new(MockUoW)
	uow.On("WorkstationRepository").Return(wsRepo)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	wsRepo.On("GetByCode", mock.Anything, "WS-01").Return(ws, nil)

	factory := new(MockSessionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartSessionCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestStartSessionCommandHandler_Handle_UnknownWorkstation(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewStartSessionCommand(kernel.NewUUID(), "alice", "WS-99")
	require.NoError(t, err)

	wsRepo := new(MockWorkstationRepository)

	uow := new(MockUoW)
	uow.On("WorkstationRepository").Return(wsRepo)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	wsRepo.On("GetByCode", mock.Anything, "WS-99").
		Return(nil, errs.NewObjectNotFoundError("workstation_id", "WS-99"))

	factory := new(MockSessionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartSessionCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
