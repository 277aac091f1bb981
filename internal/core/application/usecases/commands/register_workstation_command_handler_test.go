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

func TestNewRegisterWorkstationCommand(t *testing.T) {
	t.Run("should fail without code", func(t *testing.T) {
		_, err := commands.NewRegisterWorkstationCommand(kernel.NewUUID(), " ", "Outbound", "")

		require.ErrorIs(t, err, commands.ErrWorkstationCodeIsRequired)
	})
}

func TestRegisterWorkstationCommandHandler_Handle_CreatesNewStation(t *testing.T) {
	ctx := t.Context()

	wsID := kernel.NewUUID()
	cmd, err := commands.NewRegisterWorkstationCommand(wsID, "WS-01", "Outbound", "next to dock 3")
	require.NoError(t, err)

	wsRepo := new(MockWorkstationRepository)

	var added *session.Workstation
	uow := new(MockUoW)
	uow.On("WorkstationRepository").Return(wsRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		wsRepo.On("GetByCode", mock.Anything, "WS-01").
			Return(nil, errs.NewObjectNotFoundError("workstation_id", "WS-01")).Once(),
		wsRepo.On("Add", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				added, _ = args.Get(1).(*session.Workstation)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSessionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterWorkstationCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, added)
	assert.True(t, added.ID().IsEqual(wsID))
	assert.Equal(t, "WS-01", added.Code())
	assert.Equal(t, "Outbound", added.Area())
	assert.True(t, added.IsActive())
	uow.AssertExpectations(t)
	wsRepo.AssertExpectations(t)
}

func TestRegisterWorkstationCommandHandler_Handle_UpdatesExistingStation(t *testing.T) {
	ctx := t.Context()

	existing := newTestWorkstation(t, "WS-01")
	cmd, err := commands.NewRegisterWorkstationCommand(kernel.NewUUID(), "WS-01", "Returns", "moved to hall B")
	require.NoError(t, err)

	wsRepo := new(MockWorkstationRepository)

	uow := new(MockUoW)
	uow.On("WorkstationRepository").Return(wsRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		wsRepo.On("GetByCode", mock.Anything, "WS-01").Return(existing, nil).Once(),
		wsRepo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSessionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterWorkstationCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, "Returns", existing.Area())
	assert.Equal(t, "moved to hall B", existing.Description())
	wsRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}
