package commands_test

import (
	"errors"
	"testing"

	"github.com/bintangns/WMS-Prototype/internal/core/application/usecases/commands"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/client"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
	"github.com/bintangns/WMS-Prototype/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateClientCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewCreateClientCommand(id, "Acme Corp", "ACME")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.ClientID().IsEqual(id))
		assert.Equal(t, "Acme Corp", cmd.Name())
		assert.Equal(t, "ACME", cmd.Code())
	})

	t.Run("should fail with missing fields", func(t *testing.T) {
		_, err := commands.NewCreateClientCommand(kernel.NewUUID(), "", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrClientNameIsRequired)
		assert.ErrorIs(t, err, commands.ErrClientCodeIsRequired)
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		var cmd commands.CreateClientCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateClientCommandIsNotConstructed)
	})
}

func TestCreateClientCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateClientCommand(kernel.NewUUID(), "Acme Corp", "ACME")

	repo := new(MockClientRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(repo).Once(),
		repo.On("GetByCode", mock.Anything, "ACME").
			Return(nil, errs.NewObjectNotFoundError("client_code", "ACME")).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*client.Client")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClientUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateClientCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateClientCommandHandler_Handle_CodeConflict(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateClientCommand(kernel.NewUUID(), "Acme Corp", "acme")

	existing, err := client.NewClient(kernel.NewUUID(), "Acme Corporation", "ACME")
	require.NoError(t, err)

	repo := new(MockClientRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(repo).Once(),
		repo.On("GetByCode", mock.Anything, "acme").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClientUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateClientCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrCodeConflict)
	uow.AssertExpectations(t)
}

func TestCreateClientCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.CreateClientCommand

	factory := new(MockClientUoWFactory)
	h := commands.NewCreateClientCommandHandler(factory)

	require.Error(t, h.Handle(ctx, cmd))
}

func TestCreateClientCommandHandler_Handle_RepoError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateClientCommand(kernel.NewUUID(), "Acme Corp", "ACME")

	repo := new(MockClientRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(repo).Once(),
		repo.On("GetByCode", mock.Anything, "ACME").Return(nil, errors.New("db down")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClientUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateClientCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}
