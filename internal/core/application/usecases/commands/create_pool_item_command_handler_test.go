package commands_test

import (
	"testing"

	"github.com/bintangns/WMS-Prototype/internal/core/application/usecases/commands"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/handlingunit"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreatePoolItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	itemID := kernel.NewUUID()
	category := "Fragile"
	length := 20.0
	cmd, err := commands.NewCreatePoolItemCommand(
		itemID, "SKU-A", "Wine glass", 6, "4006381333931",
		&category, &length, nil, nil, nil)
	require.NoError(t, err)

	itemRepo := new(MockItemRepository)

	var added *handlingunit.Item
	uow := new(MockUoW)
	uow.On("ItemRepository").Return(itemRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		itemRepo.On("Add", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				added, _ = args.Get(1).(*handlingunit.Item)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePoolItemCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, added)
	assert.True(t, added.ID().IsEqual(itemID))
	assert.Equal(t, "SKU-A", added.SKU())
	assert.Equal(t, 6, added.Qty())
	assert.True(t, added.Location().IsPool())
	assert.Equal(t, "Fragile", *added.Category())
	assert.InDelta(t, 20.0, *added.LengthCm(), 0.001)
	assert.False(t, added.Verified())
	uow.AssertExpectations(t)
	itemRepo.AssertExpectations(t)
}

func TestCreatePoolItemCommandHandler_Handle_InvalidItem(t *testing.T) {
	ctx := t.Context()

	var cmd commands.CreatePoolItemCommand

	factory := new(MockItemUoWFactory)

	h := commands.NewCreatePoolItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCreatePoolItemCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
