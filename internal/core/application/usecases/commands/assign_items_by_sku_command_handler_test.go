package commands_test

import (
	"testing"
	"time"

	"github.com/bintangns/WMS-Prototype/internal/core/application/usecases/commands"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/handlingunit"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
	"github.com/bintangns/WMS-Prototype/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestHU(t *testing.T) *handlingunit.HandlingUnit {
	t.Helper()
	hu, err := handlingunit.NewHandlingUnit(kernel.NewUUID(), "HU-0001", kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	return hu
}

func newTestPoolItem(t *testing.T, sku string) *handlingunit.Item {
	t.Helper()
	item, err := handlingunit.NewPoolItem(kernel.NewUUID(), sku, sku+" name", 1, "", handlingunit.Attributes{})
	require.NoError(t, err)
	return item
}

func TestNewAssignItemsBySKUCommand(t *testing.T) {
	t.Run("should normalize the sku list", func(t *testing.T) {
		cmd, err := commands.NewAssignItemsBySKUCommand(
			"HU-0001", []string{" SKU-B ", "SKU-A", "", "SKU-B"}, true)

		require.NoError(t, err)
		assert.Equal(t, []string{"SKU-B", "SKU-A"}, cmd.SKUs())
		assert.True(t, cmd.AutoLine())
	})

	t.Run("should fail with no usable sku", func(t *testing.T) {
		_, err := commands.NewAssignItemsBySKUCommand("HU-0001", []string{"  ", ""}, false)

		require.ErrorIs(t, err, commands.ErrSKUListIsEmpty)
	})

	t.Run("should fail with blank hu code", func(t *testing.T) {
		_, err := commands.NewAssignItemsBySKUCommand("", []string{"SKU-A"}, false)

		require.ErrorIs(t, err, commands.ErrHUCodeIsRequired)
	})
}

func TestAssignItemsBySKUCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAssignItemsBySKUCommand("HU-0001", []string{"SKU-B", "SKU-A"}, true)

	hu := newTestHU(t)
	pool := []*handlingunit.Item{newTestPoolItem(t, "SKU-A"), newTestPoolItem(t, "SKU-B")}

	huRepo := new(MockHandlingUnitRepository)
	itemRepo := new(MockItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("HandlingUnitRepository").Return(huRepo).Once(),
		huRepo.On("GetByCodeForUpdate", mock.Anything, "HU-0001").Return(hu, nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("GetPoolBySKUsForUpdate", mock.Anything, []string{"SKU-B", "SKU-A"}).
			Return(pool, nil).Once(),
		huRepo.On("Update", mock.Anything, hu).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignItemsBySKUCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	lines := hu.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "SKU-A", lines[0].SKU())
	assert.Equal(t, 1, *lines[0].Location().LineNo())
	assert.Equal(t, "SKU-B", lines[1].SKU())
	assert.Equal(t, 2, *lines[1].Location().LineNo())
	huRepo.AssertExpectations(t)
	itemRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignItemsBySKUCommandHandler_Handle_MissingSKUs(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAssignItemsBySKUCommand("HU-0001", []string{"SKU-Z", "SKU-A", "SKU-Y"}, true)

	hu := newTestHU(t)
	pool := []*handlingunit.Item{newTestPoolItem(t, "SKU-A")}

	huRepo := new(MockHandlingUnitRepository)
	itemRepo := new(MockItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("HandlingUnitRepository").Return(huRepo).Once(),
		huRepo.On("GetByCodeForUpdate", mock.Anything, "HU-0001").Return(hu, nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("GetPoolBySKUsForUpdate", mock.Anything, mock.Anything).Return(pool, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignItemsBySKUCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrCodeConflict)
	// missing SKUs are reported sorted
	assert.Contains(t, err.Error(), "SKU-Y, SKU-Z")
	// nothing moved
	assert.Empty(t, hu.Lines())
	uow.AssertExpectations(t)
}

func TestAssignItemsBySKUCommandHandler_Handle_HUNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAssignItemsBySKUCommand("HU-0404", []string{"SKU-A"}, true)

	huRepo := new(MockHandlingUnitRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("HandlingUnitRepository").Return(huRepo).Once(),
		huRepo.On("GetByCodeForUpdate", mock.Anything, "HU-0404").
			Return(nil, errs.NewObjectNotFoundError("hu_code", "HU-0404")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignItemsBySKUCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
