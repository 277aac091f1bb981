package commands_test

import (
	"context"
	"time"

	"github.com/bintangns/WMS-Prototype/internal/core/application/usecases/commands"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/client"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/handlingunit"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/session"
	"github.com/bintangns/WMS-Prototype/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockHandlingUnitRepository struct{ mock.Mock }

func (m *MockHandlingUnitRepository) Add(ctx context.Context, hu *handlingunit.HandlingUnit) error {
	return m.Called(ctx, hu).Error(0)
}

func (m *MockHandlingUnitRepository) Update(ctx context.Context, hu *handlingunit.HandlingUnit) error {
	return m.Called(ctx, hu).Error(0)
}

func (m *MockHandlingUnitRepository) Get(ctx context.Context, id kernel.UUID) (*handlingunit.HandlingUnit, error) {
	args := m.Called(ctx, id)
	hu, _ := args.Get(0).(*handlingunit.HandlingUnit)
	return hu, args.Error(1)
}

func (m *MockHandlingUnitRepository) GetByCode(ctx context.Context, code string) (*handlingunit.HandlingUnit, error) {
	args := m.Called(ctx, code)
	hu, _ := args.Get(0).(*handlingunit.HandlingUnit)
	return hu, args.Error(1)
}

func (m *MockHandlingUnitRepository) GetByCodeForUpdate(ctx context.Context, code string) (*handlingunit.HandlingUnit, error) {
	args := m.Called(ctx, code)
	hu, _ := args.Get(0).(*handlingunit.HandlingUnit)
	return hu, args.Error(1)
}

type MockItemRepository struct{ mock.Mock }

func (m *MockItemRepository) Add(ctx context.Context, item *handlingunit.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockItemRepository) Update(ctx context.Context, item *handlingunit.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockItemRepository) Get(ctx context.Context, id kernel.UUID) (*handlingunit.Item, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*handlingunit.Item)
	return item, args.Error(1)
}

func (m *MockItemRepository) ListPool(ctx context.Context, sku string) ([]*handlingunit.Item, error) {
	args := m.Called(ctx, sku)
	items, _ := args.Get(0).([]*handlingunit.Item)
	return items, args.Error(1)
}

func (m *MockItemRepository) GetPoolBySKUsForUpdate(ctx context.Context, skus []string) ([]*handlingunit.Item, error) {
	args := m.Called(ctx, skus)
	items, _ := args.Get(0).([]*handlingunit.Item)
	return items, args.Error(1)
}

func (m *MockItemRepository) GetByIDsForUpdate(ctx context.Context, ids []kernel.UUID) ([]*handlingunit.Item, error) {
	args := m.Called(ctx, ids)
	items, _ := args.Get(0).([]*handlingunit.Item)
	return items, args.Error(1)
}

func (m *MockItemRepository) RemoveByHandlingUnit(ctx context.Context, huID kernel.UUID) error {
	return m.Called(ctx, huID).Error(0)
}

type MockClientRepository struct{ mock.Mock }

func (m *MockClientRepository) Add(ctx context.Context, c *client.Client) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockClientRepository) Update(ctx context.Context, c *client.Client) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockClientRepository) Get(ctx context.Context, id kernel.UUID) (*client.Client, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*client.Client)
	return c, args.Error(1)
}

func (m *MockClientRepository) GetByCode(ctx context.Context, code string) (*client.Client, error) {
	args := m.Called(ctx, code)
	c, _ := args.Get(0).(*client.Client)
	return c, args.Error(1)
}

func (m *MockClientRepository) GetAll(ctx context.Context) ([]*client.Client, error) {
	args := m.Called(ctx)
	clients, _ := args.Get(0).([]*client.Client)
	return clients, args.Error(1)
}

type MockSessionRepository struct{ mock.Mock }

func (m *MockSessionRepository) Add(ctx context.Context, s *session.Session) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSessionRepository) Update(ctx context.Context, s *session.Session) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, id kernel.UUID) (*session.Session, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*session.Session)
	return s, args.Error(1)
}

func (m *MockSessionRepository) GetActiveByPicker(ctx context.Context, picker string) ([]*session.Session, error) {
	args := m.Called(ctx, picker)
	sessions, _ := args.Get(0).([]*session.Session)
	return sessions, args.Error(1)
}

func (m *MockSessionRepository) GetActiveByPickerForUpdate(ctx context.Context, picker string) ([]*session.Session, error) {
	args := m.Called(ctx, picker)
	sessions, _ := args.Get(0).([]*session.Session)
	return sessions, args.Error(1)
}

func (m *MockSessionRepository) GetAllActive(ctx context.Context) ([]*session.Session, error) {
	args := m.Called(ctx)
	sessions, _ := args.Get(0).([]*session.Session)
	return sessions, args.Error(1)
}

func (m *MockSessionRepository) GetStale(ctx context.Context, cutoff time.Time) ([]*session.Session, error) {
	args := m.Called(ctx, cutoff)
	sessions, _ := args.Get(0).([]*session.Session)
	return sessions, args.Error(1)
}

type MockWorkstationRepository struct{ mock.Mock }

func (m *MockWorkstationRepository) Add(ctx context.Context, ws *session.Workstation) error {
	return m.Called(ctx, ws).Error(0)
}

func (m *MockWorkstationRepository) Update(ctx context.Context, ws *session.Workstation) error {
	return m.Called(ctx, ws).Error(0)
}

func (m *MockWorkstationRepository) Get(ctx context.Context, id kernel.UUID) (*session.Workstation, error) {
	args := m.Called(ctx, id)
	ws, _ := args.Get(0).(*session.Workstation)
	return ws, args.Error(1)
}

func (m *MockWorkstationRepository) GetByCode(ctx context.Context, code string) (*session.Workstation, error) {
	args := m.Called(ctx, code)
	ws, _ := args.Get(0).(*session.Workstation)
	return ws, args.Error(1)
}

func (m *MockWorkstationRepository) GetAll(ctx context.Context) ([]*session.Workstation, error) {
	args := m.Called(ctx)
	stations, _ := args.Get(0).([]*session.Workstation)
	return stations, args.Error(1)
}

// MockUoW satisfies every unit of work interface the command handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) HandlingUnitRepository() ports.HandlingUnitRepository {
	return m.Called().Get(0).(ports.HandlingUnitRepository)
}

func (m *MockUoW) ItemRepository() ports.ItemRepository {
	return m.Called().Get(0).(ports.ItemRepository)
}

func (m *MockUoW) ClientRepository() ports.ClientRepository {
	return m.Called().Get(0).(ports.ClientRepository)
}

func (m *MockUoW) SessionRepository() ports.SessionRepository {
	return m.Called().Get(0).(ports.SessionRepository)
}

func (m *MockUoW) WorkstationRepository() ports.WorkstationRepository {
	return m.Called().Get(0).(ports.WorkstationRepository)
}

type MockClientUoWFactory struct{ mock.Mock }

func (m *MockClientUoWFactory) Create() commands.ClientUoW {
	return m.Called().Get(0).(commands.ClientUoW)
}

type MockItemUoWFactory struct{ mock.Mock }

func (m *MockItemUoWFactory) Create() commands.ItemUoW {
	return m.Called().Get(0).(commands.ItemUoW)
}

type MockPackingUoWFactory struct{ mock.Mock }

func (m *MockPackingUoWFactory) Create() commands.PackingUoW {
	return m.Called().Get(0).(commands.PackingUoW)
}

type MockWorkflowUoWFactory struct{ mock.Mock }

func (m *MockWorkflowUoWFactory) Create() commands.WorkflowUoW {
	return m.Called().Get(0).(commands.WorkflowUoW)
}

type MockSessionUoWFactory struct{ mock.Mock }

func (m *MockSessionUoWFactory) Create() commands.SessionUoW {
	return m.Called().Get(0).(commands.SessionUoW)
}
