package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/auth"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order, from order.Status) error {
	args := m.Called(ctx, o, from)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) GetByIDs(ctx context.Context, ids []int64) ([]*product.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishStatusChanged(ctx context.Context, event ports.OrderStatusChangedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

var errRepo = errors.New("repository error")

func adminPrincipal(t *testing.T) auth.Principal {
	t.Helper()
	p, err := auth.NewPrincipal(1, auth.RoleAdmin)
	require.NoError(t, err)
	return p
}

func customerPrincipal(t *testing.T, id int64) auth.Principal {
	t.Helper()
	p, err := auth.NewPrincipal(id, auth.RoleCustomer)
	require.NoError(t, err)
	return p
}

func validAddress(t *testing.T) kernel.ShippingAddress {
	t.Helper()
	address, err := kernel.NewShippingAddress("10 Amir Temur Avenue")
	require.NoError(t, err)
	return address
}

func validPhone(t *testing.T) kernel.Phone {
	t.Helper()
	phone, err := kernel.NewPhone("+998901234567")
	require.NoError(t, err)
	return phone
}

func catalogProduct(t *testing.T, id int64, price string) *product.Product {
	t.Helper()
	p, err := product.NewProduct(id, "Olma", "Яблоко", decimal.RequireFromString(price), nil, 1)
	require.NoError(t, err)
	return &p
}

func checkingOrder(t *testing.T, userID int64) *order.Order {
	t.Helper()
	snapshot, err := order.NewSnapshot(7, "Olma", decimal.RequireFromString("500.00"), nil, 1)
	require.NoError(t, err)
	item, err := order.NewItem(snapshot, 2)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), userID, validAddress(t), validPhone(t), "", []order.Item{item})
	require.NoError(t, err)
	return o
}

func verifiedOrder(t *testing.T, userID int64) *order.Order {
	t.Helper()
	o := checkingOrder(t, userID)
	require.NoError(t, o.Verify(adminPrincipal(t)))
	return o
}

func longText(n int) string {
	return strings.Repeat("x", n)
}
