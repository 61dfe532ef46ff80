package commands_test

import (
	"context"
	"time"

	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"
	"checkout/internal/core/ports"

	"github.com/stretchr/testify/mock"
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

func (m *MockOrderRepository) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) AssociateUser(ctx context.Context, o *order.Order, userID kernel.UUID) error {
	args := m.Called(ctx, o, userID)
	return args.Error(0)
}

func (m *MockOrderRepository) GetStaleCheckouts(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
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

// stubAuthorizationService answers access questions with fixed values.
type stubAuthorizationService struct {
	canCreate  bool
	privileged bool
	err        error
}

func (s stubAuthorizationService) CanCreateOrder(_ context.Context, _ kernel.UUID) (bool, error) {
	return s.canCreate, s.err
}

func (s stubAuthorizationService) IsPrivileged(_ context.Context, _ kernel.UUID) (bool, error) {
	return s.privileged, s.err
}

// stubCouponApplicator returns a fixed verdict.
type stubCouponApplicator struct {
	result ports.CouponResult
	err    error
	calls  int
}

func (s *stubCouponApplicator) Apply(_ context.Context, _ *order.Order, _ string) (ports.CouponResult, error) {
	s.calls++
	return s.result, s.err
}

// stubAddressProvider returns a fixed default address.
type stubAddressProvider struct {
	address order.Address
}

func (s stubAddressProvider) DefaultAddress() order.Address {
	return s.address
}

// stubConfigProvider returns a fixed currency.
type stubConfigProvider struct {
	currency string
}

func (s stubConfigProvider) Currency() string {
	return s.currency
}

// expectLoadedOrder wires the begin/load mocks shared by every pipeline test.
func expectLoadedOrder(uow *MockOrderUoW, repo *MockOrderRepository, aggregate *order.Order) {
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("OrderRepository").Return(repo)
	uow.On("Rollback", mock.Anything).Return(nil)
	repo.On("GetByNumber", mock.Anything, aggregate.Number()).Return(aggregate, nil)
}

func newFactoryFor(uow *MockOrderUoW) *MockOrderUoWFactory {
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)
	return factory
}
