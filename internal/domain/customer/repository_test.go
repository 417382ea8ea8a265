package customer

import (
	"context"
	"credit-approval/internal/event"

	"github.com/stretchr/testify/mock"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (_m *MockCustomerRepository) Create(ctx context.Context, customer *Customer) error {
	ret := _m.Called(ctx, customer)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *Customer) error); ok {
		r0 = rf(ctx, customer)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *MockCustomerRepository) FindByID(ctx context.Context, customerID int64) (*Customer, error) {
	ret := _m.Called(ctx, customerID)

	var r0 *Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Customer)
	}

	return r0, ret.Error(1)
}

func (_m *MockCustomerRepository) ExistingIDs(ctx context.Context, ids []int64) (map[int64]bool, error) {
	ret := _m.Called(ctx, ids)

	var r0 map[int64]bool
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[int64]bool)
	}

	return r0, ret.Error(1)
}

func (_m *MockCustomerRepository) BulkInsert(ctx context.Context, customers []*Customer) (int64, error) {
	ret := _m.Called(ctx, customers)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *MockCustomerRepository) ResetIDSequence(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (_m *MockEventPublisher) PublishCustomerRegistered(ctx context.Context, evt event.CustomerRegisteredEvent) error {
	return _m.Called(ctx, evt).Error(0)
}

func (_m *MockEventPublisher) PublishLoanIssued(ctx context.Context, evt event.LoanIssuedEvent) error {
	return _m.Called(ctx, evt).Error(0)
}
