package handler

import (
	"context"
	"credit-approval/internal/domain/customer"
	"credit-approval/internal/domain/loan"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
)

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) RegisterCustomer(ctx context.Context, reg customer.Registration) (*customer.Customer, error) {
	args := m.Called(ctx, reg)
	if c, ok := args.Get(0).(*customer.Customer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerService) GetCustomer(ctx context.Context, customerID int64) (*customer.Customer, error) {
	args := m.Called(ctx, customerID)
	if c, ok := args.Get(0).(*customer.Customer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockLoanService struct {
	mock.Mock
}

func (m *MockLoanService) CheckEligibility(ctx context.Context, app loan.Application) (*loan.Eligibility, error) {
	args := m.Called(ctx, app)
	if e, ok := args.Get(0).(*loan.Eligibility); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoanService) IssueLoan(ctx context.Context, app loan.Application) (*loan.IssueResult, error) {
	args := m.Called(ctx, app)
	if r, ok := args.Get(0).(*loan.IssueResult); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoanService) GetLoan(ctx context.Context, loanID int64) (*loan.LoanDetail, error) {
	args := m.Called(ctx, loanID)
	if d, ok := args.Get(0).(*loan.LoanDetail); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoanService) ListCustomerLoans(ctx context.Context, customerID int64) ([]loan.LoanSummary, error) {
	args := m.Called(ctx, customerID)
	if s, ok := args.Get(0).([]loan.LoanSummary); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
