package customer

import (
	"context"
	"credit-approval/internal/event"
	"credit-approval/internal/infrastructure/monitoring"
	"credit-approval/internal/pkg/apperrors"
	"errors"
	"fmt"
	"log/slog"
	"os"
)

type CustomerService interface {
	RegisterCustomer(ctx context.Context, reg Registration) (*Customer, error)
	GetCustomer(ctx context.Context, customerID int64) (*Customer, error)
}

var _ CustomerService = (*customerService)(nil)

type customerService struct {
	repo   Repository
	pub    event.EventPublisher
	logger *slog.Logger
}

// NewCustomerService builds the service. A nil publisher disables events.
func NewCustomerService(repo Repository, pub event.EventPublisher, logger *slog.Logger) CustomerService {
	if repo == nil {
		panic("customer repository cannot be nil")
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("No logger provided to NewCustomerService, using default stderr handler")
	}

	return &customerService{
		repo:   repo,
		pub:    pub,
		logger: logger.With(slog.String("component", "customerService")),
	}
}

func (s *customerService) RegisterCustomer(ctx context.Context, reg Registration) (*Customer, error) {
	s.logger.InfoContext(ctx, "Registering new customer")

	customer := NewCustomer(reg)
	if err := s.repo.Create(ctx, customer); err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to save new customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save new customer: %w", err)
	}

	logger := s.logger.With(slog.Int64("customerID", customer.ID))
	logger.InfoContext(ctx, "Customer registered", slog.Int64("approvedLimit", customer.ApprovedLimit))
	monitoring.RecordCustomerRegistered()

	s.publishRegistered(ctx, logger, customer)
	return customer, nil
}

func (s *customerService) publishRegistered(ctx context.Context, logger *slog.Logger, customer *Customer) {
	if s.pub == nil {
		return
	}

	evt := event.NewCustomerRegisteredEvent(event.CustomerPayload{
		CustomerID:    customer.ID,
		FirstName:     customer.FirstName,
		LastName:      customer.LastName,
		Age:           customer.Age,
		MonthlySalary: customer.MonthlySalary,
		ApprovedLimit: customer.ApprovedLimit,
	})
	if err := s.pub.PublishCustomerRegistered(ctx, evt); err != nil {
		logger.ErrorContext(ctx, "Customer registered, but failed to publish registration event", slog.Any("error", err))
	}
}

func (s *customerService) GetCustomer(ctx context.Context, customerID int64) (*Customer, error) {
	logger := s.logger.With(slog.Int64("customerID", customerID))

	customer, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.WarnContext(ctx, "Customer not found")
			return nil, fmt.Errorf("%w: customer %d not found", apperrors.ErrNotFound, customerID)
		}
		logger.ErrorContext(ctx, "Failed to load customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to load customer %d: %w", customerID, err)
	}
	return customer, nil
}
