package loan

import (
	"context"
	"credit-approval/internal/domain/credit"
	"credit-approval/internal/domain/customer"
	"credit-approval/internal/event"
	"credit-approval/internal/infrastructure/monitoring"
	"fmt"
	"log/slog"
	"time"
)

const (
	MessageApproved    = "Loan approved successfully!"
	MessageNotApproved = "Loan not approved based on eligibility check."
)

// Application is a validated loan request.
type Application struct {
	CustomerID int64
	Amount     float64
	Rate       float64
	Tenure     int
}

func (a Application) request() credit.Request {
	return credit.Request{Amount: a.Amount, Rate: a.Rate, Tenure: a.Tenure}
}

type Eligibility struct {
	Customer    *customer.Customer
	Application Application
	Decision    credit.Decision
}

type IssueResult struct {
	// LoanID is zero when the loan was not approved.
	LoanID             int64
	CustomerID         int64
	Approved           bool
	Message            string
	MonthlyInstallment float64
	Decision           credit.Decision
}

type LoanDetail struct {
	Loan     Loan
	Customer *customer.Customer
}

type LoanSummary struct {
	Loan           Loan
	RepaymentsLeft int
}

type LoanService interface {
	CheckEligibility(ctx context.Context, app Application) (*Eligibility, error)

	IssueLoan(ctx context.Context, app Application) (*IssueResult, error)

	GetLoan(ctx context.Context, loanID int64) (*LoanDetail, error)

	ListCustomerLoans(ctx context.Context, customerID int64) ([]LoanSummary, error)
}

type loanServiceImpl struct {
	repo            Repository
	customerService customer.CustomerService
	pub             event.EventPublisher
	logger          *slog.Logger
	now             func() time.Time
}

// NewLoanService builds the service. A nil publisher disables events.
func NewLoanService(r Repository, cs customer.CustomerService, pub event.EventPublisher, logger *slog.Logger) LoanService {
	return &loanServiceImpl{
		repo:            r,
		customerService: cs,
		pub:             pub,
		logger:          logger.With(slog.String("component", "loanService")),
		now:             time.Now,
	}
}

func (s *loanServiceImpl) CheckEligibility(ctx context.Context, app Application) (*Eligibility, error) {
	logger := s.logger.With(slog.Int64("customerID", app.CustomerID))

	cust, err := s.customerService.GetCustomer(ctx, app.CustomerID)
	if err != nil {
		return nil, err
	}

	loans, err := s.repo.FindByCustomer(ctx, app.CustomerID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load customer loans", slog.Any("error", err))
		return nil, fmt.Errorf("failed to load loans for customer %d: %w", app.CustomerID, err)
	}

	history := Summarize(loans, s.now())
	decision := credit.Evaluate(cust.Applicant(), history, app.request())
	monitoring.RecordEligibilityDecision(decision.Approved, string(decision.Reason))

	attrs := []any{
		slog.Bool("approved", decision.Approved),
		slog.String("reason", string(decision.Reason)),
		slog.Float64("correctedRate", decision.CorrectedRate),
		slog.Float64("activeInstallments", history.ActiveInstallments),
	}
	if decision.Score != nil {
		attrs = append(attrs, slog.Int("score", decision.Score.Value), slog.Any("breakdown", decision.Score.Breakdown))
	}
	logger.InfoContext(ctx, "Eligibility evaluated", attrs...)

	return &Eligibility{Customer: cust, Application: app, Decision: decision}, nil
}

func (s *loanServiceImpl) IssueLoan(ctx context.Context, app Application) (*IssueResult, error) {
	logger := s.logger.With(slog.Int64("customerID", app.CustomerID))
	logger.InfoContext(ctx, "Issuing new loan")

	elig, err := s.CheckEligibility(ctx, app)
	if err != nil {
		return nil, err
	}

	decision := elig.Decision
	if !decision.Approved {
		logger.InfoContext(ctx, "Loan not approved", slog.String("reason", string(decision.Reason)))
		return &IssueResult{
			CustomerID: app.CustomerID,
			Approved:   false,
			Message:    MessageNotApproved,
			Decision:   decision,
		}, nil
	}

	start := dateOnly(s.now())
	newLoan := &Loan{
		CustomerID:       app.CustomerID,
		Amount:           app.Amount,
		Tenure:           app.Tenure,
		InterestRate:     decision.CorrectedRate,
		MonthlyRepayment: decision.MonthlyInstallment,
		EMIsPaidOnTime:   0,
		StartDate:        start,
		EndDate:          AddMonths(start, app.Tenure),
	}

	created, err := s.repo.CreateLoan(ctx, newLoan)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to save loan", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save loan: %w", err)
	}

	logger.InfoContext(ctx, "Loan created successfully", slog.Int64("loanID", created.ID))
	monitoring.RecordLoanIssued()
	s.publishIssued(ctx, logger, created)

	return &IssueResult{
		LoanID:             created.ID,
		CustomerID:         app.CustomerID,
		Approved:           true,
		Message:            MessageApproved,
		MonthlyInstallment: created.MonthlyRepayment,
		Decision:           decision,
	}, nil
}

func (s *loanServiceImpl) publishIssued(ctx context.Context, logger *slog.Logger, l *Loan) {
	if s.pub == nil {
		return
	}

	evt := event.NewLoanIssuedEvent(event.LoanPayload{
		LoanID:             l.ID,
		CustomerID:         l.CustomerID,
		LoanAmount:         l.Amount,
		InterestRate:       l.InterestRate,
		Tenure:             l.Tenure,
		MonthlyInstallment: l.MonthlyRepayment,
		StartDate:          l.StartDate,
		EndDate:            l.EndDate,
	})
	if err := s.pub.PublishLoanIssued(ctx, evt); err != nil {
		logger.ErrorContext(ctx, "Loan created, but failed to publish loan issued event", slog.Any("error", err))
	}
}

func (s *loanServiceImpl) GetLoan(ctx context.Context, loanID int64) (*LoanDetail, error) {
	l, err := s.repo.GetLoanByID(ctx, loanID)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to get loan", slog.Int64("loanID", loanID), slog.Any("error", err))
		return nil, fmt.Errorf("failed to get loan %d: %w", loanID, err)
	}

	cust, err := s.customerService.GetCustomer(ctx, l.CustomerID)
	if err != nil {
		return nil, err
	}

	return &LoanDetail{Loan: *l, Customer: cust}, nil
}

func (s *loanServiceImpl) ListCustomerLoans(ctx context.Context, customerID int64) ([]LoanSummary, error) {
	if _, err := s.customerService.GetCustomer(ctx, customerID); err != nil {
		return nil, err
	}

	loans, err := s.repo.FindByCustomer(ctx, customerID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list customer loans", slog.Int64("customerID", customerID), slog.Any("error", err))
		return nil, fmt.Errorf("failed to list loans for customer %d: %w", customerID, err)
	}

	today := s.now()
	summaries := make([]LoanSummary, 0, len(loans))
	for _, l := range loans {
		summaries = append(summaries, LoanSummary{Loan: l, RepaymentsLeft: RepaymentsLeft(l.EndDate, today)})
	}
	return summaries, nil
}
