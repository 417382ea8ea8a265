package postgres

import (
	"context"
	"credit-approval/internal/domain/loan"
	"credit-approval/internal/infrastructure/monitoring"
	"credit-approval/internal/pkg/apperrors"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
)

const (
	loanColumns = `id, customer_id, loan_amount, tenure, interest_rate, monthly_repayment, emis_paid_on_time, start_date, end_date`

	insertLoanQuery = `
        INSERT INTO loans (customer_id, loan_amount, tenure, interest_rate, monthly_repayment, emis_paid_on_time, start_date, end_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id`

	getLoanByIDQuery = `SELECT ` + loanColumns + ` FROM loans WHERE id = $1`

	findLoansByCustomerQuery = `SELECT ` + loanColumns + ` FROM loans WHERE customer_id = $1 ORDER BY id`

	bulkInsertLoansQuery = `
        INSERT INTO loans (id, customer_id, loan_amount, tenure, interest_rate, monthly_repayment, emis_paid_on_time, start_date, end_date)
        SELECT * FROM unnest($1::bigint[], $2::bigint[], $3::numeric[], $4::int[], $5::numeric[], $6::numeric[], $7::int[], $8::date[], $9::date[])
        ON CONFLICT (id) DO NOTHING`

	resetLoanSequenceQuery = `SELECT setval(pg_get_serial_sequence('loans', 'id'), COALESCE((SELECT MAX(id) FROM loans), 1))`
)

type LoanRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ loan.Repository = (*LoanRepository)(nil)

func NewLoanRepository(db DBPool, logger *slog.Logger) *LoanRepository {
	return &LoanRepository{db: db, logger: logger.With("component", "LoanRepository")}
}

func (r *LoanRepository) CreateLoan(ctx context.Context, l *loan.Loan) (*loan.Loan, error) {
	if l == nil {
		return nil, fmt.Errorf("%w: loan cannot be nil", apperrors.ErrInvalidArgument)
	}

	created := *l
	startTime := time.Now()
	err := r.db.QueryRow(ctx, insertLoanQuery,
		l.CustomerID,
		l.Amount,
		l.Tenure,
		l.InterestRate,
		l.MonthlyRepayment,
		l.EMIsPaidOnTime,
		l.StartDate,
		l.EndDate,
	).Scan(&created.ID)
	monitoring.RecordDBQuery("CreateLoan", queryStatus(err), time.Since(startTime))

	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to insert loan", "customer_id", l.CustomerID, "error", err)
		return nil, translateDBError(err, r.logger)
	}

	r.logger.InfoContext(ctx, "Loan inserted successfully", "loan_id", created.ID)
	return &created, nil
}

func (r *LoanRepository) GetLoanByID(ctx context.Context, loanID int64) (*loan.Loan, error) {
	startTime := time.Now()

	var l loan.Loan
	err := scanLoan(r.db.QueryRow(ctx, getLoanByIDQuery, loanID), &l)
	monitoring.RecordDBQuery("GetLoanByID", queryStatus(err), time.Since(startTime))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Loan not found", "loan_id", loanID)
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get loan by ID", "loan_id", loanID, "error", err)
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return &l, nil
}

func (r *LoanRepository) FindByCustomer(ctx context.Context, customerID int64) ([]loan.Loan, error) {
	startTime := time.Now()
	loans, err := r.findByCustomer(ctx, customerID)
	monitoring.RecordDBQuery("FindLoansByCustomer", queryStatus(err), time.Since(startTime))

	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to find loans for customer", "customer_id", customerID, "error", err)
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return loans, nil
}

func (r *LoanRepository) findByCustomer(ctx context.Context, customerID int64) ([]loan.Loan, error) {
	rows, err := r.db.Query(ctx, findLoansByCustomerQuery, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	loans := make([]loan.Loan, 0)
	for rows.Next() {
		var l loan.Loan
		if err := scanLoan(rows, &l); err != nil {
			return nil, err
		}
		loans = append(loans, l)
	}
	return loans, rows.Err()
}

func (r *LoanRepository) BulkInsert(ctx context.Context, loans []*loan.Loan) (int64, error) {
	if len(loans) == 0 {
		return 0, nil
	}

	n := len(loans)
	var (
		ids         = make([]int64, 0, n)
		customerIDs = make([]int64, 0, n)
		amounts     = make([]float64, 0, n)
		tenures     = make([]int32, 0, n)
		rates       = make([]float64, 0, n)
		repayments  = make([]float64, 0, n)
		paidOnTime  = make([]int32, 0, n)
		startDates  = make([]time.Time, 0, n)
		endDates    = make([]time.Time, 0, n)
	)
	for _, l := range loans {
		ids = append(ids, l.ID)
		customerIDs = append(customerIDs, l.CustomerID)
		amounts = append(amounts, l.Amount)
		tenures = append(tenures, int32(l.Tenure))
		rates = append(rates, l.InterestRate)
		repayments = append(repayments, l.MonthlyRepayment)
		paidOnTime = append(paidOnTime, int32(l.EMIsPaidOnTime))
		startDates = append(startDates, l.StartDate)
		endDates = append(endDates, l.EndDate)
	}

	startTime := time.Now()
	tag, err := r.db.Exec(ctx, bulkInsertLoansQuery,
		ids, customerIDs, amounts, tenures, rates, repayments, paidOnTime, startDates, endDates)
	monitoring.RecordDBQuery("BulkInsertLoans", queryStatus(err), time.Since(startTime))
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to bulk insert loans", "error", err)
		return 0, translateDBError(err, r.logger)
	}

	r.logger.InfoContext(ctx, "Bulk inserted loans", "submitted", n, "inserted", tag.RowsAffected())
	return tag.RowsAffected(), nil
}

func (r *LoanRepository) ResetIDSequence(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, resetLoanSequenceQuery); err != nil {
		r.logger.ErrorContext(ctx, "Failed to reset loan id sequence", "error", err)
		return fmt.Errorf("%w: failed to reset loan id sequence: %w", apperrors.ErrDatabase, err)
	}
	return nil
}

func scanLoan(row pgx.Row, l *loan.Loan) error {
	return row.Scan(
		&l.ID, &l.CustomerID, &l.Amount, &l.Tenure, &l.InterestRate,
		&l.MonthlyRepayment, &l.EMIsPaidOnTime, &l.StartDate, &l.EndDate,
	)
}
