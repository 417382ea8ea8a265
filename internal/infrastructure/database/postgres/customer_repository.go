package postgres

import (
	"context"
	"credit-approval/internal/domain/customer"
	"credit-approval/internal/infrastructure/monitoring"
	"credit-approval/internal/pkg/apperrors"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
)

const (
	insertCustomerQuery = `
        INSERT INTO customers (first_name, last_name, age, phone_number, monthly_salary, approved_limit, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, NOW())
        RETURNING id, created_at`

	findCustomerByIDQuery = `
        SELECT id, first_name, last_name, age, phone_number, monthly_salary, approved_limit, created_at
        FROM customers
        WHERE id = $1`

	existingCustomerIDsQuery = `SELECT id FROM customers WHERE id = ANY($1)`

	bulkInsertCustomersQuery = `
        INSERT INTO customers (id, first_name, last_name, age, phone_number, monthly_salary, approved_limit)
        SELECT * FROM unnest($1::bigint[], $2::text[], $3::text[], $4::int[], $5::bigint[], $6::numeric[], $7::bigint[])
        ON CONFLICT (id) DO NOTHING`

	resetCustomerSequenceQuery = `SELECT setval(pg_get_serial_sequence('customers', 'id'), COALESCE((SELECT MAX(id) FROM customers), 1))`
)

type CustomerRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ customer.Repository = (*CustomerRepository)(nil)

func NewCustomerRepository(db DBPool, logger *slog.Logger) *CustomerRepository {
	if db == nil {
		panic("DBPool cannot be nil for CustomerRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("No logger provided to NewCustomerRepository, using default stderr handler")
	}
	return &CustomerRepository{
		db:     db,
		logger: logger.With("component", "CustomerRepository"),
	}
}

func (r *CustomerRepository) Create(ctx context.Context, cust *customer.Customer) error {
	if cust == nil {
		return fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}

	startTime := time.Now()
	err := r.db.QueryRow(ctx, insertCustomerQuery,
		cust.FirstName,
		cust.LastName,
		cust.Age,
		cust.PhoneNumber,
		cust.MonthlySalary,
		cust.ApprovedLimit,
	).Scan(
		&cust.ID,
		&cust.CreatedAt,
	)
	monitoring.RecordDBQuery("CreateCustomer", queryStatus(err), time.Since(startTime))

	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to insert customer", slog.Any("error", err))
		return translateDBError(err, r.logger)
	}

	r.logger.InfoContext(ctx, "Customer inserted successfully", slog.Int64("customerID", cust.ID))
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, customerID int64) (*customer.Customer, error) {
	startTime := time.Now()

	var cust customer.Customer
	err := r.db.QueryRow(ctx, findCustomerByIDQuery, customerID).Scan(
		&cust.ID,
		&cust.FirstName,
		&cust.LastName,
		&cust.Age,
		&cust.PhoneNumber,
		&cust.MonthlySalary,
		&cust.ApprovedLimit,
		&cust.CreatedAt,
	)
	monitoring.RecordDBQuery("FindCustomerByID", queryStatus(err), time.Since(startTime))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Customer not found", slog.Int64("customerID", customerID))
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query/scan customer by ID", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get customer by ID: %w", apperrors.ErrDatabase, err)
	}

	return &cust, nil
}

func (r *CustomerRepository) ExistingIDs(ctx context.Context, ids []int64) (map[int64]bool, error) {
	existing := make(map[int64]bool, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}

	rows, err := r.db.Query(ctx, existingCustomerIDsQuery, ids)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query existing customer IDs", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query customer ids: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: failed to scan customer id: %w", apperrors.ErrDatabase, err)
		}
		existing[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating customer ids: %w", apperrors.ErrDatabase, err)
	}

	return existing, nil
}

func (r *CustomerRepository) BulkInsert(ctx context.Context, customers []*customer.Customer) (int64, error) {
	if len(customers) == 0 {
		return 0, nil
	}

	n := len(customers)
	var (
		ids      = make([]int64, 0, n)
		firsts   = make([]string, 0, n)
		lasts    = make([]string, 0, n)
		ages     = make([]int32, 0, n)
		phones   = make([]int64, 0, n)
		salaries = make([]float64, 0, n)
		limits   = make([]int64, 0, n)
	)
	for _, c := range customers {
		ids = append(ids, c.ID)
		firsts = append(firsts, c.FirstName)
		lasts = append(lasts, c.LastName)
		ages = append(ages, int32(c.Age))
		phones = append(phones, c.PhoneNumber)
		salaries = append(salaries, c.MonthlySalary)
		limits = append(limits, c.ApprovedLimit)
	}

	startTime := time.Now()
	tag, err := r.db.Exec(ctx, bulkInsertCustomersQuery, ids, firsts, lasts, ages, phones, salaries, limits)
	monitoring.RecordDBQuery("BulkInsertCustomers", queryStatus(err), time.Since(startTime))
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to bulk insert customers", slog.Any("error", err))
		return 0, translateDBError(err, r.logger)
	}

	r.logger.InfoContext(ctx, "Bulk inserted customers", slog.Int("submitted", n), slog.Int64("inserted", tag.RowsAffected()))
	return tag.RowsAffected(), nil
}

func (r *CustomerRepository) ResetIDSequence(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, resetCustomerSequenceQuery); err != nil {
		r.logger.ErrorContext(ctx, "Failed to reset customer id sequence", slog.Any("error", err))
		return fmt.Errorf("%w: failed to reset customer id sequence: %w", apperrors.ErrDatabase, err)
	}
	return nil
}
