//go:build integration

package postgres

import (
	"context"
	"credit-approval/internal/config"
	"credit-approval/internal/domain/customer"
	"credit-approval/internal/domain/loan"
	"credit-approval/internal/pkg/apperrors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(ctx context.Context, t *testing.T) string {
	t.Helper()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("credit_test"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	return dsn
}

func TestRepositoriesAgainstPostgres(t *testing.T) {
	ctx := context.Background()
	dsn := startPostgres(ctx, t)

	require.NoError(t, RunMigrations(dsn, logger))
	require.NoError(t, RunMigrations(dsn, logger), "second run is a no-op")

	pool, err := NewConnectionPool(ctx, config.DatabaseConfig{URL: dsn}, logger)
	require.NoError(t, err)
	defer pool.Close()

	customers := NewCustomerRepository(pool, logger)
	loans := NewLoanRepository(pool, logger)

	seeded := []*customer.Customer{
		{ID: 100, FirstName: "Ada", LastName: "Lovelace", Age: 36, PhoneNumber: 100, MonthlySalary: 75000, ApprovedLimit: 2_700_000},
		{ID: 101, FirstName: "Alan", LastName: "Turing", Age: 41, PhoneNumber: 200, MonthlySalary: 50000, ApprovedLimit: 1_800_000},
	}
	inserted, err := customers.BulkInsert(ctx, seeded)
	require.NoError(t, err)
	assert.Equal(t, int64(2), inserted)

	inserted, err = customers.BulkInsert(ctx, seeded)
	require.NoError(t, err)
	assert.Zero(t, inserted, "existing ids are skipped")
	require.NoError(t, customers.ResetIDSequence(ctx))

	registered := customer.NewCustomer(customer.Registration{FirstName: "Grace", LastName: "Hopper", Age: 50, PhoneNumber: 300, MonthlyIncome: 62500})
	require.NoError(t, customers.Create(ctx, registered))
	assert.Equal(t, int64(102), registered.ID, "sequence continues after the ingested ids")

	found, err := customers.FindByID(ctx, 102)
	require.NoError(t, err)
	assert.Equal(t, int64(2_200_000), found.ApprovedLimit)
	assert.Equal(t, 62500.0, found.MonthlySalary)

	existing, err := customers.ExistingIDs(ctx, []int64{100, 999})
	require.NoError(t, err)
	assert.Equal(t, map[int64]bool{100: true}, existing)

	start := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	seededLoans := []*loan.Loan{
		{ID: 500, CustomerID: 100, Amount: 50000, Tenure: 6, InterestRate: 8.5, MonthlyRepayment: 8530.5, EMIsPaidOnTime: 6, StartDate: start, EndDate: loan.AddMonths(start, 6)},
	}
	inserted, err = loans.BulkInsert(ctx, seededLoans)
	require.NoError(t, err)
	assert.Equal(t, int64(1), inserted)
	require.NoError(t, loans.ResetIDSequence(ctx))

	created, err := loans.CreateLoan(ctx, &loan.Loan{
		CustomerID: 100, Amount: 100000, Tenure: 12, InterestRate: 16, MonthlyRepayment: 9073.09,
		StartDate: start, EndDate: loan.AddMonths(start, 12),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(501), created.ID)

	history, err := loans.FindByCustomer(ctx, 100)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, time.Date(2024, time.July, 31, 0, 0, 0, 0, time.UTC), history[0].EndDate)
	assert.Equal(t, 9073.09, history[1].MonthlyRepayment)

	got, err := loans.GetLoanByID(ctx, 501)
	require.NoError(t, err)
	assert.Equal(t, int64(100), got.CustomerID)

	_, err = loans.CreateLoan(ctx, &loan.Loan{CustomerID: 999, Amount: 1, Tenure: 1, MonthlyRepayment: 1, StartDate: start, EndDate: start})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = loans.GetLoanByID(ctx, 9999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
