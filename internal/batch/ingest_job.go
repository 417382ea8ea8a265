package batch

import (
	"context"
	"credit-approval/internal/config"
	"credit-approval/internal/domain/customer"
	"credit-approval/internal/domain/loan"
	"credit-approval/internal/infrastructure/monitoring"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

const insertChunkSize = 1000

const (
	colCustomerID    = "Customer ID"
	colFirstName     = "First Name"
	colLastName      = "Last Name"
	colAge           = "Age"
	colPhoneNumber   = "Phone Number"
	colMonthlySalary = "Monthly Salary"
	colApprovedLimit = "Approved Limit"

	colLoanID         = "Loan ID"
	colLoanAmount     = "Loan Amount"
	colTenure         = "Tenure"
	colInterestRate   = "Interest Rate"
	colMonthlyPayment = "Monthly payment"
	colEMIsPaidOnTime = "EMIs paid on Time"
	colApprovalDate   = "Date of Approval"
	colEndDate        = "End Date"
)

type IngestReport struct {
	CustomersRead     int
	CustomersInvalid  int
	CustomersInserted int64
	LoansRead         int
	LoansInvalid      int
	LoansSkipped      int
	LoansInserted     int64
}

// IngestJob loads customers and loans from spreadsheets. Existing ids are
// left untouched and the id sequences are moved past the imported rows.
type IngestJob struct {
	customers customer.Repository
	loans     loan.Repository
	cfg       config.IngestConfig
	logger    *slog.Logger
}

func NewIngestJob(customers customer.Repository, loans loan.Repository, cfg config.IngestConfig, logger *slog.Logger) *IngestJob {
	if customers == nil || loans == nil || logger == nil {
		panic("IngestJob dependencies cannot be nil")
	}
	return &IngestJob{
		customers: customers,
		loans:     loans,
		cfg:       cfg,
		logger:    logger.With("job", "Ingest"),
	}
}

// Run ingests the configured customer and loan files.
func (j *IngestJob) Run(ctx context.Context) error {
	customerFile, err := os.Open(j.cfg.CustomerFile)
	if err != nil {
		return fmt.Errorf("failed to open customer file: %w", err)
	}
	defer customerFile.Close()

	loanFile, err := os.Open(j.cfg.LoanFile)
	if err != nil {
		return fmt.Errorf("failed to open loan file: %w", err)
	}
	defer loanFile.Close()

	_, err = j.Ingest(ctx, customerFile, loanFile)
	return err
}

func (j *IngestJob) Ingest(ctx context.Context, customerSrc, loanSrc io.Reader) (*IngestReport, error) {
	startTime := time.Now()
	j.logger.InfoContext(ctx, "Starting spreadsheet ingestion.")

	report := &IngestReport{}
	if err := j.ingestCustomers(ctx, customerSrc, report); err != nil {
		j.logger.ErrorContext(ctx, "Customer ingestion failed, aborting job.", slog.Any("error", err))
		return report, fmt.Errorf("customer ingestion failed: %w", err)
	}
	if err := j.ingestLoans(ctx, loanSrc, report); err != nil {
		j.logger.ErrorContext(ctx, "Loan ingestion failed.", slog.Any("error", err))
		return report, fmt.Errorf("loan ingestion failed: %w", err)
	}

	j.logger.InfoContext(ctx, "Spreadsheet ingestion finished.",
		slog.Duration("duration", time.Since(startTime)),
		slog.Int("customers_read", report.CustomersRead),
		slog.Int("customers_invalid", report.CustomersInvalid),
		slog.Int64("customers_inserted", report.CustomersInserted),
		slog.Int("loans_read", report.LoansRead),
		slog.Int("loans_invalid", report.LoansInvalid),
		slog.Int("loans_skipped", report.LoansSkipped),
		slog.Int64("loans_inserted", report.LoansInserted),
	)
	return report, nil
}

func (j *IngestJob) ingestCustomers(ctx context.Context, src io.Reader, report *IngestReport) error {
	rows, err := readSheet(src, j.cfg.Sheet)
	if err != nil {
		return err
	}
	report.CustomersRead = len(rows)

	customers := make([]*customer.Customer, 0, len(rows))
	for _, row := range rows {
		c, err := parseCustomer(row)
		if err != nil {
			j.logger.WarnContext(ctx, "Skipping invalid customer row", slog.Int("line", row.line), slog.Any("error", err))
			report.CustomersInvalid++
			continue
		}
		customers = append(customers, c)
	}
	monitoring.RecordIngestRows("customer", "invalid", report.CustomersInvalid)

	for start := 0; start < len(customers); start += insertChunkSize {
		end := min(start+insertChunkSize, len(customers))
		n, err := j.customers.BulkInsert(ctx, customers[start:end])
		if err != nil {
			return err
		}
		report.CustomersInserted += n
	}
	monitoring.RecordIngestRows("customer", "inserted", int(report.CustomersInserted))

	j.logger.InfoContext(ctx, "Resetting customer ID sequence.")
	return j.customers.ResetIDSequence(ctx)
}

func (j *IngestJob) ingestLoans(ctx context.Context, src io.Reader, report *IngestReport) error {
	rows, err := readSheet(src, j.cfg.Sheet)
	if err != nil {
		return err
	}
	report.LoansRead = len(rows)

	parsed := make([]*loan.Loan, 0, len(rows))
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		l, err := parseLoan(row)
		if err != nil {
			j.logger.WarnContext(ctx, "Skipping invalid loan row", slog.Int("line", row.line), slog.Any("error", err))
			report.LoansInvalid++
			continue
		}
		parsed = append(parsed, l)
		ids = append(ids, l.CustomerID)
	}
	monitoring.RecordIngestRows("loan", "invalid", report.LoansInvalid)

	existing, err := j.customers.ExistingIDs(ctx, ids)
	if err != nil {
		return err
	}

	loans := make([]*loan.Loan, 0, len(parsed))
	for _, l := range parsed {
		if !existing[l.CustomerID] {
			j.logger.WarnContext(ctx, "Customer not found, skipping loan",
				slog.Int64("customerID", l.CustomerID), slog.Int64("loanID", l.ID))
			report.LoansSkipped++
			continue
		}
		loans = append(loans, l)
	}
	monitoring.RecordIngestRows("loan", "skipped", report.LoansSkipped)

	for start := 0; start < len(loans); start += insertChunkSize {
		end := min(start+insertChunkSize, len(loans))
		n, err := j.loans.BulkInsert(ctx, loans[start:end])
		if err != nil {
			return err
		}
		report.LoansInserted += n
	}
	monitoring.RecordIngestRows("loan", "inserted", int(report.LoansInserted))

	j.logger.InfoContext(ctx, "Resetting loan ID sequence.")
	return j.loans.ResetIDSequence(ctx)
}

func parseCustomer(row sheetRow) (*customer.Customer, error) {
	c := &customer.Customer{}
	var err error

	if c.ID, err = row.integer(colCustomerID); err != nil {
		return nil, err
	}
	if c.FirstName, err = row.text(colFirstName); err != nil {
		return nil, err
	}
	if c.LastName, err = row.text(colLastName); err != nil {
		return nil, err
	}
	age, err := row.integer(colAge)
	if err != nil {
		return nil, err
	}
	c.Age = int(age)
	if c.PhoneNumber, err = row.integer(colPhoneNumber); err != nil {
		return nil, err
	}
	if c.MonthlySalary, err = row.number(colMonthlySalary); err != nil {
		return nil, err
	}
	if c.ApprovedLimit, err = row.integer(colApprovedLimit); err != nil {
		return nil, err
	}
	return c, nil
}

func parseLoan(row sheetRow) (*loan.Loan, error) {
	l := &loan.Loan{}
	var err error

	if l.CustomerID, err = row.integer(colCustomerID); err != nil {
		return nil, err
	}
	if l.ID, err = row.integer(colLoanID); err != nil {
		return nil, err
	}
	if l.Amount, err = row.number(colLoanAmount); err != nil {
		return nil, err
	}
	tenure, err := row.integer(colTenure)
	if err != nil {
		return nil, err
	}
	l.Tenure = int(tenure)
	if l.InterestRate, err = row.number(colInterestRate); err != nil {
		return nil, err
	}
	if l.MonthlyRepayment, err = row.number(colMonthlyPayment); err != nil {
		return nil, err
	}
	paid, err := row.integer(colEMIsPaidOnTime)
	if err != nil {
		return nil, err
	}
	l.EMIsPaidOnTime = int(paid)
	if l.StartDate, err = row.date(colApprovalDate); err != nil {
		return nil, err
	}
	if l.EndDate, err = row.date(colEndDate); err != nil {
		return nil, err
	}
	return l, nil
}
