package loan

import "context"

type Repository interface {
	CreateLoan(ctx context.Context, loan *Loan) (*Loan, error)

	GetLoanByID(ctx context.Context, loanID int64) (*Loan, error)

	// FindByCustomer reads all of a customer's loans in one query.
	FindByCustomer(ctx context.Context, customerID int64) ([]Loan, error)

	// BulkInsert stores loans with their given IDs, skipping IDs that
	// already exist, and returns the number of rows inserted.
	BulkInsert(ctx context.Context, loans []*Loan) (int64, error)

	ResetIDSequence(ctx context.Context) error
}
