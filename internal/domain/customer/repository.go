package customer

import "context"

type Repository interface {
	// Create inserts the customer and sets its ID and CreatedAt.
	Create(ctx context.Context, customer *Customer) error

	FindByID(ctx context.Context, customerID int64) (*Customer, error)

	// ExistingIDs returns the subset of ids that are stored.
	ExistingIDs(ctx context.Context, ids []int64) (map[int64]bool, error)

	// BulkInsert stores customers with their given IDs, skipping IDs that
	// already exist, and returns the number of rows inserted.
	BulkInsert(ctx context.Context, customers []*Customer) (int64, error)

	ResetIDSequence(ctx context.Context) error
}
