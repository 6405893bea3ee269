package ports

import (
	"context"
	"time"

	"github.com/adreenastore/pos_backend/internal/models"
)

// TransactionRepository defines the persistence operations for sales and their
// line items. A transaction and its items are always written and removed as
// one unit; the store is never left with a header that has no matching items.
type TransactionRepository interface {
	// CreateTransaction assigns the sequential identifier from the current
	// month's transaction count and persists the header together with all
	// items atomically. The count and the insert happen inside one
	// serializable database transaction, so concurrent creations in the same
	// month cannot both commit the same identifier; a collision surfaces as
	// apperrors.ErrDuplicate. Returns the assigned identifier.
	CreateTransaction(ctx context.Context, txn models.Transaction, items []models.TransactionItem) (string, error)

	// FindTransactionByID returns the transaction with its items, or
	// apperrors.ErrNotFound. Absence is a normal outcome, not a failure.
	FindTransactionByID(ctx context.Context, transactionID string) (*models.Transaction, error)

	// ListTransactionsByMonth returns all transactions whose calendar year and
	// month match, items attached, ordered by date descending.
	ListTransactionsByMonth(ctx context.Context, year int, month time.Month) ([]models.Transaction, error)

	// UpdateTransaction overwrites the header fields of an existing
	// transaction and, when replaceItems is set, replaces the item list
	// wholesale in the same database transaction. Returns
	// apperrors.ErrNotFound if the id does not exist.
	UpdateTransaction(ctx context.Context, txn models.Transaction, replaceItems bool) error

	// DeleteTransaction removes the transaction and its items as one unit.
	// Returns apperrors.ErrNotFound when the id does not exist; deleting the
	// same id twice yields ErrNotFound on the second call, every time.
	DeleteTransaction(ctx context.Context, transactionID string) error

	// CountTransactionsInMonth returns the number of transactions recorded in
	// the given calendar month.
	CountTransactionsInMonth(ctx context.Context, year int, month time.Month) (int, error)
}

// StoreProfileRepository defines persistence operations for store profiles.
// Profiles are seeded at first run and never deleted by the core.
type StoreProfileRepository interface {
	FindProfileByID(ctx context.Context, profileID string) (*models.StoreProfile, error)
	ListProfiles(ctx context.Context) ([]models.StoreProfile, error)

	// SaveProfile inserts or overwrites a profile record.
	SaveProfile(ctx context.Context, profile models.StoreProfile) error
}

// ReportingRepository defines read-only aggregate queries over sales.
type ReportingRepository interface {
	// GetMonthlySummary aggregates sales and profit for one calendar month.
	// A month with no transactions yields zero sums, not an error.
	GetMonthlySummary(ctx context.Context, year int, month time.Month) (*models.MonthlySummary, error)
}
