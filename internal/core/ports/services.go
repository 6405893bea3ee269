package ports

import (
	"context"
	"time"

	"github.com/adreenastore/pos_backend/internal/dto"
	"github.com/adreenastore/pos_backend/internal/models"
)

// TransactionService exposes the sale recording operations consumed by the
// HTTP layer. Validation of the caller-side preconditions (at least one item,
// positive quantity, non-negative prices) happens here, before any write.
type TransactionService interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*models.Transaction, error)
	GetTransactionByID(ctx context.Context, transactionID string) (*models.Transaction, error)
	ListTransactionsByMonth(ctx context.Context, year int, month time.Month) ([]models.Transaction, error)
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// StoreProfileService owns the set of store profiles and the session-scoped
// selection of which profile is active.
type StoreProfileService interface {
	// GetActiveProfile returns the profile selected by this session, falling
	// back to the first available profile and finally to a built-in default.
	GetActiveProfile(ctx context.Context, sessionID string) (*models.StoreProfile, error)

	ListAvailableProfiles(ctx context.Context) ([]models.StoreProfile, error)

	// SwitchActiveProfile changes the session's active profile when the id
	// exists; an unknown id is a no-op, not an error. Callers wanting
	// confirmation re-read GetActiveProfile.
	SwitchActiveProfile(ctx context.Context, sessionID string, profileID string) error

	// UpdateActiveProfile merges the supplied fields into the session's active
	// profile and persists it. Other profiles are untouched.
	UpdateActiveProfile(ctx context.Context, sessionID string, req dto.UpdateStoreProfileRequest) (*models.StoreProfile, error)
}

// ReportingService computes dashboard aggregates.
type ReportingService interface {
	GetMonthlySummary(ctx context.Context, year int, month time.Month) (*models.MonthlySummary, error)
}

// ReceiptService renders a transaction into a shareable plain-text receipt
// using the session's active store profile.
type ReceiptService interface {
	RenderReceipt(ctx context.Context, sessionID string, transactionID string) (*dto.ReceiptResponse, error)
}

// ServiceContainer holds all service interfaces needed by the HTTP layer.
type ServiceContainer struct {
	Transaction  TransactionService
	StoreProfile StoreProfileService
	Reporting    ReportingService
	Receipt      ReceiptService
}
