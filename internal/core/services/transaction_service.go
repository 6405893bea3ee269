package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/adreenastore/pos_backend/internal/apperrors"
	"github.com/adreenastore/pos_backend/internal/core/ports"
	"github.com/adreenastore/pos_backend/internal/dto"
	"github.com/adreenastore/pos_backend/internal/middleware"
	"github.com/adreenastore/pos_backend/internal/models"
	"github.com/adreenastore/pos_backend/internal/utils/sales"
)

// transactionService provides the core sale recording operations.
type transactionService struct {
	txnRepo ports.TransactionRepository
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(txnRepo ports.TransactionRepository) ports.TransactionService {
	return &transactionService{txnRepo: txnRepo}
}

var _ ports.TransactionService = (*transactionService)(nil)

// validateItems enforces the preconditions that must hold before any write is
// attempted: a non-empty item list, non-empty names, positive quantities and
// non-negative prices.
func validateItems(items []dto.TransactionItemRequest) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: a transaction requires at least one item", apperrors.ErrValidation)
	}
	for i, item := range items {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("%w: item %d has an empty name", apperrors.ErrValidation, i+1)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item %q quantity must be positive", apperrors.ErrValidation, item.Name)
		}
		if item.Price.IsNegative() {
			return fmt.Errorf("%w: item %q price must not be negative", apperrors.ErrValidation, item.Name)
		}
		if item.CostPrice.IsNegative() {
			return fmt.Errorf("%w: item %q cost price must not be negative", apperrors.ErrValidation, item.Name)
		}
	}
	return nil
}

// buildItems assigns item IDs and converts the request lines to their
// persisted shape.
func buildItems(reqItems []dto.TransactionItemRequest) []models.TransactionItem {
	items := dto.ToModelItems(reqItems)
	for i := range items {
		items[i].ItemID = uuid.NewString()
	}
	return items
}

// CreateTransaction validates the request, computes the derived totals from
// the submitted items and persists the sale. The sequential identifier is
// assigned by the repository inside the same database transaction that counts
// the month's existing sales.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*models.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateItems(req.Items); err != nil {
		return nil, err
	}

	items := buildItems(req.Items)
	totals := sales.CalculateTotals(items)

	now := time.Now()
	txn := models.Transaction{
		CustomerName:   req.CustomerName,
		Date:           req.Date,
		TotalAmount:    totals.TotalAmount,
		TotalCostPrice: totals.TotalCostPrice,
		Profit:         totals.Profit,
		Note:           req.Note,
		Status:         models.StatusCompleted,
		AuditFields: models.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	transactionID, err := s.txnRepo.CreateTransaction(ctx, txn, items)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	txn.TransactionID = transactionID
	txn.Items = items
	for i := range txn.Items {
		txn.Items[i].TransactionID = transactionID
	}

	logger.Info("Transaction created",
		slog.String("transaction_id", transactionID),
		slog.Int("item_count", len(items)),
		slog.String("total_amount", totals.TotalAmount.String()),
	)
	return &txn, nil
}

// GetTransactionByID retrieves a single sale with its items.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*models.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// ListTransactionsByMonth returns the sales of one calendar month, newest
// first.
func (s *transactionService) ListTransactionsByMonth(ctx context.Context, year int, month time.Month) ([]models.Transaction, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", apperrors.ErrValidation)
	}
	txns, err := s.txnRepo.ListTransactionsByMonth(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for %d-%02d: %w", year, month, err)
	}
	return txns, nil
}

// UpdateTransaction applies a partial update to an existing sale. Fields
// omitted from the request are left untouched. When the request carries a new
// item list, the list replaces the old one wholesale and the totals are
// recomputed from it; any totals the caller may have computed are ignored.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*models.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if req.CustomerName != nil {
		txn.CustomerName = *req.CustomerName
	}
	if req.Date != nil {
		txn.Date = *req.Date
	}
	if req.Note != nil {
		txn.Note = *req.Note
	}
	if req.Status != nil {
		// No transition rules: any status may replace any other.
		txn.Status = *req.Status
	}

	replaceItems := req.Items != nil
	if replaceItems {
		if err := validateItems(*req.Items); err != nil {
			return nil, err
		}
		items := buildItems(*req.Items)
		for i := range items {
			items[i].TransactionID = transactionID
		}
		totals := sales.CalculateTotals(items)
		txn.Items = items
		txn.TotalAmount = totals.TotalAmount
		txn.TotalCostPrice = totals.TotalCostPrice
		txn.Profit = totals.Profit
	}

	txn.LastUpdatedAt = time.Now()

	if err := s.txnRepo.UpdateTransaction(ctx, *txn, replaceItems); err != nil {
		return nil, fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}

	logger.Info("Transaction updated",
		slog.String("transaction_id", transactionID),
		slog.Bool("items_replaced", replaceItems),
	)
	return txn, nil
}

// DeleteTransaction removes a sale and its items. An unknown id returns
// apperrors.ErrNotFound, consistently on every call.
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		return err
	}

	logger.Info("Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
