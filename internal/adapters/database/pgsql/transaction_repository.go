package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adreenastore/pos_backend/internal/apperrors"
	"github.com/adreenastore/pos_backend/internal/core/ports"
	"github.com/adreenastore/pos_backend/internal/models"
	"github.com/adreenastore/pos_backend/internal/utils/sales"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the PostgreSQL error code for unique constraint breaches.
const uniqueViolation = "23505"

type PgxTransactionRepository struct {
	pool     *pgxpool.Pool
	idPrefix string
}

// NewPgxTransactionRepository creates a new repository for sales and their
// line items. idPrefix is the receipt number prefix, e.g. "AS-".
func NewPgxTransactionRepository(pool *pgxpool.Pool, idPrefix string) ports.TransactionRepository {
	if idPrefix == "" {
		idPrefix = sales.DefaultIDPrefix
	}
	return &PgxTransactionRepository{pool: pool, idPrefix: idPrefix}
}

var _ ports.TransactionRepository = (*PgxTransactionRepository)(nil)

// CreateTransaction counts the month's existing sales, derives the sequential
// identifier and inserts the header together with all items, all inside one
// serializable database transaction. Serializable isolation makes the
// count-then-insert pair atomic with respect to concurrent creations: two
// sales racing in the same month cannot both observe the same count and
// commit, so a collision surfaces as apperrors.ErrDuplicate instead of a
// silent overwrite.
func (r *PgxTransactionRepository) CreateTransaction(ctx context.Context, txn models.Transaction, items []models.TransactionItem) (string, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // No-op once committed
	}()

	var monthCount int
	countQuery := `
		SELECT COUNT(*)
		FROM transactions
		WHERE date_trunc('month', txn_date) = date_trunc('month', $1::timestamptz);
	`
	if err := tx.QueryRow(ctx, countQuery, txn.Date).Scan(&monthCount); err != nil {
		return "", fmt.Errorf("failed to count transactions for month of %s: %w", txn.Date.Format("2006-01"), err)
	}

	transactionID := sales.GenerateTransactionID(r.idPrefix, txn.Date, monthCount)

	headerQuery := `
		INSERT INTO transactions (transaction_id, customer_name, txn_date, total_amount, total_cost_price, profit, note, status, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, headerQuery,
		transactionID,
		txn.CustomerName,
		txn.Date,
		txn.TotalAmount,
		txn.TotalCostPrice,
		txn.Profit,
		txn.Note,
		txn.Status,
		txn.CreatedAt,
		txn.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return "", fmt.Errorf("identifier %s already taken: %w", transactionID, apperrors.ErrDuplicate)
		}
		return "", fmt.Errorf("failed to insert transaction %s: %w", transactionID, err)
	}

	if err := insertItems(ctx, tx, transactionID, items); err != nil {
		return "", err
	}

	if err := tx.Commit(ctx); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return "", fmt.Errorf("identifier %s already taken: %w", transactionID, apperrors.ErrDuplicate)
		}
		return "", fmt.Errorf("failed to commit transaction %s: %w", transactionID, err)
	}

	return transactionID, nil
}

// insertItems batch-inserts the line items of one sale inside an open
// database transaction.
func insertItems(ctx context.Context, tx pgx.Tx, transactionID string, items []models.TransactionItem) error {
	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO transaction_items (item_id, transaction_id, name, price, cost_price, quantity)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, item := range items {
		batch.Queue(itemQuery,
			item.ItemID,
			transactionID,
			item.Name,
			item.Price,
			item.CostPrice,
			item.Quantity,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute item batch for transaction %s: %w", transactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a sale and its line items.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*models.Transaction, error) {
	query := `
		SELECT transaction_id, customer_name, txn_date, total_amount, total_cost_price, profit, note, status, created_at, last_updated_at
		FROM transactions
		WHERE transaction_id = $1;
	`
	var txn models.Transaction
	err := r.pool.QueryRow(ctx, query, transactionID).Scan(
		&txn.TransactionID,
		&txn.CustomerName,
		&txn.Date,
		&txn.TotalAmount,
		&txn.TotalCostPrice,
		&txn.Profit,
		&txn.Note,
		&txn.Status,
		&txn.CreatedAt,
		&txn.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	itemsByTxn, err := r.findItemsByTransactionIDs(ctx, []string{transactionID})
	if err != nil {
		return nil, err
	}
	txn.Items = itemsByTxn[transactionID]

	return &txn, nil
}

// ListTransactionsByMonth retrieves all sales of one calendar month, items
// attached, newest first.
func (r *PgxTransactionRepository) ListTransactionsByMonth(ctx context.Context, year int, month time.Month) ([]models.Transaction, error) {
	query := `
		SELECT transaction_id, customer_name, txn_date, total_amount, total_cost_price, profit, note, status, created_at, last_updated_at
		FROM transactions
		WHERE EXTRACT(YEAR FROM txn_date) = $1 AND EXTRACT(MONTH FROM txn_date) = $2
		ORDER BY txn_date DESC, created_at DESC;
	`
	rows, err := r.pool.Query(ctx, query, year, int(month))
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for %d-%02d: %w", year, month, err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	ids := []string{}
	for rows.Next() {
		var txn models.Transaction
		err := rows.Scan(
			&txn.TransactionID,
			&txn.CustomerName,
			&txn.Date,
			&txn.TotalAmount,
			&txn.TotalCostPrice,
			&txn.Profit,
			&txn.Note,
			&txn.Status,
			&txn.CreatedAt,
			&txn.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, txn)
		ids = append(ids, txn.TransactionID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	itemsByTxn, err := r.findItemsByTransactionIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range transactions {
		transactions[i].Items = itemsByTxn[transactions[i].TransactionID]
	}

	return transactions, nil
}

// findItemsByTransactionIDs retrieves the line items for a list of sales,
// grouped by transaction ID. Transactions without items get an empty slice.
func (r *PgxTransactionRepository) findItemsByTransactionIDs(ctx context.Context, transactionIDs []string) (map[string][]models.TransactionItem, error) {
	itemsByTxn := make(map[string][]models.TransactionItem, len(transactionIDs))
	for _, id := range transactionIDs {
		itemsByTxn[id] = []models.TransactionItem{}
	}
	if len(transactionIDs) == 0 {
		return itemsByTxn, nil
	}

	query := `
		SELECT item_id, transaction_id, name, price, cost_price, quantity
		FROM transaction_items
		WHERE transaction_id = ANY($1)
		ORDER BY transaction_id, item_id;
	`
	rows, err := r.pool.Query(ctx, query, transactionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.TransactionItem
		err := rows.Scan(
			&item.ItemID,
			&item.TransactionID,
			&item.Name,
			&item.Price,
			&item.CostPrice,
			&item.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction item row: %w", err)
		}
		itemsByTxn[item.TransactionID] = append(itemsByTxn[item.TransactionID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction item rows: %w", err)
	}

	return itemsByTxn, nil
}

// UpdateTransaction overwrites the header fields of an existing sale and, when
// replaceItems is set, swaps the item list wholesale. Header and items change
// in one database transaction so a failed item write never leaves the header
// pointing at a stale or missing list.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn models.Transaction, replaceItems bool) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	headerQuery := `
		UPDATE transactions
		SET customer_name = $2,
		    txn_date = $3,
		    total_amount = $4,
		    total_cost_price = $5,
		    profit = $6,
		    note = $7,
		    status = $8,
		    last_updated_at = $9
		WHERE transaction_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, headerQuery,
		txn.TransactionID,
		txn.CustomerName,
		txn.Date,
		txn.TotalAmount,
		txn.TotalCostPrice,
		txn.Profit,
		txn.Note,
		txn.Status,
		txn.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", txn.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if replaceItems {
		if _, err := tx.Exec(ctx, `DELETE FROM transaction_items WHERE transaction_id = $1;`, txn.TransactionID); err != nil {
			return fmt.Errorf("failed to clear items for transaction %s: %w", txn.TransactionID, err)
		}
		if err := insertItems(ctx, tx, txn.TransactionID, txn.Items); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit update for transaction %s: %w", txn.TransactionID, err)
	}

	return nil
}

// DeleteTransaction removes a sale; the foreign key cascade removes its items
// in the same statement. An unknown id returns apperrors.ErrNotFound, so a
// second delete of the same id yields the same outcome every time.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CountTransactionsInMonth returns the number of sales recorded in the given
// calendar month.
func (r *PgxTransactionRepository) CountTransactionsInMonth(ctx context.Context, year int, month time.Month) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM transactions
		WHERE EXTRACT(YEAR FROM txn_date) = $1 AND EXTRACT(MONTH FROM txn_date) = $2;
	`
	var count int
	if err := r.pool.QueryRow(ctx, query, year, int(month)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions for %d-%02d: %w", year, month, err)
	}
	return count, nil
}
