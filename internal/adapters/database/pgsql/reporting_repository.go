package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/adreenastore/pos_backend/internal/core/ports"
	"github.com/adreenastore/pos_backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	pool *pgxpool.Pool
}

// NewPgxReportingRepository creates a new repository for dashboard aggregates.
func NewPgxReportingRepository(pool *pgxpool.Pool) ports.ReportingRepository {
	return &PgxReportingRepository{pool: pool}
}

var _ ports.ReportingRepository = (*PgxReportingRepository)(nil)

// GetMonthlySummary aggregates sales and profit for one calendar month.
// COALESCE keeps an empty month at zero sums instead of NULL.
func (r *PgxReportingRepository) GetMonthlySummary(ctx context.Context, year int, month time.Month) (*models.MonthlySummary, error) {
	query := `
		SELECT
			COALESCE(SUM(total_amount), 0) AS total_sales,
			COALESCE(SUM(profit), 0) AS total_profit,
			COUNT(*) AS transaction_count
		FROM transactions
		WHERE EXTRACT(YEAR FROM txn_date) = $1 AND EXTRACT(MONTH FROM txn_date) = $2;
	`
	var summary models.MonthlySummary
	err := r.pool.QueryRow(ctx, query, year, int(month)).Scan(
		&summary.TotalSales,
		&summary.TotalProfit,
		&summary.TransactionCount,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying monthly summary data: %w", err)
	}

	summary.PeriodStart = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	summary.PeriodEnd = summary.PeriodStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	return &summary, nil
}
