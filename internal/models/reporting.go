package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlySummary holds the dashboard aggregates for one calendar month.
type MonthlySummary struct {
	TotalSales       decimal.Decimal `json:"totalSales"`
	TotalProfit      decimal.Decimal `json:"totalProfit"`
	TransactionCount int             `json:"transactionCount"`
	PeriodStart      time.Time       `json:"periodStart"`
	PeriodEnd        time.Time       `json:"periodEnd"`
}
