package dto

import (
	"time"

	"github.com/adreenastore/pos_backend/internal/models"
	"github.com/shopspring/decimal"
)

// MonthlySummaryResponse carries the dashboard aggregates for one month.
type MonthlySummaryResponse struct {
	TotalSales       decimal.Decimal `json:"totalSales"`
	TotalProfit      decimal.Decimal `json:"totalProfit"`
	TransactionCount int             `json:"transactionCount"`
	PeriodStart      time.Time       `json:"periodStart"`
	PeriodEnd        time.Time       `json:"periodEnd"`
}

// ToMonthlySummaryResponse converts a models.MonthlySummary to its DTO.
func ToMonthlySummaryResponse(s *models.MonthlySummary) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		TotalSales:       s.TotalSales,
		TotalProfit:      s.TotalProfit,
		TransactionCount: s.TransactionCount,
		PeriodStart:      s.PeriodStart,
		PeriodEnd:        s.PeriodEnd,
	}
}

// ReceiptResponse carries the rendered receipt text and a messaging deep link
// for sharing it.
type ReceiptResponse struct {
	TransactionID string `json:"transactionID"`
	Text          string `json:"text"`
	ShareLink     string `json:"shareLink,omitempty"`
}
