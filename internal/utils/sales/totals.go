package sales

import (
	"github.com/adreenastore/pos_backend/internal/models"
	"github.com/shopspring/decimal"
)

// Totals holds the derived transaction-level sums.
type Totals struct {
	TotalAmount    decimal.Decimal
	TotalCostPrice decimal.Decimal
	Profit         decimal.Decimal
}

// CalculateTotals computes the derived sums for a list of line items. Callers
// never supply their own totals; the service recomputes them from the items on
// every write. Profit may be negative; it is not clamped. An empty item list
// yields all zero totals.
func CalculateTotals(items []models.TransactionItem) Totals {
	totalAmount := decimal.Zero
	totalCostPrice := decimal.Zero

	for _, item := range items {
		totalAmount = totalAmount.Add(item.Subtotal())
		totalCostPrice = totalCostPrice.Add(item.CostSubtotal())
	}

	return Totals{
		TotalAmount:    totalAmount,
		TotalCostPrice: totalCostPrice,
		Profit:         totalAmount.Sub(totalCostPrice),
	}
}
