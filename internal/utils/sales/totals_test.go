package sales

import (
	"testing"

	"github.com/adreenastore/pos_backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func item(price, cost int64, qty int) models.TransactionItem {
	return models.TransactionItem{
		Name:      "item",
		Price:     decimal.NewFromInt(price),
		CostPrice: decimal.NewFromInt(cost),
		Quantity:  qty,
	}
}

func TestCalculateTotals(t *testing.T) {
	tests := []struct {
		name          string
		items         []models.TransactionItem
		wantAmount    int64
		wantCostPrice int64
		wantProfit    int64
	}{
		{
			name: "two items",
			items: []models.TransactionItem{
				item(10000, 6000, 2),
				item(5000, 3000, 1),
			},
			wantAmount:    25000,
			wantCostPrice: 15000,
			wantProfit:    10000,
		},
		{
			name:          "empty item list yields zero totals",
			items:         nil,
			wantAmount:    0,
			wantCostPrice: 0,
			wantProfit:    0,
		},
		{
			name: "single item",
			items: []models.TransactionItem{
				item(7500, 5000, 3),
			},
			wantAmount:    22500,
			wantCostPrice: 15000,
			wantProfit:    7500,
		},
		{
			name: "loss is not clamped",
			items: []models.TransactionItem{
				item(1000, 4000, 2),
			},
			wantAmount:    2000,
			wantCostPrice: 8000,
			wantProfit:    -6000,
		},
		{
			name: "free item contributes cost only",
			items: []models.TransactionItem{
				item(0, 2500, 1),
			},
			wantAmount:    0,
			wantCostPrice: 2500,
			wantProfit:    -2500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTotals(tt.items)
			assert.True(t, decimal.NewFromInt(tt.wantAmount).Equal(got.TotalAmount), "totalAmount: got %s", got.TotalAmount)
			assert.True(t, decimal.NewFromInt(tt.wantCostPrice).Equal(got.TotalCostPrice), "totalCostPrice: got %s", got.TotalCostPrice)
			assert.True(t, decimal.NewFromInt(tt.wantProfit).Equal(got.Profit), "profit: got %s", got.Profit)
		})
	}
}

func TestCalculateTotalsMatchesItemSums(t *testing.T) {
	items := []models.TransactionItem{
		item(1250, 900, 4),
		item(300, 100, 10),
		item(99999, 88888, 1),
	}

	wantAmount := decimal.Zero
	wantCost := decimal.Zero
	for _, it := range items {
		wantAmount = wantAmount.Add(it.Subtotal())
		wantCost = wantCost.Add(it.CostSubtotal())
	}

	got := CalculateTotals(items)
	assert.True(t, wantAmount.Equal(got.TotalAmount))
	assert.True(t, wantCost.Equal(got.TotalCostPrice))
	assert.True(t, wantAmount.Sub(wantCost).Equal(got.Profit))
}
