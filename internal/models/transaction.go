package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is an optional tag attached to a sale. The core does not
// enforce transitions between these values; any value may replace any other.
type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "COMPLETED"
	StatusCancelled TransactionStatus = "CANCELLED"
	StatusVoid      TransactionStatus = "VOID"
)

// Transaction represents one recorded sale event with one or more line items.
// TotalAmount, TotalCostPrice and Profit are derived from the item list and
// are recomputed by the core whenever the list changes; they are never taken
// from a caller.
type Transaction struct {
	TransactionID  string            `json:"transactionID"` // Sequential code, e.g. AS-2403001
	CustomerName   string            `json:"customerName,omitempty"`
	Date           time.Time         `json:"date"`
	Items          []TransactionItem `json:"items"`
	TotalAmount    decimal.Decimal   `json:"totalAmount"`
	TotalCostPrice decimal.Decimal   `json:"totalCostPrice"` // Not shown on receipts
	Profit         decimal.Decimal   `json:"profit"`
	Note           string            `json:"note,omitempty"`
	Status         TransactionStatus `json:"status"`
	AuditFields
}

// TransactionItem is a single line within a transaction, owned exclusively by
// its parent. Subtotal = Price x Quantity, cost subtotal = CostPrice x Quantity.
type TransactionItem struct {
	ItemID        string          `json:"itemID"` // Primary key (UUID)
	TransactionID string          `json:"transactionID"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`     // Unit sale price, non-negative
	CostPrice     decimal.Decimal `json:"costPrice"` // Unit cost price, non-negative
	Quantity      int             `json:"quantity"`  // Positive
}

// Subtotal returns the sale value of the line.
func (i TransactionItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CostSubtotal returns the cost value of the line.
func (i TransactionItem) CostSubtotal() decimal.Decimal {
	return i.CostPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
