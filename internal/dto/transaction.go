package dto

import (
	"time"

	"github.com/adreenastore/pos_backend/internal/models"
	"github.com/shopspring/decimal"
)

// TransactionItemRequest is one line item as submitted by the client.
// Prices are validated as non-negative decimals via the registered dec_nonneg
// rule; quantity must be positive.
type TransactionItemRequest struct {
	Name      string          `json:"name" binding:"required"`
	Price     decimal.Decimal `json:"price" binding:"dec_nonneg"`
	CostPrice decimal.Decimal `json:"costPrice" binding:"dec_nonneg"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
}

// CreateTransactionRequest defines the payload for recording a sale. The
// identifier and the derived totals are assigned by the core; any totals sent
// by the client are ignored.
type CreateTransactionRequest struct {
	CustomerName string                   `json:"customerName"`
	Date         time.Time                `json:"date" binding:"required"`
	Items        []TransactionItemRequest `json:"items" binding:"required,min=1,dive"`
	Note         string                   `json:"note"`
}

// UpdateTransactionRequest defines the data allowed for updating a sale.
// Pointers differentiate omitted fields from zero-value fields; omitted fields
// are left untouched. When Items is present the list replaces the existing
// one wholesale and totals are recomputed from it.
type UpdateTransactionRequest struct {
	CustomerName *string                   `json:"customerName"`
	Date         *time.Time                `json:"date"`
	Items        *[]TransactionItemRequest `json:"items" binding:"omitempty,min=1,dive"`
	Note         *string                   `json:"note"`
	Status       *models.TransactionStatus `json:"status"`
}

// TransactionItemResponse is one line item as returned to the client.
type TransactionItemResponse struct {
	ItemID    string          `json:"itemID"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	CostPrice decimal.Decimal `json:"costPrice"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// TransactionResponse is a full sale with its derived totals.
type TransactionResponse struct {
	TransactionID  string                    `json:"transactionID"`
	CustomerName   string                    `json:"customerName,omitempty"`
	Date           time.Time                 `json:"date"`
	Items          []TransactionItemResponse `json:"items"`
	TotalAmount    decimal.Decimal           `json:"totalAmount"`
	TotalCostPrice decimal.Decimal           `json:"totalCostPrice"`
	Profit         decimal.Decimal           `json:"profit"`
	Note           string                    `json:"note,omitempty"`
	Status         string                    `json:"status"`
	CreatedAt      time.Time                 `json:"createdAt"`
}

// ListTransactionsResponse wraps the transactions of one calendar month.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a models.Transaction to its response DTO.
func ToTransactionResponse(txn *models.Transaction) TransactionResponse {
	items := make([]TransactionItemResponse, len(txn.Items))
	for i, it := range txn.Items {
		items[i] = TransactionItemResponse{
			ItemID:    it.ItemID,
			Name:      it.Name,
			Price:     it.Price,
			CostPrice: it.CostPrice,
			Quantity:  it.Quantity,
			Subtotal:  it.Subtotal(),
		}
	}
	return TransactionResponse{
		TransactionID:  txn.TransactionID,
		CustomerName:   txn.CustomerName,
		Date:           txn.Date,
		Items:          items,
		TotalAmount:    txn.TotalAmount,
		TotalCostPrice: txn.TotalCostPrice,
		Profit:         txn.Profit,
		Note:           txn.Note,
		Status:         string(txn.Status),
		CreatedAt:      txn.CreatedAt,
	}
}

// ToListTransactionsResponse converts a slice of models.Transaction.
func ToListTransactionsResponse(txns []models.Transaction) ListTransactionsResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: responses}
}

// ToModelItems converts submitted line items to their persisted shape. Item
// IDs are assigned by the service.
func ToModelItems(items []TransactionItemRequest) []models.TransactionItem {
	out := make([]models.TransactionItem, len(items))
	for i, it := range items {
		out[i] = models.TransactionItem{
			Name:      it.Name,
			Price:     it.Price,
			CostPrice: it.CostPrice,
			Quantity:  it.Quantity,
		}
	}
	return out
}
