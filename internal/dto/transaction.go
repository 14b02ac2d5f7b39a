package dto

import (
	"time"

	"github.com/SscSPs/wallet_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the body of POST /api/transactions.
// Category may be omitted for income; it is forced to "Income" then.
type CreateTransactionRequest struct {
	Amount   *decimal.Decimal `json:"amount" binding:"required" swaggertype:"string" example:"50.00"`
	Category string           `json:"category" example:"Food"`
	Date     string           `json:"date" binding:"required,walletdate" example:"15-03-2024"`
	IsIncome *bool            `json:"isIncome" binding:"required" example:"false"`
	Comment  string           `json:"comment" binding:"max=500" example:"Groceries"`
}

// UpdateTransactionRequest defines a partial update. Omitted fields are left untouched.
type UpdateTransactionRequest struct {
	Amount   *decimal.Decimal `json:"amount,omitempty" swaggertype:"string" example:"75.10"`
	Category *string          `json:"category,omitempty" example:"Car"`
	Date     *string          `json:"date,omitempty" binding:"omitempty,walletdate" example:"16-03-2024"`
	IsIncome *bool            `json:"isIncome,omitempty"`
	Comment  *string          `json:"comment,omitempty" binding:"omitempty,max=500"`
}

// IsEmpty reports whether the patch changes nothing.
func (r UpdateTransactionRequest) IsEmpty() bool {
	return r.Amount == nil && r.Category == nil && r.Date == nil && r.IsIncome == nil && r.Comment == nil
}

// PeriodURI binds the :month/:year path segments.
type PeriodURI struct {
	Month int `uri:"month" binding:"required,min=1,max=12"`
	Year  int `uri:"year" binding:"required,min=1000,max=9999"`
}

// TransactionIDURI binds the :transactionId path segment.
type TransactionIDURI struct {
	TransactionID string `uri:"transactionId" binding:"required,uuid"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	OwnerID       string          `json:"ownerID"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string" example:"50"`
	Category      string          `json:"category"`
	Date          string          `json:"date" example:"15-03-2024"`
	IsIncome      bool            `json:"isIncome"`
	Comment       string          `json:"comment"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		OwnerID:       txn.OwnerID,
		Amount:        txn.Amount,
		Category:      txn.Category,
		Date:          txn.Date.String(),
		IsIncome:      txn.IsIncome,
		Comment:       txn.Comment,
		CreatedAt:     txn.CreatedAt,
		LastUpdatedAt: txn.LastUpdatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}

// DeleteTransactionResponse confirms a deletion.
type DeleteTransactionResponse struct {
	TransactionID string `json:"transactionID"`
}
