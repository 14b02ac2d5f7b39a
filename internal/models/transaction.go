package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the row shape of the transactions table.
type Transaction struct {
	TransactionID string          `db:"transaction_id"` // Primary Key (UUID)
	OwnerID       string          `db:"owner_id"`       // FK -> users.user_id
	Amount        decimal.Decimal `db:"amount"`         // NUMERIC(14,2), always positive
	Category      string          `db:"category"`
	TxnDate       time.Time       `db:"txn_date"` // DATE, midnight UTC
	IsIncome      bool            `db:"is_income"`
	Comment       string          `db:"comment"`
	AuditFields
}
