package domain

import (
	"fmt"

	"github.com/SscSPs/wallet_api/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Amounts are stored as NUMERIC(14, 2).
const AmountScale = 2

// MaxAmount is the smallest amount the store can no longer hold.
var MaxAmount = decimal.New(1, 12)

// ValidateAmount rejects amounts that are not positive, carry more than two
// decimal places, or do not fit the store column.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: the amount must be positive", apperrors.ErrValidation)
	}
	if !amount.Equal(amount.Truncate(AmountScale)) {
		return fmt.Errorf("%w: the amount must have at most %d decimal places", apperrors.ErrValidation, AmountScale)
	}
	if amount.GreaterThanOrEqual(MaxAmount) {
		return fmt.Errorf("%w: the amount must be less than %s", apperrors.ErrValidation, MaxAmount.String())
	}
	return nil
}

// Transaction is a single income or expense entry of one owner.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // UUID, immutable
	OwnerID       string          `json:"ownerID"`       // FK -> User.userID, immutable
	Amount        decimal.Decimal `json:"amount"`        // Positive magnitude; direction comes from IsIncome
	Category      string          `json:"category"`      // IncomeCategory iff IsIncome
	Date          Date            `json:"date"`
	IsIncome      bool            `json:"isIncome"`
	Comment       string          `json:"comment"`
	AuditFields
}

// Validate checks the record invariants against catalog.
func (t Transaction) Validate(catalog *Catalog) error {
	if err := ValidateAmount(t.Amount); err != nil {
		return err
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: date is required", apperrors.ErrValidation)
	}
	want, err := catalog.ResolveCategory(t.IsIncome, t.Category)
	if err != nil {
		return err
	}
	if want != t.Category {
		return fmt.Errorf("%w: category %q does not match isIncome=%t", apperrors.ErrValidation, t.Category, t.IsIncome)
	}
	return nil
}
