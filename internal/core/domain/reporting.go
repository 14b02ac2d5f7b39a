package domain

import (
	"github.com/shopspring/decimal"
)

// CategoryTotal is the summed amount of one catalog category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Color    string          `json:"color,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
}

// Summary is the derived income/expense report of one owner.
// Balance always equals TotalIncome minus TotalExpenses.
type Summary struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Balance       decimal.Decimal `json:"balance"`
	PerCategory   []CategoryTotal `json:"perCategory"`
	Period        *Period         `json:"period,omitempty"` // nil for all-time summaries
}

// BuildSummary assembles a Summary from raw (possibly signed) sums.
// PerCategory follows catalog order with one zero-filled entry per category;
// sums for names outside the catalog are dropped.
func BuildSummary(catalog *Catalog, income, expenses decimal.Decimal, byCategory map[string]decimal.Decimal, period *Period) Summary {
	income = income.Abs()
	expenses = expenses.Abs()

	perCategory := make([]CategoryTotal, 0, catalog.Len())
	for _, cat := range catalog.Categories() {
		amount, ok := byCategory[cat.Name]
		if !ok {
			amount = decimal.Zero
		}
		perCategory = append(perCategory, CategoryTotal{
			Category: cat.Name,
			Color:    cat.Color,
			Amount:   amount.Abs(),
		})
	}

	return Summary{
		TotalIncome:   income,
		TotalExpenses: expenses,
		Balance:       income.Sub(expenses),
		PerCategory:   perCategory,
		Period:        period,
	}
}
