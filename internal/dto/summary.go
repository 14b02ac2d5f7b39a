package dto

import (
	"github.com/SscSPs/wallet_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategoryTotalResponse is one row of the per-category breakdown.
type CategoryTotalResponse struct {
	Category string          `json:"category" example:"Food"`
	Color    string          `json:"color,omitempty" example:"#FFD8D0"`
	Amount   decimal.Decimal `json:"amount" swaggertype:"string" example:"50"`
}

// SummaryResponse is the income/expense report of the caller.
type SummaryResponse struct {
	TotalIncome   decimal.Decimal         `json:"totalIncome" swaggertype:"string" example:"0"`
	TotalExpenses decimal.Decimal         `json:"totalExpenses" swaggertype:"string" example:"50"`
	Balance       decimal.Decimal         `json:"balance" swaggertype:"string" example:"-50"`
	PerCategory   []CategoryTotalResponse `json:"perCategory"`
	Month         *int                    `json:"month,omitempty" example:"3"`
	Year          *int                    `json:"year,omitempty" example:"2024"`
}

// ToSummaryResponse converts a domain.Summary to SummaryResponse DTO.
func ToSummaryResponse(s *domain.Summary) SummaryResponse {
	rows := make([]CategoryTotalResponse, len(s.PerCategory))
	for i, ct := range s.PerCategory {
		rows[i] = CategoryTotalResponse{Category: ct.Category, Color: ct.Color, Amount: ct.Amount}
	}
	resp := SummaryResponse{
		TotalIncome:   s.TotalIncome,
		TotalExpenses: s.TotalExpenses,
		Balance:       s.Balance,
		PerCategory:   rows,
	}
	if s.Period != nil {
		month, year := s.Period.Month, s.Period.Year
		resp.Month = &month
		resp.Year = &year
	}
	return resp
}

// CategoryResponse describes one catalog entry.
type CategoryResponse struct {
	Name  string `json:"name" example:"Food"`
	Color string `json:"color,omitempty" example:"#FFD8D0"`
}

// ToCategoryResponses converts catalog entries, appending the implicit income category.
func ToCategoryResponses(categories []domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories)+1)
	for _, c := range categories {
		out = append(out, CategoryResponse{Name: c.Name, Color: c.Color})
	}
	return append(out, CategoryResponse{Name: domain.IncomeCategory})
}
