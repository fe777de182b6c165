package handlers

import (
	"github.com/shopspring/decimal"

	"fintrack/internal/models"
	"fintrack/internal/report"
	"fintrack/internal/services"
)

// CategoryResponse represents a category in the response
type CategoryResponse struct {
	ID   uint   `json:"id" example:"1"`
	Name string `json:"name" example:"Food"`
}

// TransactionResponse represents a transaction in the response.
// Amount is signed and fixed to two decimals.
type TransactionResponse struct {
	ID          uint                   `json:"id" example:"7"`
	Date        string                 `json:"date" example:"2025-01-20"`
	Description string                 `json:"description" example:"Groceries"`
	Amount      string                 `json:"amount" example:"-200.00"`
	Type        models.TransactionType `json:"type" example:"expense"`
	CategoryID  uint                   `json:"category_id" example:"2"`
	Category    string                 `json:"category" example:"Food"`
}

// TrendPointResponse is one month of the income/expense trend.
type TrendPointResponse struct {
	Label    string `json:"label" example:"Jan 2025"`
	Income   string `json:"income" example:"1000.00"`
	Expenses string `json:"expenses" example:"200.00"`
}

// FilterResponse echoes the filters that were applied.
type FilterResponse struct {
	StartDate  string `json:"start_date,omitempty" example:"2025-01-01"`
	EndDate    string `json:"end_date,omitempty" example:"2025-01-31"`
	CategoryID *uint  `json:"category_id,omitempty" example:"2"`
}

// DashboardResponse is the JSON form of the dashboard.
type DashboardResponse struct {
	Filter             FilterResponse        `json:"filter"`
	TotalCategories    int                   `json:"total_categories" example:"6"`
	TotalTransactions  int                   `json:"total_transactions" example:"3"`
	TotalIncome        string                `json:"total_income" example:"1000.00"`
	TotalExpenses      string                `json:"total_expenses" example:"250.00"`
	NetBalance         string                `json:"net_balance" example:"750.00"`
	RecentTransactions []TransactionResponse `json:"recent_transactions"`
	MonthlyTrend       []TrendPointResponse  `json:"monthly_trend"`
}

func toCategoryResponses(categories []models.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return out
}

func toTransactionResponse(tx models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID,
		Date:        tx.Date.Format(models.DateLayout),
		Description: tx.Description,
		Amount:      report.FormatAmount(tx.Amount),
		Type:        tx.Type(),
		CategoryID:  tx.CategoryID,
		Category:    tx.CategoryName(),
	}
}

func toTransactionResponses(txs []models.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, toTransactionResponse(tx))
	}
	return out
}

func toFilterResponse(f report.Filter) FilterResponse {
	var resp FilterResponse
	if f.StartDate != nil {
		resp.StartDate = f.StartDate.Format(models.DateLayout)
	}
	if f.EndDate != nil {
		resp.EndDate = f.EndDate.Format(models.DateLayout)
	}
	resp.CategoryID = f.CategoryID
	return resp
}

func fixed(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func toDashboardResponse(d *services.Dashboard) DashboardResponse {
	trend := make([]TrendPointResponse, 0, len(d.Summary.Trend))
	for _, m := range d.Summary.Trend {
		trend = append(trend, TrendPointResponse{
			Label:    m.Label,
			Income:   fixed(m.Income),
			Expenses: fixed(m.Expenses),
		})
	}

	return DashboardResponse{
		Filter:             toFilterResponse(d.Filter),
		TotalCategories:    d.TotalCategories,
		TotalTransactions:  d.Summary.Count,
		TotalIncome:        fixed(d.Summary.TotalIncome),
		TotalExpenses:      fixed(d.Summary.TotalExpenses),
		NetBalance:         fixed(d.Summary.NetBalance),
		RecentTransactions: toTransactionResponses(d.Summary.Recent),
		MonthlyTrend:       trend,
	}
}
