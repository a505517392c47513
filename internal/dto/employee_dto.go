package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type SaveEmployeeRequest struct {
	Name        string          `json:"name"         validate:"required,min=1"`
	DailySalary decimal.Decimal `json:"daily_salary" validate:"min=0"`
}

type SaveExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount"       validate:"required,gt=0"`
	Description string          `json:"description"`
	ExpenseDate string          `json:"expense_date"` // YYYY/MM/DD; empty = today
}

type SaveDayOffRequest struct {
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date"   validate:"required"`
	Reason    string `json:"reason"`
	AddedBy   string `json:"added_by"`
}

// ExpenseFilter is bound from the query string of the expense listing.
type ExpenseFilter struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}
