package dto

import (
	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type OpenRegisterRequest struct {
	Operator    string          `json:"operator"     validate:"required,min=1"`
	ShiftType   string          `json:"shift_type"   validate:"omitempty,oneof=morning evening"`
	OpeningCash decimal.Decimal `json:"opening_cash" validate:"min=0"`
}

type CloseRegisterRequest struct {
	ClosingCash decimal.Decimal `json:"closing_cash" validate:"min=0"`
	Notes       string          `json:"notes"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type RegisterResponse struct {
	ID            uint            `json:"id"`
	ShiftType     string          `json:"shift_type"`
	Operator      string          `json:"operator"`
	OpeningAmount decimal.Decimal `json:"opening_amount"`
	ClosingAmount decimal.Decimal `json:"closing_amount"`
	OpenedAt      string          `json:"opened_at"`
	ClosedAt      *string         `json:"closed_at"`
	IsOpen        bool            `json:"is_open"`
	Notes         string          `json:"notes"`
	NextOrderNum  int             `json:"next_order_number"`
}

// RegisterReportResponse is the shift summary shown at close-out.
type RegisterReportResponse struct {
	Register     RegisterResponse `json:"register"`
	OrdersCount  int64            `json:"orders_count"`
	TotalSales   decimal.Decimal  `json:"total_sales"`
	ExpectedCash decimal.Decimal  `json:"expected_cash"`
	Difference   decimal.Decimal  `json:"difference"`
}
