package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type SaveClientRequest struct {
	Name        string          `json:"name"         validate:"required,min=1"`
	Phone       string          `json:"phone"`
	Address     string          `json:"address"`
	CreditLimit decimal.Decimal `json:"credit_limit" validate:"min=0"`
	Notes       string          `json:"notes"`
}

type ClientPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required,gt=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClientResponse struct {
	ID              uint            `json:"id"`
	Name            string          `json:"name"`
	Phone           string          `json:"phone"`
	Address         string          `json:"address"`
	CreditLimit     decimal.Decimal `json:"credit_limit"`
	CurrentBalance  decimal.Decimal `json:"current_balance"`
	AvailableCredit decimal.Decimal `json:"available_credit"`
	Notes           string          `json:"notes"`
	IsActive        bool            `json:"is_active"`
}
