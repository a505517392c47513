package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client is a credit/monthly-account customer. CurrentBalance only ever moves
// through the repository balance operations so it stays equal to the sum of
// unpaid order totals minus recorded payments.
type Client struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"not null;index"`
	Phone          string
	Address        string
	CreditLimit    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CurrentBalance decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Notes          string          `gorm:"type:text"`
	IsActive       bool            `gorm:"not null;default:true;index"`
	CreatedAt      time.Time
}

// AvailableCredit is the headroom left before the limit.
func (c *Client) AvailableCredit() decimal.Decimal {
	return c.CreditLimit.Sub(c.CurrentBalance)
}

// CanPurchase reports whether amount fits inside the remaining credit.
func (c *Client) CanPurchase(amount decimal.Decimal) bool {
	return c.AvailableCredit().GreaterThanOrEqual(amount)
}
