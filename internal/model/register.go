package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Register represents one cash-drawer shift session.
// At most one register may be open at any time; the open/closed state is the
// only lifecycle transition and closing is terminal.
type Register struct {
	ID uint `gorm:"primaryKey"`
	// ShiftType is an open-ended label, conventionally "morning" or "evening".
	ShiftType     string          `gorm:"type:varchar(20);not null"`
	EmployeeName  string          `gorm:"not null"`
	OpeningAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	// ClosingAmount is only meaningful once IsOpen is false.
	ClosingAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	OpenedAt      time.Time       `gorm:"not null;index"`
	ClosedAt      *time.Time
	IsOpen        bool   `gorm:"not null;index"`
	Notes         string `gorm:"type:text"`
	// LastOrderNumber is the per-session order counter; it starts at 0 and is
	// bumped by every reservation, so order numbers are scoped to the session.
	LastOrderNumber int `gorm:"not null;default:0"`

	Orders []Order `gorm:"foreignKey:RegisterID"`
}
