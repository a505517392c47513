package model

import "time"

// Setting is a row in the generic key/value table. The legacy
// "last_order_number" / "last_order_date" keys from the pre-register numbering
// scheme are still mirrored here for migration compatibility.
type Setting struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

const (
	SettingLastOrderNumber = "last_order_number"
	SettingLastOrderDate   = "last_order_date"
)
