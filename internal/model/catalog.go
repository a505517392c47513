package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category groups menu products for the terminal grid.
type Category struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"not null;uniqueIndex"`
	IsActive     bool   `gorm:"not null;default:true"`
	DisplayOrder int    `gorm:"not null;default:0"`
	CreatedAt    time.Time
}

// Product is a sellable menu item.
type Product struct {
	ID           uint            `gorm:"primaryKey"`
	CategoryID   uint            `gorm:"not null;index"`
	Name         string          `gorm:"not null"`
	Price        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ImagePath    string
	IsActive     bool `gorm:"not null;default:true"`
	DisplayOrder int  `gorm:"not null;default:0"`
	CreatedAt    time.Time
}

// ToppingGroup is a named set of options (e.g. "Extras") attachable to
// products through ProductToppingGroup.
type ToppingGroup struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	DisplayOrder int    `gorm:"not null;default:0"`
	IsActive     bool   `gorm:"not null;default:true"`

	Options []ToppingOption `gorm:"foreignKey:GroupID"`
}

// ToppingOption is one priced choice inside a group.
type ToppingOption struct {
	ID           uint            `gorm:"primaryKey"`
	GroupID      uint            `gorm:"not null;index"`
	Name         string          `gorm:"not null"`
	Price        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	DisplayOrder int             `gorm:"not null;default:0"`
	IsActive     bool            `gorm:"not null;default:true"`
}

// ProductToppingGroup links products to the topping groups offered with them.
type ProductToppingGroup struct {
	ProductID      uint `gorm:"primaryKey"`
	ToppingGroupID uint `gorm:"primaryKey"`
}
