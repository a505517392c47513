package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is one completed sale, bound to the register session that produced it.
// OrderNumber is unique within its session only. TotalAmount is derived from
// the items (plus delivery) and persisted redundantly for read performance;
// it must never be edited independently — CalculateTotal is the single source.
type Order struct {
	ID          uint `gorm:"primaryKey"`
	OrderNumber int  `gorm:"not null;index"`
	// OrderDate / OrderTime use the historical "2006/01/02" and "15:04:05"
	// text layout carried over from the previous system's receipts.
	OrderDate       string          `gorm:"type:varchar(10);not null;index"`
	OrderTime       string          `gorm:"type:varchar(8);not null"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	IsDelivery      bool            `gorm:"not null;default:false"`
	DeliveryAddress string
	DeliveryPhone   string
	DeliveryPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	RegisterID      uint            `gorm:"not null;index"`
	// ClientID set means a credit sale: the total was charged to the client's
	// running balance and IsPaid is false until they settle.
	ClientID      *uint `gorm:"index"`
	IsPaid        bool  `gorm:"not null;default:true"`
	PriceModified bool  `gorm:"not null;default:false"`
	ReprintCount  int   `gorm:"not null;default:0"`
	CreatedAt     time.Time

	Items []OrderItem `gorm:"foreignKey:OrderID"`
}

// CalculateTotal recomputes and stores the derived total.
func (o *Order) CalculateTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.FinalPrice)
	}
	if o.IsDelivery {
		total = total.Add(o.DeliveryPrice)
	}
	o.TotalAmount = total
	return total
}

// OrderItem is one priced line of an order. ProductName is denormalized and
// category-prefixed for reporting; the gorm-ignored fields are attached at
// load/checkout time for receipt formatting only.
type OrderItem struct {
	ID          uint            `gorm:"primaryKey"`
	OrderID     uint            `gorm:"not null;index"`
	ProductName string          `gorm:"not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	// Discount is a flat amount per unit, not a percentage.
	Discount   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	FinalPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Notes      string          `gorm:"type:text"`
	CreatedAt  time.Time

	CategoryName string             `gorm:"-"`
	BaseName     string             `gorm:"-"`
	Toppings     []ToppingSelection `gorm:"-"`
}

// CalculateFinalPrice recomputes the derived line price:
// (unit price − discount) × quantity.
func (i *OrderItem) CalculateFinalPrice() decimal.Decimal {
	i.FinalPrice = i.UnitPrice.Sub(i.Discount).Mul(decimal.NewFromInt(int64(i.Quantity)))
	return i.FinalPrice
}
