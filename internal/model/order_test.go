package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func TestOrderItemCalculateFinalPrice(t *testing.T) {
	item := OrderItem{Quantity: 3, UnitPrice: d("10.00"), Discount: d("1.50")}
	got := item.CalculateFinalPrice()
	assert.True(t, d("25.50").Equal(got))
	assert.True(t, d("25.50").Equal(item.FinalPrice))
}

func TestOrderItemZeroDiscount(t *testing.T) {
	item := OrderItem{Quantity: 2, UnitPrice: d("5.00")}
	assert.True(t, d("10.00").Equal(item.CalculateFinalPrice()))
}

func TestOrderCalculateTotal(t *testing.T) {
	o := Order{
		Items: []OrderItem{
			{FinalPrice: d("20.00")},
			{FinalPrice: d("4.00")},
		},
	}
	assert.True(t, d("24.00").Equal(o.CalculateTotal()))
	assert.True(t, d("24.00").Equal(o.TotalAmount))
}

func TestOrderCalculateTotalAddsDeliveryOnlyWhenDelivery(t *testing.T) {
	o := Order{
		Items:         []OrderItem{{FinalPrice: d("12.00")}},
		DeliveryPrice: d("3.00"),
	}
	assert.True(t, d("12.00").Equal(o.CalculateTotal()), "delivery price ignored for pickup")

	o.IsDelivery = true
	assert.True(t, d("15.00").Equal(o.CalculateTotal()))
}

func TestOrderCalculateTotalEmpty(t *testing.T) {
	o := Order{}
	assert.True(t, decimal.Zero.Equal(o.CalculateTotal()))
}
