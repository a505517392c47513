package dto

import (
	"fornopos/internal/model"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ToppingChoiceRequest struct {
	OptionID uint `json:"option_id" validate:"required"`
}

type ToppingSelectionRequest struct {
	GroupID uint                   `json:"group_id" validate:"required"`
	Choices []ToppingChoiceRequest `json:"choices"  validate:"required,min=1,dive"`
}

type AddItemRequest struct {
	ProductID uint                      `json:"product_id" validate:"required"`
	Quantity  int                       `json:"quantity"   validate:"min=0"`
	Notes     string                    `json:"notes"`
	Toppings  []ToppingSelectionRequest `json:"toppings"   validate:"omitempty,dive"`
	// CustomPrice overrides the computed unit price when the operator edits it.
	CustomPrice *decimal.Decimal `json:"custom_price" validate:"omitempty"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

type UpdateDiscountRequest struct {
	Discount decimal.Decimal `json:"discount" validate:"min=0"`
}

// DeliveryData carries the delivery fields of a checkout.
type DeliveryData struct {
	Address string          `json:"address" validate:"required,min=1"`
	Phone   string          `json:"phone"`
	Price   decimal.Decimal `json:"price"   validate:"min=0"`
}

type CheckoutRequest struct {
	IsDelivery bool          `json:"is_delivery"`
	Delivery   *DeliveryData `json:"delivery"  validate:"required_if=IsDelivery true,omitempty"`
	// ClientID marks the sale as a credit sale charged to this client.
	ClientID *uint `json:"client_id" validate:"omitempty"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CartResponse struct {
	Items           []model.CartItem `json:"items"`
	Total           decimal.Decimal  `json:"total"`
	NextOrderNumber int              `json:"next_order_number"`
}
