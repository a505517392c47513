package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// OrderListFilter is bound from the query string of GET /v1/orders.
type OrderListFilter struct {
	StartDate  string `form:"start_date"` // YYYY/MM/DD; empty = no bound
	EndDate    string `form:"end_date"`
	RegisterID uint   `form:"register_id"`
	LoadItems  bool   `form:"load_items,default=false"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type DeleteOrderRequest struct {
	AdminPIN string `json:"admin_pin" validate:"required,min=4"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type OrderItemResponse struct {
	ID          uint            `json:"id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Discount    decimal.Decimal `json:"discount"`
	FinalPrice  decimal.Decimal `json:"final_price"`
	Notes       string          `json:"notes"`
}

type OrderResponse struct {
	ID              uint                `json:"id"`
	OrderNumber     int                 `json:"order_number"`
	OrderDate       string              `json:"order_date"`
	OrderTime       string              `json:"order_time"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	IsDelivery      bool                `json:"is_delivery"`
	DeliveryAddress string              `json:"delivery_address,omitempty"`
	DeliveryPhone   string              `json:"delivery_phone,omitempty"`
	DeliveryPrice   decimal.Decimal     `json:"delivery_price"`
	RegisterID      uint                `json:"register_id"`
	ClientID        *uint               `json:"client_id"`
	IsPaid          bool                `json:"is_paid"`
	PriceModified   bool                `json:"price_modified"`
	ReprintCount    int                 `json:"reprint_count"`
	Items           []OrderItemResponse `json:"items,omitempty"`
}
