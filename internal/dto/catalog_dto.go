package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type SaveCategoryRequest struct {
	Name         string `json:"name"          validate:"required,min=1"`
	DisplayOrder int    `json:"display_order" validate:"min=0"`
	IsActive     *bool  `json:"is_active"`
}

type SaveProductRequest struct {
	CategoryID   uint            `json:"category_id"   validate:"required"`
	Name         string          `json:"name"          validate:"required,min=1"`
	Price        decimal.Decimal `json:"price"         validate:"min=0"`
	ImagePath    string          `json:"image_path"`
	DisplayOrder int             `json:"display_order" validate:"min=0"`
	IsActive     *bool           `json:"is_active"`
}

type SetToppingGroupsRequest struct {
	GroupIDs []uint `json:"group_ids" validate:"required"`
}
