package handler

import (
	"net/http"
	"strconv"

	"fornopos/internal/dto"
	"fornopos/internal/model"
	"fornopos/internal/service"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct{ svc *service.CatalogService }

func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// ListCategories returns menu categories; ?active=true narrows to active ones.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	cats, err := h.svc.ListCategories(c.Request.Context(), activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cats})
}

// SaveCategory creates or updates a category.
func (h *CatalogHandler) SaveCategory(c *gin.Context) {
	var req dto.SaveCategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cat := &model.Category{
		Name:         req.Name,
		DisplayOrder: req.DisplayOrder,
		IsActive:     true,
	}
	if id, err := strconv.ParseUint(c.Param("id"), 10, 32); err == nil {
		cat.ID = uint(id)
	}
	if req.IsActive != nil {
		cat.IsActive = *req.IsActive
	}
	if err := h.svc.SaveCategory(c.Request.Context(), cat); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// DeleteCategory removes an empty category.
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListProducts returns products, optionally scoped to ?category_id=.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 32)
	products, err := h.svc.ListProducts(c.Request.Context(), uint(categoryID), activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": products})
}

// SaveProduct creates or updates a product.
func (h *CatalogHandler) SaveProduct(c *gin.Context) {
	var req dto.SaveProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	product := &model.Product{
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Price:        req.Price,
		ImagePath:    req.ImagePath,
		DisplayOrder: req.DisplayOrder,
		IsActive:     true,
	}
	if id, err := strconv.ParseUint(c.Param("id"), 10, 32); err == nil {
		product.ID = uint(id)
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if err := h.svc.SaveProduct(c.Request.Context(), product); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a product and its topping group links.
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ProductToppings returns the topping groups offered with a product.
func (h *CatalogHandler) ProductToppings(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	groups, err := h.svc.ToppingGroupsForProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": groups})
}

// SetProductToppings replaces the product's topping group links.
func (h *CatalogHandler) SetProductToppings(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.SetToppingGroupsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.SetProductToppingGroups(c.Request.Context(), id, req.GroupIDs); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
