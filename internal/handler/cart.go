package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"fornopos/internal/apierror"
	"fornopos/internal/dto"
	"fornopos/internal/model"
	"fornopos/internal/service"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cart    *service.CartService
	catalog *service.CatalogService
}

func NewCartHandler(cart *service.CartService, catalog *service.CatalogService) *CartHandler {
	return &CartHandler{cart: cart, catalog: catalog}
}

func (h *CartHandler) cartResponse(c *gin.Context) dto.CartResponse {
	next, err := h.cart.CurrentOrderNumber(c.Request.Context())
	if err != nil {
		next = 0
	}
	return dto.CartResponse{
		Items:           h.cart.Items(),
		Total:           h.cart.Total(),
		NextOrderNumber: next,
	}
}

// resolveToppings maps the requested group/option IDs onto the product's
// offered topping groups, rejecting IDs the product does not offer.
func resolveToppings(groups []model.ToppingGroup, reqs []dto.ToppingSelectionRequest) ([]model.ToppingSelection, error) {
	byID := make(map[uint]*model.ToppingGroup, len(groups))
	for i := range groups {
		byID[groups[i].ID] = &groups[i]
	}

	var selections []model.ToppingSelection
	for _, req := range reqs {
		group, ok := byID[req.GroupID]
		if !ok {
			return nil, fmt.Errorf("topping group %d is not offered with this product", req.GroupID)
		}
		options := make(map[uint]model.ToppingOption, len(group.Options))
		for _, opt := range group.Options {
			options[opt.ID] = opt
		}
		var choices []model.ToppingChoice
		for _, ch := range req.Choices {
			opt, ok := options[ch.OptionID]
			if !ok {
				return nil, fmt.Errorf("topping option %d is not part of group %q", ch.OptionID, group.Name)
			}
			choices = append(choices, model.ToppingChoice{OptionID: opt.ID, Name: opt.Name, Price: opt.Price})
		}
		sel, err := model.NewToppingSelection(group.ID, group.Name, choices)
		if err != nil {
			return nil, err
		}
		selections = append(selections, sel)
	}
	return selections, nil
}

// Get returns the current cart contents.
func (h *CartHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartResponse(c))
}

// AddItem resolves the product and toppings and appends a cart line.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddItemRequest
	if !bindAndValidate(c, &req) {
		return
	}

	ctx := c.Request.Context()
	product, err := h.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !product.IsActive {
		c.JSON(http.StatusBadRequest, apierror.New("product is not available"))
		return
	}

	var toppings []model.ToppingSelection
	if len(req.Toppings) > 0 {
		groups, err := h.catalog.ToppingGroupsForProduct(ctx, product.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		toppings, err = resolveToppings(groups, req.Toppings)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
	}

	categoryName := ""
	if cats, err := h.catalog.ListCategories(ctx, false); err == nil {
		for _, cat := range cats {
			if cat.ID == product.CategoryID {
				categoryName = cat.Name
				break
			}
		}
	}

	h.cart.AddItem(product, categoryName, req.Quantity, req.Notes, toppings, req.CustomPrice)
	c.JSON(http.StatusOK, h.cartResponse(c))
}

// RemoveItem drops the cart line at :index.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid index"))
		return
	}
	h.cart.RemoveItem(index)
	c.JSON(http.StatusOK, h.cartResponse(c))
}

// UpdateQuantity changes the quantity of the cart line at :index.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid index"))
		return
	}
	var req dto.UpdateQuantityRequest
	if !bindAndValidate(c, &req) {
		return
	}
	h.cart.UpdateQuantity(index, req.Quantity)
	c.JSON(http.StatusOK, h.cartResponse(c))
}

// UpdateDiscount sets the per-unit discount of the cart line at :index.
func (h *CartHandler) UpdateDiscount(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid index"))
		return
	}
	var req dto.UpdateDiscountRequest
	if !bindAndValidate(c, &req) {
		return
	}
	h.cart.UpdateDiscount(index, req.Discount)
	c.JSON(http.StatusOK, h.cartResponse(c))
}

// Clear empties the cart.
func (h *CartHandler) Clear(c *gin.Context) {
	h.cart.Clear()
	c.Status(http.StatusNoContent)
}

// Checkout finalizes the cart into an order.
func (h *CartHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if !bindAndValidate(c, &req) {
		return
	}
	delivery := dto.DeliveryData{}
	if req.Delivery != nil {
		delivery = *req.Delivery
	}
	order, err := h.cart.Checkout(c.Request.Context(), req.IsDelivery, delivery, req.ClientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, orderResponse(order, true))
}
