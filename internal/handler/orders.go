package handler

import (
	"net/http"

	"fornopos/internal/dto"
	"fornopos/internal/model"
	"fornopos/internal/repository"
	"fornopos/internal/service"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct{ svc *service.OrderService }

func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

func orderResponse(o *model.Order, withItems bool) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		OrderDate:       o.OrderDate,
		OrderTime:       o.OrderTime,
		TotalAmount:     o.TotalAmount,
		IsDelivery:      o.IsDelivery,
		DeliveryAddress: o.DeliveryAddress,
		DeliveryPhone:   o.DeliveryPhone,
		DeliveryPrice:   o.DeliveryPrice,
		RegisterID:      o.RegisterID,
		ClientID:        o.ClientID,
		IsPaid:          o.IsPaid,
		PriceModified:   o.PriceModified,
		ReprintCount:    o.ReprintCount,
	}
	if withItems {
		for _, item := range o.Items {
			resp.Items = append(resp.Items, dto.OrderItemResponse{
				ID:          item.ID,
				ProductName: item.ProductName,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
				Discount:    item.Discount,
				FinalPrice:  item.FinalPrice,
				Notes:       item.Notes,
			})
		}
	}
	return resp
}

// List returns orders filtered by date range or register.
func (h *OrderHandler) List(c *gin.Context) {
	var filter dto.OrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondError(c, service.ErrInvalidInput)
		return
	}

	var (
		orders []model.Order
		err    error
	)
	if filter.RegisterID != 0 {
		orders, err = h.svc.ListByRegister(c.Request.Context(), filter.RegisterID)
	} else {
		orders, err = h.svc.List(c.Request.Context(), repository.OrderFilter{
			StartDate: filter.StartDate,
			EndDate:   filter.EndDate,
			LoadItems: filter.LoadItems,
		})
	}
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, orderResponse(&orders[i], filter.LoadItems || filter.RegisterID != 0))
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// Get returns one order with its items.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	order, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderResponse(order, true))
}

// Delete removes an order after admin PIN verification.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.DeleteOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id, req.AdminPIN); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Reprint re-queues the customer receipt.
func (h *OrderHandler) Reprint(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	order, err := h.svc.Reprint(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderResponse(order, true))
}
