package handler

import (
	"net/http"

	"fornopos/internal/dto"
	"fornopos/internal/model"
	"fornopos/internal/service"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct{ svc *service.ClientService }

func NewClientHandler(svc *service.ClientService) *ClientHandler {
	return &ClientHandler{svc: svc}
}

func clientResponse(cl *model.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:              cl.ID,
		Name:            cl.Name,
		Phone:           cl.Phone,
		Address:         cl.Address,
		CreditLimit:     cl.CreditLimit,
		CurrentBalance:  cl.CurrentBalance,
		AvailableCredit: cl.AvailableCredit(),
		Notes:           cl.Notes,
		IsActive:        cl.IsActive,
	}
}

// List returns clients; ?active=true narrows to active accounts.
func (h *ClientHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	clients, err := h.svc.List(c.Request.Context(), activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		out = append(out, clientResponse(&clients[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// Get returns one client account.
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	client, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, clientResponse(client))
}

// Create registers a new client account.
func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.SaveClientRequest
	if !bindAndValidate(c, &req) {
		return
	}
	client := &model.Client{
		Name:        req.Name,
		Phone:       req.Phone,
		Address:     req.Address,
		CreditLimit: req.CreditLimit,
		Notes:       req.Notes,
	}
	if err := h.svc.Save(c.Request.Context(), client); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, clientResponse(client))
}

// Update edits a client's identity fields; the balance is untouchable here.
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.SaveClientRequest
	if !bindAndValidate(c, &req) {
		return
	}
	stored, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	stored.Name = req.Name
	stored.Phone = req.Phone
	stored.Address = req.Address
	stored.CreditLimit = req.CreditLimit
	stored.Notes = req.Notes
	if err := h.svc.Save(c.Request.Context(), stored); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, clientResponse(stored))
}

// Deactivate soft-deletes the client.
func (h *ClientHandler) Deactivate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.Deactivate(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RecordPayment credits a payment against the client's balance.
func (h *ClientHandler) RecordPayment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.ClientPaymentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.RecordPayment(c.Request.Context(), id, req.Amount); err != nil {
		respondError(c, err)
		return
	}
	client, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, clientResponse(client))
}
