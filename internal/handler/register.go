package handler

import (
	"context"
	"net/http"
	"strconv"

	"fornopos/internal/apierror"
	"fornopos/internal/dto"
	"fornopos/internal/model"
	"fornopos/internal/service"

	"github.com/gin-gonic/gin"
)

const registerTimeLayout = "2006/01/02 15:04:05"

type RegisterHandler struct{ svc *service.RegisterService }

func NewRegisterHandler(svc *service.RegisterService) *RegisterHandler {
	return &RegisterHandler{svc: svc}
}

func registerResponse(reg *model.Register) dto.RegisterResponse {
	resp := dto.RegisterResponse{
		ID:            reg.ID,
		ShiftType:     reg.ShiftType,
		Operator:      reg.EmployeeName,
		OpeningAmount: reg.OpeningAmount,
		ClosingAmount: reg.ClosingAmount,
		OpenedAt:      reg.OpenedAt.Format(registerTimeLayout),
		IsOpen:        reg.IsOpen,
		Notes:         reg.Notes,
		NextOrderNum:  reg.LastOrderNumber + 1,
	}
	if reg.ClosedAt != nil {
		closed := reg.ClosedAt.Format(registerTimeLayout)
		resp.ClosedAt = &closed
	}
	return resp
}

func (h *RegisterHandler) report(ctx context.Context, reg *model.Register) (*dto.RegisterReportResponse, error) {
	count, err := h.svc.OrdersCount(ctx, reg)
	if err != nil {
		return nil, err
	}
	sales, err := h.svc.TotalSales(ctx, reg)
	if err != nil {
		return nil, err
	}
	expected, err := h.svc.ExpectedCash(ctx, reg)
	if err != nil {
		return nil, err
	}
	diff, err := h.svc.Difference(ctx, reg)
	if err != nil {
		return nil, err
	}
	return &dto.RegisterReportResponse{
		Register:     registerResponse(reg),
		OrdersCount:  count,
		TotalSales:   sales,
		ExpectedCash: expected,
		Difference:   diff,
	}, nil
}

// Open starts a new shift session.
func (h *RegisterHandler) Open(c *gin.Context) {
	var req dto.OpenRegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	reg, err := h.svc.Open(c.Request.Context(), req.Operator, req.ShiftType, req.OpeningCash)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, registerResponse(reg))
}

// Current returns the open session, or 404 when none is open.
func (h *RegisterHandler) Current(c *gin.Context) {
	reg, err := h.svc.Current(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if reg == nil {
		c.JSON(http.StatusNotFound, apierror.New("no open register session"))
		return
	}
	c.JSON(http.StatusOK, registerResponse(reg))
}

// Close ends the open session and returns the close-out report.
func (h *RegisterHandler) Close(c *gin.Context) {
	var req dto.CloseRegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	reg, err := h.svc.Current(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if reg == nil {
		c.JSON(http.StatusNotFound, apierror.New("no open register session"))
		return
	}
	if err := h.svc.Close(c.Request.Context(), reg, req.ClosingCash, req.Notes); err != nil {
		respondError(c, err)
		return
	}
	resp, err := h.report(c.Request.Context(), reg)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Report returns the session summary for any past or current session.
func (h *RegisterHandler) Report(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	reg, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp, err := h.report(c.Request.Context(), reg)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// NextNumber returns the number the next checkout will take, 0 when no
// session is open. The terminal header polls this.
func (h *RegisterHandler) NextNumber(c *gin.Context) {
	n, err := h.svc.NextOrderNumber(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"next_order_number": n})
}

// History lists past sessions, newest first.
func (h *RegisterHandler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))
	if limit < 1 || limit > 200 {
		limit = 30
	}
	regs, err := h.svc.History(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.RegisterResponse, 0, len(regs))
	for i := range regs {
		out = append(out, registerResponse(&regs[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}
