package handler

import (
	"net/http"

	"fornopos/internal/dto"
	"fornopos/internal/model"
	"fornopos/internal/service"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct{ svc *service.EmployeeService }

func NewEmployeeHandler(svc *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

// List returns employees; ?active=true narrows to active staff.
func (h *EmployeeHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	employees, err := h.svc.List(c.Request.Context(), activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": employees})
}

// Create registers a new employee.
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req dto.SaveEmployeeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	emp := &model.Employee{Name: req.Name, DailySalary: req.DailySalary}
	if err := h.svc.Save(c.Request.Context(), emp); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, emp)
}

// Update edits an employee.
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.SaveEmployeeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	emp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	emp.Name = req.Name
	emp.DailySalary = req.DailySalary
	if err := h.svc.Save(c.Request.Context(), emp); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, emp)
}

// Deactivate soft-deletes the employee.
func (h *EmployeeHandler) Deactivate(c *gin.Context) {
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

// ListExpenses returns the employee's expense ledger, optionally date-bound.
func (h *EmployeeHandler) ListExpenses(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var filter dto.ExpenseFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondError(c, service.ErrInvalidInput)
		return
	}
	expenses, err := h.svc.ListExpenses(c.Request.Context(), id, filter.StartDate, filter.EndDate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": expenses})
}

// AddExpense records an expense or advance against the employee.
func (h *EmployeeHandler) AddExpense(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.SaveExpenseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	expense := &model.EmployeeExpense{
		EmployeeID:  id,
		Amount:      req.Amount,
		Description: req.Description,
		ExpenseDate: req.ExpenseDate,
	}
	if err := h.svc.SaveExpense(c.Request.Context(), expense); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, expense)
}

// DeleteExpense removes one expense row.
func (h *EmployeeHandler) DeleteExpense(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteExpense(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListDaysOff returns the employee's absence records.
func (h *EmployeeHandler) ListDaysOff(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	daysOff, err := h.svc.ListDaysOff(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": daysOff})
}

// AddDayOff records an absence range.
func (h *EmployeeHandler) AddDayOff(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.SaveDayOffRequest
	if !bindAndValidate(c, &req) {
		return
	}
	dayOff := &model.EmployeeDayOff{
		EmployeeID: id,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Reason:     req.Reason,
		AddedBy:    req.AddedBy,
	}
	if err := h.svc.SaveDayOff(c.Request.Context(), dayOff); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dayOff)
}

// DeleteDayOff removes one absence record.
func (h *EmployeeHandler) DeleteDayOff(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteDayOff(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
