package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fornopos/internal/model"
	"fornopos/internal/repository"

	"github.com/rs/zerolog/log"
)

// EmployeeService manages the staff directory plus its two attached ledgers,
// expenses (advances, meals) and days off.
type EmployeeService struct {
	repo repository.EmployeeRepository
}

func NewEmployeeService(repo repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{repo: repo}
}

func (s *EmployeeService) List(ctx context.Context, activeOnly bool) ([]model.Employee, error) {
	return s.repo.List(ctx, activeOnly)
}

func (s *EmployeeService) Get(ctx context.Context, id uint) (*model.Employee, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EmployeeService) Save(ctx context.Context, e *model.Employee) error {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return fmt.Errorf("%w: employee name is required", ErrInvalidInput)
	}
	if e.DailySalary.IsNegative() {
		return fmt.Errorf("%w: daily salary cannot be negative", ErrInvalidInput)
	}
	if e.ID == 0 {
		e.IsActive = true
	}
	return s.repo.Save(ctx, e)
}

func (s *EmployeeService) Deactivate(ctx context.Context, id uint) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}
	log.Info().Uint("employee_id", id).Msg("employee deactivated")
	return nil
}

func (s *EmployeeService) ListExpenses(ctx context.Context, employeeID uint, startDate, endDate string) ([]model.EmployeeExpense, error) {
	return s.repo.ListExpenses(ctx, employeeID, startDate, endDate)
}

func (s *EmployeeService) SaveExpense(ctx context.Context, e *model.EmployeeExpense) error {
	if !e.Amount.IsPositive() {
		return fmt.Errorf("%w: expense amount must be positive", ErrInvalidInput)
	}
	if _, err := s.repo.FindByID(ctx, e.EmployeeID); err != nil {
		return err
	}
	if e.ExpenseDate == "" {
		e.ExpenseDate = time.Now().Format(dateLayout)
	}
	return s.repo.SaveExpense(ctx, e)
}

func (s *EmployeeService) DeleteExpense(ctx context.Context, id uint) error {
	return s.repo.DeleteExpense(ctx, id)
}

func (s *EmployeeService) ListDaysOff(ctx context.Context, employeeID uint) ([]model.EmployeeDayOff, error) {
	return s.repo.ListDaysOff(ctx, employeeID)
}

func (s *EmployeeService) SaveDayOff(ctx context.Context, d *model.EmployeeDayOff) error {
	if _, err := time.Parse(dateLayout, d.StartDate); err != nil {
		return fmt.Errorf("%w: invalid start date", ErrInvalidInput)
	}
	if _, err := time.Parse(dateLayout, d.EndDate); err != nil {
		return fmt.Errorf("%w: invalid end date", ErrInvalidInput)
	}
	if d.TotalDays() <= 0 {
		return fmt.Errorf("%w: end date precedes start date", ErrInvalidInput)
	}
	if _, err := s.repo.FindByID(ctx, d.EmployeeID); err != nil {
		return err
	}
	return s.repo.SaveDayOff(ctx, d)
}

func (s *EmployeeService) DeleteDayOff(ctx context.Context, id uint) error {
	return s.repo.DeleteDayOff(ctx, id)
}
