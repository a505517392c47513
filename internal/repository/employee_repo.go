package repository

import (
	"context"

	"fornopos/internal/cache"
	"fornopos/internal/model"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	List(ctx context.Context, activeOnly bool) ([]model.Employee, error)
	FindByID(ctx context.Context, id uint) (*model.Employee, error)
	Save(ctx context.Context, e *model.Employee) error
	Deactivate(ctx context.Context, id uint) error

	ListExpenses(ctx context.Context, employeeID uint, startDate, endDate string) ([]model.EmployeeExpense, error)
	SaveExpense(ctx context.Context, e *model.EmployeeExpense) error
	DeleteExpense(ctx context.Context, id uint) error

	ListDaysOff(ctx context.Context, employeeID uint) ([]model.EmployeeDayOff, error)
	SaveDayOff(ctx context.Context, d *model.EmployeeDayOff) error
	DeleteDayOff(ctx context.Context, id uint) error
}

type employeeRepo struct {
	db *gorm.DB
	qc *cache.QueryCache
}

func NewEmployeeRepository(db *gorm.DB, qc *cache.QueryCache) EmployeeRepository {
	return &employeeRepo{db: db, qc: qc}
}

func (r *employeeRepo) invalidate() { r.qc.InvalidateTag(cache.TagEmployee) }

func (r *employeeRepo) List(ctx context.Context, activeOnly bool) ([]model.Employee, error) {
	const op = "Employee.List"
	if v, ok := r.qc.Get(op, activeOnly); ok {
		return v.([]model.Employee), nil
	}
	q := r.db.WithContext(ctx).Order("name")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var employees []model.Employee
	if err := q.Find(&employees).Error; err != nil {
		return nil, err
	}
	r.qc.Set(op, employees, cache.TagEmployee, activeOnly)
	return employees, nil
}

func (r *employeeRepo) FindByID(ctx context.Context, id uint) (*model.Employee, error) {
	var e model.Employee
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepo) Save(ctx context.Context, e *model.Employee) error {
	if err := r.db.WithContext(ctx).Save(e).Error; err != nil {
		return err
	}
	r.invalidate()
	return nil
}

func (r *employeeRepo) Deactivate(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).
		Model(&model.Employee{}).
		Where("id = ?", id).
		Update("is_active", false).Error
	if err != nil {
		return err
	}
	r.invalidate()
	return nil
}

func (r *employeeRepo) ListExpenses(ctx context.Context, employeeID uint, startDate, endDate string) ([]model.EmployeeExpense, error) {
	const op = "EmployeeExpense.List"
	if v, ok := r.qc.Get(op, employeeID, startDate, endDate); ok {
		return v.([]model.EmployeeExpense), nil
	}
	q := r.db.WithContext(ctx).Where("employee_id = ?", employeeID)
	if startDate != "" && endDate != "" {
		q = q.Where("expense_date BETWEEN ? AND ?", startDate, endDate)
	}
	var expenses []model.EmployeeExpense
	if err := q.Order("expense_date DESC").Find(&expenses).Error; err != nil {
		return nil, err
	}
	r.qc.Set(op, expenses, cache.TagEmployee, employeeID, startDate, endDate)
	return expenses, nil
}

func (r *employeeRepo) SaveExpense(ctx context.Context, e *model.EmployeeExpense) error {
	if err := r.db.WithContext(ctx).Save(e).Error; err != nil {
		return err
	}
	r.invalidate()
	return nil
}

func (r *employeeRepo) DeleteExpense(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.EmployeeExpense{}, id).Error; err != nil {
		return err
	}
	r.invalidate()
	return nil
}

func (r *employeeRepo) ListDaysOff(ctx context.Context, employeeID uint) ([]model.EmployeeDayOff, error) {
	const op = "EmployeeDayOff.List"
	if v, ok := r.qc.Get(op, employeeID); ok {
		return v.([]model.EmployeeDayOff), nil
	}
	var daysOff []model.EmployeeDayOff
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("start_date DESC").
		Find(&daysOff).Error
	if err != nil {
		return nil, err
	}
	r.qc.Set(op, daysOff, cache.TagEmployee, employeeID)
	return daysOff, nil
}

func (r *employeeRepo) SaveDayOff(ctx context.Context, d *model.EmployeeDayOff) error {
	if err := r.db.WithContext(ctx).Save(d).Error; err != nil {
		return err
	}
	r.invalidate()
	return nil
}

func (r *employeeRepo) DeleteDayOff(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.EmployeeDayOff{}, id).Error; err != nil {
		return err
	}
	r.invalidate()
	return nil
}
