package service

import (
	"context"
	"testing"

	"fornopos/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeEmployeeRepo backs EmployeeService tests in memory.
type fakeEmployeeRepo struct {
	employees map[uint]*model.Employee
	expenses  map[uint]*model.EmployeeExpense
	daysOff   map[uint]*model.EmployeeDayOff
	nextID    uint
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		employees: make(map[uint]*model.Employee),
		expenses:  make(map[uint]*model.EmployeeExpense),
		daysOff:   make(map[uint]*model.EmployeeDayOff),
	}
}

func (r *fakeEmployeeRepo) List(_ context.Context, activeOnly bool) ([]model.Employee, error) {
	var out []model.Employee
	for _, e := range r.employees {
		if activeOnly && !e.IsActive {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) FindByID(_ context.Context, id uint) (*model.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) Save(_ context.Context, e *model.Employee) error {
	if e.ID == 0 {
		r.nextID++
		e.ID = r.nextID
	}
	r.employees[e.ID] = e
	return nil
}

func (r *fakeEmployeeRepo) Deactivate(_ context.Context, id uint) error {
	e, ok := r.employees[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	e.IsActive = false
	return nil
}

func (r *fakeEmployeeRepo) ListExpenses(_ context.Context, employeeID uint, startDate, endDate string) ([]model.EmployeeExpense, error) {
	var out []model.EmployeeExpense
	for _, e := range r.expenses {
		if e.EmployeeID != employeeID {
			continue
		}
		if startDate != "" && e.ExpenseDate < startDate {
			continue
		}
		if endDate != "" && e.ExpenseDate > endDate {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) SaveExpense(_ context.Context, e *model.EmployeeExpense) error {
	if e.ID == 0 {
		r.nextID++
		e.ID = r.nextID
	}
	r.expenses[e.ID] = e
	return nil
}

func (r *fakeEmployeeRepo) DeleteExpense(_ context.Context, id uint) error {
	delete(r.expenses, id)
	return nil
}

func (r *fakeEmployeeRepo) ListDaysOff(_ context.Context, employeeID uint) ([]model.EmployeeDayOff, error) {
	var out []model.EmployeeDayOff
	for _, d := range r.daysOff {
		if d.EmployeeID == employeeID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) SaveDayOff(_ context.Context, d *model.EmployeeDayOff) error {
	if d.ID == 0 {
		r.nextID++
		d.ID = r.nextID
	}
	r.daysOff[d.ID] = d
	return nil
}

func (r *fakeEmployeeRepo) DeleteDayOff(_ context.Context, id uint) error {
	delete(r.daysOff, id)
	return nil
}

func newEmployeeFixture(t *testing.T) (*EmployeeService, *model.Employee) {
	t.Helper()
	svc := NewEmployeeService(newFakeEmployeeRepo())
	emp := &model.Employee{Name: "Sam", DailySalary: decimal.NewFromInt(40)}
	require.NoError(t, svc.Save(context.Background(), emp))
	return svc, emp
}

func TestEmployeeSaveValidates(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())

	err := svc.Save(context.Background(), &model.Employee{Name: " "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.Save(context.Background(), &model.Employee{Name: "Sam", DailySalary: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExpenseRequiresExistingEmployee(t *testing.T) {
	svc, emp := newEmployeeFixture(t)

	err := svc.SaveExpense(context.Background(), &model.EmployeeExpense{
		EmployeeID: emp.ID + 1,
		Amount:     decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = svc.SaveExpense(context.Background(), &model.EmployeeExpense{
		EmployeeID: emp.ID,
		Amount:     decimal.Zero,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	exp := &model.EmployeeExpense{EmployeeID: emp.ID, Amount: decimal.NewFromInt(10)}
	require.NoError(t, svc.SaveExpense(context.Background(), exp))
	assert.NotEmpty(t, exp.ExpenseDate, "date defaults to today")
}

func TestDayOffValidatesRange(t *testing.T) {
	svc, emp := newEmployeeFixture(t)

	err := svc.SaveDayOff(context.Background(), &model.EmployeeDayOff{
		EmployeeID: emp.ID, StartDate: "not-a-date", EndDate: "2026/03/02",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.SaveDayOff(context.Background(), &model.EmployeeDayOff{
		EmployeeID: emp.ID, StartDate: "2026/03/05", EndDate: "2026/03/02",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	require.NoError(t, svc.SaveDayOff(context.Background(), &model.EmployeeDayOff{
		EmployeeID: emp.ID, StartDate: "2026/03/02", EndDate: "2026/03/04",
	}))

	daysOff, err := svc.ListDaysOff(context.Background(), emp.ID)
	require.NoError(t, err)
	require.Len(t, daysOff, 1)
	assert.Equal(t, 3, daysOff[0].TotalDays())
}
