package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a staff member. Deletion is soft — the active flag flips so
// history referencing the employee stays intact.
type Employee struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"not null;uniqueIndex"`
	DailySalary decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	IsActive    bool            `gorm:"not null;default:true;index"`
	CreatedAt   time.Time
}

// EmployeeExpense is a cash advance or expense charged to an employee.
type EmployeeExpense struct {
	ID          uint            `gorm:"primaryKey"`
	EmployeeID  uint            `gorm:"not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Description string          `gorm:"type:text"`
	ExpenseDate string          `gorm:"type:varchar(10);not null;index"`
	CreatedAt   time.Time
}

// EmployeeDayOff is an inclusive date range of absence.
type EmployeeDayOff struct {
	ID         uint   `gorm:"primaryKey"`
	EmployeeID uint   `gorm:"not null;index"`
	StartDate  string `gorm:"type:varchar(10);not null"`
	EndDate    string `gorm:"type:varchar(10);not null"`
	Reason     string `gorm:"type:text"`
	AddedBy    string
	CreatedAt  time.Time
}

// TotalDays counts the days in the inclusive range; malformed dates count as 0.
func (d *EmployeeDayOff) TotalDays() int {
	const layout = "2006/01/02"
	start, err := time.Parse(layout, d.StartDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse(layout, d.EndDate)
	if err != nil || end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
