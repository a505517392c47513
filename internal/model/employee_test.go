package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDayOffTotalDays(t *testing.T) {
	d := EmployeeDayOff{StartDate: "2026/03/01", EndDate: "2026/03/03"}
	assert.Equal(t, 3, d.TotalDays(), "range is inclusive")

	d = EmployeeDayOff{StartDate: "2026/03/01", EndDate: "2026/03/01"}
	assert.Equal(t, 1, d.TotalDays())

	d = EmployeeDayOff{StartDate: "2026/03/05", EndDate: "2026/03/01"}
	assert.Equal(t, 0, d.TotalDays(), "inverted range")

	d = EmployeeDayOff{StartDate: "bogus", EndDate: "2026/03/01"}
	assert.Equal(t, 0, d.TotalDays())
}
