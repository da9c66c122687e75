package salary

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/zavodops/factory-backend-go/internal/domain/attendance"
	"github.com/zavodops/factory-backend-go/internal/domain/department"
)

func TestSplitByWeight(t *testing.T) {
	// 40 units split across polizol (weight 3) and ruberoid (weight 1):
	// polizol takes 75% of money and quantity, ruberoid 25%.
	weights := map[department.Department]decimal.Decimal{
		department.Polizol:  decimal.NewFromInt(3),
		department.Ruberoid: decimal.NewFromInt(1),
	}

	portions := SplitByWeight(decimal.NewFromInt(8000), decimal.NewFromInt(40), weights)

	assert.Len(t, portions, 2)
	assert.True(t, portions[department.Polizol].Value.Equal(decimal.NewFromInt(6000)))
	assert.True(t, portions[department.Polizol].Quantity.Equal(decimal.NewFromInt(30)))
	assert.True(t, portions[department.Ruberoid].Value.Equal(decimal.NewFromInt(2000)))
	assert.True(t, portions[department.Ruberoid].Quantity.Equal(decimal.NewFromInt(10)))
}

func TestSplitByWeightZeroWeightDepartment(t *testing.T) {
	weights := map[department.Department]decimal.Decimal{
		department.Polizol:  decimal.NewFromInt(2),
		department.Ruberoid: decimal.Zero,
	}

	portions := SplitByWeight(decimal.NewFromInt(1000), decimal.NewFromInt(10), weights)

	assert.Len(t, portions, 1)
	assert.True(t, portions[department.Polizol].Value.Equal(decimal.NewFromInt(1000)))
}

func TestSplitByWeightAllZeroIsUnattributed(t *testing.T) {
	weights := map[department.Department]decimal.Decimal{
		department.Polizol: decimal.Zero,
	}

	portions := SplitByWeight(decimal.NewFromInt(1000), decimal.NewFromInt(10), weights)
	assert.Empty(t, portions)
}

func TestBuildSnapshot(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	entries := []attendance.Attendance{
		{EmployeeID: "w2", Department: "polizol", ShiftShare: decimal.NewFromInt(1)},
		{EmployeeID: "w1", Department: "Palizol", ShiftShare: decimal.NewFromFloat(1.5)},
		{EmployeeID: "w3", Department: "master polizol", ShiftShare: decimal.NewFromInt(1)},
		{EmployeeID: "w4", Department: "ruberoid", ShiftShare: decimal.NewFromInt(1)},
		{EmployeeID: "w5", Department: "sklad", ShiftShare: decimal.NewFromInt(1)},
	}

	snapshot := BuildSnapshot(date, department.Polizol, entries)

	// filtered to polizol spellings only, sorted by employee ID
	assert.Len(t, snapshot.Workers, 3)
	assert.Equal(t, "w1", snapshot.Workers[0].EmployeeID)
	assert.True(t, snapshot.Workers[0].ExtraShift, "1.5 share on a non-manager is an extra shift")
	assert.Equal(t, "w2", snapshot.Workers[1].EmployeeID)
	assert.False(t, snapshot.Workers[1].ExtraShift)

	// manager gets +0.2 at allocation time and no extra-shift flag
	assert.Equal(t, "w3", snapshot.Workers[2].EmployeeID)
	assert.True(t, snapshot.Workers[2].ShiftShare.Equal(decimal.NewFromFloat(1.2)))
	assert.False(t, snapshot.Workers[2].ExtraShift)

	// total = 1.5 + 1 + 1.2
	assert.True(t, snapshot.TotalShare().Equal(decimal.NewFromFloat(3.7)))
}

func TestBuildSnapshotEmpty(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	snapshot := BuildSnapshot(date, department.Bikrost, []attendance.Attendance{
		{EmployeeID: "w1", Department: "polizol", ShiftShare: decimal.NewFromInt(1)},
	})
	assert.True(t, snapshot.IsEmpty())
	assert.True(t, snapshot.TotalShare().IsZero())
}
