package salary

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zavodops/factory-backend-go/internal/domain/attendance"
	"github.com/zavodops/factory-backend-go/internal/domain/department"
)

// managerExtra is added to a manager's shift share at allocation time.
// The stored attendance row keeps the raw value.
var managerExtra = decimal.NewFromFloat(0.2)

// WorkerShare is one worker's allocation weight inside a snapshot.
// ShiftShare already carries the manager adjustment. ExtraShift marks a raw
// share above 1 on a non-manager; such workers receive the flat bonus and
// trigger the bonus carve-out.
type WorkerShare struct {
	EmployeeID string
	ShiftShare decimal.Decimal
	ExtraShift bool
}

// Snapshot is the read-only attendance state one allocation works against.
// Building it once per trigger keeps the calculator free of mid-algorithm
// queries.
type Snapshot struct {
	Date       time.Time
	Department department.Department
	Workers    []WorkerShare
}

// BuildSnapshot filters a day's attendance down to entries whose label
// normalizes to dept and applies the manager adjustment. Workers come out
// sorted by employee ID so repeated builds are bit-identical.
func BuildSnapshot(date time.Time, dept department.Department, entries []attendance.Attendance) Snapshot {
	snapshot := Snapshot{Date: date, Department: dept}

	for _, entry := range entries {
		entryDept, isManager, ok := department.Normalize(entry.Department)
		if !ok || entryDept != dept {
			continue
		}
		share := entry.ShiftShare
		extraShift := false
		if isManager {
			share = share.Add(managerExtra)
		} else if entry.ShiftShare.GreaterThan(decimal.NewFromInt(1)) {
			extraShift = true
		}
		snapshot.Workers = append(snapshot.Workers, WorkerShare{
			EmployeeID: entry.EmployeeID,
			ShiftShare: share,
			ExtraShift: extraShift,
		})
	}

	sort.Slice(snapshot.Workers, func(i, j int) bool {
		return snapshot.Workers[i].EmployeeID < snapshot.Workers[j].EmployeeID
	})

	return snapshot
}

// IsEmpty reports whether the snapshot has no attendees. An empty snapshot
// means no record is written for the key: a no-op, not an error.
func (s Snapshot) IsEmpty() bool {
	return len(s.Workers) == 0
}

// TotalShare sums the adjusted shift shares. Also used as the department's
// weight when a delivery item is split across several departments.
func (s Snapshot) TotalShare() decimal.Decimal {
	total := decimal.Zero
	for _, w := range s.Workers {
		total = total.Add(w.ShiftShare)
	}
	return total
}
