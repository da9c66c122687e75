package attendance

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/zavodops/factory-backend-go/internal/domain/attendance"
	"github.com/zavodops/factory-backend-go/internal/domain/department"
	"github.com/zavodops/factory-backend-go/internal/domain/employee"
	"github.com/zavodops/factory-backend-go/internal/domain/salary"
	"github.com/zavodops/factory-backend-go/internal/pkg/database"
	"github.com/zavodops/factory-backend-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	log            *slog.Logger
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	salaryService  salary.Service
}

func NewAttendanceService(
	db *database.DB,
	log *slog.Logger,
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	salaryService salary.Service,
) attendance.Service {
	return &AttendanceServiceImpl{
		db:             db,
		log:            log,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		salaryService:  salaryService,
	}
}

func (s *AttendanceServiceImpl) Create(ctx context.Context, req attendance.CreateRequest) (attendance.Response, error) {
	if err := req.Validate(); err != nil {
		return attendance.Response{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.Response{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	entry := attendance.Attendance{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Date:       date,
		Department: req.Department,
		ShiftShare: req.ShiftShare,
	}

	var created attendance.Attendance
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = s.attendanceRepo.Create(txCtx, entry)
		if err != nil {
			return err
		}

		return s.recalculateIfTracked(txCtx, created.Date, created.Department)
	})
	if err != nil {
		return attendance.Response{}, err
	}

	return attendance.ToResponse(created), nil
}

func (s *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateRequest) (attendance.Response, error) {
	if err := req.Validate(); err != nil {
		return attendance.Response{}, err
	}

	var updated attendance.Attendance
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		entry, err := s.attendanceRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}
		prevDate, prevDepartment := entry.Date, entry.Department

		if req.Date != nil {
			entry.Date, _ = time.Parse("2006-01-02", *req.Date)
		}
		if req.Department != nil {
			entry.Department = *req.Department
		}
		if req.ShiftShare != nil {
			entry.ShiftShare = *req.ShiftShare
		}

		if err := s.attendanceRepo.Update(txCtx, entry); err != nil {
			return err
		}
		updated = entry

		// The old key must shed this entry's share before the new key
		// absorbs it; a move across days or departments touches two records.
		if err := s.recalculateIfTracked(txCtx, prevDate, prevDepartment); err != nil {
			return err
		}
		if !sameKey(prevDate, prevDepartment, entry.Date, entry.Department) {
			if err := s.recalculateIfTracked(txCtx, entry.Date, entry.Department); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return attendance.Response{}, err
	}

	return attendance.ToResponse(updated), nil
}

func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		entry, err := s.attendanceRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := s.attendanceRepo.Delete(txCtx, id); err != nil {
			return err
		}

		return s.recalculateIfTracked(txCtx, entry.Date, entry.Department)
	})
}

func (s *AttendanceServiceImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.Response, error) {
	entries, err := s.attendanceRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.Response, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, attendance.ToResponse(entry))
	}
	return responses, nil
}

// recalculateIfTracked recomputes the salary record for the entry's day when
// its label belongs to a tracked department. Untracked labels (warehouse,
// office) have no salary record to maintain.
func (s *AttendanceServiceImpl) recalculateIfTracked(ctx context.Context, date time.Time, label string) error {
	dept, _, ok := department.Normalize(label)
	if !ok {
		return nil
	}
	_, err := s.salaryService.Recalculate(ctx, date, dept)
	return err
}

func sameKey(aDate time.Time, aDept string, bDate time.Time, bDept string) bool {
	if !aDate.Equal(bDate) {
		return false
	}
	aNorm, _, aOK := department.Normalize(aDept)
	bNorm, _, bOK := department.Normalize(bDept)
	return aOK == bOK && aNorm == bNorm
}
