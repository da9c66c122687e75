package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/zavodops/factory-backend-go/internal/domain/attendance"
	"github.com/zavodops/factory-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, entry attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (id, employee_id, date, department, shift_share)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, employee_id, date, department, shift_share, created_at, updated_at
	`

	var a attendance.Attendance
	err := q.QueryRow(ctx, query,
		entry.ID, entry.EmployeeID, entry.Date, entry.Department, entry.ShiftShare,
	).Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.Department, &a.ShiftShare, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_attendance_employee_date_department") {
			return attendance.Attendance{}, attendance.ErrDuplicateEntry
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance entry: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, department, shift_share, created_at, updated_at
		FROM attendances
		WHERE id = $1
	`

	var a attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.Department, &a.ShiftShare, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance entry: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) Update(ctx context.Context, entry attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET date = $2, department = $3, shift_share = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, entry.ID, entry.Date, entry.Department, entry.ShiftShare)
	if err != nil {
		return fmt.Errorf("failed to update attendance entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

func (r *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.department, a.shift_share,
			   a.created_at, a.updated_at, e.full_name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date = $1
		ORDER BY a.department, e.full_name
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance entries: %w", err)
	}
	defer rows.Close()

	var entries []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Date, &a.Department, &a.ShiftShare,
			&a.CreatedAt, &a.UpdatedAt, &a.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance entry: %w", err)
		}
		entries = append(entries, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance entries: %w", err)
	}

	return entries, nil
}
