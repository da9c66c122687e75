package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/zavodops/factory-backend-go/internal/domain/department"
	"github.com/zavodops/factory-backend-go/internal/domain/salary"
	"github.com/zavodops/factory-backend-go/internal/pkg/database"
)

type salaryRepository struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.Repository {
	return &salaryRepository{db: db}
}

const salaryColumns = `
	id, date, department, produced_count, loaded_count, loaded_weight_kg,
	bitum_qty, granula_qty, granula_sold_qty,
	total_sum, salary_per_share, workers, created_at, updated_at
`

func (r *salaryRepository) GetByDateAndDepartment(ctx context.Context, date time.Time, dept department.Department) (salary.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryColumns + `
		FROM department_salaries
		WHERE date = $1 AND department = $2
	`

	record, err := scanSalaryRecord(q.QueryRow(ctx, query, date, dept.String()))
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.Record{}, salary.ErrRecordNotFound
		}
		return salary.Record{}, fmt.Errorf("failed to get salary record: %w", err)
	}

	return record, nil
}

func (r *salaryRepository) Upsert(ctx context.Context, record salary.Record) (salary.Record, error) {
	q := GetQuerier(ctx, r.db)

	workersJSON, err := json.Marshal(record.Workers)
	if err != nil {
		return salary.Record{}, fmt.Errorf("failed to marshal worker breakdown: %w", err)
	}

	// Full replace on conflict: every derived field is overwritten so that
	// repeated recomputation for the same key cannot drift.
	query := `
		INSERT INTO department_salaries (
			id, date, department, produced_count, loaded_count, loaded_weight_kg,
			bitum_qty, granula_qty, granula_sold_qty,
			total_sum, salary_per_share, workers
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (date, department) DO UPDATE SET
			produced_count = EXCLUDED.produced_count,
			loaded_count = EXCLUDED.loaded_count,
			loaded_weight_kg = EXCLUDED.loaded_weight_kg,
			bitum_qty = EXCLUDED.bitum_qty,
			granula_qty = EXCLUDED.granula_qty,
			granula_sold_qty = EXCLUDED.granula_sold_qty,
			total_sum = EXCLUDED.total_sum,
			salary_per_share = EXCLUDED.salary_per_share,
			workers = EXCLUDED.workers,
			updated_at = NOW()
		RETURNING ` + salaryColumns + `
	`

	saved, err := scanSalaryRecord(q.QueryRow(ctx, query,
		record.ID, record.Date, record.Department.String(),
		record.ProducedCount, record.LoadedCount, record.LoadedWeightKg,
		record.BitumQty, record.GranulaQty, record.GranulaSoldQty,
		record.TotalSum, record.SalaryPerShare, workersJSON,
	))
	if err != nil {
		return salary.Record{}, fmt.Errorf("failed to upsert salary record: %w", err)
	}

	return saved, nil
}

func (r *salaryRepository) ListByDateRange(ctx context.Context, from, to time.Time, dept *department.Department) ([]salary.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryColumns + `
		FROM department_salaries
		WHERE date >= $1 AND date <= $2
		  AND ($3::text IS NULL OR department = $3)
		ORDER BY date, department
	`

	var deptFilter *string
	if dept != nil {
		s := dept.String()
		deptFilter = &s
	}

	rows, err := q.Query(ctx, query, from, to, deptFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary records: %w", err)
	}
	defer rows.Close()

	var records []salary.Record
	for rows.Next() {
		record, err := scanSalaryRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read salary records: %w", err)
	}

	return records, nil
}

func scanSalaryRecord(row pgx.Row) (salary.Record, error) {
	var record salary.Record
	var deptStr string
	var workersJSON []byte

	err := row.Scan(
		&record.ID, &record.Date, &deptStr,
		&record.ProducedCount, &record.LoadedCount, &record.LoadedWeightKg,
		&record.BitumQty, &record.GranulaQty, &record.GranulaSoldQty,
		&record.TotalSum, &record.SalaryPerShare, &workersJSON,
		&record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return salary.Record{}, err
	}

	record.Department = department.Department(deptStr)
	if len(workersJSON) > 0 {
		if err := json.Unmarshal(workersJSON, &record.Workers); err != nil {
			return salary.Record{}, fmt.Errorf("failed to unmarshal worker breakdown: %w", err)
		}
	}

	return record, nil
}
