package salary

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zavodops/factory-backend-go/internal/config"
	"github.com/zavodops/factory-backend-go/internal/domain/attendance"
	"github.com/zavodops/factory-backend-go/internal/domain/delivery"
	"github.com/zavodops/factory-backend-go/internal/domain/department"
	"github.com/zavodops/factory-backend-go/internal/domain/pricing"
	"github.com/zavodops/factory-backend-go/internal/domain/salary"
)

// ========================================
// In-memory fakes
// ========================================

type fakeAttendanceRepo struct {
	entries []attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, entry attendance.Attendance) (attendance.Attendance, error) {
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	for _, e := range f.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, entry attendance.Attendance) error {
	for i, e := range f.entries {
		if e.ID == entry.ID {
			f.entries[i] = entry
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, id string) error {
	for i, e := range f.entries {
		if e.ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, e := range f.entries {
		if e.Date.Equal(date) {
			result = append(result, e)
		}
	}
	return result, nil
}

type fakePricingRepo struct {
	prices   []pricing.UnitPrice
	products map[string]pricing.Product
}

func (f *fakePricingRepo) ListByCategories(ctx context.Context, categories []pricing.Category) ([]pricing.UnitPrice, error) {
	wanted := map[pricing.Category]bool{}
	for _, c := range categories {
		wanted[c] = true
	}
	var result []pricing.UnitPrice
	for _, p := range f.prices {
		if wanted[p.Category] {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakePricingRepo) GetProductByID(ctx context.Context, id string) (pricing.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return pricing.Product{}, pricing.ErrProductNotFound
	}
	return p, nil
}

type fakeDeliveryRepo struct {
	items []delivery.LineItem
}

func (f *fakeDeliveryRepo) Create(ctx context.Context, item delivery.LineItem) (delivery.LineItem, error) {
	f.items = append(f.items, item)
	return item, nil
}

func (f *fakeDeliveryRepo) ListByDate(ctx context.Context, date time.Time) ([]delivery.LineItem, error) {
	var result []delivery.LineItem
	for _, item := range f.items {
		if item.Date.Equal(date) {
			result = append(result, item)
		}
	}
	return result, nil
}

type fakeSalaryRepo struct {
	records map[string]salary.Record
}

func newFakeSalaryRepo() *fakeSalaryRepo {
	return &fakeSalaryRepo{records: map[string]salary.Record{}}
}

func recordKey(date time.Time, dept department.Department) string {
	return date.Format("2006-01-02") + "/" + dept.String()
}

func (f *fakeSalaryRepo) GetByDateAndDepartment(ctx context.Context, date time.Time, dept department.Department) (salary.Record, error) {
	record, ok := f.records[recordKey(date, dept)]
	if !ok {
		return salary.Record{}, salary.ErrRecordNotFound
	}
	return record, nil
}

func (f *fakeSalaryRepo) Upsert(ctx context.Context, record salary.Record) (salary.Record, error) {
	key := recordKey(record.Date, record.Department)
	if existing, ok := f.records[key]; ok {
		record.ID = existing.ID
	}
	f.records[key] = record
	return record, nil
}

func (f *fakeSalaryRepo) ListByDateRange(ctx context.Context, from, to time.Time, dept *department.Department) ([]salary.Record, error) {
	var result []salary.Record
	for _, r := range f.records {
		if r.Date.Before(from) || r.Date.After(to) {
			continue
		}
		if dept != nil && r.Department != *dept {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

// ========================================
// Test helpers
// ========================================

type engineFixture struct {
	attendanceRepo *fakeAttendanceRepo
	pricingRepo    *fakePricingRepo
	deliveryRepo   *fakeDeliveryRepo
	salaryRepo     *fakeSalaryRepo
	engine         *SalaryServiceImpl
}

func newEngineFixture(bonus int64) *engineFixture {
	f := &engineFixture{
		attendanceRepo: &fakeAttendanceRepo{},
		pricingRepo:    &fakePricingRepo{products: map[string]pricing.Product{}},
		deliveryRepo:   &fakeDeliveryRepo{},
		salaryRepo:     newFakeSalaryRepo(),
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewSalaryService(nil, log, f.attendanceRepo, f.pricingRepo, f.deliveryRepo, f.salaryRepo,
		config.SalaryConfig{ExtraShiftBonus: decimal.NewFromInt(bonus)})
	f.engine = svc.(*SalaryServiceImpl)
	return f
}

func (f *engineFixture) addAttendance(employeeID string, date time.Time, dept string, share float64) {
	f.attendanceRepo.entries = append(f.attendanceRepo.entries, attendance.Attendance{
		ID:         "att-" + employeeID + "-" + dept,
		EmployeeID: employeeID,
		Date:       date,
		Department: dept,
		ShiftShare: decimal.NewFromFloat(share),
	})
}

func (f *engineFixture) addCategoryPrice(category pricing.Category, production, loading int64) {
	f.pricingRepo.prices = append(f.pricingRepo.prices, pricing.UnitPrice{
		ID:             "price-" + string(category),
		Category:       category,
		ProductionCost: decimal.NewFromInt(production),
		LoadingCost:    decimal.NewFromInt(loading),
	})
}

func strPtr(s string) *string { return &s }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ========================================
// Tests
// ========================================

func TestRecalculate_BasePoolDistribution(t *testing.T) {
	date := day(2025, 6, 1)
	f := newEngineFixture(100000)

	f.addAttendance("e1", date, "polizol", 1)
	f.addAttendance("e2", date, "polizol", 1)
	f.addAttendance("e3", date, "polizol", 0.5)
	f.addCategoryPrice(pricing.CategoryPolizol, 500, 0)

	f.salaryRepo.records[recordKey(date, department.Polizol)] = salary.Record{
		ID:            "rec-1",
		Date:          date,
		Department:    department.Polizol,
		ProducedCount: 100,
	}

	record, err := f.engine.Recalculate(context.Background(), date, department.Polizol)
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.True(t, record.TotalSum.Equal(decimal.NewFromInt(50000)), "total sum: %s", record.TotalSum)
	assert.True(t, record.SalaryPerShare.Equal(decimal.NewFromInt(20000)), "per share: %s", record.SalaryPerShare)
	require.Len(t, record.Workers, 3)
	assert.True(t, record.Workers[0].Amount.Equal(decimal.NewFromInt(20000)))
	assert.True(t, record.Workers[1].Amount.Equal(decimal.NewFromInt(20000)))
	assert.True(t, record.Workers[2].Amount.Equal(decimal.NewFromInt(10000)))
}

func TestRecalculate_Idempotent(t *testing.T) {
	date := day(2025, 6, 1)
	f := newEngineFixture(100000)

	f.addAttendance("e1", date, "polizol", 1)
	f.addAttendance("e2", date, "palizol", 0.5)
	f.addCategoryPrice(pricing.CategoryPolizol, 500, 200)

	f.salaryRepo.records[recordKey(date, department.Polizol)] = salary.Record{
		ID:            "rec-1",
		Date:          date,
		Department:    department.Polizol,
		ProducedCount: 42,
		LoadedCount:   7,
	}

	first, err := f.engine.Recalculate(context.Background(), date, department.Polizol)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := f.engine.Recalculate(context.Background(), date, department.Polizol)
	require.NoError(t, err)
	require.NotNil(t, second)

	assert.Equal(t, *first, *second)
	assert.Len(t, f.salaryRepo.records, 1)
}

func TestRecalculate_ZeroAttendanceIsNoOp(t *testing.T) {
	date := day(2025, 6, 1)
	f := newEngineFixture(100000)
	f.addCategoryPrice(pricing.CategoryPolizol, 500, 200)

	record, err := f.engine.Recalculate(context.Background(), date, department.Polizol)
	require.NoError(t, err)
	assert.Nil(t, record)
	assert.Empty(t, f.salaryRepo.records)
}

func TestRecalculate_ManagerShareAdjustment(t *testing.T) {
	date := day(2025, 6, 1)
	f := newEngineFixture(100000)

	f.addAttendance("e1", date, "master polizol", 1)
	f.addAttendance("e2", date, "polizol", 1)
	f.addCategoryPrice(pricing.CategoryPolizol, 220, 0)

	f.salaryRepo.records[recordKey(date, department.Polizol)] = salary.Record{
		ID:            "rec-1",
		Date:          date,
		Department:    department.Polizol,
		ProducedCount: 10,
	}

	record, err := f.engine.Recalculate(context.Background(), date, department.Polizol)
	require.NoError(t, err)
	require.NotNil(t, record)

	// Pool 2200 over total share 2.2: rate 1000, manager paid at 1.2.
	require.Len(t, record.Workers, 2)
	assert.True(t, record.Workers[0].ShiftShare.Equal(decimal.NewFromFloat(1.2)))
	assert.True(t, record.Workers[0].Amount.Equal(decimal.NewFromInt(1200)))
	assert.True(t, record.Workers[1].Amount.Equal(decimal.NewFromInt(1000)))
}

func TestRecalculate_RefinementPool(t *testing.T) {
	date := day(2025, 6, 1)
	f := newEngineFixture(100000)

	f.addAttendance("e1", date, "okisleniya", 1)
	f.addCategoryPrice(pricing.CategoryBitum, 1000, 0)
	f.addCategoryPrice(pricing.CategoryGranula, 500, 0)
	f.addCategoryPrice(pricing.CategoryGranulaSale, 0, 300)

	f.salaryRepo.records[recordKey(date, department.Okisleniya)] = salary.Record{
		ID:             "rec-1",
		Date:           date,
		Department:     department.Okisleniya,
		BitumQty:       decimal.NewFromInt(2),
		GranulaQty:     decimal.NewFromInt(3),
		GranulaSoldQty: decimal.NewFromInt(4),
	}

	record, err := f.engine.Recalculate(context.Background(), date, department.Okisleniya)
	require.NoError(t, err)
	require.NotNil(t, record)

	// 2*1000 + 3*500 + 4*300, sold granula priced at the loading rate
	assert.True(t, record.TotalSum.Equal(decimal.NewFromInt(4700)), "total sum: %s", record.TotalSum)
	require.Len(t, record.Workers, 1)
	assert.True(t, record.Workers[0].Amount.Equal(decimal.NewFromInt(4700)))
}

func TestRecalculate_NegativeDistributable(t *testing.T) {
	date := day(2025, 6, 1)
	f := newEngineFixture(100000)

	f.addAttendance("e1", date, "polizol", 1.5)
	f.addCategoryPrice(pricing.CategoryPolizol, 500, 0)

	f.salaryRepo.records[recordKey(date, department.Polizol)] = salary.Record{
		ID:            "rec-1",
		Date:          date,
		Department:    department.Polizol,
		ProducedCount: 10,
	}

	_, err := f.engine.Recalculate(context.Background(), date, department.Polizol)
	require.Error(t, err)
	assert.ErrorIs(t, err, salary.ErrNegativeDistributable)
}

func TestApplyLineItem_SplitsAcrossGroupsByAttendanceWeight(t *testing.T) {
	date := day(2025, 6, 1)
	f := newEngineFixture(100000)

	f.addAttendance("e1", date, "polizol", 1)
	f.addAttendance("e2", date, "polizol", 1)
	f.addAttendance("e3", date, "polizol", 1)
	f.addAttendance("e4", date, "ruberoid", 1)
	f.addCategoryPrice(pricing.CategoryBikrost, 0, 200)

	item := delivery.LineItem{
		ID:              "item-1",
		ProductID:       "prod-1",
		Quantity:        decimal.NewFromInt(40),
		Date:            date,
		Groups:          []string{"polizol", "ruberoid"},
		ProductName:     strPtr("bikrost hpp"),
		ProductCategory: strPtr("bikrost"),
	}
	f.deliveryRepo.items = append(f.deliveryRepo.items, item)

	err := f.engine.ApplyLineItem(context.Background(), item)
	require.NoError(t, err)

	polizol, ok := f.salaryRepo.records[recordKey(date, department.Polizol)]
	require.True(t, ok)
	ruberoid, ok := f.salaryRepo.records[recordKey(date, department.Ruberoid)]
	require.True(t, ok)

	// 8000 value and 40 units split 3:1 by attendance weight
	assert.True(t, polizol.LoadedWeightKg.Equal(decimal.NewFromInt(30)), "polizol kg: %s", polizol.LoadedWeightKg)
	assert.True(t, polizol.TotalSum.Equal(decimal.NewFromInt(6000)), "polizol sum: %s", polizol.TotalSum)
	assert.True(t, ruberoid.LoadedWeightKg.Equal(decimal.NewFromInt(10)), "ruberoid kg: %s", ruberoid.LoadedWeightKg)
	assert.True(t, ruberoid.TotalSum.Equal(decimal.NewFromInt(2000)), "ruberoid sum: %s", ruberoid.TotalSum)

	require.Len(t, polizol.Workers, 3)
	for _, w := range polizol.Workers {
		assert.True(t, w.LoadingAmount.Equal(decimal.NewFromInt(2000)), "loading amount: %s", w.LoadingAmount)
		assert.True(t, w.Amount.IsZero())
	}
	require.Len(t, ruberoid.Workers, 1)
	assert.True(t, ruberoid.Workers[0].LoadingAmount.Equal(decimal.NewFromInt(2000)))
}

func TestApplyLineItem_UnknownGroupsAreSkipped(t *testing.T) {
	date := day(2025, 6, 1)
	f := newEngineFixture(100000)

	f.addAttendance("e1", date, "polizol", 1)

	item := delivery.LineItem{
		ID:        "item-1",
		ProductID: "prod-1",
		Quantity:  decimal.NewFromInt(10),
		Date:      date,
		Groups:    []string{"warehouse", "office"},
	}

	err := f.engine.ApplyLineItem(context.Background(), item)
	require.NoError(t, err)
	assert.Empty(t, f.salaryRepo.records)
}

func TestRecalculate_AccumulatesDeliveriesOfTheDay(t *testing.T) {
	date := day(2025, 6, 1)
	f := newEngineFixture(100000)

	f.addAttendance("e1", date, "polizol", 1)
	f.addCategoryPrice(pricing.CategoryBikrost, 0, 200)

	for i, qty := range []int64{10, 5} {
		f.deliveryRepo.items = append(f.deliveryRepo.items, delivery.LineItem{
			ID:              "item-" + string(rune('a'+i)),
			ProductID:       "prod-1",
			Quantity:        decimal.NewFromInt(qty),
			Date:            date,
			Groups:          []string{"polizol"},
			ProductName:     strPtr("bikrost hpp"),
			ProductCategory: strPtr("bikrost"),
		})
	}

	record, err := f.engine.Recalculate(context.Background(), date, department.Polizol)
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.True(t, record.LoadedWeightKg.Equal(decimal.NewFromInt(15)), "kg: %s", record.LoadedWeightKg)
	assert.True(t, record.TotalSum.Equal(decimal.NewFromInt(3000)), "sum: %s", record.TotalSum)
	require.Len(t, record.Workers, 1)
	assert.True(t, record.Workers[0].LoadingAmount.Equal(decimal.NewFromInt(3000)))
}

func TestRecalculate_MissingPriceContributesZero(t *testing.T) {
	date := day(2025, 6, 1)
	f := newEngineFixture(100000)

	f.addAttendance("e1", date, "pergamin", 1)

	f.salaryRepo.records[recordKey(date, department.Pergamin)] = salary.Record{
		ID:            "rec-1",
		Date:          date,
		Department:    department.Pergamin,
		ProducedCount: 50,
	}

	record, err := f.engine.Recalculate(context.Background(), date, department.Pergamin)
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.True(t, record.TotalSum.IsZero())
	require.Len(t, record.Workers, 1)
	assert.True(t, record.Workers[0].Amount.IsZero())
}
