package salary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/zavodops/factory-backend-go/internal/config"
	"github.com/zavodops/factory-backend-go/internal/domain/attendance"
	"github.com/zavodops/factory-backend-go/internal/domain/delivery"
	"github.com/zavodops/factory-backend-go/internal/domain/department"
	"github.com/zavodops/factory-backend-go/internal/domain/pricing"
	"github.com/zavodops/factory-backend-go/internal/domain/salary"
	"github.com/zavodops/factory-backend-go/internal/pkg/database"
	"github.com/zavodops/factory-backend-go/internal/repository/postgresql"
)

type SalaryServiceImpl struct {
	db              *database.DB
	log             *slog.Logger
	attendanceRepo  attendance.Repository
	pricingRepo     pricing.Repository
	deliveryRepo    delivery.Repository
	salaryRepo      salary.Repository
	extraShiftBonus decimal.Decimal
}

func NewSalaryService(
	db *database.DB,
	log *slog.Logger,
	attendanceRepo attendance.Repository,
	pricingRepo pricing.Repository,
	deliveryRepo delivery.Repository,
	salaryRepo salary.Repository,
	cfg config.SalaryConfig,
) salary.Service {
	return &SalaryServiceImpl{
		db:              db,
		log:             log,
		attendanceRepo:  attendanceRepo,
		pricingRepo:     pricingRepo,
		deliveryRepo:    deliveryRepo,
		salaryRepo:      salaryRepo,
		extraShiftBonus: cfg.ExtraShiftBonus,
	}
}

// quantityOverride carries the fresh counts a trigger persists before the
// shared recomputation runs. Nil fields keep the stored value.
type quantityOverride struct {
	producedCount  *int64
	loadedCount    *int64
	bitumQty       *decimal.Decimal
	granulaQty     *decimal.Decimal
	granulaSoldQty *decimal.Decimal
}

func (s *SalaryServiceImpl) RecordProduction(ctx context.Context, req salary.ProductionRequest) (*salary.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	dept, _, ok := department.Normalize(req.Department)
	if !ok {
		return nil, salary.ErrUnknownDepartment
	}
	date, _ := time.Parse("2006-01-02", req.Date)

	override := &quantityOverride{
		producedCount: &req.ProducedCount,
		loadedCount:   &req.LoadedCount,
	}

	var record *salary.Record
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		var err error
		record, err = s.recalculate(txCtx, date, dept, override)
		return err
	})
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}

	resp := salary.ToRecordResponse(*record)
	return &resp, nil
}

func (s *SalaryServiceImpl) RecordRefinement(ctx context.Context, req salary.RefinementRequest) (*salary.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	override := &quantityOverride{
		bitumQty:       &req.BitumQty,
		granulaQty:     &req.GranulaQty,
		granulaSoldQty: &req.GranulaSoldQty,
	}

	var record *salary.Record
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		var err error
		record, err = s.recalculate(txCtx, date, department.Okisleniya, override)
		return err
	})
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}

	resp := salary.ToRecordResponse(*record)
	return &resp, nil
}

func (s *SalaryServiceImpl) RecalculateDepartmentDay(ctx context.Context, req salary.RecalculateRequest) (*salary.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	dept, _, ok := department.Normalize(req.Department)
	if !ok {
		return nil, salary.ErrUnknownDepartment
	}
	date, _ := time.Parse("2006-01-02", req.Date)

	var record *salary.Record
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		var err error
		record, err = s.recalculate(txCtx, date, dept, nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}

	resp := salary.ToRecordResponse(*record)
	return &resp, nil
}

func (s *SalaryServiceImpl) ListRecords(ctx context.Context, from, to time.Time, dept *department.Department) ([]salary.RecordResponse, error) {
	records, err := s.salaryRepo.ListByDateRange(ctx, from, to, dept)
	if err != nil {
		return nil, err
	}

	responses := make([]salary.RecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, salary.ToRecordResponse(record))
	}
	return responses, nil
}

func (s *SalaryServiceImpl) Recalculate(ctx context.Context, date time.Time, dept department.Department) (*salary.Record, error) {
	return s.recalculate(ctx, date, dept, nil)
}

func (s *SalaryServiceImpl) ApplyLineItem(ctx context.Context, item delivery.LineItem) error {
	depts := normalizeGroups(item.Groups, s.log)
	if len(depts) == 0 {
		s.log.Warn("delivery line item matches no tracked department, nothing to allocate",
			slog.String("line_item_id", item.ID),
			slog.Any("groups", item.Groups))
		return nil
	}

	for _, dept := range depts {
		if _, err := s.recalculate(ctx, item.Date, dept, nil); err != nil {
			return err
		}
	}
	return nil
}

// recalculate is the shared full recomputation behind all four triggers. It
// reads the attendance snapshot, persists any trigger-supplied quantities,
// rebuilds the base pool from the stored quantities and the loading pool from
// the day's delivery rows, and fully replaces the (date, department) record.
func (s *SalaryServiceImpl) recalculate(ctx context.Context, date time.Time, dept department.Department, override *quantityOverride) (*salary.Record, error) {
	entries, err := s.attendanceRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	snapshot := salary.BuildSnapshot(date, dept, entries)
	if snapshot.IsEmpty() {
		s.log.Info("no attendance for department day, skipping recomputation",
			slog.String("date", date.Format("2006-01-02")),
			slog.String("department", dept.String()))
		return nil, nil
	}

	record, err := s.salaryRepo.GetByDateAndDepartment(ctx, date, dept)
	if err != nil {
		if !errors.Is(err, salary.ErrRecordNotFound) {
			return nil, err
		}
		record = salary.Record{
			ID:         uuid.NewString(),
			Date:       date,
			Department: dept,
		}
	}
	applyOverride(&record, override)

	items, err := s.deliveryRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	book, err := s.priceBook(ctx, dept, items)
	if err != nil {
		return nil, err
	}

	basePool := s.basePool(record, dept, book)

	baseAlloc, err := salary.Allocate(basePool, snapshot.Workers, s.extraShiftBonus)
	if err != nil {
		return nil, fmt.Errorf("allocate base pool for %s on %s: %w",
			dept, date.Format("2006-01-02"), err)
	}

	loadedKg, loadingPool, loadingAmounts, err := s.loadingPool(date, dept, snapshot, entries, items, book)
	if err != nil {
		return nil, err
	}

	record.LoadedWeightKg = loadedKg
	record.TotalSum = basePool.Add(loadingPool).Round(2)
	record.SalaryPerShare = baseAlloc.PerShareRate.Round(2)
	record.Workers = make([]salary.WorkerAmount, len(snapshot.Workers))
	for i, w := range snapshot.Workers {
		record.Workers[i] = salary.WorkerAmount{
			EmployeeID:    w.EmployeeID,
			ShiftShare:    w.ShiftShare,
			Amount:        baseAlloc.Amounts[i],
			LoadingAmount: loadingAmounts[i],
		}
	}

	saved, err := s.salaryRepo.Upsert(ctx, record)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func applyOverride(record *salary.Record, override *quantityOverride) {
	if override == nil {
		return
	}
	if override.producedCount != nil {
		record.ProducedCount = *override.producedCount
	}
	if override.loadedCount != nil {
		record.LoadedCount = *override.loadedCount
	}
	if override.bitumQty != nil {
		record.BitumQty = *override.bitumQty
	}
	if override.granulaQty != nil {
		record.GranulaQty = *override.granulaQty
	}
	if override.granulaSoldQty != nil {
		record.GranulaSoldQty = *override.granulaSoldQty
	}
}

// priceBook batch-fetches every price row the recomputation can touch: the
// department's own category, the refinement categories, and the categories of
// the day's delivered products.
func (s *SalaryServiceImpl) priceBook(ctx context.Context, dept department.Department, items []delivery.LineItem) (*pricing.PriceBook, error) {
	seen := map[pricing.Category]bool{
		pricing.CategoryFor(dept):   true,
		pricing.CategoryBitum:       true,
		pricing.CategoryGranula:     true,
		pricing.CategoryGranulaSale: true,
	}
	for _, item := range items {
		if item.ProductCategory != nil {
			seen[pricing.Category(*item.ProductCategory)] = true
		}
	}

	categories := make([]pricing.Category, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}

	rows, err := s.pricingRepo.ListByCategories(ctx, categories)
	if err != nil {
		return nil, err
	}
	return pricing.NewPriceBook(rows), nil
}

// basePool prices the stored quantities: piece production and loading at the
// department rate, plus the refinement sub-products at their own rates.
// A missing price row contributes zero and is logged, never raised.
func (s *SalaryServiceImpl) basePool(record salary.Record, dept department.Department, book *pricing.PriceBook) decimal.Decimal {
	pool := decimal.Zero

	deptPrice, found := book.Lookup(pricing.CategoryFor(dept), "")
	if !found && (record.ProducedCount > 0 || record.LoadedCount > 0) {
		s.logZeroPrice(dept, pricing.CategoryFor(dept), "")
	}
	pool = pool.Add(decimal.NewFromInt(record.ProducedCount).Mul(deptPrice.ProductionCost))
	pool = pool.Add(decimal.NewFromInt(record.LoadedCount).Mul(deptPrice.LoadingCost))

	if record.BitumQty.IsPositive() {
		price, found := book.Lookup(pricing.CategoryBitum, "")
		if !found {
			s.logZeroPrice(dept, pricing.CategoryBitum, "")
		}
		pool = pool.Add(record.BitumQty.Mul(price.ProductionCost))
	}
	if record.GranulaQty.IsPositive() {
		price, found := book.Lookup(pricing.CategoryGranula, "")
		if !found {
			s.logZeroPrice(dept, pricing.CategoryGranula, "")
		}
		pool = pool.Add(record.GranulaQty.Mul(price.ProductionCost))
	}
	if record.GranulaSoldQty.IsPositive() {
		// Resold granula is paid at the loading rate, not the production rate.
		price, found := book.Lookup(pricing.CategoryGranulaSale, "")
		if !found {
			s.logZeroPrice(dept, pricing.CategoryGranulaSale, "")
		}
		pool = pool.Add(record.GranulaSoldQty.Mul(price.LoadingCost))
	}

	return pool
}

// loadingPool walks the day's delivery rows and accumulates this
// department's share of each: value and quantity split across the item's
// groups by attendance weight, the value then distributed over the snapshot.
func (s *SalaryServiceImpl) loadingPool(
	date time.Time,
	dept department.Department,
	snapshot salary.Snapshot,
	entries []attendance.Attendance,
	items []delivery.LineItem,
	book *pricing.PriceBook,
) (loadedKg, pool decimal.Decimal, amounts []decimal.Decimal, err error) {
	loadedKg = decimal.Zero
	pool = decimal.Zero
	amounts = make([]decimal.Decimal, len(snapshot.Workers))
	for i := range amounts {
		amounts[i] = decimal.Zero
	}

	weightCache := map[department.Department]decimal.Decimal{dept: snapshot.TotalShare()}
	weightOf := func(d department.Department) decimal.Decimal {
		if w, ok := weightCache[d]; ok {
			return w
		}
		w := salary.BuildSnapshot(date, d, entries).TotalShare()
		weightCache[d] = w
		return w
	}

	for _, item := range items {
		depts := normalizeGroups(item.Groups, s.log)
		if !containsDept(depts, dept) {
			continue
		}

		category := pricing.Category("")
		productName := ""
		if item.ProductCategory != nil {
			category = pricing.Category(*item.ProductCategory)
		}
		if item.ProductName != nil {
			productName = *item.ProductName
		}

		price, found := book.Lookup(category, productName)
		if !found {
			s.logZeroPrice(dept, category, productName)
		}
		value := item.Quantity.Mul(price.LoadingCost)

		weights := make(map[department.Department]decimal.Decimal, len(depts))
		for _, d := range depts {
			weights[d] = weightOf(d)
		}

		portions := salary.SplitByWeight(value, item.Quantity, weights)
		portion, ok := portions[dept]
		if !ok {
			continue
		}

		alloc, allocErr := salary.Allocate(portion.Value, snapshot.Workers, decimal.Zero)
		if allocErr != nil {
			return decimal.Zero, decimal.Zero, nil, allocErr
		}

		loadedKg = loadedKg.Add(portion.Quantity)
		pool = pool.Add(portion.Value)
		for i := range amounts {
			amounts[i] = amounts[i].Add(alloc.Amounts[i])
		}
	}

	return loadedKg, pool, amounts, nil
}

func (s *SalaryServiceImpl) logZeroPrice(dept department.Department, category pricing.Category, productName string) {
	s.log.Warn("no price row found, contribution valued at zero",
		slog.String("department", dept.String()),
		slog.String("category", string(category)),
		slog.String("product", productName))
}

// normalizeGroups maps a line item's free-text group labels to tracked
// departments, deduplicated; unrecognized labels are logged and skipped.
func normalizeGroups(groups []string, log *slog.Logger) []department.Department {
	var depts []department.Department
	seen := map[department.Department]bool{}
	for _, label := range groups {
		dept, _, ok := department.Normalize(label)
		if !ok {
			log.Warn("delivery group label matches no tracked department",
				slog.String("label", label))
			continue
		}
		if seen[dept] {
			continue
		}
		seen[dept] = true
		depts = append(depts, dept)
	}
	return depts
}

func containsDept(depts []department.Department, dept department.Department) bool {
	for _, d := range depts {
		if d == dept {
			return true
		}
	}
	return false
}
