package delivery

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/zavodops/factory-backend-go/internal/domain/delivery"
	"github.com/zavodops/factory-backend-go/internal/domain/pricing"
	"github.com/zavodops/factory-backend-go/internal/domain/salary"
	"github.com/zavodops/factory-backend-go/internal/pkg/database"
	"github.com/zavodops/factory-backend-go/internal/repository/postgresql"
)

type DeliveryServiceImpl struct {
	db            *database.DB
	log           *slog.Logger
	deliveryRepo  delivery.Repository
	pricingRepo   pricing.Repository
	salaryService salary.Service
}

func NewDeliveryService(
	db *database.DB,
	log *slog.Logger,
	deliveryRepo delivery.Repository,
	pricingRepo pricing.Repository,
	salaryService salary.Service,
) delivery.Service {
	return &DeliveryServiceImpl{
		db:            db,
		log:           log,
		deliveryRepo:  deliveryRepo,
		pricingRepo:   pricingRepo,
		salaryService: salaryService,
	}
}

func (s *DeliveryServiceImpl) Record(ctx context.Context, req delivery.RecordRequest) (delivery.Response, error) {
	if err := req.Validate(); err != nil {
		return delivery.Response{}, err
	}

	product, err := s.pricingRepo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return delivery.Response{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	groups := make([]string, 0, len(req.Groups))
	for _, g := range req.Groups {
		if trimmed := strings.TrimSpace(g); trimmed != "" {
			groups = append(groups, trimmed)
		}
	}

	item := delivery.LineItem{
		ID:        uuid.NewString(),
		ProductID: product.ID,
		Quantity:  req.Quantity,
		Date:      date,
		Groups:    groups,
	}

	var saved delivery.LineItem
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		saved, err = s.deliveryRepo.Create(txCtx, item)
		if err != nil {
			return err
		}

		// The stored row has no joins; carry the product over for the
		// recomputation running in the same transaction.
		saved.ProductName = &product.Name
		category := string(product.Category)
		saved.ProductCategory = &category

		return s.salaryService.ApplyLineItem(txCtx, saved)
	})
	if err != nil {
		return delivery.Response{}, err
	}

	return delivery.ToResponse(saved), nil
}

func (s *DeliveryServiceImpl) ListByDate(ctx context.Context, date time.Time) ([]delivery.Response, error) {
	items, err := s.deliveryRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	responses := make([]delivery.Response, 0, len(items))
	for _, item := range items {
		responses = append(responses, delivery.ToResponse(item))
	}
	return responses, nil
}
