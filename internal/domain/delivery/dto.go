package delivery

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/zavodops/factory-backend-go/internal/pkg/validator"
)

type RecordRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Date      string          `json:"date"`
	Groups    []string        `json:"groups"`
}

func (r *RecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProductID) {
		errs = append(errs, validator.ValidationError{
			Field:   "product_id",
			Message: "product_id is required",
		})
	} else if !validator.IsValidUUID(r.ProductID) {
		errs = append(errs, validator.ValidationError{
			Field:   "product_id",
			Message: "product_id must be a valid UUID",
		})
	}

	if !r.Quantity.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "quantity",
			Message: "quantity must be positive",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(r.Groups) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "groups",
			Message: "at least one delivery group is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Response struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName *string         `json:"product_name,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Date        string          `json:"date"`
	Groups      []string        `json:"groups"`
	CreatedAt   time.Time       `json:"created_at"`
}

func ToResponse(item LineItem) Response {
	return Response{
		ID:          item.ID,
		ProductID:   item.ProductID,
		ProductName: item.ProductName,
		Quantity:    item.Quantity,
		Date:        item.Date.Format("2006-01-02"),
		Groups:      item.Groups,
		CreatedAt:   item.CreatedAt,
	}
}
