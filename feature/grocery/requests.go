package grocery

import (
	"errors"
	"reflect"
	"strings"

	"grocery-tracker/core/reconcile"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// PurchaseRequest is the body of POST /purchases. Price accepts a JSON
// number or a decimal string.
type PurchaseRequest struct {
	ItemName     string          `json:"itemName" validate:"required,max=200"`
	Price        decimal.Decimal `json:"price"`
	PurchaseDate *civil.Date     `json:"purchaseDate,omitempty"`
	Supermarket  string          `json:"supermarket,omitempty" validate:"max=200"`
	ExpiryDate   *civil.Date     `json:"expiryDate,omitempty"`
	Calories     *int            `json:"calories,omitempty" validate:"omitempty,min=0"`
}

// Draft converts the request to store input.
func (r PurchaseRequest) Draft() reconcile.PurchaseDraft {
	draft := reconcile.PurchaseDraft{
		ItemName:    r.ItemName,
		Price:       r.Price,
		Supermarket: r.Supermarket,
		ExpiryDate:  r.ExpiryDate,
		Calories:    r.Calories,
	}
	if r.PurchaseDate != nil {
		draft.PurchaseDate = *r.PurchaseDate
	}
	return draft
}

// ShoppingListRequest is the body of POST /shopping-list.
type ShoppingListRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// validationDetails maps each failing field to the rule it broke.
func validationDetails(err error) map[string]string {
	details := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, ve := range verrs {
			details[ve.Field()] = ve.Tag()
		}
	}
	return details
}

// parseDay parses an optional YYYY-MM-DD query value.
func parseDay(value string) (civil.Date, error) {
	if value == "" {
		return civil.Date{}, nil
	}
	return civil.ParseDate(value)
}
