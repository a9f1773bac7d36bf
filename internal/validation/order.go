// internal/validation/order.go
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/florelle/orders-backend/internal/catalog"
	"github.com/florelle/orders-backend/internal/models"
)

var validate = validator.New()

// Result is the outcome of a validation check. Message carries the exact
// text clients have depended on since the original dashboard shipped; do not
// reword without versioning the API.
type Result struct {
	Valid   bool
	Message string
}

// IsValidOrder runs the full check sequence on a candidate order, stopping
// at the first failure: products, then date, then address, then status.
func IsValidOrder(cat *catalog.Catalog, order *models.Order) Result {
	if order == nil {
		return Result{Message: "Invalid order format"}
	}

	if r := ValidateProducts(cat, order.Products); !r.Valid {
		return r
	}
	if r := ValidateDate(order.Date); !r.Valid {
		return r
	}
	if r := ValidateAddress(order.Address); !r.Valid {
		return r
	}
	if r := ValidateStatus(order.Status); !r.Valid {
		return r
	}

	return Result{Valid: true, Message: "Order is valid"}
}

// ValidateProducts checks that the order has at least one line and that
// every line names a catalog product with a positive quantity. The first
// offending line decides the message.
func ValidateProducts(cat *catalog.Catalog, products []models.OrderProduct) Result {
	if len(products) == 0 {
		return Result{Message: "Order must contain at least one product"}
	}

	for _, p := range products {
		if strings.TrimSpace(p.Name) == "" || !cat.Has(p.Name) {
			return Result{Message: fmt.Sprintf("Invalid product name: %s", p.Name)}
		}
		if p.Quantity <= 0 {
			return Result{Message: "Each product must have a positive quantity"}
		}
	}

	return Result{Valid: true}
}

// ValidateDate checks that the value parses as a calendar date.
func ValidateDate(date string) Result {
	if _, ok := ParseDate(date); !ok {
		return Result{Message: "Invalid date format"}
	}
	return Result{Valid: true}
}

const addressFieldsMessage = "Address fields (street, country, city, zipCode) must be valid"

// ValidateAddress checks that the address is present and that all four
// fields are non-blank strings.
func ValidateAddress(address *models.Address) Result {
	if address == nil {
		return Result{Message: "Address is required"}
	}

	if err := validate.Struct(address); err != nil {
		return Result{Message: addressFieldsMessage}
	}
	for _, field := range []string{address.Street, address.Country, address.City, address.ZipCode} {
		if strings.TrimSpace(field) == "" {
			return Result{Message: addressFieldsMessage}
		}
	}

	return Result{Valid: true}
}

// ValidateStatus checks the status against the fixed vocabulary.
func ValidateStatus(status models.OrderStatus) Result {
	for _, s := range models.OrderStatuses {
		if status == s {
			return Result{Valid: true}
		}
	}
	return Result{Message: "Invalid status. Must be one of: " + strings.Join(models.StatusNames(), ", ")}
}
