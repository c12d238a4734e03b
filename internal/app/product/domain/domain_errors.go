package domain

import (
	"errors"
	"fmt"
)

// Domain errors for Product aggregate
var (
	// ErrProductNotFound indicates that a product with the given ID does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrMissingOwner indicates a product without an owning customer.
	ErrMissingOwner = errors.New("product owner customer id is required")

	// ErrNegativeQuantity indicates a negative stock quantity.
	ErrNegativeQuantity = errors.New("product quantity cannot be negative")

	// ErrNegativeWeight indicates a negative product weight.
	ErrNegativeWeight = errors.New("product weight cannot be negative")

	// ErrInvalidRating indicates a customer rating outside 0..5.
	ErrInvalidRating = errors.New("customer rating must be between 0 and 5")
)

// Domain errors for pricing
var (
	// ErrNegativePrice indicates an attempt to set a negative price.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrInvalidOfferPercentage indicates an offer percentage outside [0, 100].
	ErrInvalidOfferPercentage = errors.New("offer percentage must be between 0 and 100")
)

// Domain errors for Product validation
var (
	// ErrEmptyProductName indicates an attempt to create a product with an empty name.
	ErrEmptyProductName = errors.New("product name cannot be empty")

	// ErrEmptyProductCategory indicates an attempt to create a product with an empty category.
	ErrEmptyProductCategory = errors.New("product category cannot be empty")

	// ErrProductNameTooLong indicates the product name exceeds maximum length.
	ErrProductNameTooLong = errors.New("product name exceeds maximum length of 255 characters")

	// ErrProductCategoryTooLong indicates the product category exceeds maximum length.
	ErrProductCategoryTooLong = errors.New("product category exceeds maximum length of 100 characters")
)

// Domain errors for competitor prices
var (
	ErrEmptyCompanyName = errors.New("competitor company name cannot be empty")
)

// UpdateFailedError reports that the final write of a product update failed.
// The product keeps its previous state.
type UpdateFailedError struct {
	ProductID string
	Err       error
}

func (e *UpdateFailedError) Error() string {
	return fmt.Sprintf("update of product %s failed: %v", e.ProductID, e.Err)
}

func (e *UpdateFailedError) Unwrap() error {
	return e.Err
}
