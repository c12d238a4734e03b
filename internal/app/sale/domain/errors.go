package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptySale indicates a sale request without lines.
	ErrEmptySale = errors.New("sale must contain at least one line")

	// ErrInvalidQuantity indicates a line with a non-positive quantity.
	ErrInvalidQuantity = errors.New("quantity sold must be positive")

	// ErrNegativeAmount indicates a negative discount or freight price.
	ErrNegativeAmount = errors.New("sale amounts cannot be negative")

	// ErrMixedOwners indicates lines whose products belong to different
	// customers under a policy that forbids it.
	ErrMixedOwners = errors.New("sale lines belong to different customers")

	// ErrUnknownOwnerPolicy indicates a misconfigured owner policy name.
	ErrUnknownOwnerPolicy = errors.New("unknown sale owner policy")
)

// ReferentialIntegrityError names every requested product that does not
// exist, in request order. No sale is written when it is returned.
type ReferentialIntegrityError struct {
	ProductIDs []string
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("sale references unknown products: %s", strings.Join(e.ProductIDs, ", "))
}
