package storefront

import (
	"context"
	"errors"
	"sort"

	"cloud.google.com/go/spanner"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	productdomain "github.com/murkotick/storefront-ledger-service/internal/app/product/domain"
	saledomain "github.com/murkotick/storefront-ledger-service/internal/app/sale/domain"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/validation"
)

// mapError translates application errors into gRPC status codes.
// Unknown errors become codes.Internal.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	var verr *validation.Error
	if errors.As(err, &verr) {
		return validationStatus(verr)
	}

	// Unknown sale products: the sale is rejected as a whole
	var rie *saledomain.ReferentialIntegrityError
	if errors.As(err, &rie) {
		return status.Error(codes.FailedPrecondition, err.Error())
	}

	// The final product write failed
	var ufe *productdomain.UpdateFailedError
	if errors.As(err, &ufe) {
		return status.Error(codes.Internal, err.Error())
	}

	// Not found
	if errors.Is(err, productdomain.ErrProductNotFound) || errors.Is(err, spanner.ErrRowNotFound) {
		return status.Error(codes.NotFound, err.Error())
	}

	// Invalid argument
	switch {
	case errors.Is(err, productdomain.ErrEmptyProductName),
		errors.Is(err, productdomain.ErrEmptyProductCategory),
		errors.Is(err, productdomain.ErrProductNameTooLong),
		errors.Is(err, productdomain.ErrProductCategoryTooLong),
		errors.Is(err, productdomain.ErrMissingOwner),
		errors.Is(err, productdomain.ErrNegativeQuantity),
		errors.Is(err, productdomain.ErrNegativeWeight),
		errors.Is(err, productdomain.ErrInvalidRating),
		errors.Is(err, productdomain.ErrNegativePrice),
		errors.Is(err, productdomain.ErrInvalidOfferPercentage),
		errors.Is(err, productdomain.ErrEmptyCompanyName),
		errors.Is(err, saledomain.ErrEmptySale),
		errors.Is(err, saledomain.ErrInvalidQuantity),
		errors.Is(err, saledomain.ErrNegativeAmount):
		return status.Error(codes.InvalidArgument, err.Error())
	}

	// Failed precondition
	if errors.Is(err, saledomain.ErrMixedOwners) {
		return status.Error(codes.FailedPrecondition, err.Error())
	}

	return status.Error(codes.Internal, err.Error())
}

// validationStatus attaches one BadRequest violation per invalid field.
func validationStatus(verr *validation.Error) error {
	keys := make([]string, 0, len(verr.Fields))
	for k := range verr.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	br := &errdetails.BadRequest{}
	for _, k := range keys {
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       k,
			Description: verr.Fields[k],
		})
	}

	st := status.New(codes.InvalidArgument, verr.Error())
	if withDetails, err := st.WithDetails(br); err == nil {
		st = withDetails
	}
	return st.Err()
}

func invalidArgument(err error) error {
	return status.Error(codes.InvalidArgument, err.Error())
}
