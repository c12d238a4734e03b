package create_price_history

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/murkotick/storefront-ledger-service/internal/app/product/contracts"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/domain"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/domain/services"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/dto"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/money"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/validation"
)

// Request appends a history entry by hand, e.g. when back-filling prices that
// predate the service.
type Request struct {
	ProductID       string           `json:"productId" validate:"required"`
	Price           decimal.Decimal  `json:"price"`
	OfferPercentage *decimal.Decimal `json:"offerPercentage"`
}

// Appender writes one history entry and reports failures.
type Appender interface {
	Append(ctx context.Context, productID string, price money.Money, offerPercentage *decimal.Decimal) (*domain.PriceHistoryEntry, error)
}

type Interactor struct {
	Appender  Appender
	ReadModel contracts.ReadModel
}

func NewInteractor(a Appender, readModel contracts.ReadModel) *Interactor {
	return &Interactor{Appender: a, ReadModel: readModel}
}

// Execute differs from the automatic recorder: failures are returned.
func (it *Interactor) Execute(ctx context.Context, req Request) (*dto.PriceHistoryDTO, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if req.Price.IsNegative() {
		return nil, domain.ErrNegativePrice
	}
	if err := services.ValidateOfferPercentage(domain.NormalizePercentage(req.OfferPercentage)); err != nil {
		return nil, err
	}
	if _, err := it.ReadModel.GetProduct(ctx, req.ProductID); err != nil {
		return nil, err
	}

	entry, err := it.Appender.Append(ctx, req.ProductID, money.New(req.Price), req.OfferPercentage)
	if err != nil {
		return nil, err
	}

	return &dto.PriceHistoryDTO{
		HistoryID:       entry.ID(),
		ProductID:       entry.ProductID(),
		Price:           entry.Price(),
		OfferPercentage: entry.OfferPercentage(),
		RecordedAt:      entry.RecordedAt(),
	}, nil
}
