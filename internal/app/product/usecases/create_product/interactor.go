package create_product

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/murkotick/storefront-ledger-service/internal/app/product/contracts"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/domain"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/dto"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/usecases/shared"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/clock"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/committer"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/money"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/validation"
)

// Request is the application-level create-product request. There is no
// offer price field: it is always derived.
type Request struct {
	CustomerID      string           `json:"customerId" validate:"required"`
	Name            string           `json:"productName" validate:"required,max=255"`
	Description     string           `json:"description" validate:"max=4000"`
	CostPrice       decimal.Decimal  `json:"costPrice"`
	SellingPrice    decimal.Decimal  `json:"sellingPrice"`
	OfferPercentage *decimal.Decimal `json:"offerPercentage"`
	Quantity        int64            `json:"quantity" validate:"gte=0"`
	BatchID         string           `json:"batchId" validate:"max=100"`
	Category        string           `json:"categoryName" validate:"required,max=100"`
	Weight          decimal.Decimal  `json:"weight"`
	Images          []string         `json:"images" validate:"omitempty,max=20,dive,required"`
	CustomerRating  *decimal.Decimal `json:"customerRating"`
	Expiry          *time.Time       `json:"expiry"`
	ManufactureDate *time.Time       `json:"manufactureDate"`
}

// Interactor implements the create-product usecase following the Golden Mutation pattern.
type Interactor struct {
	ProductRepo contracts.ProductRepo
	OutboxRepo  contracts.OutboxRepo
	Committer   contracts.Committer
	Pricer      domain.Pricer
	Clock       clock.Clock
}

func NewInteractor(prodRepo contracts.ProductRepo, outboxRepo contracts.OutboxRepo, c contracts.Committer, pricer domain.Pricer, clk clock.Clock) *Interactor {
	return &Interactor{
		ProductRepo: prodRepo,
		OutboxRepo:  outboxRepo,
		Committer:   c,
		Pricer:      pricer,
		Clock:       clk,
	}
}

// Execute creates a new product, persists it and writes outbox events in a single commit.
func (it *Interactor) Execute(ctx context.Context, req Request) (*dto.ProductDTO, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	now := it.Clock.Now()

	// 1. Build domain aggregate
	product, err := domain.NewProduct(domain.NewProductParams{
		ID:              uuid.New().String(),
		CustomerID:      req.CustomerID,
		Name:            req.Name,
		Description:     req.Description,
		CostPrice:       money.New(req.CostPrice),
		SellingPrice:    money.New(req.SellingPrice),
		OfferPercentage: req.OfferPercentage,
		Quantity:        req.Quantity,
		BatchID:         req.BatchID,
		Category:        req.Category,
		Weight:          req.Weight,
		Images:          req.Images,
		CustomerRating:  req.CustomerRating,
		Expiry:          req.Expiry,
		ManufactureDate: req.ManufactureDate,
	}, it.Pricer, now)
	if err != nil {
		return nil, err
	}

	// 2. Build commit plan
	plan := committer.NewPlan()
	plan.Add(it.ProductRepo.InsertMut(product))
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, product.DomainEvents(), now); err != nil {
		return nil, err
	}

	// 3. Apply plan via Committer
	if err := it.Committer.Apply(ctx, plan); err != nil {
		return nil, err
	}

	return dto.FromProduct(product), nil
}
