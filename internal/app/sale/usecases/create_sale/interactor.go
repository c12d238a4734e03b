package create_sale

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/murkotick/storefront-ledger-service/internal/app/sale/contracts"
	"github.com/murkotick/storefront-ledger-service/internal/app/sale/domain"
	"github.com/murkotick/storefront-ledger-service/internal/app/sale/domain/services"
	"github.com/murkotick/storefront-ledger-service/internal/app/sale/dto"
	"github.com/murkotick/storefront-ledger-service/internal/app/sale/usecases/shared"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/clock"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/committer"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/logger"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/metrics"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/money"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/validation"
)

// Line is one requested product and quantity. Any price a client might send
// has no field here.
type Line struct {
	ProductID    string `json:"productId" validate:"required"`
	QuantitySold int64  `json:"quantitySold" validate:"gt=0"`
}

type Request struct {
	UserID             *string         `json:"userId"`
	StoreID            string          `json:"storeId" validate:"required"`
	Address            string          `json:"address" validate:"max=500"`
	PaymentType        string          `json:"paymentType" validate:"required,max=50"`
	SaleType           string          `json:"saleType" validate:"required,oneof=ONLINE OFFLINE"`
	CumulativeDiscount decimal.Decimal `json:"cumulativeDiscount"`
	FreightPrice       decimal.Decimal `json:"freightPrice"`
	Lines              []Line          `json:"salesDetails" validate:"required,min=1,dive"`
}

// Interactor records a sale: header, lines and outbox event in one commit.
type Interactor struct {
	Catalog   contracts.CatalogReader
	SaleRepo  contracts.SaleRepo
	Outbox    contracts.OutboxRepo
	Committer contracts.Committer
	Assembler *services.Assembler
	Clock     clock.Clock
	Logger    *logger.Logger
	Metrics   *metrics.Ledger
}

func NewInteractor(
	catalog contracts.CatalogReader,
	saleRepo contracts.SaleRepo,
	outboxRepo contracts.OutboxRepo,
	c contracts.Committer,
	assembler *services.Assembler,
	clk clock.Clock,
	log *logger.Logger,
	m *metrics.Ledger,
) *Interactor {
	if log == nil {
		log = logger.Nop()
	}
	return &Interactor{
		Catalog:   catalog,
		SaleRepo:  saleRepo,
		Outbox:    outboxRepo,
		Committer: c,
		Assembler: assembler,
		Clock:     clk,
		Logger:    log,
		Metrics:   m,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) (*dto.SaleDTO, error) {
	if err := validation.Struct(req); err != nil {
		it.Metrics.SaleRejected("invalid_request")
		return nil, err
	}

	lines := make([]domain.LineRequest, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, domain.LineRequest{ProductID: l.ProductID, QuantitySold: l.QuantitySold})
	}

	// 1. One batch lookup over the distinct product ids
	catalog, err := it.Catalog.GetPricingByIDs(ctx, services.DistinctProductIDs(lines))
	if err != nil {
		it.Metrics.SaleRejected("lookup_failed")
		return nil, fmt.Errorf("resolve sale products: %w", err)
	}

	// 2. Assemble: integrity, pricing, total, attribution
	saleID := uuid.New().String()
	ctx = it.Logger.WithSaleID(ctx, saleID)
	now := it.Clock.Now()

	sale, err := it.Assembler.Assemble(saleID, lines, domain.Header{
		UserID:             req.UserID,
		StoreID:            req.StoreID,
		Address:            req.Address,
		PaymentType:        req.PaymentType,
		SaleType:           domain.SaleType(req.SaleType),
		CumulativeDiscount: money.New(req.CumulativeDiscount),
		FreightPrice:       money.New(req.FreightPrice),
	}, catalog, now)
	if err != nil {
		it.Metrics.SaleRejected(rejectionReason(err))
		return nil, err
	}

	// 3. Collect mutations: header, lines, outbox
	plan := committer.NewPlan()
	plan.AddAll(it.SaleRepo.InsertMuts(sale))
	if err := shared.AddOutboxEvents(plan, it.Outbox, sale.DomainEvents(), now); err != nil {
		return nil, err
	}

	// 4. Apply atomically
	if err := it.Committer.Apply(ctx, plan); err != nil {
		it.Metrics.SaleRejected("commit_failed")
		it.Logger.Error(ctx, "sale commit failed", err)
		return nil, fmt.Errorf("commit sale: %w", err)
	}

	total, _ := sale.TotalAmount().Decimal().Float64()
	it.Metrics.SaleCreated(total)
	it.Logger.Zerolog(ctx).Info().
		Str("customer_id", sale.CustomerID()).
		Str("total_amount", sale.TotalAmount().String()).
		Int("lines", len(sale.Lines())).
		Msg("sale recorded")

	return dto.FromSale(sale), nil
}

func rejectionReason(err error) string {
	var rie *domain.ReferentialIntegrityError
	switch {
	case errors.As(err, &rie):
		return "unknown_product"
	case errors.Is(err, domain.ErrMixedOwners):
		return "mixed_owners"
	case errors.Is(err, domain.ErrEmptySale), errors.Is(err, domain.ErrInvalidQuantity), errors.Is(err, domain.ErrNegativeAmount):
		return "invalid_request"
	}
	return "other"
}
