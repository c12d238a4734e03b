package update_product

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/murkotick/storefront-ledger-service/internal/app/product/contracts"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/domain"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/dto"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/usecases/record_price_history"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/usecases/shared"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/clock"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/committer"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/logger"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/metrics"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/money"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/validation"
)

// Request is a partial pricing update: nil fields keep the stored value.
type Request struct {
	ProductID       string           `json:"productId" validate:"required"`
	SellingPrice    *decimal.Decimal `json:"sellingPrice"`
	OfferPercentage *decimal.Decimal `json:"offerPercentage"`
}

// HistoryRecorder is the best-effort audit hook called before the product write.
type HistoryRecorder interface {
	RecordIfChanged(ctx context.Context, req record_price_history.Request)
}

// Interactor reprices a product using the Golden Mutation Pattern.
type Interactor struct {
	ProductRepo contracts.ProductRepo
	OutboxRepo  contracts.OutboxRepo
	Committer   contracts.Committer
	ReadModel   contracts.ReadModel
	Recorder    HistoryRecorder
	Pricer      domain.Pricer
	Clock       clock.Clock
	Logger      *logger.Logger
	Metrics     *metrics.Ledger
}

func NewInteractor(
	repo contracts.ProductRepo,
	outboxRepo contracts.OutboxRepo,
	c contracts.Committer,
	readModel contracts.ReadModel,
	recorder HistoryRecorder,
	pricer domain.Pricer,
	clk clock.Clock,
	log *logger.Logger,
	m *metrics.Ledger,
) *Interactor {
	if log == nil {
		log = logger.Nop()
	}
	return &Interactor{
		ProductRepo: repo,
		OutboxRepo:  outboxRepo,
		Committer:   c,
		ReadModel:   readModel,
		Recorder:    recorder,
		Pricer:      pricer,
		Clock:       clk,
		Logger:      log,
		Metrics:     m,
	}
}

// Execute returns (nil, nil) when the product does not exist. A failed final
// write is reported as *domain.UpdateFailedError.
func (it *Interactor) Execute(ctx context.Context, req Request) (*dto.ProductDTO, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	ctx = it.Logger.WithProductID(ctx, req.ProductID)
	now := it.Clock.Now()

	// 1. Load the current state
	current, err := it.ReadModel.GetProduct(ctx, req.ProductID)
	if errors.Is(err, domain.ErrProductNotFound) {
		it.Metrics.ProductUpdate(metrics.UpdateResultNotFound)
		it.Logger.Info(ctx, "product to update not found")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load product %s: %w", req.ProductID, err)
	}
	product := current.ToProduct()

	// 2. Omitted fields fall back to stored values
	prevSelling := product.SellingPrice()
	prevPct := product.StoredOfferPercentage()

	newSelling := prevSelling
	if req.SellingPrice != nil {
		newSelling = money.New(*req.SellingPrice)
	}
	newPct := product.OfferPercentage()
	if req.OfferPercentage != nil {
		newPct = *req.OfferPercentage
	}

	// 3. Recompute the pricing triple in memory; invalid input stops here
	if err := product.Reprice(newSelling, newPct, it.Pricer, now); err != nil {
		return nil, err
	}

	// 4. Audit the previous state before the product is written
	repricedPct := product.OfferPercentage()
	it.Recorder.RecordIfChanged(ctx, record_price_history.Request{
		ProductID:               product.ID(),
		PreviousSellingPrice:    prevSelling,
		PreviousOfferPercentage: prevPct,
		NewSellingPrice:         product.SellingPrice(),
		NewOfferPercentage:      &repricedPct,
	})

	// 5. Collect mutations
	plan := committer.NewPlan()
	plan.Add(it.ProductRepo.UpdateMut(product))
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, product.DomainEvents(), now); err != nil {
		return nil, err
	}

	// 6. Apply via committer
	if err := it.Committer.Apply(ctx, plan); err != nil {
		it.Metrics.ProductUpdate(metrics.UpdateResultFailed)
		it.Logger.Error(ctx, "product update failed", err)
		return nil, &domain.UpdateFailedError{ProductID: product.ID(), Err: err}
	}

	it.Metrics.ProductUpdate(metrics.UpdateResultUpdated)
	return dto.FromProduct(product), nil
}
