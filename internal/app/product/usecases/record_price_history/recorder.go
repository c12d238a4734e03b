package record_price_history

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/murkotick/storefront-ledger-service/internal/app/product/contracts"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/domain"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/clock"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/committer"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/logger"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/metrics"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/money"
)

// Request carries the pricing before and after a pending product update.
type Request struct {
	ProductID               string
	PreviousSellingPrice    money.Money
	PreviousOfferPercentage *decimal.Decimal
	NewSellingPrice         money.Money
	NewOfferPercentage      *decimal.Decimal
}

// ChangeDetector decides whether two pricing states differ.
type ChangeDetector interface {
	PriceChanged(prevSelling money.Money, prevPct *decimal.Decimal, newSelling money.Money, newPct *decimal.Decimal) bool
}

// Recorder appends price history entries. Each entry is committed in its own
// plan, separate from the product write it audits.
type Recorder struct {
	HistoryRepo contracts.PriceHistoryRepo
	Committer   contracts.Committer
	Detector    ChangeDetector
	Clock       clock.Clock
	Logger      *logger.Logger
	Metrics     *metrics.Ledger
}

func NewRecorder(repo contracts.PriceHistoryRepo, c contracts.Committer, detector ChangeDetector, clk clock.Clock, log *logger.Logger, m *metrics.Ledger) *Recorder {
	if log == nil {
		log = logger.Nop()
	}
	return &Recorder{
		HistoryRepo: repo,
		Committer:   c,
		Detector:    detector,
		Clock:       clk,
		Logger:      log,
		Metrics:     m,
	}
}

// RecordIfChanged stores the previous pricing when it differs from the new
// one. Write failures are logged and counted, never returned.
func (r *Recorder) RecordIfChanged(ctx context.Context, req Request) {
	if !r.Detector.PriceChanged(req.PreviousSellingPrice, req.PreviousOfferPercentage, req.NewSellingPrice, req.NewOfferPercentage) {
		return
	}

	if _, err := r.Append(ctx, req.ProductID, req.PreviousSellingPrice, req.PreviousOfferPercentage); err != nil {
		ctx = r.Logger.WithProductID(ctx, req.ProductID)
		r.Logger.Warn(ctx, "price history write failed", err)
	}
}

// Append writes one entry unconditionally and reports the outcome.
func (r *Recorder) Append(ctx context.Context, productID string, price money.Money, offerPercentage *decimal.Decimal) (*domain.PriceHistoryEntry, error) {
	entry := domain.NewPriceHistoryEntry(uuid.New().String(), productID, price, offerPercentage, r.Clock.Now())

	plan := committer.NewPlan()
	plan.Add(r.HistoryRepo.InsertMut(entry))

	if err := r.Committer.Apply(ctx, plan); err != nil {
		r.Metrics.HistoryWrite(metrics.HistoryResultFailed)
		return nil, fmt.Errorf("append price history for %s: %w", productID, err)
	}

	r.Metrics.HistoryWrite(metrics.HistoryResultWritten)
	return entry, nil
}
