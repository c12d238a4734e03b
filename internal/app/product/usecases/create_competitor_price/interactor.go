package create_competitor_price

import (
	"context"

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

type Request struct {
	ProductID      string           `json:"productId" validate:"required"`
	CompanyName    string           `json:"companyName" validate:"required,max=200"`
	Price          decimal.Decimal  `json:"price"`
	Freight        decimal.Decimal  `json:"freight"`
	CustomerRating *decimal.Decimal `json:"customerRating"`
}

// Interactor stores a competitor quote for an existing product.
type Interactor struct {
	Repo       contracts.CompetitorPriceRepo
	OutboxRepo contracts.OutboxRepo
	Committer  contracts.Committer
	ReadModel  contracts.ReadModel
	Clock      clock.Clock
}

func NewInteractor(repo contracts.CompetitorPriceRepo, outboxRepo contracts.OutboxRepo, c contracts.Committer, readModel contracts.ReadModel, clk clock.Clock) *Interactor {
	return &Interactor{
		Repo:       repo,
		OutboxRepo: outboxRepo,
		Committer:  c,
		ReadModel:  readModel,
		Clock:      clk,
	}
}

// Execute returns domain.ErrProductNotFound when the product does not exist.
func (it *Interactor) Execute(ctx context.Context, req Request) (*dto.CompetitorPriceDTO, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if _, err := it.ReadModel.GetProduct(ctx, req.ProductID); err != nil {
		return nil, err
	}

	now := it.Clock.Now()
	quote, err := domain.NewCompetitorPrice(uuid.New().String(), req.ProductID, req.CompanyName,
		money.New(req.Price), money.New(req.Freight), req.CustomerRating, now)
	if err != nil {
		return nil, err
	}

	plan := committer.NewPlan()
	plan.Add(it.Repo.InsertMut(quote))
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, quote.DomainEvents(), now); err != nil {
		return nil, err
	}

	if err := it.Committer.Apply(ctx, plan); err != nil {
		return nil, err
	}

	return dto.FromCompetitorPrice(quote), nil
}
