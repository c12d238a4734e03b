package acceptance

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	productservices "github.com/murkotick/storefront-ledger-service/internal/app/product/domain/services"
	productdto "github.com/murkotick/storefront-ledger-service/internal/app/product/dto"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/usecases/record_price_history"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/usecases/update_product"
	saledomain "github.com/murkotick/storefront-ledger-service/internal/app/sale/domain"
	saleservices "github.com/murkotick/storefront-ledger-service/internal/app/sale/domain/services"
	saledto "github.com/murkotick/storefront-ledger-service/internal/app/sale/dto"
	"github.com/murkotick/storefront-ledger-service/internal/app/sale/usecases/create_sale"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/clock"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/money"
	"github.com/murkotick/storefront-ledger-service/internal/testsupport/memstore"
)

type storefrontContext struct {
	store  *memstore.Store
	clk    *clock.FakeClock
	calc   *productservices.PricingCalculator
	policy saleservices.OwnerPolicy

	offer     money.Money
	offerErr  error
	updated   *productdto.ProductDTO
	updateErr error
	sale      *saledto.SaleDTO
	saleErr   error
}

func (c *storefrontContext) reset() {
	c.store = memstore.New()
	c.clk = clock.NewFake(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	c.calc = productservices.NewPricingCalculator()
	c.policy = saleservices.FirstLineOwner{}
	c.offer = money.Zero()
	c.offerErr = nil
	c.updated = nil
	c.updateErr = nil
	c.sale = nil
	c.saleErr = nil
}

func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("bad decimal %q: %w", s, err)
	}
	return d, nil
}

func sameAmount(want string, got money.Money) error {
	w, err := parseDecimal(want)
	if err != nil {
		return err
	}
	if !got.Decimal().Equal(w) {
		return fmt.Errorf("expected %s, got %s", want, got.Exact())
	}
	return nil
}

// Pricing

func (c *storefrontContext) iComputeTheOfferPriceAt(selling, pct string) error {
	s, err := parseDecimal(selling)
	if err != nil {
		return err
	}
	p, err := parseDecimal(pct)
	if err != nil {
		return err
	}
	c.offer, c.offerErr = c.calc.ComputeOfferPrice(money.New(s), &p)
	return nil
}

func (c *storefrontContext) iComputeTheOfferPriceWithNoPercentage(selling string) error {
	s, err := parseDecimal(selling)
	if err != nil {
		return err
	}
	c.offer, c.offerErr = c.calc.ComputeOfferPrice(money.New(s), nil)
	return nil
}

func (c *storefrontContext) theOfferPriceIs(want string) error {
	if c.offerErr != nil {
		return fmt.Errorf("unexpected error: %v", c.offerErr)
	}
	return sameAmount(want, c.offer)
}

func (c *storefrontContext) theComputationIsRejected() error {
	if c.offerErr == nil {
		return errors.New("expected the computation to fail")
	}
	return nil
}

// Catalog

func (c *storefrontContext) seedProduct(id, owner, selling string, pct *decimal.Decimal) error {
	s, err := parseDecimal(selling)
	if err != nil {
		return err
	}
	offer, err := c.calc.ComputeOfferPrice(money.New(s), pct)
	if err != nil {
		return err
	}
	c.store.SeedProduct(&productdto.ProductDTO{
		ProductID:       id,
		CustomerID:      owner,
		Name:            "product " + id,
		Category:        "general",
		SellingPrice:    money.New(s),
		OfferPercentage: pct,
		OfferPrice:      offer,
		CreatedAt:       c.clk.Now(),
		UpdatedAt:       c.clk.Now(),
	})
	return nil
}

func (c *storefrontContext) aProductWithOfferPercentage(id, owner, selling, pct string) error {
	p, err := parseDecimal(pct)
	if err != nil {
		return err
	}
	return c.seedProduct(id, owner, selling, &p)
}

func (c *storefrontContext) aProductWithNoOfferPercentage(id, owner, selling string) error {
	return c.seedProduct(id, owner, selling, nil)
}

func (c *storefrontContext) thePriceHistoryStoreIsFailing() error {
	c.store.FailCommitsContaining(memstore.KindHistoryInsert, errors.New("history store unavailable"))
	return nil
}

// Updates

func (c *storefrontContext) update(req update_product.Request) {
	recorder := record_price_history.NewRecorder(c.store.HistoryRepo(), c.store, c.calc, c.clk, nil, nil)
	it := update_product.NewInteractor(c.store.ProductRepo(), c.store.OutboxRepo(), c.store, c.store, recorder, c.calc, c.clk, nil, nil)
	c.clk.Advance(time.Second)
	c.updated, c.updateErr = it.Execute(context.Background(), req)
}

func (c *storefrontContext) iUpdateSellingPrice(id, selling string) error {
	s, err := parseDecimal(selling)
	if err != nil {
		return err
	}
	c.update(update_product.Request{ProductID: id, SellingPrice: &s})
	return nil
}

func (c *storefrontContext) iUpdateOfferPercentage(id, pct string) error {
	p, err := parseDecimal(pct)
	if err != nil {
		return err
	}
	c.update(update_product.Request{ProductID: id, OfferPercentage: &p})
	return nil
}

func (c *storefrontContext) theUpdateSucceeds() error {
	if c.updateErr != nil {
		return fmt.Errorf("unexpected error: %v", c.updateErr)
	}
	if c.updated == nil {
		return errors.New("expected an updated product, got not found")
	}
	return nil
}

func (c *storefrontContext) theUpdateReportsNotFound() error {
	if c.updateErr != nil {
		return fmt.Errorf("expected a soft miss, got error: %v", c.updateErr)
	}
	if c.updated != nil {
		return errors.New("expected no product")
	}
	return nil
}

func (c *storefrontContext) theUpdateIsRejected() error {
	if c.updateErr == nil {
		return errors.New("expected the update to fail")
	}
	return nil
}

func (c *storefrontContext) product(id string) (*productdto.ProductDTO, error) {
	p, ok := c.store.Product(id)
	if !ok {
		return nil, fmt.Errorf("product %s not stored", id)
	}
	return p, nil
}

func (c *storefrontContext) productHasOfferPrice(id, want string) error {
	p, err := c.product(id)
	if err != nil {
		return err
	}
	return sameAmount(want, p.OfferPrice)
}

func (c *storefrontContext) productHasSellingPrice(id, want string) error {
	p, err := c.product(id)
	if err != nil {
		return err
	}
	return sameAmount(want, p.SellingPrice)
}

func (c *storefrontContext) productHasHistoryEntries(id string, n int) error {
	if got := len(c.store.History(id)); got != n {
		return fmt.Errorf("expected %d history entries, got %d", n, got)
	}
	return nil
}

func (c *storefrontContext) historyEntryHas(pos int, id, price, pct string) error {
	history := c.store.History(id)
	if pos < 1 || pos > len(history) {
		return fmt.Errorf("no history entry %d for %s", pos, id)
	}
	entry := history[pos-1]
	if err := sameAmount(price, entry.Price); err != nil {
		return err
	}
	return sameAmount(pct, money.New(entry.OfferPercentage))
}

// Sales

func (c *storefrontContext) theSaleOwnerPolicyIs(name string) error {
	policy, err := saleservices.PolicyByName(name)
	if err != nil {
		return err
	}
	c.policy = policy
	return nil
}

func (c *storefrontContext) theLedgerStoreRejectsCommits() error {
	c.store.FailCommitsContaining(memstore.KindSaleLineInsert, errors.New("transaction aborted"))
	return nil
}

func (c *storefrontContext) iRecordASaleWithLines(table *godog.Table) error {
	lines := make([]create_sale.Line, 0, len(table.Rows))
	for i, row := range table.Rows {
		if i == 0 {
			continue
		}
		qty, err := strconv.ParseInt(row.Cells[1].Value, 10, 64)
		if err != nil {
			return err
		}
		lines = append(lines, create_sale.Line{ProductID: row.Cells[0].Value, QuantitySold: qty})
	}

	it := create_sale.NewInteractor(c.store, c.store.SaleRepo(), c.store.OutboxRepo(), c.store,
		saleservices.NewAssembler(c.policy), c.clk, nil, nil)
	c.sale, c.saleErr = it.Execute(context.Background(), create_sale.Request{
		StoreID:     "store-1",
		PaymentType: "CASH",
		SaleType:    string(saledomain.SaleTypeOffline),
		Lines:       lines,
	})
	return nil
}

func (c *storefrontContext) theSaleTotalIs(want string) error {
	if c.saleErr != nil {
		return fmt.Errorf("unexpected error: %v", c.saleErr)
	}
	return sameAmount(want, c.sale.TotalAmount)
}

func (c *storefrontContext) theSaleIsAttributedTo(owner string) error {
	if c.saleErr != nil {
		return fmt.Errorf("unexpected error: %v", c.saleErr)
	}
	if c.sale.CustomerID != owner {
		return fmt.Errorf("expected owner %s, got %s", owner, c.sale.CustomerID)
	}
	return nil
}

func (c *storefrontContext) theSaleIsRejectedNaming(productID string) error {
	var rie *saledomain.ReferentialIntegrityError
	if !errors.As(c.saleErr, &rie) {
		return fmt.Errorf("expected a referential integrity error, got %v", c.saleErr)
	}
	for _, id := range rie.ProductIDs {
		if id == productID {
			return nil
		}
	}
	return fmt.Errorf("error does not name %s: %v", productID, rie.ProductIDs)
}

func (c *storefrontContext) theSaleIsRejectedForMixedOwners() error {
	if !errors.Is(c.saleErr, saledomain.ErrMixedOwners) {
		return fmt.Errorf("expected mixed owners, got %v", c.saleErr)
	}
	return nil
}

func (c *storefrontContext) theSaleFails() error {
	if c.saleErr == nil {
		return errors.New("expected the sale to fail")
	}
	return nil
}

func (c *storefrontContext) noSalesAreStored() error {
	if n := len(c.store.Sales()); n != 0 {
		return fmt.Errorf("expected no sales, got %d", n)
	}
	if n := c.store.SaleLineCount(); n != 0 {
		return fmt.Errorf("expected no sale lines, got %d", n)
	}
	return nil
}

func (c *storefrontContext) salesWithLinesAreStored(sales, lines int) error {
	if n := len(c.store.Sales()); n != sales {
		return fmt.Errorf("expected %d sales, got %d", sales, n)
	}
	if n := c.store.SaleLineCount(); n != lines {
		return fmt.Errorf("expected %d sale lines, got %d", lines, n)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &storefrontContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step(`^I compute the offer price of "([^"]*)" at "([^"]*)" percent$`, tc.iComputeTheOfferPriceAt)
	ctx.Step(`^I compute the offer price of "([^"]*)" with no percentage$`, tc.iComputeTheOfferPriceWithNoPercentage)
	ctx.Step(`^the offer price is "([^"]*)"$`, tc.theOfferPriceIs)
	ctx.Step(`^the computation is rejected$`, tc.theComputationIsRejected)

	ctx.Step(`^a product "([^"]*)" owned by "([^"]*)" with selling price "([^"]*)" and offer percentage "([^"]*)"$`, tc.aProductWithOfferPercentage)
	ctx.Step(`^a product "([^"]*)" owned by "([^"]*)" with selling price "([^"]*)" and no offer percentage$`, tc.aProductWithNoOfferPercentage)
	ctx.Step(`^the price history store is failing$`, tc.thePriceHistoryStoreIsFailing)

	ctx.Step(`^I update product "([^"]*)" with selling price "([^"]*)"$`, tc.iUpdateSellingPrice)
	ctx.Step(`^I update product "([^"]*)" with offer percentage "([^"]*)"$`, tc.iUpdateOfferPercentage)
	ctx.Step(`^the update succeeds$`, tc.theUpdateSucceeds)
	ctx.Step(`^the update reports not found$`, tc.theUpdateReportsNotFound)
	ctx.Step(`^the update is rejected$`, tc.theUpdateIsRejected)
	ctx.Step(`^product "([^"]*)" has offer price "([^"]*)"$`, tc.productHasOfferPrice)
	ctx.Step(`^product "([^"]*)" has selling price "([^"]*)"$`, tc.productHasSellingPrice)
	ctx.Step(`^product "([^"]*)" has (\d+) price history entries$`, tc.productHasHistoryEntries)
	ctx.Step(`^price history entry (\d+) of "([^"]*)" has price "([^"]*)" and offer percentage "([^"]*)"$`, tc.historyEntryHas)

	ctx.Step(`^the sale owner policy is "([^"]*)"$`, tc.theSaleOwnerPolicyIs)
	ctx.Step(`^the ledger store rejects commits$`, tc.theLedgerStoreRejectsCommits)
	ctx.Step(`^I record a sale with lines:$`, tc.iRecordASaleWithLines)
	ctx.Step(`^the sale total is "([^"]*)"$`, tc.theSaleTotalIs)
	ctx.Step(`^the sale is attributed to "([^"]*)"$`, tc.theSaleIsAttributedTo)
	ctx.Step(`^the sale is rejected naming "([^"]*)"$`, tc.theSaleIsRejectedNaming)
	ctx.Step(`^the sale is rejected for mixed owners$`, tc.theSaleIsRejectedForMixedOwners)
	ctx.Step(`^the sale fails$`, tc.theSaleFails)
	ctx.Step(`^no sales are stored$`, tc.noSalesAreStored)
	ctx.Step(`^(\d+) sale with (\d+) lines is stored$`, tc.salesWithLinesAreStored)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
			Strict:   true,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
