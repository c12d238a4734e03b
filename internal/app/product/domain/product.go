package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/murkotick/storefront-ledger-service/internal/pkg/money"
)

// Field constants for change tracking
const (
	FieldSellingPrice    = "selling_price"
	FieldOfferPercentage = "offer_percentage"
	FieldOfferPrice      = "offer_price"
)

// Pricer derives the offer price of a product. The aggregate never accepts an
// offer price from outside; it always asks the Pricer.
type Pricer interface {
	ComputeOfferPrice(sellingPrice money.Money, offerPercentage *decimal.Decimal) (money.Money, error)
	PriceChanged(prevSelling money.Money, prevPct *decimal.Decimal, newSelling money.Money, newPct *decimal.Decimal) bool
}

// NewProductParams carries everything a caller may set when creating a product.
type NewProductParams struct {
	ID              string
	CustomerID      string
	Name            string
	Description     string
	CostPrice       money.Money
	SellingPrice    money.Money
	OfferPercentage *decimal.Decimal
	Quantity        int64
	BatchID         string
	Category        string
	Weight          decimal.Decimal
	Images          []string
	CustomerRating  *decimal.Decimal
	Expiry          *time.Time
	ManufactureDate *time.Time
}

// Product is the aggregate root of the catalog. Its pricing triple
// (selling price, offer percentage, offer price) is kept consistent by Reprice.
type Product struct {
	id              string
	customerID      string
	name            string
	description     string
	costPrice       money.Money
	sellingPrice    money.Money
	offerPercentage *decimal.Decimal
	offerPrice      money.Money
	quantity        int64
	batchID         string
	category        string
	weight          decimal.Decimal
	images          []string
	customerRating  *decimal.Decimal
	expiry          *time.Time
	manufactureDate *time.Time
	createdAt       time.Time
	updatedAt       time.Time
	changes         *ChangeTracker
	events          []DomainEvent
}

// NewProduct validates params, derives the offer price and records a
// ProductCreatedEvent.
func NewProduct(params NewProductParams, pricer Pricer, now time.Time) (*Product, error) {
	if err := validateProductName(params.Name); err != nil {
		return nil, err
	}
	if err := validateProductCategory(params.Category); err != nil {
		return nil, err
	}
	if strings.TrimSpace(params.CustomerID) == "" {
		return nil, ErrMissingOwner
	}
	if params.CostPrice.IsNegative() {
		return nil, ErrNegativePrice
	}
	if params.Quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	if params.Weight.IsNegative() {
		return nil, ErrNegativeWeight
	}
	if err := validateRating(params.CustomerRating); err != nil {
		return nil, err
	}

	selling := params.SellingPrice.Stored()
	pct := money.RoundNumeric(NormalizePercentage(params.OfferPercentage))
	offer, err := pricer.ComputeOfferPrice(selling, &pct)
	if err != nil {
		return nil, err
	}
	offer = offer.Stored()

	images := params.Images
	if images == nil {
		images = []string{}
	}

	p := &Product{
		id:              params.ID,
		customerID:      params.CustomerID,
		name:            strings.TrimSpace(params.Name),
		description:     strings.TrimSpace(params.Description),
		costPrice:       params.CostPrice.Stored(),
		sellingPrice:    selling,
		offerPercentage: &pct,
		offerPrice:      offer,
		quantity:        params.Quantity,
		batchID:         params.BatchID,
		category:        strings.TrimSpace(params.Category),
		weight:          params.Weight,
		images:          images,
		customerRating:  params.CustomerRating,
		expiry:          params.Expiry,
		manufactureDate: params.ManufactureDate,
		createdAt:       now,
		updatedAt:       now,
		changes:         NewChangeTracker(),
		events:          make([]DomainEvent, 0),
	}

	p.events = append(p.events, &ProductCreatedEvent{
		ProductID:       p.id,
		CustomerID:      p.customerID,
		Name:            p.name,
		SellingPrice:    p.sellingPrice,
		OfferPercentage: pct,
		OfferPrice:      p.offerPrice,
		CreatedAt:       now,
	})

	return p, nil
}

// ReconstructParams is the persisted state of a product.
type ReconstructParams struct {
	NewProductParams
	OfferPrice money.Money
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ReconstructProduct rebuilds a Product from stored state without validation.
// A NULL stored offer percentage stays nil until the next Reprice.
func ReconstructProduct(s ReconstructParams) *Product {
	return &Product{
		id:              s.ID,
		customerID:      s.CustomerID,
		name:            s.Name,
		description:     s.Description,
		costPrice:       s.CostPrice,
		sellingPrice:    s.SellingPrice,
		offerPercentage: s.OfferPercentage,
		offerPrice:      s.OfferPrice,
		quantity:        s.Quantity,
		batchID:         s.BatchID,
		category:        s.Category,
		weight:          s.Weight,
		images:          s.Images,
		customerRating:  s.CustomerRating,
		expiry:          s.Expiry,
		manufactureDate: s.ManufactureDate,
		createdAt:       s.CreatedAt,
		updatedAt:       s.UpdatedAt,
		changes:         NewChangeTracker(),
		events:          make([]DomainEvent, 0),
	}
}

// Getters

func (p *Product) ID() string {
	return p.id
}

func (p *Product) CustomerID() string {
	return p.customerID
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) CostPrice() money.Money {
	return p.costPrice
}

func (p *Product) SellingPrice() money.Money {
	return p.sellingPrice
}

func (p *Product) OfferPrice() money.Money {
	return p.offerPrice
}

func (p *Product) Quantity() int64 {
	return p.quantity
}

func (p *Product) BatchID() string {
	return p.batchID
}

func (p *Product) Category() string {
	return p.category
}

func (p *Product) Weight() decimal.Decimal {
	return p.weight
}

func (p *Product) Images() []string {
	return p.images
}

func (p *Product) CustomerRating() *decimal.Decimal {
	return p.customerRating
}

func (p *Product) Expiry() *time.Time {
	return p.expiry
}

func (p *Product) ManufactureDate() *time.Time {
	return p.manufactureDate
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Product) Changes() *ChangeTracker {
	return p.changes
}

func (p *Product) DomainEvents() []DomainEvent {
	return p.events
}

// StoredOfferPercentage returns the percentage as stored, nil for NULL.
func (p *Product) StoredOfferPercentage() *decimal.Decimal {
	return p.offerPercentage
}

// OfferPercentage returns the stored percentage, 0 when none was stored.
func (p *Product) OfferPercentage() decimal.Decimal {
	return NormalizePercentage(p.offerPercentage)
}

// Business Methods

// Reprice sets a new selling price and offer percentage and recomputes the
// offer price. The pricing columns are always marked dirty so the stored
// triple is rewritten consistently; PriceChangedEvent is recorded only when
// the selling price or percentage actually differ from the stored ones.
// All three values are kept at NUMERIC scale, as a later read returns them.
func (p *Product) Reprice(sellingPrice money.Money, offerPercentage decimal.Decimal, pricer Pricer, now time.Time) error {
	sellingPrice = sellingPrice.Stored()
	offerPercentage = money.RoundNumeric(offerPercentage)
	offer, err := pricer.ComputeOfferPrice(sellingPrice, &offerPercentage)
	if err != nil {
		return err
	}
	offer = offer.Stored()

	changed := pricer.PriceChanged(p.sellingPrice, p.offerPercentage, sellingPrice, &offerPercentage)
	oldSelling := p.sellingPrice
	oldPct := p.OfferPercentage()
	oldOffer := p.offerPrice

	p.sellingPrice = sellingPrice
	p.offerPercentage = &offerPercentage
	p.offerPrice = offer
	p.changes.MarkDirty(FieldSellingPrice, FieldOfferPercentage, FieldOfferPrice)
	p.updatedAt = now

	if changed {
		p.events = append(p.events, &PriceChangedEvent{
			ProductID:          p.id,
			OldSellingPrice:    oldSelling,
			OldOfferPercentage: oldPct,
			OldOfferPrice:      oldOffer,
			NewSellingPrice:    sellingPrice,
			NewOfferPercentage: offerPercentage,
			NewOfferPrice:      offer,
			ChangedAt:          now,
		})
	}

	return nil
}

// ClearEvents clears the accumulated domain events.
func (p *Product) ClearEvents() {
	p.events = make([]DomainEvent, 0)
}

// NormalizePercentage maps an absent percentage to 0. A present zero stays zero.
func NormalizePercentage(pct *decimal.Decimal) decimal.Decimal {
	if pct == nil {
		return decimal.Zero
	}
	return *pct
}

// Validation helpers

func validateProductName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyProductName
	}
	if len(trimmed) > 255 {
		return ErrProductNameTooLong
	}
	return nil
}

func validateProductCategory(category string) error {
	trimmed := strings.TrimSpace(category)
	if trimmed == "" {
		return ErrEmptyProductCategory
	}
	if len(trimmed) > 100 {
		return ErrProductCategoryTooLong
	}
	return nil
}

var maxRating = decimal.NewFromInt(5)

func validateRating(r *decimal.Decimal) error {
	if r == nil {
		return nil
	}
	if r.IsNegative() || r.GreaterThan(maxRating) {
		return ErrInvalidRating
	}
	return nil
}
