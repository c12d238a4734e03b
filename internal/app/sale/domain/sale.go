package domain

import (
	"time"

	"github.com/murkotick/storefront-ledger-service/internal/pkg/money"
)

// SaleType is the channel a sale went through.
type SaleType string

const (
	SaleTypeOnline  SaleType = "ONLINE"
	SaleTypeOffline SaleType = "OFFLINE"
)

// LineRequest is a caller-supplied line. It never carries a price.
type LineRequest struct {
	ProductID    string
	QuantitySold int64
}

// CatalogEntry is the authoritative pricing projection of a product at
// resolution time.
type CatalogEntry struct {
	ProductID  string
	OfferPrice money.Money
	CustomerID string
}

// Header holds the caller-supplied sale attributes.
type Header struct {
	UserID             *string
	StoreID            string
	Address            string
	PaymentType        string
	SaleType           SaleType
	CumulativeDiscount money.Money
	FreightPrice       money.Money
}

// Line is a resolved sale line: the unit price comes from the catalog.
type Line struct {
	lineNo       int64
	productID    string
	quantitySold int64
	sellingPrice money.Money
}

func NewLine(lineNo int64, productID string, quantitySold int64, sellingPrice money.Money) Line {
	return Line{lineNo: lineNo, productID: productID, quantitySold: quantitySold, sellingPrice: sellingPrice}
}

func (l Line) LineNo() int64 {
	return l.lineNo
}

func (l Line) ProductID() string {
	return l.productID
}

func (l Line) QuantitySold() int64 {
	return l.quantitySold
}

func (l Line) SellingPrice() money.Money {
	return l.sellingPrice
}

// Amount is sellingPrice * quantitySold.
func (l Line) Amount() money.Money {
	return l.sellingPrice.MultiplyByQuantity(l.quantitySold)
}

// Sale is an immutable ledger entry: a header plus its ordered lines.
type Sale struct {
	id          string
	customerID  string
	header      Header
	lines       []Line
	totalAmount money.Money
	saleDate    time.Time
	events      []DomainEvent
}

// NewSale builds a sale whose total is the sum of its line amounts, in line
// order. The caller has already resolved prices and attributed the customer.
func NewSale(id, customerID string, header Header, lines []Line, saleDate time.Time) (*Sale, error) {
	if len(lines) == 0 {
		return nil, ErrEmptySale
	}

	total := money.Zero()
	for _, l := range lines {
		total = total.Add(l.Amount())
	}

	s := &Sale{
		id:          id,
		customerID:  customerID,
		header:      header,
		lines:       lines,
		totalAmount: total,
		saleDate:    saleDate,
	}
	s.events = []DomainEvent{&SaleCreatedEvent{
		SaleID:      id,
		CustomerID:  customerID,
		StoreID:     header.StoreID,
		TotalAmount: total,
		LineCount:   len(lines),
		CreatedAt:   saleDate,
	}}
	return s, nil
}

func (s *Sale) ID() string {
	return s.id
}

func (s *Sale) CustomerID() string {
	return s.customerID
}

func (s *Sale) Header() Header {
	return s.header
}

func (s *Sale) Lines() []Line {
	return s.lines
}

func (s *Sale) TotalAmount() money.Money {
	return s.totalAmount
}

func (s *Sale) SaleDate() time.Time {
	return s.saleDate
}

func (s *Sale) DomainEvents() []DomainEvent {
	return s.events
}
