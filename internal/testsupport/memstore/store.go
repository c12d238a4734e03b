// Package memstore is an in-memory stand-in for the Spanner catalog and
// ledger. Repositories return real *spanner.Mutation values as handles to
// staged operations; Apply runs every operation of a plan or none of them.
package memstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"cloud.google.com/go/spanner"

	productdomain "github.com/murkotick/storefront-ledger-service/internal/app/product/domain"
	productdto "github.com/murkotick/storefront-ledger-service/internal/app/product/dto"
	saledomain "github.com/murkotick/storefront-ledger-service/internal/app/sale/domain"
	saledto "github.com/murkotick/storefront-ledger-service/internal/app/sale/dto"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/committer"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/outbox"
)

// Operation kinds passed to a commit hook.
const (
	KindProductInsert    = "products.insert"
	KindProductUpdate    = "products.update"
	KindHistoryInsert    = "price_history.insert"
	KindCompetitorInsert = "competitor_prices.insert"
	KindSaleInsert       = "sales.insert"
	KindSaleLineInsert   = "sale_lines.insert"
	KindOutboxInsert     = "outbox_events.insert"
)

// ErrUnknownMutation is returned when a plan holds a mutation this store did
// not stage.
var ErrUnknownMutation = errors.New("memstore: mutation was not staged by this store")

// CommitHook inspects the kinds of a plan before it is applied. A non-nil
// error aborts the whole plan.
type CommitHook func(kinds []string) error

type op struct {
	kind  string
	check func() error
	apply func()
}

type Store struct {
	mu sync.Mutex

	products  map[string]*productdto.ProductDTO
	history   []*productdto.PriceHistoryDTO
	quotes    []*productdto.CompetitorPriceDTO
	sales     []*saledto.SaleDTO
	saleIndex map[string]*saledto.SaleDTO
	events    []*outbox.Event

	staged  map[*spanner.Mutation]op
	hook    CommitHook
	readErr error
	commits int
}

func New() *Store {
	return &Store{
		products:  make(map[string]*productdto.ProductDTO),
		saleIndex: make(map[string]*saledto.SaleDTO),
		staged:    make(map[*spanner.Mutation]op),
	}
}

// OnCommit installs a hook consulted by every Apply.
func (s *Store) OnCommit(h CommitHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hook = h
}

// FailCommitsContaining aborts every plan that holds an operation of kind.
func (s *Store) FailCommitsContaining(kind string, err error) {
	s.OnCommit(func(kinds []string) error {
		for _, k := range kinds {
			if k == kind {
				return err
			}
		}
		return nil
	})
}

// FailReads makes every read return err until called with nil.
func (s *Store) FailReads(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readErr = err
}

func (s *Store) stage(kind string, check func() error, apply func()) *spanner.Mutation {
	m := spanner.Insert("memstore", []string{"kind"}, []interface{}{kind})
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staged[m] = op{kind: kind, check: check, apply: apply}
	return m
}

// Apply satisfies the committer contract of both contexts.
func (s *Store) Apply(_ context.Context, plan *committer.Plan) error {
	if plan == nil || plan.IsEmpty() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ops := make([]op, 0, plan.Len())
	kinds := make([]string, 0, plan.Len())
	for _, m := range plan.Mutations() {
		o, ok := s.staged[m]
		if !ok {
			return ErrUnknownMutation
		}
		delete(s.staged, m)
		ops = append(ops, o)
		kinds = append(kinds, o.kind)
	}

	if s.hook != nil {
		if err := s.hook(kinds); err != nil {
			return err
		}
	}
	for _, o := range ops {
		if o.check == nil {
			continue
		}
		if err := o.check(); err != nil {
			return err
		}
	}
	for _, o := range ops {
		o.apply()
	}
	s.commits++
	return nil
}

// Commits counts successfully applied plans.
func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

// SeedProduct stores p directly, bypassing plans.
func (s *Store) SeedProduct(p *productdto.ProductDTO) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.products[p.ProductID] = &cp
}

// Product reads p without read-error injection.
func (s *Store) Product(id string) (*productdto.ProductDTO, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil, false
	}
	cp := *p
	return &cp, true
}

func (s *Store) History(productID string) []*productdto.PriceHistoryDTO {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.historyOf(productID)
}

func (s *Store) historyOf(productID string) []*productdto.PriceHistoryDTO {
	out := make([]*productdto.PriceHistoryDTO, 0)
	for _, h := range s.history {
		if h.ProductID == productID {
			cp := *h
			out = append(out, &cp)
		}
	}
	return out
}

func (s *Store) CompetitorPrices() []*productdto.CompetitorPriceDTO {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*productdto.CompetitorPriceDTO(nil), s.quotes...)
}

// Sales returns every stored sale header with its lines.
func (s *Store) Sales() []*saledto.SaleDTO {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSales(s.sales)
}

// SaleLineCount counts line rows across all sales.
func (s *Store) SaleLineCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, sale := range s.sales {
		n += len(sale.Lines)
	}
	return n
}

func (s *Store) OutboxEvents() []*outbox.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*outbox.Event(nil), s.events...)
}

func cloneSales(in []*saledto.SaleDTO) []*saledto.SaleDTO {
	out := make([]*saledto.SaleDTO, 0, len(in))
	for _, sale := range in {
		cp := *sale
		cp.Lines = append([]saledto.SaleLineDTO(nil), sale.Lines...)
		out = append(out, &cp)
	}
	return out
}

// Product read model

func (s *Store) GetProduct(_ context.Context, productID string) (*productdto.ProductDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readErr != nil {
		return nil, s.readErr
	}
	p, ok := s.products[productID]
	if !ok {
		return nil, productdomain.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *Store) ListProductsByOwner(_ context.Context, customerID string, limit, offset int) ([]*productdto.ProductDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readErr != nil {
		return nil, s.readErr
	}

	owned := make([]*productdto.ProductDTO, 0)
	for _, p := range s.products {
		if p.CustomerID == customerID {
			cp := *p
			owned = append(owned, &cp)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		if owned[i].CreatedAt.Equal(owned[j].CreatedAt) {
			return owned[i].ProductID < owned[j].ProductID
		}
		return owned[i].CreatedAt.Before(owned[j].CreatedAt)
	})
	return page(owned, limit, offset), nil
}

func (s *Store) ListPriceHistory(_ context.Context, productID string) ([]*productdto.PriceHistoryDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readErr != nil {
		return nil, s.readErr
	}
	return s.historyOf(productID), nil
}

// Sale read side

func (s *Store) GetPricingByIDs(_ context.Context, productIDs []string) (map[string]saledomain.CatalogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readErr != nil {
		return nil, s.readErr
	}

	out := make(map[string]saledomain.CatalogEntry, len(productIDs))
	for _, id := range productIDs {
		if p, ok := s.products[id]; ok {
			out[id] = saledomain.CatalogEntry{ProductID: id, OfferPrice: p.OfferPrice, CustomerID: p.CustomerID}
		}
	}
	return out, nil
}

func (s *Store) ListSalesByCustomer(_ context.Context, customerID string, limit, offset int) ([]*saledto.SaleDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readErr != nil {
		return nil, s.readErr
	}

	owned := make([]*saledto.SaleDTO, 0)
	for _, sale := range s.sales {
		if sale.CustomerID == customerID {
			owned = append(owned, sale)
		}
	}
	return page(cloneSales(owned), limit, offset), nil
}

func (s *Store) CountSalesByCustomer(_ context.Context, customerID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readErr != nil {
		return 0, s.readErr
	}

	var n int64
	for _, sale := range s.sales {
		if sale.CustomerID == customerID {
			n++
		}
	}
	return n, nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return items[:0]
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func errMissingRow(table, key string) error {
	return fmt.Errorf("memstore: %s row %q not found", table, key)
}

func errDuplicateRow(table, key string) error {
	return fmt.Errorf("memstore: %s row %q already exists", table, key)
}
