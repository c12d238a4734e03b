package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "storefront"

// Update outcomes recorded by the product updater.
const (
	UpdateResultUpdated  = "updated"
	UpdateResultNotFound = "not_found"
	UpdateResultFailed   = "failed"
)

// History write outcomes recorded by the price history recorder.
const (
	HistoryResultWritten = "written"
	HistoryResultFailed  = "failed"
)

// Ledger holds the counters for the pricing and sales paths. A nil *Ledger
// (or one built with a nil registerer) is valid and records nothing.
type Ledger struct {
	salesCreated   prometheus.Counter
	saleRejections *prometheus.CounterVec
	saleAmount     prometheus.Counter
	updates        *prometheus.CounterVec
	historyWrites  *prometheus.CounterVec
}

// NewLedger registers the ledger metrics on reg.
func NewLedger(reg prometheus.Registerer) *Ledger {
	if reg == nil {
		return &Ledger{}
	}
	l := &Ledger{
		salesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_created_total",
			Help:      "Sales committed with all of their lines.",
		}),
		saleRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sale_rejections_total",
			Help:      "Sales rejected before or during the atomic write.",
		}, []string{"reason"}),
		saleAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sale_amount_total",
			Help:      "Sum of committed sale totals.",
		}),
		updates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "product_price_updates_total",
			Help:      "Product price updates by outcome.",
		}, []string{"result"}),
		historyWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "price_history_writes_total",
			Help:      "Best-effort price history writes by outcome.",
		}, []string{"result"}),
	}
	reg.MustRegister(l.salesCreated, l.saleRejections, l.saleAmount, l.updates, l.historyWrites)
	return l
}

// SaleCreated counts a committed sale and adds its total.
func (l *Ledger) SaleCreated(total float64) {
	if l == nil || l.salesCreated == nil {
		return
	}
	l.salesCreated.Inc()
	if total > 0 {
		l.saleAmount.Add(total)
	}
}

func (l *Ledger) SaleRejected(reason string) {
	if l == nil || l.saleRejections == nil {
		return
	}
	l.saleRejections.WithLabelValues(normalizeLabel(reason)).Inc()
}

func (l *Ledger) ProductUpdate(result string) {
	if l == nil || l.updates == nil {
		return
	}
	l.updates.WithLabelValues(normalizeLabel(result)).Inc()
}

func (l *Ledger) HistoryWrite(result string) {
	if l == nil || l.historyWrites == nil {
		return
	}
	l.historyWrites.WithLabelValues(normalizeLabel(result)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
