package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "swapquote"

// Metrics holds the service collectors on a private registry.
type Metrics struct {
	reg *prometheus.Registry

	quotes  *prometheus.CounterVec
	impact  prometheus.Histogram
	imports *prometheus.CounterVec
	swaps   *prometheus.CounterVec
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		quotes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "quote",
			Name:      "computed_total",
			Help:      "Quotes computed, by outcome and price impact band.",
		}, []string{"outcome", "band"}),
		impact: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "quote",
			Name:      "price_impact_percent",
			Help:      "Price impact of non-empty market quotes.",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 99},
		}),
		imports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "registry",
			Name:      "imports_total",
			Help:      "Custom token imports, by outcome.",
		}, []string{"outcome"}),
		swaps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "swap",
			Name:      "committed_total",
			Help:      "Simulated swap commits, by outcome.",
		}, []string{"outcome"}),
	}
	m.reg.MustRegister(m.quotes, m.impact, m.imports, m.swaps)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}

// ObserveQuote records a quote. band is empty for failed quotes.
func (m *Metrics) ObserveQuote(outcome, band string, impactPercent float64, market bool) {
	m.quotes.WithLabelValues(outcome, band).Inc()
	if market {
		m.impact.Observe(impactPercent)
	}
}

// ObserveImport records a custom token import.
func (m *Metrics) ObserveImport(outcome string) {
	m.imports.WithLabelValues(outcome).Inc()
}

// ObserveSwap records a swap commit.
func (m *Metrics) ObserveSwap(outcome string) {
	m.swaps.WithLabelValues(outcome).Inc()
}
