// Package telemetry exposes interaction counters to Prometheus.
package telemetry

import (
	"explore3d/internal/interaction"
	"explore3d/internal/inventory"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "explore3d"

// Label names
const (
	LabelPhase = "phase"
	LabelKind  = "kind"
)

// Metrics implements interaction.Metrics and also tracks inventory size and
// asset failures.
type Metrics struct {
	FocusChanges       prometheus.Counter
	GestureTransitions *prometheus.CounterVec
	Interactions       *prometheus.CounterVec
	InventorySize      prometheus.Gauge
	AssetFailures      prometheus.Counter
}

// New registers the collectors with reg. A nil reg uses the default
// registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	m := &Metrics{
		FocusChanges: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "focus_changes_total",
			Help:      "Number of times the focused target changed.",
		}),
		GestureTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gesture_transitions_total",
			Help:      "Long-press phase changes, by phase entered.",
		}, []string{LabelPhase}),
		Interactions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "interactions_total",
			Help:      "Completed interactions, by kind.",
		}, []string{LabelKind}),
		InventorySize: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "inventory_items",
			Help:      "Items currently held.",
		}),
		AssetFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "asset_load_failures_total",
			Help:      "Slot images that failed to load.",
		}),
	}
	for _, kind := range []string{interaction.KindInstant, interaction.KindLongPress, interaction.KindDestroy} {
		m.Interactions.WithLabelValues(kind)
	}
	return m
}

func (m *Metrics) FocusChanged() {
	m.FocusChanges.Inc()
}

func (m *Metrics) GestureTransition(_, to interaction.Phase) {
	m.GestureTransitions.WithLabelValues(to.String()).Inc()
}

func (m *Metrics) Interacted(kind string) {
	m.Interactions.WithLabelValues(kind).Inc()
}

// InventoryChanged is an inventory.Registry watcher.
func (m *Metrics) InventoryChanged(c inventory.Change) {
	m.InventorySize.Set(float64(c.Size))
}

// AssetFailed matches assets.Loader.OnFailure.
func (m *Metrics) AssetFailed(string, error) {
	m.AssetFailures.Inc()
}

var _ interaction.Metrics = (*Metrics)(nil)
