// Package metrics defines the domain counters exported at /metrics next to
// the HTTP metrics collected by fiberprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "amenitydb"

var (
	// ReviewWrites counts review mutations by operation and outcome
	ReviewWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "review_writes_total",
		Help:      "Review create, update, delete and upsert calls by outcome.",
	}, []string{"operation", "outcome"})

	// CompositeRollbacks counts composite writes that were rolled back
	CompositeRollbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "composite_rollbacks_total",
		Help:      "Multi-row writes rolled back as a unit.",
	}, []string{"operation"})

	// TagAttachments counts tag attach attempts, split into attached and already attached
	TagAttachments = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tag_attachments_total",
		Help:      "Amenity tag attachments by result.",
	}, []string{"result"})
)

// Outcome maps an error to the outcome label used by the counters
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
