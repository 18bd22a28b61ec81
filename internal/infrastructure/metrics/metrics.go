package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cache metrics are labelled by namespace so hit rates can be read per
// endpoint family (homepage, blog, category).
var (
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_cache_hits_total",
		Help: "Number of read requests served from the cache.",
	}, []string{"namespace"})

	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_cache_misses_total",
		Help: "Number of read requests that fell through to the source of truth.",
	}, []string{"namespace"})

	CacheErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_cache_errors_total",
		Help: "Number of cache store operations that failed and were degraded.",
	}, []string{"namespace", "op"})

	ReactionToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_reaction_toggles_total",
		Help: "Number of reaction toggles applied, by target kind and reaction.",
	}, []string{"target", "reaction"})
)
