package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PokeAPIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pokedex_pokeapi_requests_total",
		Help: "Total number of requests sent to PokeAPI",
	}, []string{"endpoint", "status"})

	PokeAPIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pokedex_pokeapi_request_duration_seconds",
		Help:    "Duration of PokeAPI requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})

	PagesLoadedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pokedex_pages_loaded_total",
		Help: "Total number of catalog pages merged",
	})

	PageLoadFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pokedex_page_load_failures_total",
		Help: "Total number of failed page loads by stage",
	}, []string{"stage"})

	RecordsAddedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pokedex_records_added_total",
		Help: "Total number of detail records appended to the catalog",
	})

	DuplicatesDiscardedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pokedex_duplicates_discarded_total",
		Help: "Total number of fetched records discarded as duplicates",
	})

	CatalogSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pokedex_catalog_size",
		Help: "Number of records currently in the catalog",
	})
)
