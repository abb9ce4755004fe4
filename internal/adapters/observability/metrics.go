package observability

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	ExternalRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "relaygeo", Name: "external_requests_total", Help: "Outbound requests."},
		[]string{"service", "endpoint", "status"},
	)
	ExternalLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "relaygeo", Name: "external_request_duration_seconds",
			Help:    "Outbound request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "endpoint"},
	)
	RelayFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "relaygeo", Name: "relay_fetch_total", Help: "Relay list fetches by outcome."},
		[]string{"outcome"}, // success|malformed|network_error
	)
	TranslationLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "relaygeo", Name: "translation_lookups_total", Help: "City name lookups against the places dataset."},
		[]string{"locale", "result"}, // result: hit|miss|untranslated
	)
	AssetFiles = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "relaygeo", Name: "asset_files_total", Help: "Files handled by the asset integrator."},
		[]string{"action"}, // copied|merge_pending|unexpected
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "relaygeo", Name: "cache_events_total", Help: "Cache hits/misses/sets."},
		[]string{"cache", "event"},
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(ExternalRequests, ExternalLatency, RelayFetches, TranslationLookups, AssetFiles, CacheEvents)
	return reg
}

// WriteTextfile dumps the registry in node-exporter textfile format. An empty
// path disables it.
func WriteTextfile(reg *prometheus.Registry, path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, reg)
}

func ObserveExternal(service, endpoint string, status int, dur time.Duration) {
	ExternalRequests.WithLabelValues(service, endpoint, strconv.Itoa(status)).Inc()
	ExternalLatency.WithLabelValues(service, endpoint).Observe(dur.Seconds())
}

func ObserveFetch(outcome string) { RelayFetches.WithLabelValues(outcome).Inc() }

func ObserveLookup(locale, result string) { TranslationLookups.WithLabelValues(locale, result).Inc() }

func ObserveAsset(action string) { AssetFiles.WithLabelValues(action).Inc() }

func ObserveCache(cache, event string) { // event: hit|miss|set
	CacheEvents.WithLabelValues(cache, event).Inc()
}

func LabelErr(err error) string {
	if err == nil {
		return "none"
	}
	return fmt.Sprintf("%T", err)
}
