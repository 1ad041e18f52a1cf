// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package asset

import "github.com/prometheus/client_golang/prometheus"

const (
	cacheImageURL = "image_url"
	cachePoemText = "poem_text"

	assetImage = "image"
	assetPoem  = "poem"

	reasonNotFound = "not_found"
	reasonBackend  = "backend"
)

// Metrics counts cache effectiveness and object store failures.
// A nil *Metrics records nothing.
type Metrics struct {
	cacheRequests *prometheus.CounterVec
	fetchErrors   *prometheus.CounterVec
}

// NewMetrics creates and registers the asset collectors on registerer.
func NewMetrics(registerer prometheus.Registerer) (*Metrics, error) {
	metrics := &Metrics{
		cacheRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ekphrasis",
			Name:      "asset_cache_requests_total",
			Help:      "Asset cache lookups partitioned by cache and hit/miss.",
		}, []string{"cache", "result"}),
		fetchErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ekphrasis",
			Name:      "asset_fetch_errors_total",
			Help:      "Object store lookups that yielded no asset, by asset kind and reason.",
		}, []string{"asset", "reason"}),
	}

	for _, collector := range []prometheus.Collector{metrics.cacheRequests, metrics.fetchErrors} {
		if err := registerer.Register(collector); err != nil {
			return nil, err
		}
	}
	return metrics, nil
}

func (metrics *Metrics) cacheResult(cache string, hit bool) {
	if metrics == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	metrics.cacheRequests.WithLabelValues(cache, result).Inc()
}

func (metrics *Metrics) fetchError(asset, reason string) {
	if metrics == nil {
		return
	}
	metrics.fetchErrors.WithLabelValues(asset, reason).Inc()
}
