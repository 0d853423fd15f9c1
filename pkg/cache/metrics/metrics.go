/*
 * Copyright 2026 The Hoard Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package metrics provides helpers for observing cache operations
package metrics

import (
	gm "github.com/hoardcache/hoard/pkg/observability/metrics"
)

// ObserveCacheMiss records a Cache Miss event
func ObserveCacheMiss(cacheName, cacheProvider string) {
	ObserveCacheOperation(cacheName, cacheProvider, "get", "miss", 0)
}

// ObserveCacheOperation increments counters as cache operations occur
func ObserveCacheOperation(cacheName, cacheProvider, operation, opStatus string, bytes float64) {
	gm.CacheObjectOperations.WithLabelValues(cacheName, cacheProvider, operation, opStatus).Inc()
	if bytes > 0 {
		gm.CacheByteOperations.WithLabelValues(cacheName, cacheProvider, operation, opStatus).Add(bytes)
	}
}

// ObserveCacheEvent increments counters as cache events occur
func ObserveCacheEvent(cacheName, cacheProvider, event, reason string) {
	gm.CacheEvents.WithLabelValues(cacheName, cacheProvider, event, reason).Inc()
}

// ObserveCacheSizeChange adjusts gauges as the cache size changes due to object operations
func ObserveCacheSizeChange(cacheName, cacheProvider string, byteCount, objectCount int64) {
	gm.CacheObjects.WithLabelValues(cacheName, cacheProvider).Set(float64(objectCount))
	gm.CacheBytes.WithLabelValues(cacheName, cacheProvider).Set(float64(byteCount))
}
