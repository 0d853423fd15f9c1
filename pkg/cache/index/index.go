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

// Package index implements the in-memory cache as a key map paired with two
// orderings of the same entry set: a recency ordering by last access time,
// used to select eviction candidates under capacity pressure, and an
// expiration ordering used to lazily reclaim stale entries. Both orderings
// support O(log n) insert/remove and O(1) peek-minimum.
package index

import (
	"container/heap"
	"sync"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/hoardcache/hoard/pkg/cache"
	"github.com/hoardcache/hoard/pkg/cache/metrics"
	"github.com/hoardcache/hoard/pkg/cache/options"
	"github.com/hoardcache/hoard/pkg/cache/status"
	"github.com/hoardcache/hoard/pkg/encoding/snappy"
	gm "github.com/hoardcache/hoard/pkg/observability/metrics"
)

// Index implements the cache.Cache interface
var _ cache.Cache = &Index{}

const provider = "memory"

// Index is a bounded in-memory cache of response documents. A single mutex
// guards the key map, both orderings and the running counters; every public
// operation holds it for its full duration, so no operation ever observes a
// partially-inserted or partially-evicted state.
type Index struct {
	mtx     sync.Mutex
	objects map[string]*Object
	atime   atimeHeap
	expiry  expiryHeap

	objectCount int64
	cacheSize   int64

	name   string
	config *options.Options
	logger log.Logger

	// now is swappable for tests
	now func() time.Time
}

// NewIndex returns an Index enforcing the provided cache options.
// The options must already be validated.
func NewIndex(name string, o *options.Options, logger log.Logger) *Index {
	if o == nil {
		o = options.New()
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	idx := &Index{
		objects: make(map[string]*Object),
		name:    name,
		config:  o,
		logger:  logger,
		now:     time.Now,
	}
	gm.CacheMaxObjects.WithLabelValues(name, provider).Set(float64(o.MaxSizeObjects))
	gm.CacheMaxBytes.WithLabelValues(name, provider).Set(float64(o.MaxSizeBytes))
	return idx
}

// Configuration returns the cache options the Index enforces
func (idx *Index) Configuration() *options.Options {
	return idx.config
}

// Store inserts the document under cacheKey with the requested ttl. Inserts
// are best-effort and policy rejections are silent no-ops: a ttl below the
// configured minimum means the resource is too volatile to bother caching,
// and a body larger than the entire byte budget can never fit. A ttl above
// the configured maximum is clamped down. If cacheKey is already present the
// call degrades to a recency refresh rather than an overwrite, so concurrent
// misses racing to insert the same key resolve to first-writer-wins.
func (idx *Index) Store(cacheKey string, d *cache.Document, ttl time.Duration) {
	if d == nil {
		return
	}
	if ttl < idx.config.MinTTL {
		metrics.ObserveCacheEvent(idx.name, provider, "reject", "ttl_below_minimum")
		return
	}
	if ttl > idx.config.MaxTTL {
		ttl = idx.config.MaxTTL
	}

	body := d.Body
	if idx.config.Compression {
		body = snappy.Encode(d.Body)
	}
	size := int64(len(body))
	if size > idx.config.MaxSizeBytes {
		metrics.ObserveCacheEvent(idx.name, provider, "reject", "object_too_large")
		return
	}

	idx.mtx.Lock()
	defer idx.mtx.Unlock()

	if o, ok := idx.objects[cacheKey]; ok {
		// another worker won the insert race for this key; count it as a read
		idx.refresh(o)
		return
	}

	now := idx.now()
	o := &Object{
		Key:        cacheKey,
		Expiration: now.Add(ttl),
		LastAccess: now,
		Size:       size,
		StatusCode: d.StatusCode,
		Header:     cache.CloneHeader(d.Header),
		Body:       body,
	}
	idx.objects[cacheKey] = o
	heap.Push(&idx.atime, o)
	heap.Push(&idx.expiry, o)
	idx.objectCount++
	idx.cacheSize += size

	metrics.ObserveCacheOperation(idx.name, provider, "set", "none", float64(size))
	level.Debug(idx.logger).Log("event", "cache store", "key", cacheKey,
		"size", size, "expiration", o.Expiration)

	idx.evict(now)
	metrics.ObserveCacheSizeChange(idx.name, provider, idx.cacheSize, idx.objectCount)
}

// Retrieve looks up cacheKey and returns a copy of the stored document on a
// hit. Expired entries are reclaimed before the lookup, so a logically
// expired entry is never returned. A hit refreshes the entry's position in
// the recency ordering; callers that need a non-mutating existence check use
// Contains.
func (idx *Index) Retrieve(cacheKey string) (*cache.Document, status.LookupStatus) {
	idx.mtx.Lock()
	defer idx.mtx.Unlock()

	now := idx.now()
	changed := idx.expire(now)
	if changed {
		metrics.ObserveCacheSizeChange(idx.name, provider, idx.cacheSize, idx.objectCount)
	}

	o, ok := idx.objects[cacheKey]
	if !ok {
		metrics.ObserveCacheMiss(idx.name, provider)
		return nil, status.LookupStatusKeyMiss
	}

	idx.refresh(o)

	body := o.Body
	if idx.config.Compression {
		var err error
		body, err = snappy.Decode(o.Body)
		if err != nil {
			// the stored body is unreadable; drop the entry and miss
			idx.remove(o)
			metrics.ObserveCacheEvent(idx.name, provider, "error", "decode")
			metrics.ObserveCacheSizeChange(idx.name, provider, idx.cacheSize, idx.objectCount)
			level.Error(idx.logger).Log("event", "cache object decode failed",
				"key", cacheKey, "detail", err.Error())
			return nil, status.LookupStatusKeyMiss
		}
	} else {
		body = make([]byte, len(o.Body))
		copy(body, o.Body)
	}

	metrics.ObserveCacheOperation(idx.name, provider, "get", "hit", float64(o.Size))
	level.Debug(idx.logger).Log("event", "cache retrieve", "key", cacheKey)

	return &cache.Document{
		StatusCode: o.StatusCode,
		Header:     cache.CloneHeader(o.Header),
		Body:       body,
	}, status.LookupStatusHit
}

// Contains is an O(1) membership test with no side effects; unlike Retrieve
// it does not refresh the entry's recency or reclaim expired entries.
func (idx *Index) Contains(cacheKey string) bool {
	idx.mtx.Lock()
	defer idx.mtx.Unlock()
	_, ok := idx.objects[cacheKey]
	return ok
}

// ObjectCount returns the number of objects currently indexed
func (idx *Index) ObjectCount() int64 {
	idx.mtx.Lock()
	defer idx.mtx.Unlock()
	return idx.objectCount
}

// CacheSize returns the total stored bytes currently indexed
func (idx *Index) CacheSize() int64 {
	idx.mtx.Lock()
	defer idx.mtx.Unlock()
	return idx.cacheSize
}

// Close clears the Index
func (idx *Index) Close() error {
	idx.mtx.Lock()
	defer idx.mtx.Unlock()
	idx.objects = make(map[string]*Object)
	idx.atime = idx.atime[:0]
	idx.expiry = idx.expiry[:0]
	idx.objectCount = 0
	idx.cacheSize = 0
	metrics.ObserveCacheSizeChange(idx.name, provider, 0, 0)
	return nil
}

// refresh moves o to the most-recently-accessed end of the recency ordering.
// The lock must be held.
func (idx *Index) refresh(o *Object) {
	o.LastAccess = idx.now()
	heap.Fix(&idx.atime, o.atimePos)
}

// remove deletes o from the key map and both orderings and adjusts the
// running counters. The lock must be held.
func (idx *Index) remove(o *Object) {
	heap.Remove(&idx.atime, o.atimePos)
	heap.Remove(&idx.expiry, o.expiryPos)
	delete(idx.objects, o.Key)
	idx.objectCount--
	idx.cacheSize -= o.Size
	metrics.ObserveCacheOperation(idx.name, provider, "del", "none", float64(o.Size))
}

// evict restores the capacity and expiry invariants, running both passes to
// a fixed point. Capacity pressure sheds the least-recently-accessed entry
// first, regardless of its remaining TTL; the expiry pass then lazily
// reclaims entries whose TTL has lapsed. The lock must be held.
func (idx *Index) evict(now time.Time) {
	for idx.objectCount > idx.config.MaxSizeObjects || idx.cacheSize > idx.config.MaxSizeBytes {
		o := idx.atime[0]
		idx.remove(o)
		metrics.ObserveCacheEvent(idx.name, provider, "eviction", "capacity")
		level.Debug(idx.logger).Log("event", "cache eviction", "reason", "capacity",
			"key", o.Key, "lastAccess", o.LastAccess)
	}
	idx.expire(now)
}

// expire reclaims entries at the head of the expiration ordering whose
// expiration has passed, and reports whether anything was removed.
// The lock must be held.
func (idx *Index) expire(now time.Time) bool {
	var changed bool
	for len(idx.expiry) > 0 && idx.expiry[0].Expiration.Before(now) {
		o := idx.expiry[0]
		idx.remove(o)
		changed = true
		metrics.ObserveCacheEvent(idx.name, provider, "eviction", "ttl")
		level.Debug(idx.logger).Log("event", "cache eviction", "reason", "ttl",
			"key", o.Key, "expiration", o.Expiration)
	}
	return changed
}
