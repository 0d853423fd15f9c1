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

// Package cache defines the cache interfaces and the cached response document
package cache

import (
	"net/http"
	"time"

	"github.com/hoardcache/hoard/pkg/cache/options"
	"github.com/hoardcache/hoard/pkg/cache/status"
)

// Document represents a cached HTTP response payload. Documents returned by
// a Cache are copies owned by the caller; mutating one never affects the
// cache's internal state.
type Document struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Cache is the interface for the supported caching fabrics.
// Store is best-effort: a policy-rejected insert is a silent no-op, never an error.
// Retrieve on a missing or expired key returns LookupStatusKeyMiss, never an error.
type Cache interface {
	Store(cacheKey string, d *Document, ttl time.Duration)
	Retrieve(cacheKey string) (*Document, status.LookupStatus)
	Contains(cacheKey string) bool
	Configuration() *options.Options
	Close() error
}

// CloneHeader returns a deep copy of the provided http.Header
func CloneHeader(h http.Header) http.Header {
	if h == nil {
		return nil
	}
	out := make(http.Header, len(h))
	for k, v := range h {
		v2 := make([]string, len(v))
		copy(v2, v)
		out[k] = v2
	}
	return out
}
