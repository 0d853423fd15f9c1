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

package index

import (
	"net/http"
	"time"
)

// Object contains a cached response document and the metadata the Index
// maintains about it. An Object present in the Index is referenced by the
// key map and by exactly one node in each of the two orderings.
type Object struct {
	// Key represents the name of the Object and is the
	// accessor in the hashed collection of cache Objects
	Key string
	// Expiration represents the time that the Object expires from cache,
	// fixed at insertion and never mutated
	Expiration time.Time
	// LastAccess is the time the Object was last accessed,
	// refreshed on every successful retrieval
	LastAccess time.Time
	// Size is the size of the stored Body in bytes
	Size int64
	// StatusCode is the HTTP status code of the cached response
	StatusCode int
	// Header is the HTTP header of the cached response
	Header http.Header
	// Body is the stored response body, snappy-encoded when the
	// cache is configured with compression
	Body []byte

	// positions of this Object in the Index's recency and expiration
	// orderings, maintained by the heap implementations below
	atimePos  int
	expiryPos int
}

// atimeHeap is a min-heap of Objects ordered by LastAccess. The heap
// minimum is the least-recently-accessed Object, the first candidate
// for eviction under capacity pressure.
type atimeHeap []*Object

func (h atimeHeap) Len() int { return len(h) }

func (h atimeHeap) Less(i, j int) bool {
	return h[i].LastAccess.Before(h[j].LastAccess)
}

func (h atimeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].atimePos = i
	h[j].atimePos = j
}

func (h *atimeHeap) Push(x any) {
	o := x.(*Object)
	o.atimePos = len(*h)
	*h = append(*h, o)
}

func (h *atimeHeap) Pop() any {
	old := *h
	n := len(old)
	o := old[n-1]
	old[n-1] = nil
	o.atimePos = -1
	*h = old[:n-1]
	return o
}

// expiryHeap is a min-heap of Objects ordered by Expiration. The heap
// minimum is the next Object to lazily reclaim once its TTL has lapsed.
type expiryHeap []*Object

func (h expiryHeap) Len() int { return len(h) }

func (h expiryHeap) Less(i, j int) bool {
	return h[i].Expiration.Before(h[j].Expiration)
}

func (h expiryHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].expiryPos = i
	h[j].expiryPos = j
}

func (h *expiryHeap) Push(x any) {
	o := x.(*Object)
	o.expiryPos = len(*h)
	*h = append(*h, o)
}

func (h *expiryHeap) Pop() any {
	old := *h
	n := len(old)
	o := old[n-1]
	old[n-1] = nil
	o.expiryPos = -1
	*h = old[:n-1]
	return o
}
