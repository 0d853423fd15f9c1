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

package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/hoardcache/hoard/pkg/cache"
	"github.com/hoardcache/hoard/pkg/cache/index"
	"github.com/hoardcache/hoard/pkg/cache/options"
	"github.com/hoardcache/hoard/pkg/proxy/headers"
)

type fakeFetcher struct {
	mtx        sync.Mutex
	calls      int
	statusCode int
	header     http.Header
	body       []byte
	err        error
}

func (f *fakeFetcher) Fetch(r *http.Request) (*http.Response, error) {
	f.mtx.Lock()
	f.calls++
	f.mtx.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	h := f.header
	if h == nil {
		h = http.Header{}
	}
	return &http.Response{
		StatusCode: f.statusCode,
		Header:     h,
		Body:       io.NopCloser(bytes.NewReader(f.body)),
	}, nil
}

func (f *fakeFetcher) callCount() int {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return f.calls
}

func testCache(t *testing.T) *index.Index {
	t.Helper()
	o := &options.Options{Name: "test", MaxTTLSecs: 100, MinTTLSecs: 1,
		MaxSizeBytes: 1 << 20, MaxSizeObjects: 100}
	if err := o.Validate(); err != nil {
		t.Fatal(err)
	}
	return index.NewIndex("test", o, nil)
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestServeHTTPCacheHit(t *testing.T) {
	idx := testCache(t)
	idx.Store("example.com/cached", &cache.Document{
		StatusCode: 200,
		Header:     http.Header{"Content-Type": {"text/html"}},
		Body:       []byte("stored body"),
	}, 50*time.Second)

	f := &fakeFetcher{statusCode: 200, body: []byte("upstream body")}
	h := New(idx, f, nil, nil)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "http://example.com/cached", nil))

	if f.callCount() != 0 {
		t.Errorf("expected no upstream contact on a hit, got %d calls", f.callCount())
	}
	if w.Code != 200 {
		t.Errorf("expected 200 got %d", w.Code)
	}
	if w.Body.String() != "stored body" {
		t.Errorf("unexpected body %q", w.Body.String())
	}
	if got := w.Header().Get(headers.NameHoardResult); got != "hit" {
		t.Errorf("expected hit got %q", got)
	}
	if got := w.Header().Get("Content-Type"); got != "text/html" {
		t.Errorf("expected stored header relayed, got %q", got)
	}
}

func TestServeHTTPMissFetchesAndCaches(t *testing.T) {
	idx := testCache(t)
	f := &fakeFetcher{statusCode: 200, body: []byte("upstream body"),
		header: http.Header{"Content-Type": {"text/plain"}}}
	h := New(idx, f, nil, nil)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "http://example.com/page?q=1", nil))

	if f.callCount() != 1 {
		t.Fatalf("expected 1 upstream call got %d", f.callCount())
	}
	if w.Body.String() != "upstream body" {
		t.Errorf("unexpected body %q", w.Body.String())
	}
	if got := w.Header().Get(headers.NameHoardResult); got != "kmiss" {
		t.Errorf("expected kmiss got %q", got)
	}
	// the query string is part of the cache key
	if !idx.Contains("example.com/page?q=1") {
		t.Error("expected response to be cached under authority+path+query")
	}

	// a second identical request is served from cache
	w2 := httptest.NewRecorder()
	h.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "http://example.com/page?q=1", nil))
	if f.callCount() != 1 {
		t.Errorf("expected second request to be a hit, upstream calls %d", f.callCount())
	}
	if got := w2.Header().Get(headers.NameHoardResult); got != "hit" {
		t.Errorf("expected hit got %q", got)
	}
}

func TestServeHTTPCacheControlSkipsStore(t *testing.T) {
	idx := testCache(t)
	f := &fakeFetcher{statusCode: 200, body: []byte("volatile"),
		header: http.Header{headers.NameCacheControl: {"no-store"}}}
	h := New(idx, f, nil, nil)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "http://example.com/volatile", nil))

	if w.Body.String() != "volatile" {
		t.Errorf("unexpected body %q", w.Body.String())
	}
	if idx.Contains("example.com/volatile") {
		t.Error("expected cache-control response not to be cached")
	}
}

func TestServeHTTPNonGETRejected(t *testing.T) {
	idx := testCache(t)
	f := &fakeFetcher{statusCode: 200, body: []byte("x")}
	h := New(idx, f, nil, nil)

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodHead} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(method, "http://example.com/", nil))
		if w.Code != http.StatusNotImplemented {
			t.Errorf("%s: expected 501 got %d", method, w.Code)
		}
	}
	if f.callCount() != 0 {
		t.Errorf("expected no upstream contact for rejected methods, got %d", f.callCount())
	}
	if got := idx.ObjectCount(); got != 0 {
		t.Errorf("expected no cache interaction, count %d", got)
	}
}

func TestServeHTTPRedirectRelayedNotCached(t *testing.T) {
	idx := testCache(t)
	f := &fakeFetcher{statusCode: http.StatusFound, body: []byte("moved"),
		header: http.Header{"Location": {"http://example.com/elsewhere"}}}
	h := New(idx, f, nil, nil)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "http://example.com/old", nil))

	if w.Code != http.StatusFound {
		t.Errorf("expected 302 got %d", w.Code)
	}
	if got := w.Header().Get("Location"); got != "http://example.com/elsewhere" {
		t.Errorf("expected Location relayed, got %q", got)
	}
	if idx.Contains("example.com/old") {
		t.Error("expected redirect not to be cached")
	}
}

func TestServeHTTPUpstreamFailure(t *testing.T) {
	idx := testCache(t)
	f := &fakeFetcher{err: errors.New("connection refused")}
	h := New(idx, f, nil, nil)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "http://example.com/down", nil))

	if w.Code != http.StatusBadGateway {
		t.Errorf("expected 502 got %d", w.Code)
	}
	if idx.Contains("example.com/down") {
		t.Error("expected failed fetch not to be cached")
	}
}

func TestServeHTTPUpstreamTimeout(t *testing.T) {
	idx := testCache(t)
	f := &fakeFetcher{err: timeoutError{}}
	h := New(idx, f, nil, nil)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "http://example.com/slow", nil))

	if w.Code != http.StatusBadGateway {
		t.Errorf("expected 502 got %d", w.Code)
	}
}

func TestServeHTTPUpstreamErrorStatus(t *testing.T) {
	idx := testCache(t)
	f := &fakeFetcher{statusCode: http.StatusInternalServerError, body: []byte("boom")}
	h := New(idx, f, nil, nil)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "http://example.com/broken", nil))

	if w.Code != http.StatusBadGateway {
		t.Errorf("expected 502 got %d", w.Code)
	}
	if idx.Contains("example.com/broken") {
		t.Error("expected error response not to be cached")
	}
}

func TestServeHTTPMissingAuthority(t *testing.T) {
	idx := testCache(t)
	f := &fakeFetcher{statusCode: 200, body: []byte("x")}
	h := New(idx, f, nil, nil)

	// an origin-form request carries no upstream authority to proxy to
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/no-authority", nil)
	h.ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 got %d", w.Code)
	}
	if f.callCount() != 0 {
		t.Errorf("expected no upstream contact, got %d", f.callCount())
	}
}

func TestProxyEndToEnd(t *testing.T) {
	var upstreamCalls int
	var mtx sync.Mutex
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mtx.Lock()
		upstreamCalls++
		mtx.Unlock()
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("origin payload"))
	}))
	defer origin.Close()

	idx := testCache(t)
	h := New(idx, NewFetcher(10*time.Second), nil, nil)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, origin.URL+"/resource", nil))
		if w.Code != 200 {
			t.Fatalf("request %d: expected 200 got %d", i, w.Code)
		}
		if w.Body.String() != "origin payload" {
			t.Fatalf("request %d: unexpected body %q", i, w.Body.String())
		}
	}

	mtx.Lock()
	defer mtx.Unlock()
	if upstreamCalls != 1 {
		t.Errorf("expected a single upstream fetch, got %d", upstreamCalls)
	}
}
