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

// Package handlers provides the proxy's request handling. On a GET the
// handler consults the cache, relays from upstream on a miss, and stores
// cacheable responses; any other method is rejected without forwarding.
package handlers

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/hoardcache/hoard/pkg/cache"
	"github.com/hoardcache/hoard/pkg/cache/status"
	gm "github.com/hoardcache/hoard/pkg/observability/metrics"
	"github.com/hoardcache/hoard/pkg/observability/tracing"
	"github.com/hoardcache/hoard/pkg/proxy/errors"
	"github.com/hoardcache/hoard/pkg/proxy/headers"
	"github.com/hoardcache/hoard/pkg/proxy/methods"
)

// ProxyHandler implements http.Handler
var _ http.Handler = &ProxyHandler{}

// ProxyHandler serves forward-proxy requests, consulting the cache before
// contacting the upstream origin. All response-path errors are contained
// within the request being handled.
type ProxyHandler struct {
	cache   cache.Cache
	fetcher Fetcher
	tracer  *tracing.Tracer
	logger  log.Logger
}

// New returns a ProxyHandler using the provided cache and upstream fetcher.
// tracer may be nil to disable span emission.
func New(c cache.Cache, f Fetcher, tracer *tracing.Tracer, logger log.Logger) *ProxyHandler {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &ProxyHandler{cache: c, fetcher: f, tracer: tracer, logger: logger}
}

func (h *ProxyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if !methods.IsProxied(r.Method) {
		n := writeError(w, http.StatusNotImplemented, errors.ErrUnsupportedMethod.Error())
		h.observe(r.Method, http.StatusNotImplemented, status.LookupStatusProxyError, start, n)
		return
	}

	key, fetchURL, err := upstreamKey(r.URL)
	if err != nil {
		n := writeError(w, http.StatusBadRequest, "invalid proxy request url")
		h.observe(r.Method, http.StatusBadRequest, status.LookupStatusProxyError, start, n)
		return
	}

	if d, s := h.cache.Retrieve(key); s == status.LookupStatusHit {
		n := writeDocument(w, d, s)
		h.observe(r.Method, d.StatusCode, s, start, n)
		return
	}

	httpStatus, s, n := h.proxyAndMaybeStore(w, r, key, fetchURL)
	h.observe(r.Method, httpStatus, s, start, n)
}

// proxyAndMaybeStore fetches fetchURL from the upstream origin, relays the
// response to the client, and inserts the result into the cache when policy
// permits. It returns the HTTP status written to the client, the lookup
// status for observability, and the count of body bytes written.
func (h *ProxyHandler) proxyAndMaybeStore(w http.ResponseWriter, r *http.Request,
	key, fetchURL string) (int, status.LookupStatus, int) {

	ctx := r.Context()
	var span trace.Span
	if h.tracer != nil {
		ctx, span = h.tracer.Start(ctx, "proxy.fetch",
			trace.WithAttributes(attribute.String("cache.key", key)))
		defer span.End()
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, fetchURL, nil)
	if err != nil {
		return h.proxyError(w, span, key, errors.ErrInvalidRequestURL, err)
	}

	resp, err := h.fetcher.Fetch(req)
	if err != nil {
		kind := errors.ErrUpstreamNotReachable
		if isTimeout(err) {
			kind = errors.ErrUpstreamTimeout
		}
		return h.proxyError(w, span, key, kind, err)
	}
	defer resp.Body.Close()

	if span != nil {
		span.SetStatus(tracing.HTTPToCode(resp.StatusCode), "")
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return h.proxyError(w, span, key, errors.ErrUpstreamNotReachable, err)
		}
		n := relay(w, resp.StatusCode, resp.Header, body, status.LookupStatusKeyMiss)
		if !headers.ForbidsCaching(resp.Header) {
			h.cache.Store(key, &cache.Document{
				StatusCode: resp.StatusCode,
				Header:     resp.Header,
				Body:       body,
			}, h.cache.Configuration().MaxTTL)
		}
		return resp.StatusCode, status.LookupStatusKeyMiss, n

	case resp.StatusCode >= 300 && resp.StatusCode < 400:
		// redirects are relayed verbatim and never cached
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return h.proxyError(w, span, key, errors.ErrUpstreamNotReachable, err)
		}
		n := relay(w, resp.StatusCode, resp.Header, body, status.LookupStatusProxyOnly)
		return resp.StatusCode, status.LookupStatusProxyOnly, n

	default:
		io.Copy(io.Discard, resp.Body)
		return h.proxyError(w, span, key, errors.ErrUnexpectedUpstreamResponse, nil)
	}
}

func (h *ProxyHandler) proxyError(w http.ResponseWriter, span trace.Span,
	key string, kind, cause error) (int, status.LookupStatus, int) {
	detail := kind.Error()
	if cause != nil {
		detail = cause.Error()
	}
	if span != nil {
		span.SetStatus(tracing.HTTPToCode(http.StatusBadGateway), kind.Error())
	}
	level.Error(h.logger).Log("event", "upstream fetch failed",
		"key", key, "reason", kind.Error(), "detail", detail)
	n := writeError(w, http.StatusBadGateway, kind.Error())
	return http.StatusBadGateway, status.LookupStatusProxyError, n
}

func (h *ProxyHandler) observe(method string, httpStatus int, s status.LookupStatus,
	start time.Time, bytesWritten int) {
	ls := strconv.Itoa(httpStatus)
	gm.FrontendRequestStatus.WithLabelValues(method, ls, s.String()).Inc()
	gm.FrontendRequestDuration.WithLabelValues(method, ls, s.String()).
		Observe(time.Since(start).Seconds())
	gm.FrontendRequestWrittenBytes.WithLabelValues(method, ls, s.String()).
		Add(float64(bytesWritten))
}

// upstreamKey derives the cache key (authority + path, query included) and
// the absolute upstream URL from a proxy-form request URL. A URL without an
// authority cannot be forward-proxied.
func upstreamKey(u *url.URL) (string, string, error) {
	if u == nil || u.Host == "" {
		return "", "", errors.ErrInvalidRequestURL
	}
	key := u.Host + u.Path
	if u.RawQuery != "" {
		key += "?" + u.RawQuery
	}
	fetchURL := *u
	if fetchURL.Scheme == "" {
		fetchURL.Scheme = "http"
	}
	fetchURL.Fragment = ""
	return key, fetchURL.String(), nil
}

// relay writes an upstream response verbatim to the client and returns the
// count of body bytes written
func relay(w http.ResponseWriter, statusCode int, header http.Header, body []byte,
	s status.LookupStatus) int {
	headers.Copy(w.Header(), header)
	headers.SetResultsHeader(w.Header(), s.String())
	w.WriteHeader(statusCode)
	n, _ := w.Write(body)
	return n
}

// writeDocument writes a cached response document to the client and returns
// the count of body bytes written
func writeDocument(w http.ResponseWriter, d *cache.Document, s status.LookupStatus) int {
	headers.Copy(w.Header(), d.Header)
	headers.SetResultsHeader(w.Header(), s.String())
	w.WriteHeader(d.StatusCode)
	n, _ := w.Write(d.Body)
	return n
}

// writeError responds with a plaintext error message and returns the count
// of body bytes written
func writeError(w http.ResponseWriter, statusCode int, msg string) int {
	w.Header().Set(headers.NameContentType, headers.ValueTextPlain)
	headers.SetResultsHeader(w.Header(), status.LookupStatusProxyError.String())
	w.WriteHeader(statusCode)
	n, _ := w.Write([]byte(msg))
	return n
}

func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	if ne, ok := err.(net.Error); ok && ne.Timeout() {
		return true
	}
	return err == context.DeadlineExceeded
}
