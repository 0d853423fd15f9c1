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

// Package headers provides functionality for HTTP Headers not provided by
// the builtin net/http package
package headers

import "net/http"

const (
	// NameCacheControl represents the HTTP Header Name of "Cache-Control"
	NameCacheControl = "Cache-Control"
	// NameContentLength represents the HTTP Header Name of "Content-Length"
	NameContentLength = "Content-Length"
	// NameContentType represents the HTTP Header Name of "Content-Type"
	NameContentType = "Content-Type"
	// NameHoardResult represents the HTTP Header Name of "X-Hoard-Result"
	NameHoardResult = "X-Hoard-Result"

	// ValueTextPlain represents the HTTP Header Value of "text/plain"
	ValueTextPlain = "text/plain"
)

// Copy copies the source headers into the destination header collection
func Copy(dst, src http.Header) {
	for k, v := range src {
		for _, val := range v {
			dst.Add(k, val)
		}
	}
}

// SetResultsHeader adds a response header summarizing the proxy's handling
// of the HTTP request (e.g. hit, kmiss, proxyerr)
func SetResultsHeader(h http.Header, status string) {
	if h == nil || status == "" {
		return
	}
	h.Set(NameHoardResult, status)
}

// ForbidsCaching reports whether the response headers carry a cache-control
// directive. Any non-empty Cache-Control value is treated as "do not cache";
// directives such as max-age are deliberately not parsed, and the absence of
// the header means "cache for the default maximum".
func ForbidsCaching(h http.Header) bool {
	return h.Get(NameCacheControl) != ""
}
