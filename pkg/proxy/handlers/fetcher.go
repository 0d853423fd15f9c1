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
	"net/http"
	"time"
)

// Fetcher performs the upstream fetch for a cache miss. The default
// implementation wraps a net/http Client; tests substitute a counting fake.
type Fetcher interface {
	Fetch(r *http.Request) (*http.Response, error)
}

type clientFetcher struct {
	client *http.Client
}

// NewFetcher returns a Fetcher backed by an http.Client with the provided
// connect/read timeout. Redirect responses are returned to the caller
// rather than followed, so the proxy can relay them verbatim.
func NewFetcher(timeout time.Duration) Fetcher {
	return &clientFetcher{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (f *clientFetcher) Fetch(r *http.Request) (*http.Response, error) {
	return f.client.Do(r)
}
