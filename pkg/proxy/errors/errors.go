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

// Package errors provides common Error functionality to the proxy
package errors

import "errors"

// ErrUnsupportedMethod indicates the client used an HTTP method the proxy does not relay
var ErrUnsupportedMethod = errors.New("unsupported http method")

// ErrInvalidRequestURL indicates the request URL did not carry a usable upstream authority
var ErrInvalidRequestURL = errors.New("invalid request url")

// ErrUpstreamTimeout indicates the upstream fetch exceeded the configured timeout
var ErrUpstreamTimeout = errors.New("upstream fetch timed out")

// ErrUnexpectedUpstreamResponse indicates the http.Response received from an upstream
// origin indicates the request did not succeed due to a request error or origin-side error
var ErrUnexpectedUpstreamResponse = errors.New("unexpected upstream response")

// ErrUpstreamNotReachable indicates the upstream connection could not be established
var ErrUpstreamNotReachable = errors.New("upstream not reachable")
