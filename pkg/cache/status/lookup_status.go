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

// Package status governs the possible Cache Lookup Status values
package status

import "strconv"

// LookupStatus defines the possible status of a cache lookup
type LookupStatus int

const (
	// LookupStatusHit indicates a full cache hit on lookup
	LookupStatusHit = LookupStatus(iota)
	// LookupStatusKeyMiss indicates a full key miss (cache key does not exist) on lookup
	LookupStatusKeyMiss
	// LookupStatusProxyError indicates that a proxy error occurred retrieving a cacheable dataset
	LookupStatusProxyError
	// LookupStatusProxyOnly indicates that the request was fully proxied to the origin without using the cache
	LookupStatusProxyOnly
	// LookupStatusError indicates that there was an error looking up the object in the cache
	LookupStatusError
)

var cacheLookupStatusNames = map[string]LookupStatus{
	"hit":      LookupStatusHit,
	"kmiss":    LookupStatusKeyMiss,
	"proxyerr": LookupStatusProxyError,
	"proxy":    LookupStatusProxyOnly,
	"error":    LookupStatusError,
}

var cacheLookupStatusValues = map[LookupStatus]string{}

func init() {
	for k, v := range cacheLookupStatusNames {
		cacheLookupStatusValues[v] = k
	}
}

// NameLookup returns the LookupStatus for the provided name
func NameLookup(name string) LookupStatus {
	if i, ok := cacheLookupStatusNames[name]; ok {
		return i
	}
	return LookupStatusError
}

func (s LookupStatus) String() string {
	if v, ok := cacheLookupStatusValues[s]; ok {
		return v
	}
	return strconv.Itoa(int(s))
}
