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

package methods

import (
	"net/http"
	"testing"
)

func TestIsProxied(t *testing.T) {
	if !IsProxied(http.MethodGet) {
		t.Error("expected GET to be proxied")
	}
	if !IsProxied("get") {
		t.Error("expected method check to be case-insensitive")
	}
	for _, m := range []string{http.MethodPost, http.MethodPut, http.MethodDelete,
		http.MethodHead, http.MethodOptions, http.MethodConnect} {
		if IsProxied(m) {
			t.Errorf("expected %s not to be proxied", m)
		}
	}
}
