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

package appinfo

import (
	"strings"
	"testing"
)

func TestSetAndVersionString(t *testing.T) {
	Set("hoard", "0.9.0", "2026-01-01T00:00:00Z", "abc1234")
	s := VersionString()
	for _, want := range []string{"hoard", "0.9.0", "abc1234"} {
		if !strings.Contains(s, want) {
			t.Errorf("version string %q missing %q", s, want)
		}
	}
}
