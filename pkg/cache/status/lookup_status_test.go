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

package status

import "testing"

func TestLookupStatusString(t *testing.T) {
	if LookupStatusHit.String() != "hit" {
		t.Errorf("unexpected %s", LookupStatusHit)
	}
	if LookupStatusKeyMiss.String() != "kmiss" {
		t.Errorf("unexpected %s", LookupStatusKeyMiss)
	}
	if LookupStatus(99).String() != "99" {
		t.Errorf("unexpected %s", LookupStatus(99))
	}
}

func TestNameLookup(t *testing.T) {
	if NameLookup("hit") != LookupStatusHit {
		t.Error("expected hit")
	}
	if NameLookup("unknown") != LookupStatusError {
		t.Error("expected error status for unknown name")
	}
}
