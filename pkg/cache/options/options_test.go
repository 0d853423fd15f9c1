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

package options

import (
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	o := &Options{MaxTTLSecs: 100, MinTTLSecs: 5, MaxSizeBytes: 1000, MaxSizeObjects: 2}
	if err := o.Validate(); err != nil {
		t.Fatal(err)
	}
	if o.MaxTTL != 100*time.Second || o.MinTTL != 5*time.Second {
		t.Errorf("unexpected synthetic durations %v %v", o.MaxTTL, o.MinTTL)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		o    *Options
		want error
	}{
		{"empty", &Options{}, ErrMissingMaxTTL},
		{"no min", &Options{MaxTTLSecs: 100}, ErrMissingMinTTL},
		{"inverted", &Options{MaxTTLSecs: 5, MinTTLSecs: 100}, ErrTTLBoundsInverted},
		{"no bytes", &Options{MaxTTLSecs: 100, MinTTLSecs: 5}, ErrMissingMaxSizeBytes},
		{"no objects", &Options{MaxTTLSecs: 100, MinTTLSecs: 5, MaxSizeBytes: 1000}, ErrMissingMaxSizeObjects},
	}
	for _, tc := range tests {
		if err := tc.o.Validate(); err != tc.want {
			t.Errorf("%s: expected %v got %v", tc.name, tc.want, err)
		}
	}
}

func TestClone(t *testing.T) {
	o := &Options{Name: "test", MaxTTLSecs: 100, MinTTLSecs: 5,
		MaxSizeBytes: 1000, MaxSizeObjects: 2, Compression: true}
	if err := o.Validate(); err != nil {
		t.Fatal(err)
	}
	c := o.Clone()
	if *c != *o {
		t.Errorf("expected %v got %v", o, c)
	}
}
