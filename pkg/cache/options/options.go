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

// Package options defines the caching behavior of the application
package options

import (
	"errors"
	"time"
)

var (
	// ErrMissingMaxTTL indicates ttl_max_secs was absent or not positive
	ErrMissingMaxTTL = errors.New("cache config requires a positive ttl_max_secs")
	// ErrMissingMinTTL indicates ttl_min_secs was absent or not positive
	ErrMissingMinTTL = errors.New("cache config requires a positive ttl_min_secs")
	// ErrMissingMaxSizeBytes indicates max_size_bytes was absent or not positive
	ErrMissingMaxSizeBytes = errors.New("cache config requires a positive max_size_bytes")
	// ErrMissingMaxSizeObjects indicates max_size_objects was absent or not positive
	ErrMissingMaxSizeObjects = errors.New("cache config requires a positive max_size_objects")
	// ErrTTLBoundsInverted indicates ttl_min_secs exceeds ttl_max_secs
	ErrTTLBoundsInverted = errors.New("cache config requires ttl_min_secs <= ttl_max_secs")
)

// Options is a collection of defining the Caching Behavior
type Options struct {
	// Name is the Name of the cache
	Name string `yaml:"-"`
	// MaxTTLSecs is the longest time an object may live in the cache; longer
	// requested TTLs are clamped down to this value
	MaxTTLSecs int64 `yaml:"ttl_max_secs"`
	// MinTTLSecs is the shortest requested TTL worth caching at all; objects
	// requesting a shorter TTL are not inserted
	MinTTLSecs int64 `yaml:"ttl_min_secs"`
	// MaxSizeBytes indicates the maximum size of the cache in bytes before eviction
	MaxSizeBytes int64 `yaml:"max_size_bytes"`
	// MaxSizeObjects indicates the maximum count of objects in the cache before eviction
	MaxSizeObjects int64 `yaml:"max_size_objects"`
	// Compression indicates that cached object bodies are snappy-encoded at rest
	Compression bool `yaml:"compression"`

	// Synthetic Values

	// MaxTTL is the parsed Duration of MaxTTLSecs
	MaxTTL time.Duration `yaml:"-"`
	// MinTTL is the parsed Duration of MinTTLSecs
	MinTTL time.Duration `yaml:"-"`
}

// New returns a pointer to a cache Options with the default configuration settings
func New() *Options {
	return &Options{Name: "default"}
}

// Clone returns an exact copy of the subject Options
func (o *Options) Clone() *Options {
	out := New()
	out.Name = o.Name
	out.MaxTTLSecs = o.MaxTTLSecs
	out.MinTTLSecs = o.MinTTLSecs
	out.MaxSizeBytes = o.MaxSizeBytes
	out.MaxSizeObjects = o.MaxSizeObjects
	out.Compression = o.Compression
	out.MaxTTL = o.MaxTTL
	out.MinTTL = o.MinTTL
	return out
}

// Validate checks the required cache policy fields and populates the
// synthetic TTL durations. The proxy must not serve traffic with an
// undefined cache policy, so any failure here is startup-fatal.
func (o *Options) Validate() error {
	if o.MaxTTLSecs <= 0 {
		return ErrMissingMaxTTL
	}
	if o.MinTTLSecs <= 0 {
		return ErrMissingMinTTL
	}
	if o.MinTTLSecs > o.MaxTTLSecs {
		return ErrTTLBoundsInverted
	}
	if o.MaxSizeBytes <= 0 {
		return ErrMissingMaxSizeBytes
	}
	if o.MaxSizeObjects <= 0 {
		return ErrMissingMaxSizeObjects
	}
	o.MaxTTL = time.Duration(o.MaxTTLSecs) * time.Second
	o.MinTTL = time.Duration(o.MinTTLSecs) * time.Second
	return nil
}
