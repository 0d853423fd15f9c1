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

// Package config provides configuration parsing and validation for the
// application, including the YAML configuration file and command line
// arguments. The cache policy section is required; the proxy must not serve
// traffic with an undefined cache policy.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	cache "github.com/hoardcache/hoard/pkg/cache/options"
	d "github.com/hoardcache/hoard/pkg/config/defaults"
	"github.com/hoardcache/hoard/pkg/observability/logging"
	"github.com/hoardcache/hoard/pkg/observability/tracing"
)

// ErrMissingCacheConfig indicates the configuration file carried no cache section
var ErrMissingCacheConfig = errors.New("config requires a cache section")

// Config is the main configuration object
type Config struct {
	// Frontend provides configurations about the proxy front end
	Frontend *FrontendConfig `yaml:"frontend"`
	// Cache provides the cache policy configuration
	Cache *cache.Options `yaml:"cache"`
	// Upstream provides configurations for the upstream fetch client
	Upstream *UpstreamConfig `yaml:"upstream"`
	// Logging provides configurations that affect logging behavior
	Logging *logging.Options `yaml:"logging"`
	// Metrics provides configurations for collecting Metrics about the application
	Metrics *MetricsConfig `yaml:"metrics"`
	// Tracing provides the distributed tracing configuration
	Tracing *tracing.Options `yaml:"tracing"`

	// LoaderWarnings holds non-fatal messages generated during load,
	// emitted once the logger is constructed
	LoaderWarnings []string `yaml:"-"`
}

// FrontendConfig is a collection of configurations for the main http frontend
type FrontendConfig struct {
	// ListenAddress is IP address for the main http listener for the application
	ListenAddress string `yaml:"listen_address"`
	// ListenPort is TCP Port for the main http listener for the application
	ListenPort int `yaml:"listen_port"`
	// ConnectionsLimit indicates how many concurrent front end connections
	// the proxy will handle at any time; 0 means unlimited
	ConnectionsLimit int `yaml:"connections_limit"`
}

// UpstreamConfig is a collection of configurations for upstream fetches
type UpstreamConfig struct {
	// TimeoutSecs is the connect/read timeout for upstream fetches in seconds
	TimeoutSecs int64 `yaml:"timeout_secs"`

	// Timeout is the parsed Duration of TimeoutSecs
	Timeout time.Duration `yaml:"-"`
}

// MetricsConfig is a collection of Metrics Collection configurations
type MetricsConfig struct {
	// ListenAddress is IP address from which the Application Metrics are available at /metrics
	ListenAddress string `yaml:"listen_address"`
	// ListenPort is TCP Port from which the Application Metrics are available at /metrics
	ListenPort int `yaml:"listen_port"`
}

// NewConfig returns a Config with default values
func NewConfig() *Config {
	return &Config{
		Frontend: &FrontendConfig{
			ListenAddress:    d.DefaultProxyListenAddress,
			ListenPort:       d.DefaultProxyListenPort,
			ConnectionsLimit: d.DefaultConnectionsLimit,
		},
		Cache: cache.New(),
		Upstream: &UpstreamConfig{
			TimeoutSecs: d.DefaultUpstreamTimeoutSecs,
		},
		Logging: &logging.Options{
			LogFile:  d.DefaultLogFile,
			LogLevel: d.DefaultLogLevel,
		},
		Metrics: &MetricsConfig{
			ListenAddress: d.DefaultMetricsListenAddress,
			ListenPort:    d.DefaultMetricsListenPort,
		},
		Tracing: &tracing.Options{
			ServiceName: d.DefaultTracerServiceName,
			SampleRate:  1,
		},
		LoaderWarnings: make([]string, 0),
	}
}

// loadFile loads and parses the YAML config file at path over the defaults
func (c *Config) loadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("unable to parse config file %s: %w", path, err)
	}
	return nil
}

// validate checks the loaded configuration and populates synthetic values
func (c *Config) validate() error {
	if c.Cache == nil {
		return ErrMissingCacheConfig
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if c.Upstream == nil {
		c.Upstream = &UpstreamConfig{TimeoutSecs: d.DefaultUpstreamTimeoutSecs}
	}
	if c.Upstream.TimeoutSecs <= 0 {
		c.Upstream.TimeoutSecs = d.DefaultUpstreamTimeoutSecs
	}
	c.Upstream.Timeout = time.Duration(c.Upstream.TimeoutSecs) * time.Second
	return nil
}

// Load returns the Application Configuration, starting with a default
// config, then overriding with the config file, and finally any command
// line arguments. A missing or malformed config file, or one that fails
// cache policy validation, is a fatal condition.
func Load(arguments []string) (*Config, *Flags, error) {
	c := NewConfig()
	flags, err := parseFlags(arguments)
	if err != nil {
		return nil, flags, err
	}
	if flags.PrintVersion {
		return c, flags, nil
	}
	if err := c.loadFile(flags.ConfigPath); err != nil {
		return nil, flags, err
	}
	if flags.Port != 0 {
		c.Frontend.ListenPort = flags.Port
	}
	if w := flags.portWarning; w != "" {
		c.LoaderWarnings = append(c.LoaderWarnings, w)
	}
	if err := c.validate(); err != nil {
		return nil, flags, err
	}
	return c, flags, nil
}
