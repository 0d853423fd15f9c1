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

// Package defaults provides default values for the application configuration
package defaults

const (
	// DefaultConfigPath is the path to the configuration file used when
	// one is not provided on the command line
	DefaultConfigPath = "hoard.yaml"

	// DefaultProxyListenAddress is the default listen address for the proxy frontend
	DefaultProxyListenAddress = "localhost"
	// DefaultProxyListenPort is the default listen port for the proxy frontend
	DefaultProxyListenPort = 8080
	// DefaultConnectionsLimit of 0 means unlimited frontend connections
	DefaultConnectionsLimit = 0

	// MaxPort is the highest valid TCP port number
	MaxPort = 65535

	// DefaultMetricsListenAddress is the default listen address for the metrics endpoint
	DefaultMetricsListenAddress = ""
	// DefaultMetricsListenPort is the default listen port for the metrics endpoint
	DefaultMetricsListenPort = 8481

	// DefaultLogFile of empty means log to console
	DefaultLogFile = ""
	// DefaultLogLevel is the default logging verbosity
	DefaultLogLevel = "info"

	// DefaultUpstreamTimeoutSecs is the connect/read timeout for upstream fetches
	DefaultUpstreamTimeoutSecs = 10

	// DefaultTracerServiceName is the service name conveyed in trace spans
	DefaultTracerServiceName = "hoard"
)
