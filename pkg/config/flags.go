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

package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/hoardcache/hoard/pkg/appinfo"
	d "github.com/hoardcache/hoard/pkg/config/defaults"
)

// Flags holds the values for whitelisted command line flags and arguments
type Flags struct {
	// PrintVersion indicates whether to print the application version and exit
	PrintVersion bool
	// ConfigPath is the path to the configuration file
	ConfigPath string
	// Port is the frontend listen port provided as the single positional
	// argument; 0 means no valid port was provided
	Port int

	portWarning string
}

// parseFlags parses the command line: the -config and -version flags plus an
// optional single positional port argument. An unparseable or out-of-range
// port falls back to the configured default with a warning rather than
// failing startup.
func parseFlags(arguments []string) (*Flags, error) {
	flags := &Flags{}
	f := flag.NewFlagSet(appinfo.Name, flag.ContinueOnError)
	f.SetOutput(io.Discard)
	f.StringVar(&flags.ConfigPath, "config", d.DefaultConfigPath, "Supplies Path to Config File")
	f.BoolVar(&flags.PrintVersion, "version", false, "Prints the application version")
	if err := f.Parse(arguments); err != nil {
		return flags, err
	}

	args := f.Args()
	if len(args) == 0 {
		return flags, nil
	}
	port, err := strconv.Atoi(args[0])
	if err != nil || port <= 0 || port > d.MaxPort {
		flags.portWarning = fmt.Sprintf(
			"invalid port argument %q, using default port %d",
			args[0], d.DefaultProxyListenPort)
		return flags, nil
	}
	flags.Port = port
	return flags, nil
}
