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

// Package main is the main package for the hoard application, a forward
// HTTP proxy that caches successful GET responses in a bounded in-memory
// cache.
package main

import (
	"fmt"
	"os"

	"github.com/hoardcache/hoard/pkg/appinfo"
	"github.com/hoardcache/hoard/pkg/daemon"
)

var (
	applicationGitCommitID string
	applicationBuildTime   string
)

const (
	applicationName    = "hoard"
	applicationVersion = "0.9.0"
)

func main() {
	appinfo.Set(applicationName, applicationVersion,
		applicationBuildTime, applicationGitCommitID)
	if err := daemon.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "%s failed to start: %v\n", applicationName, err)
		os.Exit(1)
	}
}
