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

// Package daemon runs the proxy process based on the provided configuration:
// the frontend HTTP listener, the metrics listener, and signal handling for
// an orderly exit. In-flight requests are not drained on shutdown.
package daemon

import (
	"context"
	"fmt"
	"net/http"
	"os"
	goruntime "runtime"

	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"

	"github.com/hoardcache/hoard/pkg/appinfo"
	"github.com/hoardcache/hoard/pkg/cache/index"
	"github.com/hoardcache/hoard/pkg/config"
	"github.com/hoardcache/hoard/pkg/daemon/signaling"
	"github.com/hoardcache/hoard/pkg/observability/logging"
	"github.com/hoardcache/hoard/pkg/observability/metrics"
	"github.com/hoardcache/hoard/pkg/observability/tracing"
	"github.com/hoardcache/hoard/pkg/proxy/handlers"
	"github.com/hoardcache/hoard/pkg/proxy/listener"
)

// Start loads the configuration, wires the cache and proxy handler, and
// serves until an interrupt or termination signal arrives or a listener
// fails fatally.
func Start() error {
	conf, flags, err := config.Load(os.Args[1:])
	if err != nil {
		return err
	}

	// if it's a -version command, print version and exit
	if flags.PrintVersion {
		fmt.Println(appinfo.VersionString())
		return nil
	}

	logger := logging.New(conf.Logging)
	for _, w := range conf.LoaderWarnings {
		level.Warn(logger).Log("event", w)
	}

	metrics.BuildInfo.WithLabelValues(goruntime.Version(),
		appinfo.GitCommitID, appinfo.Version).Set(1)

	var tracer *tracing.Tracer
	if conf.Tracing != nil && conf.Tracing.Enabled {
		tracer, err = tracing.New(conf.Tracing)
		if err != nil {
			return err
		}
		defer tracer.ShutdownFunc(context.Background())
	}

	idx := index.NewIndex(conf.Cache.Name, conf.Cache, logger)
	defer idx.Close()

	fetcher := handlers.NewFetcher(conf.Upstream.Timeout)
	frontend := &http.Server{
		Handler: handlers.New(idx, fetcher, tracer, logger),
	}

	ln, err := listener.NewListener(conf.Frontend.ListenAddress,
		conf.Frontend.ListenPort, conf.Frontend.ConnectionsLimit)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	metricsServer := &http.Server{
		Addr:    metrics.ListenAddress(conf.Metrics.ListenAddress, conf.Metrics.ListenPort),
		Handler: mux,
	}

	level.Info(logger).Log("event", "proxy started and is listening to requests",
		"address", conf.Frontend.ListenAddress, "port", conf.Frontend.ListenPort,
		"metricsPort", conf.Metrics.ListenPort)

	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		if err := frontend.Serve(ln); err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		// blocks until SIGINT/SIGTERM, or until a sibling goroutine fails
		if sig := signaling.Wait(ctx); sig != nil {
			level.Info(logger).Log("event", "shutting down proxy", "signal", sig.String())
		}
		// in-flight requests are abandoned rather than drained
		frontend.Close()
		metricsServer.Close()
		return nil
	})
	return g.Wait()
}
