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

// Package tracing provides distributed tracing services using a
// stdout span exporter
package tracing

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	stdout "go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// ShutdownFunc defines a function used to Flush a Tracer
type ShutdownFunc func(context.Context) error

// Tracer is a Tracer object used by the proxy
type Tracer struct {
	trace.Tracer
	Name         string
	ShutdownFunc ShutdownFunc
}

// Options modify the behavior of the stdout Tracer
type Options struct {
	Enabled     bool    `yaml:"enabled"`
	ServiceName string  `yaml:"service_name"`
	SampleRate  float64 `yaml:"sample_rate"`
	PrettyPrint bool    `yaml:"pretty_print"`
}

// New returns a new Stdout Tracer
func New(opts *Options) (*Tracer, error) {
	if opts == nil {
		opts = &Options{SampleRate: 1}
	}

	o := []stdout.Option{}
	if opts.PrettyPrint {
		o = append(o, stdout.WithPrettyPrint())
	}

	exp, err := stdout.New(o...)
	if err != nil {
		return nil, err
	}

	var sampler sdktrace.Sampler
	switch opts.SampleRate {
	case 0:
		sampler = sdktrace.NeverSample()
	case 1:
		sampler = sdktrace.AlwaysSample()
	default:
		sampler = sdktrace.TraceIDRatioBased(opts.SampleRate)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithSampler(sampler),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", opts.ServiceName))),
	)

	return &Tracer{
		Tracer:       tp.Tracer(opts.ServiceName),
		Name:         opts.ServiceName,
		ShutdownFunc: tp.Shutdown,
	}, nil
}

// HTTPToCode translates an HTTP status code into an otel span status code
func HTTPToCode(status int) codes.Code {
	switch {
	case status < http.StatusBadRequest:
		return codes.Ok
	default:
		return codes.Error
	}
}
