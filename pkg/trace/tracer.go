/**
 *
 * (c) Copyright Ascensio System SIA 2023
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
 *
 */

package trace

import (
	"errors"

	"github.com/ONLYOFFICE/onlyoffice-events/pkg/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

var ErrTracerInvalidAddressInitialization = errors.New("could not initialize a zipkin tracer without an address")

type TracerType int

var (
	Default TracerType = 0
	Zipkin  TracerType = 1
)

// NewTracer initializes a new tracer provider and makes it global. Tracing
// is a no-op unless enabled in the configuration.
func NewTracer(tracerConfig *config.TracerConfig) (*trace.TracerProvider, error) {
	var exporter trace.SpanExporter

	if tracerConfig.Tracer.Name == "" {
		tracerConfig.Tracer.Name = "default-tracer"
	}

	switch TracerType(tracerConfig.Tracer.TracerType) {
	case Zipkin:
		if tracerConfig.Tracer.Address == "" {
			return nil, ErrTracerInvalidAddressInitialization
		}

		zexporter, err := zipkin.New(tracerConfig.Tracer.Address)
		if err != nil {
			return nil, err
		}
		exporter = zexporter
	default:
		sexporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, err
		}
		exporter = sexporter
	}

	sampler := trace.NeverSample()
	if tracerConfig.Tracer.Enable {
		sampler = trace.ParentBased(trace.TraceIDRatioBased(tracerConfig.Tracer.FractionRatio))
	}

	provider := trace.NewTracerProvider(
		trace.WithSampler(sampler),
		trace.WithBatcher(exporter),
		trace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(tracerConfig.Tracer.Name),
		)),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)

	return provider, nil
}
