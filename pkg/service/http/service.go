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

package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ONLYOFFICE/onlyoffice-events/pkg/config"
	plog "github.com/ONLYOFFICE/onlyoffice-events/pkg/log"
	"github.com/ONLYOFFICE/onlyoffice-events/pkg/middleware"
	"github.com/ONLYOFFICE/onlyoffice-events/pkg/resilience"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"
	oteltrace "go.opentelemetry.io/otel/sdk/trace"
)

type ServerEngine interface {
	ApplyMiddleware(middlewares ...func(http.Handler) http.Handler)
	NewHandler() http.Handler
}

// Service is the public http server of a service.
type Service struct {
	server *http.Server
	tracer *oteltrace.TracerProvider
	logger plog.Logger
}

// NewService Initializes an http service.
func NewService(
	engine ServerEngine,
	tracer *oteltrace.TracerProvider,
	logger plog.Logger,
	serverConfig *config.ServerConfig,
	resilienceConfig *config.ResilienceConfig,
	corsConfig *config.CORSConfig,
	tracerConfig *config.TracerConfig,
) *Service {
	resilience.ConfigureDefaults(resilienceConfig)

	engine.ApplyMiddleware(middleware.RateLimiters(resilienceConfig)...)
	engine.ApplyMiddleware(
		middleware.Log(logger),
		chimiddleware.RealIP,
		chimiddleware.RequestID,
		chimiddleware.StripSlashes,
		chimiddleware.Recoverer,
		middleware.Secure,
		middleware.Version(strconv.Itoa(serverConfig.Version)),
		middleware.Cors(corsConfig),
	)

	if tracerConfig.Tracer.Enable {
		engine.ApplyMiddleware(middleware.Trace)
	}

	return &Service{
		server: &http.Server{
			Addr:              serverConfig.Address,
			Handler:           engine.NewHandler(),
			ReadHeaderTimeout: 5 * time.Second,
		},
		tracer: tracer,
		logger: logger,
	}
}

// Run blocks serving requests until the service is shut down.
func (s *Service) Run() error {
	s.logger.Infof("http service is listening on %s", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Shutdown stops accepting requests and flushes pending spans.
func (s *Service) Shutdown(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.server.Shutdown(gCtx)
	})

	if s.tracer != nil {
		g.Go(func() error {
			ctx, cancel := context.WithTimeout(gCtx, 10*time.Second)
			defer cancel()
			return s.tracer.Shutdown(ctx)
		})
	}

	return g.Wait()
}

func (s *Service) Handler() http.Handler {
	return s.server.Handler
}
