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

package pkg

import (
	"context"
	"net/http"
	"os"

	"github.com/ONLYOFFICE/onlyoffice-events/pkg/cache"
	"github.com/ONLYOFFICE/onlyoffice-events/pkg/config"
	"github.com/ONLYOFFICE/onlyoffice-events/pkg/crypto"
	"github.com/ONLYOFFICE/onlyoffice-events/pkg/events"
	"github.com/ONLYOFFICE/onlyoffice-events/pkg/log"
	shttp "github.com/ONLYOFFICE/onlyoffice-events/pkg/service/http"
	"github.com/ONLYOFFICE/onlyoffice-events/pkg/service/repl"
	"github.com/ONLYOFFICE/onlyoffice-events/pkg/trace"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"golang.org/x/sync/errgroup"
)

type option func(*options)

type options struct {
	invokables []interface{}
	modules    []interface{}
}

func newOptions(opts ...option) options {
	opt := options{}
	for _, o := range opts {
		o(&opt)
	}

	return opt
}

func WithInvokables(val ...interface{}) option {
	return func(o *options) {
		o.invokables = val
	}
}

// WithModules provides service specific constructors. One of them must
// provide an http.ServerEngine.
func WithModules(val ...interface{}) option {
	return func(o *options) {
		o.modules = val
	}
}

type bootstrapper struct {
	path       string
	invokables []interface{}
	modules    []interface{}
}

func NewBootstrapper(path string, opts ...option) bootstrapper {
	options := newOptions(opts...)
	return bootstrapper{
		path:       path,
		invokables: options.invokables,
		modules:    options.modules,
	}
}

func (b bootstrapper) Bootstrap() *fx.App {
	builder := config.BuildNewServerConfig(b.path)
	sconf, err := builder()
	if err != nil {
		log := log.NewDefaultLogger(&config.LoggerConfig{})
		log.Fatal(err.Error())
		return nil
	}

	var logger fx.Option = fx.NopLogger
	if sconf.Debug {
		logger = fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ConsoleLogger{W: os.Stdout}
		})
	}

	return fx.New(
		fx.Provide(config.BuildNewCacheConfig(b.path)),
		fx.Provide(config.BuildNewCorsConfig(b.path)),
		fx.Provide(config.BuildNewLoggerConfig(b.path)),
		fx.Provide(config.BuildNewResilienceConfig(b.path)),
		fx.Provide(builder),
		fx.Provide(config.BuildNewTracerConfig(b.path)),
		fx.Provide(config.BuildNewEmitterConfig(b.path)),
		fx.Provide(cache.NewCache),
		fx.Provide(log.NewLogrusLogger),
		fx.Provide(trace.NewTracer),
		fx.Provide(events.BuildNewEmitter),
		fx.Provide(repl.NewService),
		fx.Provide(shttp.NewService),
		fx.Provide(crypto.NewJwtManager),
		fx.Provide(b.modules...),
		fx.Invoke(b.invokables...),
		fx.Invoke(func(lifecycle fx.Lifecycle, service *shttp.Service, repl *http.Server, logger log.Logger) {
			lifecycle.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					go func() {
						if err := repl.ListenAndServe(); err != nil && err != http.ErrServerClosed {
							logger.Errorf("repl service has stopped: %s", err.Error())
						}
					}()

					go func() {
						if err := service.Run(); err != nil {
							logger.Errorf("http service has stopped: %s", err.Error())
						}
					}()

					return nil
				},
				OnStop: func(ctx context.Context) error {
					g, gCtx := errgroup.WithContext(ctx)
					g.Go(func() error {
						return repl.Shutdown(gCtx)
					})
					g.Go(func() error {
						return service.Shutdown(gCtx)
					})
					return g.Wait()
				},
			})
		}),
		logger,
	)
}
