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

package events

import (
	"github.com/ONLYOFFICE/onlyoffice-events/pkg/log"
	"github.com/benbjohnson/clock"
)

type Option func(*options)

type options struct {
	events []string
	check  bool
	clock  clock.Clock
	logger log.Logger
}

func newOptions(opts ...Option) options {
	opt := options{
		clock:  clock.New(),
		logger: log.NewEmptyLogger(),
	}

	for _, o := range opts {
		o(&opt)
	}

	return opt
}

// WithEvents registers names right away.
func WithEvents(names ...string) Option {
	return func(o *options) {
		o.events = append(o.events, names...)
	}
}

func WithCheckReturnValues(enabled bool) Option {
	return func(o *options) {
		o.check = enabled
	}
}

// WithClock sets the clock used to timestamp queued emissions.
func WithClock(val clock.Clock) Option {
	return func(o *options) {
		if val != nil {
			o.clock = val
		}
	}
}

func WithLogger(val log.Logger) Option {
	return func(o *options) {
		if val != nil {
			o.logger = val
		}
	}
}
