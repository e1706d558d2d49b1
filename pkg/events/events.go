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

// Package events implements a registration-gated event emitter with
// pause/resume queuing, relaying and return value aggregation.
package events

import (
	"context"
)

// Listener handles a single emission. Args are the exact positional
// arguments passed to Emit, nothing is added or truncated.
type Listener interface {
	Handle(ctx context.Context, args ...any) (Result, error)
}

// ListenerFunc adapts a plain function to the Listener interface.
//
// Function listeners are told apart by their code pointer, so two closures
// built from the same literal are the same listener for RemoveListeners.
// Use Subscribe, Func or a pointer type when distinct identities matter.
type ListenerFunc func(ctx context.Context, args ...any) (Result, error)

func (f ListenerFunc) Handle(ctx context.Context, args ...any) (Result, error) {
	return f(ctx, args...)
}

type funcListener struct {
	fn func(args ...any)
}

func (l *funcListener) Handle(_ context.Context, args ...any) (Result, error) {
	l.fn(args...)
	return Continue(true), nil
}

// Func wraps a fire-and-forget callback. Every call returns a new listener
// with its own identity; keep it around to remove it later.
func Func(fn func(args ...any)) Listener {
	return &funcListener{fn: fn}
}

// Source is anything a relay can subscribe to.
type Source interface {
	On(name string, listener Listener) error
	Off(name string, listener Listener)
}

// Emitter is the full gated emitter contract.
type Emitter interface {
	Source
	RegisterEvent(name string)
	RegisterEvents(names ...string)
	UnregisterEvent(name string)
	UnregisterEvents(names ...string)
	IsRegisteredEvent(name string) bool
	RegisteredEvents() []string
	Once(name string, listener Listener) error
	AddListeners(names []string, listener Listener) error
	Subscribe(name string, listener Listener) (*Subscription, error)
	RemoveListeners(names []string, listener Listener)
	RemoveAllListeners(name string)
	ListenerCount(name string) int
	Emit(name string, args ...any) (bool, error)
	EmitContext(ctx context.Context, name string, args ...any) (bool, error)
	EmitAsync(ctx context.Context, name string, args ...any) (<-chan AsyncResult, error)
	SetCheckReturnValues(enabled bool)
	PauseEvents()
	IsPaused() bool
	PendingEvents() []PendingEmission
	ResumeEvents(replay bool) error
	RelayEventsFrom(origin Source, names []string, prefix string) error
	StopRelayingFrom(origin Source, names []string, prefix string)
	StopAllRelays()
}
