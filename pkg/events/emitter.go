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
	"reflect"
	"sync"

	"github.com/ONLYOFFICE/onlyoffice-events/pkg/config"
	"github.com/ONLYOFFICE/onlyoffice-events/pkg/log"
	"github.com/benbjohnson/clock"
)

type entry struct {
	listener Listener
	once     bool
}

// GatedEmitter only lets registered events through. Listeners run
// synchronously in attachment order, outside of the emitter lock, so they
// are free to call back into the emitter.
type GatedEmitter struct {
	mu         sync.Mutex
	registered []string
	listeners  map[string][]*entry
	relays     map[relayKey]*relayListener
	check      bool
	paused     bool
	pending    []PendingEmission
	seq        uint64
	clock      clock.Clock
	logger     log.Logger
}

func NewEmitter(opts ...Option) *GatedEmitter {
	options := newOptions(opts...)
	e := &GatedEmitter{
		listeners: make(map[string][]*entry),
		relays:    make(map[relayKey]*relayListener),
		check:     options.check,
		clock:     options.clock,
		logger:    options.logger,
	}

	e.RegisterEvents(options.events...)
	return e
}

// BuildNewEmitter creates an emitter out of the emitter configuration.
func BuildNewEmitter(config *config.EmitterConfig, logger log.Logger) Emitter {
	return NewEmitter(
		WithEvents(config.Emitter.Events...),
		WithCheckReturnValues(config.Emitter.CheckReturnValues),
		WithLogger(logger),
	)
}

func (e *GatedEmitter) RegisterEvent(name string) {
	e.RegisterEvents(name)
}

func (e *GatedEmitter) RegisterEvents(names ...string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, name := range names {
		if !e.isRegistered(name) {
			e.registered = append(e.registered, name)
		}
	}
}

func (e *GatedEmitter) UnregisterEvent(name string) {
	e.UnregisterEvents(name)
}

// UnregisterEvents forgets the names and drops every listener attached to
// them. Names that are not registered are ignored.
func (e *GatedEmitter) UnregisterEvents(names ...string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, name := range names {
		for i, registered := range e.registered {
			if registered == name {
				e.registered = append(e.registered[:i], e.registered[i+1:]...)
				delete(e.listeners, name)
				break
			}
		}
	}
}

func (e *GatedEmitter) IsRegisteredEvent(name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.isRegistered(name)
}

func (e *GatedEmitter) RegisteredEvents() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	names := make([]string, len(e.registered))
	copy(names, e.registered)
	return names
}

func (e *GatedEmitter) SetCheckReturnValues(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.check = enabled
}

func (e *GatedEmitter) On(name string, listener Listener) error {
	return e.AddListeners([]string{name}, listener)
}

// AddListeners attaches listener to every name. Nothing is attached unless
// all names are registered.
func (e *GatedEmitter) AddListeners(names []string, listener Listener) error {
	if listener == nil {
		return ErrNilListener
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, name := range names {
		if !e.isRegistered(name) {
			return &UnregisteredEventError{Name: name}
		}
	}

	for _, name := range names {
		e.listeners[name] = append(e.listeners[name], &entry{listener: listener})
	}

	return nil
}

// Once attaches a listener that is detached right before its first
// invocation. Registration is checked when emitting, not here.
func (e *GatedEmitter) Once(name string, listener Listener) error {
	if listener == nil {
		return ErrNilListener
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.listeners[name] = append(e.listeners[name], &entry{listener: listener, once: true})
	return nil
}

// Subscription is a single attachment made by Subscribe.
type Subscription struct {
	emitter *GatedEmitter
	name    string
	entry   *entry
}

// Unsubscribe detaches this attachment only and reports whether it was
// still attached.
func (s *Subscription) Unsubscribe() bool {
	return s.emitter.detach(s.name, s.entry)
}

// Subscribe attaches listener as On does and returns a handle to that exact
// attachment, so closures sharing code can be removed one by one.
func (e *GatedEmitter) Subscribe(name string, listener Listener) (*Subscription, error) {
	if listener == nil {
		return nil, ErrNilListener
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.isRegistered(name) {
		return nil, &UnregisteredEventError{Name: name}
	}

	en := &entry{listener: listener}
	e.listeners[name] = append(e.listeners[name], en)
	return &Subscription{emitter: e, name: name, entry: en}, nil
}

func (e *GatedEmitter) Off(name string, listener Listener) {
	e.RemoveListeners([]string{name}, listener)
}

// RemoveListeners detaches the first attachment of listener from each name.
func (e *GatedEmitter) RemoveListeners(names []string, listener Listener) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, name := range names {
		entries := e.listeners[name]
		for i, en := range entries {
			if sameListener(en.listener, listener) {
				e.removeAt(name, i)
				break
			}
		}
	}
}

func (e *GatedEmitter) RemoveAllListeners(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.listeners, name)
}

func (e *GatedEmitter) ListenerCount(name string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.listeners[name])
}

func (e *GatedEmitter) isRegistered(name string) bool {
	for _, registered := range e.registered {
		if registered == name {
			return true
		}
	}

	return false
}

// removeAt never mutates the backing array in place, running emissions
// keep iterating over their own snapshot.
func (e *GatedEmitter) removeAt(name string, i int) {
	entries := e.listeners[name]
	if len(entries) == 1 {
		delete(e.listeners, name)
		return
	}

	rest := make([]*entry, 0, len(entries)-1)
	rest = append(rest, entries[:i]...)
	e.listeners[name] = append(rest, entries[i+1:]...)
}

// detach removes a specific attachment and reports whether it was still there.
func (e *GatedEmitter) detach(name string, target *entry) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, en := range e.listeners[name] {
		if en == target {
			e.removeAt(name, i)
			return true
		}
	}

	return false
}

func sameListener(a, b Listener) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}

	if ta.Comparable() {
		return a == b
	}

	if ta.Kind() == reflect.Func {
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}

	return false
}
