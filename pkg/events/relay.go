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
	"context"
	"reflect"
)

// relayKey identifies a relay. Origins are used as map keys and must be
// comparable, which every pointer emitter is.
type relayKey struct {
	origin Source
	event  string
	prefix string
}

type relayListener struct {
	target *GatedEmitter
	local  string
}

// Handle re-emits on the target. Its contribution to the origin's
// aggregate is the local aggregate when the target checks return values,
// true otherwise.
func (r *relayListener) Handle(ctx context.Context, args ...any) (Result, error) {
	out, err := r.target.dispatch(ctx, r.local, args, false)
	if err != nil {
		return Continue(false), err
	}

	if out.queued || !out.checked {
		return Continue(true), nil
	}

	return Continue(out.value), nil
}

func (e *GatedEmitter) hasRelay(key relayKey) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, exists := e.relays[key]
	return exists
}

// storeRelay reports false when an identical relay got stored first.
func (e *GatedEmitter) storeRelay(key relayKey, relay *relayListener) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, exists := e.relays[key]; exists {
		return false
	}

	e.relays[key] = relay
	return true
}

func (e *GatedEmitter) takeRelay(key relayKey) (*relayListener, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	relay, ok := e.relays[key]
	delete(e.relays, key)
	return relay, ok
}

// comparableSource reports whether origin can identify a relay. Values
// holding slices, maps or funcs cannot.
func comparableSource(origin Source) bool {
	return origin != nil && reflect.ValueOf(origin).Comparable()
}

// RelayEventsFrom re-emits every named origin event on this emitter as
// prefix+name. A relay that already exists is left untouched.
func (e *GatedEmitter) RelayEventsFrom(origin Source, names []string, prefix string) error {
	if !comparableSource(origin) {
		return ErrIncomparableSource
	}

	for _, name := range names {
		key := relayKey{origin: origin, event: name, prefix: prefix}
		if e.hasRelay(key) {
			continue
		}

		relay := &relayListener{target: e, local: prefix + name}
		if err := origin.On(name, relay); err != nil {
			return err
		}

		if !e.storeRelay(key, relay) {
			origin.Off(name, relay)
			continue
		}

		e.logger.Debugf("relaying %s as %s", name, relay.local)
	}

	return nil
}

// StopRelayingFrom detaches relays set up with the same origin, names and prefix.
func (e *GatedEmitter) StopRelayingFrom(origin Source, names []string, prefix string) {
	if !comparableSource(origin) {
		return
	}

	for _, name := range names {
		relay, ok := e.takeRelay(relayKey{origin: origin, event: name, prefix: prefix})
		if ok {
			origin.Off(name, relay)
		}
	}
}

func (e *GatedEmitter) StopAllRelays() {
	e.mu.Lock()
	relays := e.relays
	e.relays = make(map[relayKey]*relayListener)
	e.mu.Unlock()

	for key, relay := range relays {
		key.origin.Off(key.event, relay)
	}
}
