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
	"fmt"
)

// Emit is EmitContext with a background context.
func (e *GatedEmitter) Emit(name string, args ...any) (bool, error) {
	return e.EmitContext(context.Background(), name, args...)
}

// EmitContext invokes every listener of name with args.
//
// With return value checking disabled the result reports whether any
// listener was attached. With checking enabled it is the AND of every
// listener result, or the value of the first Cancel. A paused emitter
// queues the call and returns false.
func (e *GatedEmitter) EmitContext(ctx context.Context, name string, args ...any) (bool, error) {
	out, err := e.dispatch(ctx, name, args, false)
	if err != nil {
		return false, err
	}

	switch {
	case out.queued:
		return false, nil
	case out.checked:
		return out.value, nil
	default:
		return out.listened, nil
	}
}

// EmitAsync checks registration right away, then awaits listeners one by
// one on a separate goroutine, aggregating results as a checking Emit
// does. The returned channel yields exactly one AsyncResult.
func (e *GatedEmitter) EmitAsync(ctx context.Context, name string, args ...any) (<-chan AsyncResult, error) {
	entries, out, err := e.prepare(name, args, true)
	if err != nil {
		return nil, err
	}

	res := make(chan AsyncResult, 1)
	if out.queued {
		res <- AsyncResult{Queued: true}
		close(res)
		return res, nil
	}

	go func() {
		defer close(res)
		done, err := e.invoke(ctx, name, entries, args, out)
		res <- AsyncResult{Value: done.value && err == nil, Err: err}
	}()

	return res, nil
}

func (e *GatedEmitter) dispatch(ctx context.Context, name string, args []any, forceCheck bool) (outcome, error) {
	entries, out, err := e.prepare(name, args, forceCheck)
	if err != nil || out.queued {
		return out, err
	}

	return e.invoke(ctx, name, entries, args, out)
}

// prepare validates the emission and either queues it or snapshots the
// listeners to invoke.
func (e *GatedEmitter) prepare(name string, args []any, forceCheck bool) ([]*entry, outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.isRegistered(name) {
		e.logger.Debugf("could not emit %s: event is not registered", name)
		return nil, outcome{}, &UnregisteredEventError{Name: name}
	}

	if e.paused {
		e.enqueue(name, args)
		return nil, outcome{queued: true}, nil
	}

	entries := make([]*entry, len(e.listeners[name]))
	copy(entries, e.listeners[name])

	return entries, outcome{
		checked:  e.check || forceCheck,
		listened: len(entries) > 0,
		value:    true,
	}, nil
}

func (e *GatedEmitter) invoke(ctx context.Context, name string, entries []*entry, args []any, out outcome) (outcome, error) {
	for _, en := range entries {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		if en.once && !e.detach(name, en) {
			continue
		}

		res, err := en.listener.Handle(ctx, args...)
		if err != nil {
			e.logger.Debugf("listener of %s failed: %s", name, err.Error())
			return out, fmt.Errorf("event %s: %w", name, err)
		}

		if !out.checked {
			continue
		}

		if res.Canceled() {
			out.canceled = true
			out.value = res.Value()
			return out, nil
		}

		out.value = out.value && res.Value()
	}

	return out, nil
}
