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
	"time"

	"go.uber.org/multierr"
)

// PendingEmission is an emission captured while the emitter was paused.
type PendingEmission struct {
	Name string
	Args []any
	Seq  uint64
	At   time.Time
}

func (e *GatedEmitter) PauseEvents() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.paused = true
}

func (e *GatedEmitter) IsPaused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.paused
}

func (e *GatedEmitter) PendingEvents() []PendingEmission {
	e.mu.Lock()
	defer e.mu.Unlock()

	pending := make([]PendingEmission, len(e.pending))
	copy(pending, e.pending)
	return pending
}

// ResumeEvents lets emissions through again. Queued emissions are replayed
// in order when replay is set and dropped otherwise. Replayed emissions go
// through the same checks as live ones; a failing one does not stop the
// rest and every failure is returned.
func (e *GatedEmitter) ResumeEvents(replay bool) error {
	e.mu.Lock()
	e.paused = false
	pending := e.pending
	e.pending = nil
	e.mu.Unlock()

	if !replay {
		if len(pending) > 0 {
			e.logger.Debugf("discarding %d queued emissions", len(pending))
		}
		return nil
	}

	var err error
	for _, p := range pending {
		e.logger.Debugf("replaying emission #%d of %s queued at %s", p.Seq, p.Name, p.At.Format(time.RFC3339Nano))
		if _, rerr := e.EmitContext(context.Background(), p.Name, p.Args...); rerr != nil {
			err = multierr.Append(err, rerr)
		}
	}

	return err
}

// enqueue expects e.mu to be held.
func (e *GatedEmitter) enqueue(name string, args []any) {
	e.seq++
	e.pending = append(e.pending, PendingEmission{
		Name: name,
		Args: append([]any(nil), args...),
		Seq:  e.seq,
		At:   e.clock.Now(),
	})
	e.logger.Debugf("emitter is paused, queued %s as #%d", name, e.seq)
}
