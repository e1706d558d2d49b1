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

package events_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ONLYOFFICE/onlyoffice-events/pkg/events"
	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestPauseResume(t *testing.T) {
	t.Run("queue emissions while paused", func(t *testing.T) {
		mock := clock.NewMock()
		start := mock.Now()
		e := events.NewEmitter(events.WithEvents("foo", "bar"), events.WithClock(mock))
		calls := 0
		require.NoError(t, e.On("foo", events.Func(func(args ...any) { calls++ })))

		e.PauseEvents()
		assert.True(t, e.IsPaused())

		ok, err := e.Emit("foo", 1)
		assert.NoError(t, err)
		assert.False(t, ok)

		mock.Add(time.Minute)
		_, err = e.Emit("bar", 2, 3)
		assert.NoError(t, err)

		_, err = e.Emit("missing")
		assert.Error(t, err)

		pending := e.PendingEvents()
		require.Len(t, pending, 2)
		assert.Equal(t, "foo", pending[0].Name)
		assert.Equal(t, []any{1}, pending[0].Args)
		assert.Equal(t, uint64(1), pending[0].Seq)
		assert.True(t, pending[0].At.Equal(start))
		assert.Equal(t, "bar", pending[1].Name)
		assert.Equal(t, []any{2, 3}, pending[1].Args)
		assert.Equal(t, uint64(2), pending[1].Seq)
		assert.True(t, pending[1].At.Equal(start.Add(time.Minute)))
		assert.Equal(t, 0, calls)
	})

	t.Run("discard queue on plain resume", func(t *testing.T) {
		e := events.NewEmitter(events.WithEvents("foo"))
		calls := 0
		require.NoError(t, e.On("foo", events.Func(func(args ...any) { calls++ })))

		e.PauseEvents()
		_, _ = e.Emit("foo")
		_, _ = e.Emit("foo")
		assert.NoError(t, e.ResumeEvents(false))

		assert.False(t, e.IsPaused())
		assert.Empty(t, e.PendingEvents())
		assert.Equal(t, 0, calls)

		_, err := e.Emit("foo")
		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("replay queue in order", func(t *testing.T) {
		e := events.NewEmitter(events.WithEvents("foo", "bar"))
		var got []any
		record := events.Func(func(args ...any) { got = append(got, args...) })
		require.NoError(t, e.AddListeners([]string{"foo", "bar"}, record))

		e.PauseEvents()
		_, _ = e.Emit("foo", 1)
		_, _ = e.Emit("bar", 2)
		_, _ = e.Emit("foo", 3)
		assert.NoError(t, e.ResumeEvents(true))

		assert.Equal(t, []any{1, 2, 3}, got)
		assert.Empty(t, e.PendingEvents())
	})

	t.Run("replay under current rules", func(t *testing.T) {
		boom := errors.New("boom")
		e := events.NewEmitter(events.WithEvents("foo", "bar", "baz"))
		calls := 0
		require.NoError(t, e.On("bar", events.ListenerFunc(func(ctx context.Context, args ...any) (events.Result, error) {
			return events.Continue(true), boom
		})))
		require.NoError(t, e.On("baz", events.Func(func(args ...any) { calls++ })))

		e.PauseEvents()
		_, _ = e.Emit("foo")
		_, _ = e.Emit("bar")
		_, _ = e.Emit("baz")
		e.UnregisterEvent("foo")

		err := e.ResumeEvents(true)
		require.Error(t, err)

		errs := multierr.Errors(err)
		require.Len(t, errs, 2)

		var uerr *events.UnregisteredEventError
		assert.True(t, errors.As(errs[0], &uerr))
		assert.ErrorIs(t, errs[1], boom)
		assert.Equal(t, 1, calls)
	})

	t.Run("pause from inside a listener", func(t *testing.T) {
		e := events.NewEmitter(events.WithEvents("foo", "bar"))
		require.NoError(t, e.On("foo", events.Func(func(args ...any) {
			e.PauseEvents()
			_, _ = e.Emit("bar")
		})))

		_, err := e.Emit("foo")
		assert.NoError(t, err)
		assert.Len(t, e.PendingEvents(), 1)
	})
}
