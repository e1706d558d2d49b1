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

	"github.com/ONLYOFFICE/onlyoffice-events/pkg/config"
	"github.com/ONLYOFFICE/onlyoffice-events/pkg/events"
	"github.com/ONLYOFFICE/onlyoffice-events/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(ctx context.Context, args ...any) (events.Result, error) {
	return events.Continue(true), nil
}

func TestRegistration(t *testing.T) {
	t.Run("keep insertion order without duplicates", func(t *testing.T) {
		e := events.NewEmitter()
		e.RegisterEvents("foo", "bar", "foo")
		e.RegisterEvent("baz")
		e.RegisterEvent("bar")
		assert.Equal(t, []string{"foo", "bar", "baz"}, e.RegisteredEvents())
	})

	t.Run("unregister ignores unknown names", func(t *testing.T) {
		e := events.NewEmitter()
		calls := 0
		require.NoError(t, e.Once("foo", events.Func(func(args ...any) { calls++ })))
		e.UnregisterEvents("foo")
		assert.Equal(t, 1, e.ListenerCount("foo"))

		e.RegisterEvent("foo")
		_, err := e.Emit("foo")
		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("return a copy of registered events", func(t *testing.T) {
		e := events.NewEmitter(events.WithEvents("foo", "bar"))
		names := e.RegisteredEvents()
		names[0] = "changed"
		assert.Equal(t, []string{"foo", "bar"}, e.RegisteredEvents())
	})

	t.Run("unregister drops listeners", func(t *testing.T) {
		e := events.NewEmitter(events.WithEvents("foo", "bar"))
		require.NoError(t, e.On("foo", events.ListenerFunc(noop)))
		e.UnregisterEvents("foo", "missing")
		assert.False(t, e.IsRegisteredEvent("foo"))
		assert.True(t, e.IsRegisteredEvent("bar"))
		assert.Equal(t, 0, e.ListenerCount("foo"))

		e.RegisterEvent("foo")
		ok, err := e.Emit("foo")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("build from configuration", func(t *testing.T) {
		cfg := &config.EmitterConfig{}
		cfg.Emitter.Events = []string{"message", "reply"}
		cfg.Emitter.CheckReturnValues = true

		e := events.BuildNewEmitter(cfg, log.NewEmptyLogger())
		assert.Equal(t, []string{"message", "reply"}, e.RegisteredEvents())

		ok, err := e.Emit("message")
		assert.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestListeners(t *testing.T) {
	t.Run("attach to unregistered event", func(t *testing.T) {
		e := events.NewEmitter()
		err := e.On("foo", events.ListenerFunc(noop))

		var uerr *events.UnregisteredEventError
		require.True(t, errors.As(err, &uerr))
		assert.Equal(t, "foo", uerr.Name)
		assert.Equal(t, "Event \"foo\" is not registered.", err.Error())
	})

	t.Run("attach nothing when one name is unregistered", func(t *testing.T) {
		e := events.NewEmitter(events.WithEvents("foo"))
		assert.Error(t, e.AddListeners([]string{"foo", "bar"}, events.ListenerFunc(noop)))
		assert.Equal(t, 0, e.ListenerCount("foo"))
	})

	t.Run("reject nil listeners", func(t *testing.T) {
		e := events.NewEmitter(events.WithEvents("foo"))
		assert.ErrorIs(t, e.On("foo", nil), events.ErrNilListener)
		assert.ErrorIs(t, e.Once("foo", nil), events.ErrNilListener)
	})

	t.Run("remove a listener from many events", func(t *testing.T) {
		e := events.NewEmitter(events.WithEvents("foo", "bar"))
		calls := 0
		listener := events.Func(func(args ...any) { calls++ })
		other := events.Func(func(args ...any) {})

		require.NoError(t, e.AddListeners([]string{"foo", "bar"}, listener))
		require.NoError(t, e.On("foo", other))
		e.RemoveListeners([]string{"foo", "bar", "missing"}, listener)

		assert.Equal(t, 1, e.ListenerCount("foo"))
		assert.Equal(t, 0, e.ListenerCount("bar"))

		_, err := e.Emit("foo")
		assert.NoError(t, err)
		assert.Equal(t, 0, calls)
	})

	t.Run("remove a function listener", func(t *testing.T) {
		e := events.NewEmitter(events.WithEvents("foo"))
		require.NoError(t, e.On("foo", events.ListenerFunc(noop)))
		e.Off("foo", events.ListenerFunc(noop))
		assert.Equal(t, 0, e.ListenerCount("foo"))
	})

	t.Run("unsubscribe closures sharing code one by one", func(t *testing.T) {
		e := events.NewEmitter(events.WithEvents("foo"))
		var calls []int
		listener := func(id int) events.ListenerFunc {
			return func(ctx context.Context, args ...any) (events.Result, error) {
				calls = append(calls, id)
				return events.Continue(true), nil
			}
		}

		first, err := e.Subscribe("foo", listener(1))
		require.NoError(t, err)
		_, err = e.Subscribe("foo", listener(2))
		require.NoError(t, err)

		assert.True(t, first.Unsubscribe())
		assert.False(t, first.Unsubscribe())
		assert.Equal(t, 1, e.ListenerCount("foo"))

		_, err = e.Emit("foo")
		assert.NoError(t, err)
		assert.Equal(t, []int{2}, calls)
	})

	t.Run("subscribe checks registration", func(t *testing.T) {
		e := events.NewEmitter()
		_, err := e.Subscribe("foo", events.ListenerFunc(noop))
		var uerr *events.UnregisteredEventError
		assert.True(t, errors.As(err, &uerr))

		e.RegisterEvent("foo")
		_, err = e.Subscribe("foo", nil)
		assert.ErrorIs(t, err, events.ErrNilListener)
		assert.Equal(t, 0, e.ListenerCount("foo"))
	})

	t.Run("remove all listeners", func(t *testing.T) {
		e := events.NewEmitter(events.WithEvents("foo"))
		require.NoError(t, e.On("foo", events.Func(func(args ...any) {})))
		require.NoError(t, e.On("foo", events.Func(func(args ...any) {})))
		e.RemoveAllListeners("foo")
		assert.Equal(t, 0, e.ListenerCount("foo"))
		assert.True(t, e.IsRegisteredEvent("foo"))
	})

	t.Run("once fires a single time", func(t *testing.T) {
		e := events.NewEmitter(events.WithEvents("foo"))
		calls := 0
		require.NoError(t, e.Once("foo", events.Func(func(args ...any) { calls++ })))

		ok, err := e.Emit("foo")
		assert.NoError(t, err)
		assert.True(t, ok)

		ok, err = e.Emit("foo")
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, 1, calls)
	})

	t.Run("once attached before registration", func(t *testing.T) {
		e := events.NewEmitter()
		calls := 0
		require.NoError(t, e.Once("foo", events.Func(func(args ...any) { calls++ })))

		_, err := e.Emit("foo")
		assert.Error(t, err)
		assert.Equal(t, 0, calls)
		assert.Equal(t, 1, e.ListenerCount("foo"))

		e.RegisterEvent("foo")
		_, err = e.Emit("foo")
		assert.NoError(t, err)
		_, err = e.Emit("foo")
		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("once listener emitting its own event", func(t *testing.T) {
		e := events.NewEmitter(events.WithEvents("foo"))
		calls := 0
		require.NoError(t, e.Once("foo", events.Func(func(args ...any) {
			calls++
			_, _ = e.Emit("foo")
		})))

		_, err := e.Emit("foo")
		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	})
}
