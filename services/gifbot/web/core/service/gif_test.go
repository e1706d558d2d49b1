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

package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ONLYOFFICE/onlyoffice-events/pkg/cache"
	"github.com/ONLYOFFICE/onlyoffice-events/pkg/config"
	"github.com/ONLYOFFICE/onlyoffice-events/pkg/log"
	"github.com/ONLYOFFICE/onlyoffice-events/services/gifbot/web/core/domain"
	"github.com/ONLYOFFICE/onlyoffice-events/services/gifbot/web/core/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUnavailable = errors.New("unavailable")

type mockAdapter struct {
	searches int32
	delay    time.Duration
}

func (m *mockAdapter) Search(ctx context.Context, query string) (domain.Gif, error) {
	atomic.AddInt32(&m.searches, 1)
	time.Sleep(m.delay)

	switch query {
	case "missing":
		return domain.Gif{}, port.ErrGifNotFound
	case "broken":
		return domain.Gif{}, errUnavailable
	}

	return domain.Gif{ID: query, Title: query, URL: "https://example.com/" + query + ".gif"}, nil
}

func (m *mockAdapter) Random(ctx context.Context) (domain.Gif, error) {
	return domain.Gif{ID: "random", URL: "https://example.com/random.gif"}, nil
}

func (m *mockAdapter) Name() string {
	return "mock"
}

func TestGifService(t *testing.T) {
	t.Run("find and cache a gif", func(t *testing.T) {
		adapter := &mockAdapter{}
		service := NewGifService(adapter, cache.NewCache(&config.CacheConfig{}), log.NewEmptyLogger())

		gif, err := service.FindGif(context.Background(), "  Funny   Cat ")
		require.NoError(t, err)
		assert.Equal(t, "funny cat", gif.ID)

		cached, err := service.FindGif(context.Background(), "funny cat")
		require.NoError(t, err)
		assert.Equal(t, gif, cached)
		assert.Equal(t, int32(1), atomic.LoadInt32(&adapter.searches))
	})

	t.Run("collapse concurrent searches", func(t *testing.T) {
		adapter := &mockAdapter{delay: 50 * time.Millisecond}
		service := NewGifService(adapter, cache.NewCache(&config.CacheConfig{}), log.NewEmptyLogger())

		var wg sync.WaitGroup
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := service.FindGif(context.Background(), "dog")
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		assert.Less(t, atomic.LoadInt32(&adapter.searches), int32(5))
	})

	t.Run("find a random gif for a blank query", func(t *testing.T) {
		service := NewGifService(&mockAdapter{}, cache.NewCache(&config.CacheConfig{}), log.NewEmptyLogger())
		gif, err := service.FindGif(context.Background(), "   ")
		require.NoError(t, err)
		assert.Equal(t, "random", gif.ID)
	})

	t.Run("report missing gifs", func(t *testing.T) {
		service := NewGifService(&mockAdapter{}, cache.NewCache(&config.CacheConfig{}), log.NewEmptyLogger())
		_, err := service.FindGif(context.Background(), "missing")
		assert.ErrorIs(t, err, port.ErrGifNotFound)
	})

	t.Run("wrap provider failures", func(t *testing.T) {
		service := NewGifService(&mockAdapter{}, cache.NewCache(&config.CacheConfig{}), log.NewEmptyLogger())
		_, err := service.FindGif(context.Background(), "broken")

		var perr *GifProviderError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "mock", perr.Provider)
		assert.ErrorIs(t, err, errUnavailable)
	})
}
