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

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/ONLYOFFICE/onlyoffice-events/pkg/config"
	"github.com/mitchellh/mapstructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedGif struct {
	ID  string `msgpack:"id" mapstructure:"id"`
	URL string `msgpack:"url" mapstructure:"url"`
}

func TestMemoryCache(t *testing.T) {
	c := NewCache(&config.CacheConfig{})
	assert.Equal(t, "Freecache", c.String())

	t.Run("put and get a value", func(t *testing.T) {
		require.NoError(t, c.Put(context.Background(), "key", "value", time.Minute))
		res, _, err := c.Get(context.Background(), "key")
		assert.NoError(t, err)
		assert.Equal(t, "value", res)
	})

	t.Run("put and decode a struct", func(t *testing.T) {
		gif := cachedGif{ID: "mock", URL: "https://example.com/mock.gif"}
		require.NoError(t, c.Put(context.Background(), "gif", gif, 0))

		res, _, err := c.Get(context.Background(), "gif")
		require.NoError(t, err)

		var decoded cachedGif
		assert.NoError(t, mapstructure.Decode(res, &decoded))
		assert.Equal(t, gif, decoded)
	})

	t.Run("report the expiration of a value", func(t *testing.T) {
		require.NoError(t, c.Put(context.Background(), "expiring", "value", time.Minute))
		_, expiration, err := c.Get(context.Background(), "expiring")
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(time.Minute), expiration, 2*time.Second)
	})

	t.Run("fall back to the configured ttl", func(t *testing.T) {
		require.NoError(t, c.Put(context.Background(), "default", "value", 0))
		_, expiration, err := c.Get(context.Background(), "default")
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(10*time.Minute), expiration, 2*time.Second)
	})

	t.Run("delete a value", func(t *testing.T) {
		require.NoError(t, c.Put(context.Background(), "deleted", "value", time.Minute))
		assert.NoError(t, c.Delete(context.Background(), "deleted"))
		_, _, err := c.Get(context.Background(), "deleted")
		assert.Error(t, err)
	})

	t.Run("get a missing value", func(t *testing.T) {
		res, _, err := c.Get(context.Background(), "missing")
		assert.Error(t, err)
		assert.Nil(t, res)
	})
}
