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
	"time"

	"github.com/ONLYOFFICE/onlyoffice-events/pkg/config"
	lib_cache "github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/vmihailenco/msgpack"
	"go-micro.dev/v4/cache"
)

// MarshalingCache stores msgpack-encoded values in a gocache store. Values
// come back as generic maps, decode them with mapstructure.
type MarshalingCache struct {
	manager *lib_cache.Cache[any]
	store   *marshaler.Marshaler
	name    string
	ttl     time.Duration
}

func newMarshalingCache(manager *lib_cache.Cache[any], name string, ttl time.Duration) *MarshalingCache {
	return &MarshalingCache{
		manager: manager,
		store:   marshaler.New(manager),
		name:    name,
		ttl:     ttl,
	}
}

// Get returns the value along with its expiration time. The expiration is
// zero when the store keeps the item without a ttl.
func (c *MarshalingCache) Get(ctx context.Context, key string) (interface{}, time.Time, error) {
	raw, ttl, err := c.manager.GetWithTTL(ctx, key)
	if err != nil {
		return nil, time.Time{}, err
	}

	var result interface{}
	switch v := raw.(type) {
	case []byte:
		err = msgpack.Unmarshal(v, &result)
	case string:
		err = msgpack.Unmarshal([]byte(v), &result)
	default:
		result = v
	}

	if err != nil {
		return nil, time.Time{}, err
	}

	var expiration time.Time
	if ttl > 0 {
		expiration = time.Now().Add(ttl)
	}

	return result, expiration, nil
}

// Put falls back to the configured ttl when d is not positive.
func (c *MarshalingCache) Put(ctx context.Context, key string, val interface{}, d time.Duration) error {
	if d <= 0 {
		d = c.ttl
	}

	return c.store.Set(ctx, key, val, store.WithExpiration(d))
}

func (c *MarshalingCache) Delete(ctx context.Context, key string) error {
	return c.store.Delete(ctx, key)
}

func (c *MarshalingCache) String() string {
	return c.name
}

func NewCache(cacheConfig *config.CacheConfig) cache.Cache {
	size := cacheConfig.Cache.Size
	if size <= 0 {
		size = 10
	}

	ttl := cacheConfig.Cache.TTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	if cacheConfig.Cache.Type == config.CacheRedis {
		return newMarshalingCache(
			newRedis(cacheConfig.Cache.Address, cacheConfig.Cache.Username, cacheConfig.Cache.Password, cacheConfig.Cache.Database),
			"Redis", ttl,
		)
	}

	return newMarshalingCache(newMemory(size), "Freecache", ttl)
}
