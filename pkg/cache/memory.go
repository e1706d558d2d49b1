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
	"github.com/coocood/freecache"
	"github.com/eko/gocache/lib/v4/cache"
	freecache_store "github.com/eko/gocache/store/freecache/v4"
)

// newMemory allocates a freecache of size megabytes.
func newMemory(size int) *cache.Cache[any] {
	freecacheStore := freecache_store.NewFreecache(freecache.NewCache(size * 1024 * 1024))
	return cache.New[any](freecacheStore)
}
