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

package adapter

import (
	"context"
	"strings"
	"sync"

	"github.com/ONLYOFFICE/onlyoffice-events/services/gifbot/web/core/domain"
	"github.com/ONLYOFFICE/onlyoffice-events/services/gifbot/web/core/port"
)

var defaultGifs = []domain.Gif{
	{ID: "JIX9t2j0ZTN9S", Title: "cat typing", URL: "https://media.giphy.com/media/JIX9t2j0ZTN9S/giphy.gif"},
	{ID: "3oEjI6SIIHBdRxXI40", Title: "dog happy", URL: "https://media.giphy.com/media/3oEjI6SIIHBdRxXI40/giphy.gif"},
	{ID: "l0MYt5jPR6QX5pnqM", Title: "thumbs up", URL: "https://media.giphy.com/media/l0MYt5jPR6QX5pnqM/giphy.gif"},
	{ID: "26ufdipQqU2lhNA4g", Title: "thank you", URL: "https://media.giphy.com/media/26ufdipQqU2lhNA4g/giphy.gif"},
}

type memoryGifAdapter struct {
	mu   sync.Mutex
	gifs []domain.Gif
	next int
}

// NewMemoryGifAdapter serves gifs from a fixed collection, the built-in one
// when none is passed.
func NewMemoryGifAdapter(gifs ...domain.Gif) port.GifProviderAdapter {
	if len(gifs) == 0 {
		gifs = defaultGifs
	}

	return &memoryGifAdapter{gifs: gifs}
}

func (m *memoryGifAdapter) Search(ctx context.Context, query string) (domain.Gif, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	for _, gif := range m.gifs {
		if strings.Contains(strings.ToLower(gif.Title), query) {
			return gif, nil
		}
	}

	return domain.Gif{}, port.ErrGifNotFound
}

// Random walks the collection round robin.
func (m *memoryGifAdapter) Random(ctx context.Context) (domain.Gif, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	gif := m.gifs[m.next%len(m.gifs)]
	m.next++
	return gif, nil
}

func (m *memoryGifAdapter) Name() string {
	return "memory"
}
