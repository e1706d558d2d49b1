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

package port

import (
	"context"
	"errors"

	"github.com/ONLYOFFICE/onlyoffice-events/services/gifbot/web/core/domain"
)

var ErrGifNotFound = errors.New("could not find a gif")

// GifProviderAdapter fetches gifs from a gif source.
type GifProviderAdapter interface {
	Search(ctx context.Context, query string) (domain.Gif, error)
	Random(ctx context.Context) (domain.Gif, error)
	Name() string
}

// GifService finds a gif for a query, a random one when the query is blank.
type GifService interface {
	FindGif(ctx context.Context, query string) (domain.Gif, error)
}
