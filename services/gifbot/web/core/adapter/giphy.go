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
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/ONLYOFFICE/onlyoffice-events/services/gifbot/shared"
	"github.com/ONLYOFFICE/onlyoffice-events/services/gifbot/web/core/domain"
	"github.com/ONLYOFFICE/onlyoffice-events/services/gifbot/web/core/port"
	"github.com/afex/hystrix-go/hystrix"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const GiphyCommand = "giphy"

type giphyGif struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Images struct {
		Original struct {
			URL string `json:"url"`
		} `json:"original"`
	} `json:"images"`
}

func (g giphyGif) toDomain() domain.Gif {
	return domain.Gif{
		ID:    g.ID,
		Title: g.Title,
		URL:   g.Images.Original.URL,
	}
}

type giphySearchResponse struct {
	Data []giphyGif `json:"data"`
}

type giphyRandomResponse struct {
	Data json.RawMessage `json:"data"`
}

type giphyGifAdapter struct {
	client *http.Client
	config shared.GiphyConfig
}

// NewGiphyGifAdapter talks to the giphy api. Requests go through the
// giphy hystrix command and are traced.
func NewGiphyGifAdapter(config shared.GiphyConfig) port.GifProviderAdapter {
	return giphyGifAdapter{
		client: &http.Client{
			Timeout:   time.Duration(config.Timeout) * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		config: config,
	}
}

func (g giphyGifAdapter) Search(ctx context.Context, query string) (domain.Gif, error) {
	ctx, span := otel.Tracer(GiphyCommand).Start(ctx, "giphy.search")
	defer span.End()
	span.SetAttributes(attribute.String("gif.query", query))

	params := g.params()
	params.Set("q", query)
	params.Set("limit", "1")

	var resp giphySearchResponse
	if err := g.get(ctx, "/v1/gifs/search", params, &resp); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return domain.Gif{}, err
	}

	if len(resp.Data) == 0 {
		return domain.Gif{}, port.ErrGifNotFound
	}

	return resp.Data[0].toDomain(), nil
}

func (g giphyGifAdapter) Random(ctx context.Context) (domain.Gif, error) {
	ctx, span := otel.Tracer(GiphyCommand).Start(ctx, "giphy.random")
	defer span.End()

	var resp giphyRandomResponse
	if err := g.get(ctx, "/v1/gifs/random", g.params(), &resp); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return domain.Gif{}, err
	}

	// giphy answers with an empty array instead of an object when nothing matches
	var gif giphyGif
	if err := json.Unmarshal(resp.Data, &gif); err != nil || gif.ID == "" {
		return domain.Gif{}, port.ErrGifNotFound
	}

	return gif.toDomain(), nil
}

func (g giphyGifAdapter) Name() string {
	return GiphyCommand
}

func (g giphyGifAdapter) params() url.Values {
	params := url.Values{}
	params.Set("api_key", g.config.APIKey)
	if g.config.Rating != "" {
		params.Set("rating", g.config.Rating)
	}

	return params
}

func (g giphyGifAdapter) get(ctx context.Context, path string, params url.Values, body interface{}) error {
	return hystrix.Do(GiphyCommand, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.config.BaseURL+path+"?"+params.Encode(), nil)
		if err != nil {
			return err
		}

		resp, err := g.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return &UnexpectedStatusError{Status: resp.StatusCode}
		}

		return json.NewDecoder(resp.Body).Decode(body)
	}, nil)
}
