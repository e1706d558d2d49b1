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
	"strings"

	plog "github.com/ONLYOFFICE/onlyoffice-events/pkg/log"
	"github.com/ONLYOFFICE/onlyoffice-events/services/gifbot/web/core/domain"
	"github.com/ONLYOFFICE/onlyoffice-events/services/gifbot/web/core/port"
	"github.com/mitchellh/mapstructure"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go-micro.dev/v4/cache"
	"golang.org/x/sync/singleflight"
)

var (
	gifLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gifbot",
		Name:      "gif_lookups_total",
		Help:      "Gif lookups by the source that has served them.",
	}, []string{"source"})
	gifFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gifbot",
		Name:      "gif_failures_total",
		Help:      "Gif provider failures.",
	}, []string{"provider"})
)

type gifService struct {
	adapter port.GifProviderAdapter
	cache   cache.Cache
	group   *singleflight.Group
	logger  plog.Logger
}

func NewGifService(
	adapter port.GifProviderAdapter,
	cache cache.Cache,
	logger plog.Logger,
) port.GifService {
	return gifService{
		adapter: adapter,
		cache:   cache,
		group:   new(singleflight.Group),
		logger:  logger,
	}
}

// FindGif looks a query up in the cache first and collapses concurrent
// provider searches for the same query. Blank queries are never cached.
func (s gifService) FindGif(ctx context.Context, query string) (domain.Gif, error) {
	query = strings.ToLower(strings.Join(strings.Fields(query), " "))
	if query == "" {
		s.logger.Debug("looking up a random gif")
		gif, err := s.adapter.Random(ctx)
		if err != nil {
			return gif, s.wrap(err)
		}

		gifLookups.WithLabelValues("random").Inc()
		return gif, nil
	}

	key := "gif:" + query
	if res, _, err := s.cache.Get(ctx, key); err == nil && res != nil {
		var gif domain.Gif
		if err := mapstructure.Decode(res, &gif); err != nil {
			s.logger.Errorf("could not decode from cache: %s", err.Error())
		} else if gif.Validate() == nil {
			s.logger.Debugf("found gif %s for %s in the cache", gif.ID, query)
			gifLookups.WithLabelValues("cache").Inc()
			return gif, nil
		}
	}

	res, err, shared := s.group.Do(key, func() (interface{}, error) {
		s.logger.Debugf("searching %s for %s", s.adapter.Name(), query)
		gif, err := s.adapter.Search(ctx, query)
		if err != nil {
			return gif, err
		}

		if err := gif.Validate(); err != nil {
			return gif, err
		}

		if err := s.cache.Put(ctx, key, gif, 0); err != nil {
			s.logger.Warnf("could not put gif into the cache: %s", err.Error())
		}

		return gif, nil
	})

	if err != nil {
		return domain.Gif{}, s.wrap(err)
	}

	if shared {
		s.logger.Debugf("shared a search result for %s", query)
	}

	gifLookups.WithLabelValues(s.adapter.Name()).Inc()
	return res.(domain.Gif), nil
}

func (s gifService) wrap(err error) error {
	if errors.Is(err, port.ErrGifNotFound) {
		return err
	}

	gifFailures.WithLabelValues(s.adapter.Name()).Inc()
	return &GifProviderError{Provider: s.adapter.Name(), Cause: err}
}
