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
	"github.com/ONLYOFFICE/onlyoffice-events/pkg/config"
	plog "github.com/ONLYOFFICE/onlyoffice-events/pkg/log"
	"github.com/ONLYOFFICE/onlyoffice-events/pkg/resilience"
	"github.com/ONLYOFFICE/onlyoffice-events/services/gifbot/shared"
	"github.com/ONLYOFFICE/onlyoffice-events/services/gifbot/web/core/port"
)

// NewGifProviderAdapter picks giphy when an api key is configured and the
// built-in collection otherwise.
func NewGifProviderAdapter(
	gifbotConfig *shared.GifbotConfig,
	resilienceConfig *config.ResilienceConfig,
	logger plog.Logger,
) port.GifProviderAdapter {
	if !gifbotConfig.UseGiphy() {
		logger.Warn("giphy api key is not set, serving built-in gifs")
		return NewMemoryGifAdapter()
	}

	resilience.ConfigureCommand(GiphyCommand, resilienceConfig)
	return NewGiphyGifAdapter(gifbotConfig.Giphy)
}
