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

package shared

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v2"
)

type GiphyConfig struct {
	APIKey  string `yaml:"api_key" env:"GIPHY_API_KEY,overwrite"`
	BaseURL string `yaml:"base_url" env:"GIPHY_BASE_URL,overwrite"`
	Rating  string `yaml:"rating" env:"GIPHY_RATING,overwrite"`
	// Timeout is an http request timeout in seconds
	Timeout int `yaml:"timeout" env:"GIPHY_TIMEOUT,overwrite"`
}

type BotConfig struct {
	Prefix       string   `yaml:"prefix" env:"BOT_PREFIX,overwrite"`
	IgnoredUsers []string `yaml:"ignored_users" env:"BOT_IGNORED_USERS,overwrite"`
	JwtSecret    string   `yaml:"jwt_secret" env:"BOT_JWT_SECRET,overwrite"`
}

type GifbotConfig struct {
	Giphy GiphyConfig `yaml:"giphy"`
	Bot   BotConfig   `yaml:"bot"`
}

func (gc *GifbotConfig) Validate() error {
	gc.Giphy.APIKey = strings.TrimSpace(gc.Giphy.APIKey)
	gc.Giphy.BaseURL = strings.TrimRight(strings.TrimSpace(gc.Giphy.BaseURL), "/")
	gc.Bot.Prefix = strings.TrimSpace(gc.Bot.Prefix)

	if gc.Giphy.APIKey != "" && gc.Giphy.BaseURL == "" {
		return &InvalidConfigurationParameterError{
			Parameter: "Giphy BaseURL",
			Reason:    "Should not be empty",
		}
	}

	if gc.Giphy.Timeout <= 0 {
		return &InvalidConfigurationParameterError{
			Parameter: "Giphy Timeout",
			Reason:    "Should be greater than zero",
		}
	}

	if gc.Bot.Prefix == "" {
		return &InvalidConfigurationParameterError{
			Parameter: "Bot Prefix",
			Reason:    "Should not be empty",
		}
	}

	return nil
}

// UseGiphy reports whether gifs come from the giphy api rather than the
// built-in collection.
func (gc *GifbotConfig) UseGiphy() bool {
	return gc.Giphy.APIKey != ""
}

func BuildNewGifbotConfig(path string) func() (*GifbotConfig, error) {
	return func() (*GifbotConfig, error) {
		var config GifbotConfig
		config.Giphy.BaseURL = "https://api.giphy.com"
		config.Giphy.Rating = "g"
		config.Giphy.Timeout = 5
		config.Bot.Prefix = "!"
		if path != "" {
			file, err := os.Open(path)
			if err != nil {
				return nil, err
			}
			defer file.Close()

			decoder := yaml.NewDecoder(file)

			if err := decoder.Decode(&config); err != nil {
				return nil, err
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Second)
		defer cancel()
		if err := envconfig.Process(ctx, &config); err != nil {
			return nil, err
		}

		return &config, config.Validate()
	}
}
