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

package resilience

import (
	"testing"

	"github.com/ONLYOFFICE/onlyoffice-events/pkg/config"
	"github.com/afex/hystrix-go/hystrix"
	"github.com/stretchr/testify/assert"
)

func TestBuildHystrixCommandConfig(t *testing.T) {
	t.Run("keep defaults for unset values", func(t *testing.T) {
		assert.Equal(t, hystrix.CommandConfig{}, BuildHystrixCommandConfig(&config.ResilienceConfig{}))
	})

	t.Run("map every value", func(t *testing.T) {
		var cfg config.ResilienceConfig
		cfg.Resilience.CircuitBreaker = config.CircuitBreakerConfig{
			Timeout:               1000,
			MaxConcurrent:         5,
			VolumeThreshold:       10,
			SleepWindow:           2000,
			ErrorPercentThreshold: 25,
		}

		assert.Equal(t, hystrix.CommandConfig{
			Timeout:                1000,
			MaxConcurrentRequests:  5,
			RequestVolumeThreshold: 10,
			SleepWindow:            2000,
			ErrorPercentThreshold:  25,
		}, BuildHystrixCommandConfig(&cfg))
	})
}
