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
	"github.com/ONLYOFFICE/onlyoffice-events/pkg/config"
	"github.com/afex/hystrix-go/hystrix"
)

// BuildHystrixCommandConfig maps circuit breaker settings onto hystrix,
// leaving hystrix defaults for anything not set.
func BuildHystrixCommandConfig(resilienceConfig *config.ResilienceConfig) hystrix.CommandConfig {
	var config hystrix.CommandConfig
	breaker := resilienceConfig.Resilience.CircuitBreaker
	if breaker.Timeout > 0 {
		config.Timeout = breaker.Timeout
	}

	if breaker.MaxConcurrent > 0 {
		config.MaxConcurrentRequests = breaker.MaxConcurrent
	}

	if breaker.VolumeThreshold > 0 {
		config.RequestVolumeThreshold = breaker.VolumeThreshold
	}

	if breaker.SleepWindow > 0 {
		config.SleepWindow = breaker.SleepWindow
	}

	if breaker.ErrorPercentThreshold > 0 {
		config.ErrorPercentThreshold = breaker.ErrorPercentThreshold
	}

	return config
}

// ConfigureCommand registers the circuit breaker settings under a command name.
func ConfigureCommand(name string, resilienceConfig *config.ResilienceConfig) {
	hystrix.ConfigureCommand(name, BuildHystrixCommandConfig(resilienceConfig))
}

// ConfigureDefaults applies the circuit breaker settings to every command
// without its own configuration.
func ConfigureDefaults(resilienceConfig *config.ResilienceConfig) {
	config := BuildHystrixCommandConfig(resilienceConfig)
	if config.Timeout > 0 {
		hystrix.DefaultTimeout = config.Timeout
	}

	if config.MaxConcurrentRequests > 0 {
		hystrix.DefaultMaxConcurrent = config.MaxConcurrentRequests
	}

	if config.RequestVolumeThreshold > 0 {
		hystrix.DefaultVolumeThreshold = config.RequestVolumeThreshold
	}

	if config.SleepWindow > 0 {
		hystrix.DefaultSleepWindow = config.SleepWindow
	}

	if config.ErrorPercentThreshold > 0 {
		hystrix.DefaultErrorPercentThreshold = config.ErrorPercentThreshold
	}
}
