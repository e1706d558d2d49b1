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

package config

import "strings"

type EmitterConfig struct {
	Emitter struct {
		Events            []string `yaml:"events" env:"EMITTER_EVENTS,overwrite"`
		CheckReturnValues bool     `yaml:"check_return_values" env:"EMITTER_CHECK_RETURN_VALUES,overwrite"`
	} `yaml:"emitter"`
}

func (ec *EmitterConfig) Validate() error {
	for i, name := range ec.Emitter.Events {
		ec.Emitter.Events[i] = strings.TrimSpace(name)
		if ec.Emitter.Events[i] == "" {
			return &InvalidConfigurationParameterError{
				Parameter: "Events",
				Reason:    "Event names should not be blank",
			}
		}
	}

	return nil
}

func BuildNewEmitterConfig(path string) func() (*EmitterConfig, error) {
	return func() (*EmitterConfig, error) {
		return load(path, &EmitterConfig{})
	}
}
