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

import (
	"context"
	"os"
	"time"

	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v2"
)

// validator is implemented by every configuration struct.
type validator interface {
	Validate() error
}

// load decodes the yaml file at path (if any) into config, applies
// environment overrides and validates the result.
func load[T validator](path string, config T) (T, error) {
	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return config, err
		}
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(config); err != nil {
			return config, err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 4*time.Second)
	defer cancel()
	if err := envconfig.Process(ctx, config); err != nil {
		return config, err
	}

	return config, config.Validate()
}
