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

package domain

import (
	"encoding/json"
	"strings"
)

type Gif struct {
	ID    string `json:"id" mapstructure:"id" msgpack:"id"`
	Title string `json:"title" mapstructure:"title" msgpack:"title"`
	URL   string `json:"url" mapstructure:"url" msgpack:"url"`
}

func (g Gif) ToJSON() []byte {
	buf, _ := json.Marshal(g)
	return buf
}

func (g *Gif) Validate() error {
	g.ID = strings.TrimSpace(g.ID)
	g.URL = strings.TrimSpace(g.URL)

	if g.ID == "" {
		return &InvalidModelFieldError{
			Model:  "Gif",
			Field:  "ID",
			Reason: "Should not be empty",
		}
	}

	if g.URL == "" {
		return &InvalidModelFieldError{
			Model:  "Gif",
			Field:  "URL",
			Reason: "Should not be empty",
		}
	}

	return nil
}
