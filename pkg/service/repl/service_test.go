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

package repl

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ONLYOFFICE/onlyoffice-events/pkg/config"
	"github.com/ONLYOFFICE/onlyoffice-events/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(emitter events.Emitter) *http.Server {
	return NewService(&config.ServerConfig{
		Namespace:   "onlyoffice",
		Name:        "gifbot",
		ReplAddress: ":5169",
	}, &config.CORSConfig{}, emitter)
}

func TestReplService(t *testing.T) {
	emitter := events.NewEmitter(events.WithEvents("message"))
	server := newServer(emitter)

	t.Run("expose metrics", func(t *testing.T) {
		rr := httptest.NewRecorder()
		server.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("report health", func(t *testing.T) {
		rr := httptest.NewRecorder()
		server.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rr.Code)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.Equal(t, "OK", body["status"])
	})

	t.Run("report a paused emitter", func(t *testing.T) {
		paused := events.NewEmitter(events.WithEvents("message"))
		paused.PauseEvents()

		rr := httptest.NewRecorder()
		newServer(paused).Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.Equal(t, "Partially Available", body["status"])
	})
}
