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

package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ONLYOFFICE/onlyoffice-events/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogrusLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gifbot.log")

	var cfg config.LoggerConfig
	cfg.Logger.Name = "gifbot"
	cfg.Logger.Level = int(LEVEL_INFO)
	cfg.Logger.File.Filename = path

	logger, err := NewLogrusLogger(&cfg)
	require.NoError(t, err)

	logger.Debugf("hidden %d", 1)
	logger.Infof("visible %d", 2)
	logger.Warn("warning")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "hidden 1")
	assert.Contains(t, string(content), "visible 2")
	assert.Contains(t, string(content), "warning")
	assert.Contains(t, string(content), `"name":"gifbot"`)
}

func TestEmptyLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		logger := NewEmptyLogger()
		logger.Debug("mock")
		logger.Errorf("mock %s", "error")
	})
}
