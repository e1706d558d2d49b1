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

package crypto

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type messageClaims struct {
	Channel string `json:"channel" mapstructure:"channel"`
	User    string `json:"user" mapstructure:"user"`
	jwt.RegisteredClaims
}

func TestJwtManager(t *testing.T) {
	manager := NewJwtManager()

	t.Run("sign and verify", func(t *testing.T) {
		token, err := manager.Sign("secret", messageClaims{
			Channel: "general",
			User:    "mock",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
		})
		require.NoError(t, err)

		var claims messageClaims
		assert.NoError(t, manager.Verify("secret", token, &claims))
		assert.Equal(t, "general", claims.Channel)
		assert.Equal(t, "mock", claims.User)
	})

	t.Run("verify with a wrong secret", func(t *testing.T) {
		token, err := manager.Sign("secret", messageClaims{Channel: "general"})
		require.NoError(t, err)

		var claims messageClaims
		assert.Error(t, manager.Verify("wrong", token, &claims))
	})

	t.Run("verify an expired token", func(t *testing.T) {
		token, err := manager.Sign("secret", messageClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		})
		require.NoError(t, err)

		var claims messageClaims
		assert.ErrorIs(t, manager.Verify("secret", token, &claims), jwt.ErrTokenExpired)
	})

	t.Run("reject empty input", func(t *testing.T) {
		var claims messageClaims
		assert.ErrorIs(t, manager.Verify("", "token", &claims), ErrJwtManagerEmptySecret)
		assert.ErrorIs(t, manager.Verify("secret", "", &claims), ErrJwtManagerEmptyToken)
		assert.ErrorIs(t, manager.Verify("secret", "token", nil), ErrJwtManagerEmptyDecodingBody)
		_, err := manager.Sign("", messageClaims{})
		assert.ErrorIs(t, err, ErrJwtManagerEmptySecret)
	})
}
