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

package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ONLYOFFICE/onlyoffice-events/pkg/crypto"
	plog "github.com/ONLYOFFICE/onlyoffice-events/pkg/log"
	"github.com/ONLYOFFICE/onlyoffice-events/services/gifbot/shared"
	"github.com/ONLYOFFICE/onlyoffice-events/services/gifbot/web/command"
	"github.com/ONLYOFFICE/onlyoffice-events/services/gifbot/web/core/domain"
	"github.com/ONLYOFFICE/onlyoffice-events/services/gifbot/web/core/service"
	"github.com/google/uuid"
)

type MessageResponse struct {
	Replies []string `json:"replies"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type messageClaims struct {
	Channel string `mapstructure:"channel"`
	User    string `mapstructure:"user"`
}

type MessageController struct {
	bot        command.Bot
	jwtManager crypto.JwtManager
	config     *shared.GifbotConfig
	logger     plog.Logger
}

func NewMessageController(
	bot command.Bot,
	jwtManager crypto.JwtManager,
	config *shared.GifbotConfig,
	logger plog.Logger,
) MessageController {
	return MessageController{
		bot:        bot,
		jwtManager: jwtManager,
		config:     config,
		logger:     logger,
	}
}

func (c MessageController) sendErrorResponse(rw http.ResponseWriter, status int, errorText string) {
	c.logger.Debug(errorText)
	rw.WriteHeader(status)
	json.NewEncoder(rw).Encode(ErrorResponse{Error: errorText})
}

// verify checks the bearer token when a secret is configured. Token claims
// must name the same channel and user as the message.
func (c MessageController) verify(r *http.Request, msg domain.Message) error {
	if c.config.Bot.JwtSecret == "" {
		return nil
	}

	token := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
	var claims messageClaims
	if err := c.jwtManager.Verify(c.config.Bot.JwtSecret, token, &claims); err != nil {
		return err
	}

	if claims.Channel != msg.Channel || claims.User != msg.User {
		return ErrClaimsMismatch
	}

	return nil
}

func (c MessageController) BuildPostMessage() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "application/json")

		var msg domain.Message
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			c.sendErrorResponse(rw, http.StatusBadRequest, "could not decode a message body")
			return
		}

		if err := msg.Validate(); err != nil {
			c.sendErrorResponse(rw, http.StatusBadRequest, err.Error())
			return
		}

		if err := c.verify(r, msg); err != nil {
			c.sendErrorResponse(rw, http.StatusUnauthorized, "could not verify message token: "+err.Error())
			return
		}

		if msg.ID == "" {
			msg.ID = uuid.NewString()
		}

		conv, err := c.bot.Handle(r.Context(), msg)
		if err != nil {
			var perr *service.GifProviderError
			if errors.As(err, &perr) {
				c.logger.Warnf("could not handle message %s: %s", msg.ID, err.Error())
				c.sendErrorResponse(rw, http.StatusBadGateway, "gif provider is unavailable")
				return
			}

			c.logger.Errorf("could not handle message %s: %s", msg.ID, err.Error())
			c.sendErrorResponse(rw, http.StatusInternalServerError, "could not handle the message")
			return
		}

		replies := conv.Replies()
		if len(replies) == 0 {
			rw.WriteHeader(http.StatusNoContent)
			return
		}

		json.NewEncoder(rw).Encode(MessageResponse{Replies: replies})
	}
}
