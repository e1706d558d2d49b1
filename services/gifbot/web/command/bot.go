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

// Package command turns chat messages into bot commands. Every step of the
// pipeline is a listener on a shared event emitter.
package command

import (
	"context"

	"github.com/ONLYOFFICE/onlyoffice-events/pkg/events"
	plog "github.com/ONLYOFFICE/onlyoffice-events/pkg/log"
	"github.com/ONLYOFFICE/onlyoffice-events/services/gifbot/shared"
	"github.com/ONLYOFFICE/onlyoffice-events/services/gifbot/web/core/domain"
	"github.com/ONLYOFFICE/onlyoffice-events/services/gifbot/web/core/port"
)

const (
	// EventMessage carries (domain.Message, *domain.Conversation).
	EventMessage = "message"
	// EventCommand carries (name string, query string, *domain.Conversation).
	EventCommand = "command"
	// EventReply carries (text string, *domain.Conversation).
	EventReply = "reply"
)

type Bot struct {
	emitter events.Emitter
	logger  plog.Logger
}

// NewBot registers the bot events on emitter and attaches the message
// pipeline. Return value checking is turned on, commands rely on it.
func NewBot(
	emitter events.Emitter,
	gifService port.GifService,
	gifbotConfig *shared.GifbotConfig,
	logger plog.Logger,
) (Bot, error) {
	emitter.RegisterEvents(EventMessage, EventCommand, EventReply)
	emitter.SetCheckReturnValues(true)

	for _, l := range []struct {
		name     string
		listener events.Listener
	}{
		{EventMessage, NewGuard(gifbotConfig.Bot.IgnoredUsers)},
		{EventMessage, NewParser(emitter, gifbotConfig.Bot.Prefix)},
		{EventCommand, NewGifCommand(emitter, gifService, logger)},
		{EventCommand, NewHelpCommand(emitter, gifbotConfig.Bot.Prefix)},
		{EventReply, NewReplyCollector()},
	} {
		if err := emitter.On(l.name, l.listener); err != nil {
			return Bot{}, err
		}
	}

	return Bot{
		emitter: emitter,
		logger:  logger,
	}, nil
}

// Handle runs a message through the pipeline and returns the conversation
// holding whatever the bot has replied.
func (b Bot) Handle(ctx context.Context, msg domain.Message) (*domain.Conversation, error) {
	conv := domain.NewConversation(msg)
	handled, err := b.emitter.EmitContext(ctx, EventMessage, msg, conv)
	if err != nil {
		return conv, err
	}

	b.logger.Debugf("message %s has been handled: %t", msg.ID, handled)
	return conv, nil
}

func arg[T any](args []any, i int) (T, bool) {
	var zero T
	if i >= len(args) {
		return zero, false
	}

	v, ok := args[i].(T)
	return v, ok
}

func reply(ctx context.Context, emitter events.Emitter, text string, conv *domain.Conversation) error {
	_, err := emitter.EmitContext(ctx, EventReply, text, conv)
	return err
}
