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

package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/ONLYOFFICE/onlyoffice-events/pkg/events"
	plog "github.com/ONLYOFFICE/onlyoffice-events/pkg/log"
	"github.com/ONLYOFFICE/onlyoffice-events/services/gifbot/web/core/domain"
	"github.com/ONLYOFFICE/onlyoffice-events/services/gifbot/web/core/port"
)

const (
	GifCommandName  = "gif"
	HelpCommandName = "help"
)

type gifCommand struct {
	emitter events.Emitter
	service port.GifService
	logger  plog.Logger
}

// NewGifCommand replies with a gif url for the command query.
func NewGifCommand(emitter events.Emitter, service port.GifService, logger plog.Logger) events.Listener {
	return &gifCommand{
		emitter: emitter,
		service: service,
		logger:  logger,
	}
}

func (c *gifCommand) Handle(ctx context.Context, args ...any) (events.Result, error) {
	name, _ := arg[string](args, 0)
	if name != GifCommandName {
		return events.Continue(true), nil
	}

	query, _ := arg[string](args, 1)
	conv, ok := arg[*domain.Conversation](args, 2)
	if !ok {
		return events.Continue(false), nil
	}

	gif, err := c.service.FindGif(ctx, query)
	if errors.Is(err, port.ErrGifNotFound) {
		c.logger.Debugf("no gifs found for %s", query)
		return events.Cancel(true), reply(ctx, c.emitter, fmt.Sprintf("No gifs found for \"%s\"", query), conv)
	}

	if err != nil {
		return events.Continue(false), err
	}

	return events.Cancel(true), reply(ctx, c.emitter, gif.URL, conv)
}

type helpCommand struct {
	emitter events.Emitter
	prefix  string
}

// NewHelpCommand replies with the list of commands.
func NewHelpCommand(emitter events.Emitter, prefix string) events.Listener {
	return &helpCommand{emitter: emitter, prefix: prefix}
}

func (c *helpCommand) Handle(ctx context.Context, args ...any) (events.Result, error) {
	name, _ := arg[string](args, 0)
	conv, ok := arg[*domain.Conversation](args, 2)
	if name != HelpCommandName || !ok {
		return events.Continue(true), nil
	}

	return events.Cancel(true), reply(ctx, c.emitter, fmt.Sprintf(
		"Available commands: %[1]s%[2]s <query> posts a gif, %[1]s%[3]s shows this message",
		c.prefix, GifCommandName, HelpCommandName,
	), conv)
}
