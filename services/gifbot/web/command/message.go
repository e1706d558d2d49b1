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
	"strings"

	"github.com/ONLYOFFICE/onlyoffice-events/pkg/events"
	"github.com/ONLYOFFICE/onlyoffice-events/services/gifbot/web/core/domain"
)

type guard struct {
	ignored map[string]struct{}
}

// NewGuard cancels blank messages and messages sent by ignored users.
func NewGuard(ignoredUsers []string) events.Listener {
	ignored := make(map[string]struct{}, len(ignoredUsers))
	for _, user := range ignoredUsers {
		ignored[strings.ToLower(strings.TrimSpace(user))] = struct{}{}
	}

	return &guard{ignored: ignored}
}

func (g *guard) Handle(ctx context.Context, args ...any) (events.Result, error) {
	msg, ok := arg[domain.Message](args, 0)
	if !ok || strings.TrimSpace(msg.Text) == "" {
		return events.CancelEvent, nil
	}

	if _, ignored := g.ignored[strings.ToLower(msg.User)]; ignored {
		return events.CancelEvent, nil
	}

	return events.Continue(true), nil
}

type parser struct {
	emitter events.Emitter
	prefix  string
}

// NewParser emits a command event for messages starting with prefix.
func NewParser(emitter events.Emitter, prefix string) events.Listener {
	return &parser{emitter: emitter, prefix: prefix}
}

func (p *parser) Handle(ctx context.Context, args ...any) (events.Result, error) {
	msg, ok := arg[domain.Message](args, 0)
	conv, cok := arg[*domain.Conversation](args, 1)
	if !ok || !cok {
		return events.Continue(false), nil
	}

	text := strings.TrimSpace(msg.Text)
	if !strings.HasPrefix(text, p.prefix) {
		return events.Continue(true), nil
	}

	fields := strings.Fields(strings.TrimPrefix(text, p.prefix))
	if len(fields) == 0 {
		return events.Continue(true), nil
	}

	handled, err := p.emitter.EmitContext(ctx, EventCommand,
		strings.ToLower(fields[0]), strings.Join(fields[1:], " "), conv)
	if err != nil {
		return events.Continue(false), err
	}

	return events.Continue(handled), nil
}

type replyCollector struct{}

// NewReplyCollector appends replies to their conversation.
func NewReplyCollector() events.Listener {
	return &replyCollector{}
}

func (r *replyCollector) Handle(ctx context.Context, args ...any) (events.Result, error) {
	text, ok := arg[string](args, 0)
	conv, cok := arg[*domain.Conversation](args, 1)
	if !ok || !cok {
		return events.Continue(false), nil
	}

	conv.Reply(text)
	return events.Continue(true), nil
}
