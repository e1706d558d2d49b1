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
	"testing"

	"github.com/ONLYOFFICE/onlyoffice-events/pkg/events"
	"github.com/ONLYOFFICE/onlyoffice-events/pkg/log"
	"github.com/ONLYOFFICE/onlyoffice-events/services/gifbot/shared"
	"github.com/ONLYOFFICE/onlyoffice-events/services/gifbot/web/core/domain"
	"github.com/ONLYOFFICE/onlyoffice-events/services/gifbot/web/core/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUnavailable = errors.New("unavailable")

type mockGifService struct {
	queries []string
}

func (m *mockGifService) FindGif(ctx context.Context, query string) (domain.Gif, error) {
	m.queries = append(m.queries, query)
	switch query {
	case "missing":
		return domain.Gif{}, port.ErrGifNotFound
	case "broken":
		return domain.Gif{}, errUnavailable
	case "":
		return domain.Gif{ID: "random", URL: "https://example.com/random.gif"}, nil
	}

	return domain.Gif{ID: query, URL: "https://example.com/" + query + ".gif"}, nil
}

func newBot(t *testing.T) (Bot, *mockGifService) {
	config := &shared.GifbotConfig{}
	config.Bot.Prefix = "!"
	config.Bot.IgnoredUsers = []string{"Spammer"}

	service := &mockGifService{}
	bot, err := NewBot(events.NewEmitter(), service, config, log.NewEmptyLogger())
	require.NoError(t, err)
	return bot, service
}

func message(user, text string) domain.Message {
	return domain.Message{ID: "mock", Channel: "general", User: user, Text: text}
}

func TestBot(t *testing.T) {
	t.Run("reply with a gif", func(t *testing.T) {
		bot, service := newBot(t)
		conv, err := bot.Handle(context.Background(), message("mock", "  !GIF cat "))
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/cat.gif"}, conv.Replies())
		assert.Equal(t, []string{"cat"}, service.queries)
	})

	t.Run("reply with a random gif", func(t *testing.T) {
		bot, _ := newBot(t)
		conv, err := bot.Handle(context.Background(), message("mock", "!gif"))
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/random.gif"}, conv.Replies())
	})

	t.Run("reply when nothing is found", func(t *testing.T) {
		bot, _ := newBot(t)
		conv, err := bot.Handle(context.Background(), message("mock", "!gif missing"))
		require.NoError(t, err)
		assert.Equal(t, []string{"No gifs found for \"missing\""}, conv.Replies())
	})

	t.Run("reply with help", func(t *testing.T) {
		bot, _ := newBot(t)
		conv, err := bot.Handle(context.Background(), message("mock", "!help"))
		require.NoError(t, err)
		require.Len(t, conv.Replies(), 1)
		assert.Contains(t, conv.Replies()[0], "!gif <query>")
	})

	t.Run("ignore plain messages and unknown commands", func(t *testing.T) {
		bot, service := newBot(t)
		for _, text := range []string{"hello", "!", "!dance"} {
			conv, err := bot.Handle(context.Background(), message("mock", text))
			assert.NoError(t, err)
			assert.Empty(t, conv.Replies())
		}
		assert.Empty(t, service.queries)
	})

	t.Run("ignore blank messages and ignored users", func(t *testing.T) {
		bot, service := newBot(t)
		for _, msg := range []domain.Message{message("mock", "   "), message("spammer", "!gif cat")} {
			conv, err := bot.Handle(context.Background(), msg)
			assert.NoError(t, err)
			assert.Empty(t, conv.Replies())
		}
		assert.Empty(t, service.queries)
	})

	t.Run("fail on provider errors", func(t *testing.T) {
		bot, _ := newBot(t)
		conv, err := bot.Handle(context.Background(), message("mock", "!gif broken"))
		assert.ErrorIs(t, err, errUnavailable)
		assert.Empty(t, conv.Replies())
	})
}

func TestListenerArguments(t *testing.T) {
	t.Run("guard cancels without a message", func(t *testing.T) {
		res, err := NewGuard(nil).Handle(context.Background())
		assert.NoError(t, err)
		assert.True(t, res.Canceled())
	})

	t.Run("reply collector tolerates missing arguments", func(t *testing.T) {
		res, err := NewReplyCollector().Handle(context.Background(), "text")
		assert.NoError(t, err)
		assert.False(t, res.Value())
	})
}
