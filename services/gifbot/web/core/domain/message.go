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
	"strings"
	"sync"
)

type Message struct {
	ID      string `json:"id"`
	Channel string `json:"channel"`
	User    string `json:"user"`
	Text    string `json:"text"`
}

func (m *Message) Validate() error {
	m.ID = strings.TrimSpace(m.ID)
	m.Channel = strings.TrimSpace(m.Channel)
	m.User = strings.TrimSpace(m.User)

	if m.Channel == "" {
		return &InvalidModelFieldError{
			Model:  "Message",
			Field:  "Channel",
			Reason: "Should not be empty",
		}
	}

	if m.User == "" {
		return &InvalidModelFieldError{
			Model:  "Message",
			Field:  "User",
			Reason: "Should not be empty",
		}
	}

	return nil
}

// Conversation collects bot replies to a single message.
type Conversation struct {
	mu      sync.Mutex
	message Message
	replies []string
}

func NewConversation(message Message) *Conversation {
	return &Conversation{message: message}
}

func (c *Conversation) Message() Message {
	return c.message
}

func (c *Conversation) Reply(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.replies = append(c.replies, text)
}

func (c *Conversation) Replies() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	replies := make([]string, len(c.replies))
	copy(replies, c.replies)
	return replies
}
