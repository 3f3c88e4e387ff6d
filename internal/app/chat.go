package app

import (
	"slices"
	"strings"

	"github.com/idilsaglam/teamtodo/internal/model"
)

// Messages returns the chat log in arrival order.
func (c *Controller) Messages() []model.ChatMessage {
	return slices.Clone(c.state.Messages)
}

// Send appends a message from the signed-in user.
func (c *Controller) Send(text string) (model.ChatMessage, error) {
	sess := c.state.Session
	if sess == nil {
		return model.ChatMessage{}, ErrNotSignedIn
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return model.ChatMessage{}, ErrEmptyMessage
	}
	msg := c.appendMessage(model.ChatMessage{
		Username:    sess.Username,
		DisplayName: sess.DisplayName,
		Text:        text,
	})
	return msg, nil
}

func (c *Controller) postSystem(text string) model.ChatMessage {
	return c.appendMessage(model.ChatMessage{
		Username:    model.SystemUsername,
		DisplayName: model.SystemDisplayName,
		Text:        text,
		IsSystem:    true,
	})
}

// appendMessage stamps msg and appends it. Ids are millisecond timestamps,
// bumped past the previous message so they stay unique and increasing.
func (c *Controller) appendMessage(msg model.ChatMessage) model.ChatMessage {
	now := c.now()
	msg.Timestamp = now
	msg.ID = now.UnixMilli()
	if n := len(c.state.Messages); n > 0 && msg.ID <= c.state.Messages[n-1].ID {
		msg.ID = c.state.Messages[n-1].ID + 1
	}
	c.state.Messages = append(c.state.Messages, msg)
	c.saveMessages()
	return msg
}
