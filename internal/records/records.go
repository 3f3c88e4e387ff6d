// Package records is the wire codec for everything kept in the KV store.
// Values are JSON text; reads are schema-checked so a corrupted value is
// rejected as a whole instead of half-loading.
package records

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/idilsaglam/teamtodo/internal/model"
)

var ErrInvalid = errors.New("invalid stored record")

func DecodeItems(raw string) ([]model.Item, error) {
	if err := validate(itemsValidator, raw); err != nil {
		return nil, err
	}
	var items []model.Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if items == nil {
		items = []model.Item{}
	}
	for i := range items {
		if items[i].ShareType == "" {
			items[i].ShareType = model.SharePersonal
		}
	}
	return items, nil
}

func EncodeItems(items []model.Item) (string, error) {
	if items == nil {
		items = []model.Item{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}
	return string(b), nil
}

// DecodeCounter reads the next item id. Values below 1 are rejected.
func DecodeCounter(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: counter %q", ErrInvalid, raw)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: counter %d below 1", ErrInvalid, n)
	}
	return n, nil
}

func EncodeCounter(n int) string { return strconv.Itoa(n) }

func DecodeMessages(raw string) ([]model.ChatMessage, error) {
	if err := validate(messagesValidator, raw); err != nil {
		return nil, err
	}
	var msgs []model.ChatMessage
	if err := json.Unmarshal([]byte(raw), &msgs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if msgs == nil {
		msgs = []model.ChatMessage{}
	}
	return msgs, nil
}

func EncodeMessages(msgs []model.ChatMessage) (string, error) {
	if msgs == nil {
		msgs = []model.ChatMessage{}
	}
	b, err := json.Marshal(msgs)
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}
	return string(b), nil
}

func DecodeUsers(raw string) (map[string]model.User, error) {
	if err := validate(usersValidator, raw); err != nil {
		return nil, err
	}
	users := map[string]model.User{}
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if users == nil {
		users = map[string]model.User{}
	}
	return users, nil
}

func EncodeUsers(users map[string]model.User) (string, error) {
	if users == nil {
		users = map[string]model.User{}
	}
	b, err := json.Marshal(users)
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}
	return string(b), nil
}

func DecodeSession(raw string) (model.Session, error) {
	if err := validate(sessionValidator, raw); err != nil {
		return model.Session{}, err
	}
	var s model.Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return model.Session{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return s, nil
}

func EncodeSession(s model.Session) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}
	return string(b), nil
}
