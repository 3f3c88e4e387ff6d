package model

import "time"

// ChatMessage is one entry of the team chat log. Messages are only ever appended.
type ChatMessage struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	Text        string    `json:"text"`
	Timestamp   time.Time `json:"timestamp"`
	IsSystem    bool      `json:"isSystem,omitempty"`
}

const (
	SystemUsername    = "system"
	SystemDisplayName = "시스템"
)
