package model

import "time"

// ShareType is who an item is meant for.
type ShareType string

const (
	SharePersonal ShareType = "personal"
	ShareTeam     ShareType = "team"
)

// ParseShareType accepts "personal" or "team"; anything else is personal.
func ParseShareType(s string) ShareType {
	if ShareType(s) == ShareTeam {
		return ShareTeam
	}
	return SharePersonal
}

// Item is the domain model for a todo entry.
// JSON keys are the stored record format; renaming one orphans saved data.
type Item struct {
	ID          int       `json:"id"`
	Text        string    `json:"text"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	DueDate     *string   `json:"dueDate"`     // YYYY-MM-DD
	DueTime     *string   `json:"dueTime"`     // HH:MM
	DueDateTime *string   `json:"dueDateTime"` // YYYY-MM-DDTHH:MM:00, local
	ShareType   ShareType `json:"shareType"`
	Author      string    `json:"author"`
	AuthorName  string    `json:"authorName"`
}

// HasDue reports whether the item carries a due date.
func (it Item) HasDue() bool { return it.DueDate != nil && *it.DueDate != "" }

// HasDueTime reports whether the item carries a specific due time.
func (it Item) HasDueTime() bool { return it.DueTime != nil && *it.DueTime != "" }
