// Package app is the logic layer: the item store, the session and mode gate
// and the chat log, all held in one State owned by a Controller. Nothing
// here knows how it is drawn.
package app

import (
	"maps"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/teamtodo/internal/logging"
	"github.com/idilsaglam/teamtodo/internal/model"
	"github.com/idilsaglam/teamtodo/internal/records"
	"github.com/idilsaglam/teamtodo/internal/store"
)

// State is the whole application state. Collections are newest first.
type State struct {
	Personal []model.Item
	Team     []model.Item
	Messages []model.ChatMessage
	Users    map[string]model.User
	NextID   int
	Session  *model.Session
	Mode     model.Mode
}

// NewState returns an empty, signed-out state in personal mode.
func NewState() State {
	return State{
		Personal: []model.Item{},
		Team:     []model.Item{},
		Messages: []model.ChatMessage{},
		Users:    map[string]model.User{},
		NextID:   1,
		Mode:     model.ModePersonal,
	}
}

// Clone returns a copy that shares nothing mutable with s.
func (s State) Clone() State {
	out := s
	out.Personal = slices.Clone(s.Personal)
	out.Team = slices.Clone(s.Team)
	out.Messages = slices.Clone(s.Messages)
	out.Users = maps.Clone(s.Users)
	if s.Session != nil {
		sess := *s.Session
		out.Session = &sess
	}
	return out
}

// Controller applies user actions to State and writes every change
// through to the KV store. It is not safe for concurrent use; callers run
// one action at a time.
type Controller struct {
	state State
	kv    store.KV
	log   *log.Logger
	now   func() time.Time
	loc   *time.Location
}

type Option func(*Controller)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithLocation sets the zone due dates are interpreted in.
func WithLocation(loc *time.Location) Option {
	return func(c *Controller) {
		if loc != nil {
			c.loc = loc
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// New returns a controller over kv with an empty state. Call Load to read
// what kv already holds.
func New(kv store.KV, opts ...Option) *Controller {
	c := &Controller{
		state: NewState(),
		kv:    kv,
		log:   logging.Discard(),
		now:   time.Now,
		loc:   time.Local,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a snapshot of the current state.
func (c *Controller) State() State { return c.state.Clone() }

func (c *Controller) Location() *time.Location { return c.loc }

func (c *Controller) Now() time.Time { return c.now().In(c.loc) }

func (c *Controller) Mode() model.Mode { return c.state.Mode }

// SetMode switches the visible collection. It never touches data.
func (c *Controller) SetMode(m model.Mode) {
	if m != model.ModeTeam {
		m = model.ModePersonal
	}
	c.state.Mode = m
}

// Load reads every collection from the store. A value that cannot be read
// is logged and replaced by its empty default; loading never fails.
func (c *Controller) Load() {
	st := NewState()
	st.Mode = c.state.Mode

	if items, ok := loadKey(c, store.KeyTodos, records.DecodeItems); ok {
		st.Personal = items
	}
	counterOK := false
	if n, ok := loadKey(c, store.KeyTodoIDCount, records.DecodeCounter); ok {
		st.NextID = n
		counterOK = true
	}
	if items, ok := loadKey(c, store.KeyTeamTodos, records.DecodeItems); ok {
		st.Team = items
	}
	if msgs, ok := loadKey(c, store.KeyTeamMessages, records.DecodeMessages); ok {
		st.Messages = msgs
	}
	if users, ok := loadKey(c, store.KeyUsers, records.DecodeUsers); ok {
		st.Users = users
	}
	if sess, ok := loadKey(c, store.KeyCurrentUser, records.DecodeSession); ok {
		st.Session = &sess
	}

	// A lost counter must not hand out ids that are still in use.
	if !counterOK {
		for _, it := range slices.Concat(st.Personal, st.Team) {
			if it.ID >= st.NextID {
				st.NextID = it.ID + 1
			}
		}
	}
	c.state = st
}

func loadKey[T any](c *Controller, key string, decode func(string) (T, error)) (T, bool) {
	var zero T
	raw, ok, err := c.kv.Get(key)
	if err != nil {
		c.log.Error("load failed", "key", key, "err", err)
		return zero, false
	}
	if !ok {
		return zero, false
	}
	v, err := decode(raw)
	if err != nil {
		c.log.Error("discarding unreadable record", "key", key, "err", err)
		return zero, false
	}
	return v, true
}
