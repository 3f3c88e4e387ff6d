package app

import (
	"github.com/idilsaglam/teamtodo/internal/records"
	"github.com/idilsaglam/teamtodo/internal/store"
)

// Write-through helpers. A failed write is logged and otherwise ignored:
// the in-memory state stays authoritative for the rest of the run.

func (c *Controller) persist(key string, encode func() (string, error)) {
	v, err := encode()
	if err == nil {
		err = c.kv.Set(key, v)
	}
	if err != nil {
		c.log.Error("persist failed", "key", key, "err", err)
	}
}

func (c *Controller) saveTodos() {
	c.persist(store.KeyTodos, func() (string, error) { return records.EncodeItems(c.state.Personal) })
	c.saveCounter()
}

func (c *Controller) saveCounter() {
	c.persist(store.KeyTodoIDCount, func() (string, error) { return records.EncodeCounter(c.state.NextID), nil })
}

func (c *Controller) saveTeamTodos() {
	c.persist(store.KeyTeamTodos, func() (string, error) { return records.EncodeItems(c.state.Team) })
}

func (c *Controller) saveMessages() {
	c.persist(store.KeyTeamMessages, func() (string, error) { return records.EncodeMessages(c.state.Messages) })
}

func (c *Controller) saveUsers() {
	c.persist(store.KeyUsers, func() (string, error) { return records.EncodeUsers(c.state.Users) })
}

func (c *Controller) saveSession() {
	if c.state.Session == nil {
		if err := c.kv.Remove(store.KeyCurrentUser); err != nil {
			c.log.Error("persist failed", "key", store.KeyCurrentUser, "err", err)
		}
		return
	}
	sess := *c.state.Session
	c.persist(store.KeyCurrentUser, func() (string, error) { return records.EncodeSession(sess) })
}

// saveActive writes whichever collection the current mode edits.
func (c *Controller) saveActive() {
	if c.teamActive() {
		c.saveTeamTodos()
		return
	}
	c.saveTodos()
}
