package registry

import (
	"sync"

	"github.com/samber/lo"

	"chat-client/domain"
)

// Users owns the participants currently visible to the session, keyed by
// id. Iteration order is irrelevant to correctness, so a map is enough.
type Users struct {
	mu    sync.RWMutex
	users map[domain.UserID]domain.User
}

func NewUsers() *Users {
	return &Users{users: make(map[domain.UserID]domain.User)}
}

// Add registers a user. Inserting an id already present is a no-op, not
// a duplicate: the server may replay user-join on room changes.
func (u *Users) Add(user domain.User) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, ok := u.users[user.ID]; ok {
		return false
	}
	u.users[user.ID] = user
	return true
}

func (u *Users) RemoveByID(id domain.UserID) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, ok := u.users[id]; !ok {
		return false
	}
	delete(u.users, id)
	return true
}

func (u *Users) List() []domain.User {
	u.mu.RLock()
	defer u.mu.RUnlock()

	return lo.Values(u.users)
}
