package registry

import (
	"sync"

	"github.com/samber/lo"

	"chat-client/domain"
)

// Rooms owns every room the local session has joined, in join order.
// The read pump mutates it while the UI goroutine reads snapshots, hence
// the lock. A slice rather than a map: join order is what the UI shows,
// and leave-room matches by name, not id.
type Rooms struct {
	mu    sync.RWMutex
	rooms []*domain.Room
}

func NewRooms() *Rooms {
	return &Rooms{}
}

// Add inserts a room confirmed by the server. Duplicate ids are ignored:
// a second room-joined for the same room must not fork the history.
func (r *Rooms) Add(room *domain.Room) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.rooms {
		if existing.ID == room.ID {
			return false
		}
	}
	r.rooms = append(r.rooms, room)
	return true
}

// RemoveByName drops the first room with that name and stops. Room names
// are not globally unique, so this is a best-effort match by design of
// the wire protocol (leave-room carries a name, not an id).
func (r *Rooms) RemoveByName(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, room := range r.rooms {
		if room.Name == name {
			r.rooms = append(r.rooms[:i], r.rooms[i+1:]...)
			return true
		}
	}
	return false
}

func (r *Rooms) FindByID(id domain.RoomID) (RoomView, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.findLocked(id)
	if !ok {
		return RoomView{}, false
	}
	return toView(room), true
}

// AppendMessage adds a message to the room's history. Reports false when
// the room is unknown so the dispatcher can drop the message silently.
func (r *Rooms) AppendMessage(id domain.RoomID, message domain.Message) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.findLocked(id)
	if !ok {
		return false
	}
	room.AppendMessage(message)
	return true
}

func (r *Rooms) SetDraft(id domain.RoomID, text string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.findLocked(id)
	if !ok {
		return false
	}
	room.SetDraft(text)
	return true
}

func (r *Rooms) ClearDraft(id domain.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if room, ok := r.findLocked(id); ok {
		room.ClearDraft()
	}
}

// List snapshots every room in join order.
func (r *Rooms) List() []RoomView {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Map(r.rooms, func(room *domain.Room, _ int) RoomView {
		return toView(room)
	})
}

func (r *Rooms) findLocked(id domain.RoomID) (*domain.Room, bool) {
	for _, room := range r.rooms {
		if room.ID == id {
			return room, true
		}
	}
	return nil, false
}

func toView(room *domain.Room) RoomView {
	return RoomView{
		ID:       room.ID,
		Name:     room.Name,
		Private:  room.Private,
		Draft:    room.Draft(),
		Messages: room.Messages(),
	}
}
