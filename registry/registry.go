//go:generate go run go.uber.org/mock/mockgen -source=registry.go -destination=../mocks/mock_registry.go -package=mocks
package registry

import (
	"chat-client/domain"
)

// RoomView is a read-only snapshot of a room handed to consumers outside
// the dispatch path (UI, session command surface).
type RoomView struct {
	ID       domain.RoomID
	Name     string
	Private  bool
	Draft    string
	Messages []domain.Message
}

type IRooms interface {
	// Add inserts a room; a room whose id is already present is ignored.
	// Reports whether the room was inserted.
	Add(room *domain.Room) bool
	// RemoveByName removes the first room with that name, matching the
	// wire protocol which addresses leave-room by name. Reports whether
	// a room was removed.
	RemoveByName(name string) bool
	FindByID(id domain.RoomID) (RoomView, bool)
	// AppendMessage reports false when the room is unknown locally.
	AppendMessage(id domain.RoomID, message domain.Message) bool
	SetDraft(id domain.RoomID, text string) bool
	ClearDraft(id domain.RoomID)
	List() []RoomView
}

type IUsers interface {
	// Add is idempotent by user id.
	Add(user domain.User) bool
	RemoveByID(id domain.UserID) bool
	List() []domain.User
}
