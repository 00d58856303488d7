// Package event defines the decoded inbound events of the chat protocol
// as a closed set of variants. The codec is the only producer; the
// dispatcher is the only consumer that mutates state.
package event

import (
	"chat-client/domain"
)

// Event is one decoded inbound protocol event. The marker method keeps
// the set of variants closed to this package, while Unrecognized still
// lets unknown wire actions flow through without failing.
type Event interface {
	isEvent()
}

// MessageReceived carries a chat message for a room the session may or
// may not have joined yet.
type MessageReceived struct {
	Sender   domain.User
	RoomID   domain.RoomID
	RoomName string
	Text     string
}

// UserJoined announces a participant now visible to the session.
type UserJoined struct {
	User domain.User
}

// UserLeft announces a participant leaving.
type UserLeft struct {
	User domain.User
}

// RoomJoined confirms the server added the local session to a room.
// Sender is the user who triggered the join; for private rooms the room
// takes that user's name.
type RoomJoined struct {
	RoomID   domain.RoomID
	RoomName string
	Private  bool
	Sender   domain.User
}

// Unrecognized is any well-formed event whose action the client does not
// know. Kept as a variant so new server actions never break dispatch.
type Unrecognized struct {
	Raw string
}

func (MessageReceived) isEvent() {}
func (UserJoined) isEvent()      {}
func (UserLeft) isEvent()        {}
func (RoomJoined) isEvent()      {}
func (Unrecognized) isEvent()    {}
