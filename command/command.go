// Package command builds the outbound user intents. Every command takes
// its target through explicit fields; none may read ambient state left
// over from a previous event.
package command

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"chat-client/errors"
	"chat-client/protocol"
)

var validate = validator.New()

// Command is one local user intent, encodable as exactly one frame.
type Command interface {
	Envelope() protocol.Envelope
}

// SendMessage carries a room's drafted text to the server.
type SendMessage struct {
	RoomID   string `validate:"required"`
	RoomName string `validate:"required"`
	Text     string `validate:"required"`
}

func (c SendMessage) Envelope() protocol.Envelope {
	return protocol.Envelope{
		Action:  protocol.SendMessageAction,
		Message: c.Text,
		Target:  &protocol.Target{ID: c.RoomID, Name: c.RoomName},
	}
}

// JoinRoom requests joining a public room by name.
type JoinRoom struct {
	Name string `validate:"required"`
}

func (c JoinRoom) Envelope() protocol.Envelope {
	return protocol.Envelope{
		Action:  protocol.JoinRoomAction,
		Message: c.Name,
	}
}

// JoinPrivateRoom requests a private room with the given target user or
// room id. The id is an explicit parameter supplied by the caller.
type JoinPrivateRoom struct {
	TargetID string `validate:"required"`
}

func (c JoinPrivateRoom) Envelope() protocol.Envelope {
	return protocol.Envelope{
		Action:  protocol.JoinRoomPrivateAction,
		Message: c.TargetID,
	}
}

// LeaveRoom requests leaving a room by name; the caller removes the room
// locally without waiting for a confirmation.
type LeaveRoom struct {
	Name string `validate:"required"`
}

func (c LeaveRoom) Envelope() protocol.Envelope {
	return protocol.Envelope{
		Action:  protocol.LeaveRoomAction,
		Message: c.Name,
	}
}

// Validate rejects commands with missing fields before they reach the
// wire.
func Validate(cmd Command) error {
	if err := validate.Struct(cmd); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidCommand, err)
	}
	return nil
}
