// Package domain contains core concepts of the chat client.
// This file defines Message values and related rules.
// Messages are immutable once appended to a room.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message represents one chat message received for a room.
// ID and ReceivedAt are local bookkeeping; the wire protocol does not
// carry them.
type Message struct {
	ID         uuid.UUID
	Sender     User
	RoomID     RoomID
	Text       string
	ReceivedAt time.Time
}
