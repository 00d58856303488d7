// Package protocol implements the wire codec: it turns raw frames into
// ordered typed events and outbound envelopes into frames. One frame may
// batch several newline-delimited JSON objects; segments decode
// independently so one bad segment never poisons the rest of the frame.
package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"

	"chat-client/domain"
	"chat-client/domain/event"
	"chat-client/errors"
)

// Peer is the wire shape of a user reference.
type Peer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Target is the wire shape of a room reference.
type Target struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Private bool   `json:"private,omitempty"`
}

// Envelope is the common JSON envelope of every event record, inbound
// and outbound.
type Envelope struct {
	Action  string  `json:"action"`
	Message string  `json:"message,omitempty"`
	Sender  *Peer   `json:"sender,omitempty"`
	Target  *Target `json:"target,omitempty"`
}

// Decode splits a frame on newlines (tolerating \r\n) and parses each
// segment as one event record, preserving arrival order. Segments that
// are not valid JSON objects are reported as errors wrapping
// ErrMalformedEvent; decoding always continues with the remaining
// segments.
func Decode(frame []byte) ([]event.Event, []error) {
	var events []event.Event
	var errs []error

	for i, segment := range bytes.Split(frame, []byte{'\n'}) {
		segment = bytes.TrimSuffix(segment, []byte{'\r'})
		if len(bytes.TrimSpace(segment)) == 0 {
			continue
		}

		var env Envelope
		if err := json.Unmarshal(segment, &env); err != nil {
			errs = append(errs, fmt.Errorf("%w: segment %d: %v", errors.ErrMalformedEvent, i, err))
			continue
		}
		events = append(events, toEvent(env))
	}
	return events, errs
}

// Encode marshals a single outbound event record. Outbound frames never
// batch: one action, one frame.
func Encode(env Envelope) ([]byte, error) {
	frame, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encoding %q frame: %w", env.Action, err)
	}
	return frame, nil
}

// toEvent maps a decoded envelope to its typed variant. Unknown actions
// become Unrecognized instead of an error so newer servers keep working
// against older clients.
func toEvent(env Envelope) event.Event {
	switch env.Action {
	case SendMessageAction:
		evt := event.MessageReceived{
			Sender: toUser(env.Sender),
			Text:   env.Message,
		}
		if env.Target != nil {
			evt.RoomID = domain.RoomID(env.Target.ID)
			evt.RoomName = env.Target.Name
		}
		return evt
	case UserJoinedAction:
		return event.UserJoined{User: toUser(env.Sender)}
	case UserLeftAction:
		return event.UserLeft{User: toUser(env.Sender)}
	case RoomJoinedAction:
		evt := event.RoomJoined{Sender: toUser(env.Sender)}
		if env.Target != nil {
			evt.RoomID = domain.RoomID(env.Target.ID)
			evt.RoomName = env.Target.Name
			evt.Private = env.Target.Private
		}
		return evt
	default:
		return event.Unrecognized{Raw: env.Action}
	}
}

func toUser(peer *Peer) domain.User {
	if peer == nil {
		return domain.User{}
	}
	return domain.User{ID: domain.UserID(peer.ID), Name: peer.Name}
}
