package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"

	"chat-client/domain"
	"chat-client/domain/event"
	"chat-client/errors"
)

func TestDecode_SingleEvent(t *testing.T) {
	req := require.New(t)

	frame := []byte(`{"action":"user-join","sender":{"id":"u1","name":"Alice"}}`)
	events, errs := Decode(frame)

	req.Empty(errs)
	req.Len(events, 1)
	joined, ok := events[0].(event.UserJoined)
	req.True(ok)
	req.Equal(domain.User{ID: "u1", Name: "Alice"}, joined.User)
}

func TestDecode_BatchedFrame_PreservesOrder(t *testing.T) {
	req := require.New(t)

	frame := []byte(`{"action":"user-join","sender":{"id":"u1","name":"Alice"}}` + "\n" +
		`{"action":"user-join","sender":{"id":"u2","name":"Bob"}}` + "\n" +
		`{"action":"user-left","sender":{"id":"u1","name":"Alice"}}`)
	events, errs := Decode(frame)

	req.Empty(errs)
	req.Len(events, 3)
	req.IsType(event.UserJoined{}, events[0])
	req.IsType(event.UserJoined{}, events[1])
	req.IsType(event.UserLeft{}, events[2])
	req.Equal(domain.UserID("u2"), events[1].(event.UserJoined).User.ID)
}

func TestDecode_ToleratesCarriageReturns(t *testing.T) {
	req := require.New(t)

	frame := []byte("{\"action\":\"user-join\",\"sender\":{\"id\":\"u1\",\"name\":\"Alice\"}}\r\n" +
		"{\"action\":\"user-left\",\"sender\":{\"id\":\"u1\",\"name\":\"Alice\"}}\r\n")
	events, errs := Decode(frame)

	req.Empty(errs)
	req.Len(events, 2)
}

func TestDecode_MalformedSegment_DoesNotAbortFrame(t *testing.T) {
	req := require.New(t)

	frame := []byte(`{"action":"user-join","sender":{"id":"u1","name":"Alice"}}` + "\n" +
		`{not json at all` + "\n" +
		`{"action":"user-join","sender":{"id":"u2","name":"Bob"}}`)
	events, errs := Decode(frame)

	req.Len(errs, 1)
	req.ErrorIs(errs[0], errors.ErrMalformedEvent)
	req.Len(events, 2)
	req.Equal(domain.UserID("u1"), events[0].(event.UserJoined).User.ID)
	req.Equal(domain.UserID("u2"), events[1].(event.UserJoined).User.ID)
}

func TestDecode_UnknownAction_BecomesUnrecognized(t *testing.T) {
	req := require.New(t)

	events, errs := Decode([]byte(`{"action":"server-maintenance","message":"soon"}`))

	req.Empty(errs)
	req.Len(events, 1)
	unrecognized, ok := events[0].(event.Unrecognized)
	req.True(ok)
	req.Equal("server-maintenance", unrecognized.Raw)
}

func TestDecode_MissingPayloadFields_YieldZeroValues(t *testing.T) {
	req := require.New(t)

	events, errs := Decode([]byte(`{"action":"send-message","message":"hello"}`))

	req.Empty(errs)
	req.Len(events, 1)
	received := events[0].(event.MessageReceived)
	req.Equal(domain.RoomID(""), received.RoomID)
	req.Equal(domain.User{}, received.Sender)
	req.Equal("hello", received.Text)
}

func TestDecode_RoomJoined_CarriesPrivateFlag(t *testing.T) {
	req := require.New(t)

	frame := []byte(`{"action":"room-joined","sender":{"id":"u1","name":"Alice"},` +
		`"target":{"id":"r1","name":"whatever","private":true}}`)
	events, errs := Decode(frame)

	req.Empty(errs)
	joined := events[0].(event.RoomJoined)
	req.Equal(domain.RoomID("r1"), joined.RoomID)
	req.True(joined.Private)
	req.Equal("Alice", joined.Sender.Name)
}

func TestEncode_SingleSelfContainedFrame(t *testing.T) {
	req := require.New(t)

	frame, err := Encode(Envelope{
		Action:  SendMessageAction,
		Message: "hi there",
		Target:  &Target{ID: "r1", Name: "general"},
	})
	req.NoError(err)
	req.JSONEq(`{"action":"send-message","message":"hi there","target":{"id":"r1","name":"general"}}`, string(frame))

	// An encoded frame must decode back to exactly one event.
	events, errs := Decode(frame)
	req.Empty(errs)
	req.Len(events, 1)
}
