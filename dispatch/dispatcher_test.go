package dispatch

import (
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chat-client/domain"
	"chat-client/domain/event"
	"chat-client/mocks"
	"chat-client/observability"
	"chat-client/protocol"
	"chat-client/registry"
)

func newTestDispatcher() (*Dispatcher, *registry.Rooms, *registry.Users, *observability.SyncStats) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	rooms := registry.NewRooms()
	users := registry.NewUsers()
	stats := observability.NewSyncStats()
	return NewDispatcher(log, rooms, users, stats), rooms, users, stats
}

func TestDispatcher_UserJoined_IsIdempotent(t *testing.T) {
	req := require.New(t)
	dispatcher, _, users, _ := newTestDispatcher()

	alice := domain.User{ID: "u1", Name: "Alice"}
	dispatcher.Apply(event.UserJoined{User: alice})
	dispatcher.Apply(event.UserJoined{User: alice})

	req.Len(users.List(), 1)
	req.Equal(alice, users.List()[0])
}

func TestDispatcher_UserLeft_IsSymmetric(t *testing.T) {
	req := require.New(t)
	dispatcher, _, users, _ := newTestDispatcher()

	alice := domain.User{ID: "u1", Name: "Alice"}
	dispatcher.Apply(event.UserJoined{User: alice})
	dispatcher.Apply(event.UserLeft{User: alice})

	req.Empty(users.List())

	// Leaving without ever joining is a no-op, not an error.
	dispatcher.Apply(event.UserLeft{User: domain.User{ID: "ghost"}})
	req.Empty(users.List())
}

func TestDispatcher_BatchedFrame_AppliedInOrder(t *testing.T) {
	req := require.New(t)
	dispatcher, _, users, _ := newTestDispatcher()

	frame := []byte(`{"action":"user-join","sender":{"id":"a","name":"A"}}` + "\n" +
		`{"action":"user-join","sender":{"id":"b","name":"B"}}` + "\n" +
		`{"action":"user-left","sender":{"id":"a","name":"A"}}`)
	events, errs := protocol.Decode(frame)
	req.Empty(errs)

	dispatcher.ApplyAll(events)

	req.Len(users.List(), 1)
	req.Equal(domain.UserID("b"), users.List()[0].ID)
}

func TestDispatcher_MalformedSegment_DoesNotPoisonFrame(t *testing.T) {
	req := require.New(t)
	dispatcher, _, users, _ := newTestDispatcher()

	frame := []byte(`{"action":"user-join","sender":{"id":"a","name":"A"}}` + "\n" +
		`garbage` + "\n" +
		`{"action":"user-join","sender":{"id":"b","name":"B"}}`)
	events, errs := protocol.Decode(frame)
	req.Len(errs, 1)

	dispatcher.ApplyAll(events)

	req.Len(users.List(), 2)
}

func TestDispatcher_RoomJoined_IsSoleSourceOfRooms(t *testing.T) {
	req := require.New(t)
	dispatcher, rooms, _, _ := newTestDispatcher()

	req.Empty(rooms.List())

	dispatcher.Apply(event.RoomJoined{
		RoomID:   "r1",
		RoomName: "general",
		Sender:   domain.User{ID: "u1", Name: "Alice"},
	})

	views := rooms.List()
	req.Len(views, 1)
	req.Equal("general", views[0].Name)
	req.False(views[0].Private)
	req.Empty(views[0].Messages)
}

func TestDispatcher_RoomJoined_PrivateRoomTakesSenderName(t *testing.T) {
	req := require.New(t)
	dispatcher, rooms, _, _ := newTestDispatcher()

	dispatcher.Apply(event.RoomJoined{
		RoomID:   "r9",
		RoomName: "ignored-label",
		Private:  true,
		Sender:   domain.User{ID: "u1", Name: "Alice"},
	})

	views := rooms.List()
	req.Len(views, 1)
	req.Equal("Alice", views[0].Name)
	req.True(views[0].Private)
}

func TestDispatcher_MessageReceived_RoutesToTargetRoomOnly(t *testing.T) {
	req := require.New(t)
	dispatcher, rooms, _, _ := newTestDispatcher()

	dispatcher.Apply(event.RoomJoined{RoomID: "r1", RoomName: "general"})
	dispatcher.Apply(event.RoomJoined{RoomID: "r2", RoomName: "random"})

	dispatcher.Apply(event.MessageReceived{
		Sender: domain.User{ID: "u1", Name: "Alice"},
		RoomID: "r1",
		Text:   "hello",
	})

	r1, ok := rooms.FindByID("r1")
	req.True(ok)
	req.Len(r1.Messages, 1)
	req.Equal("hello", r1.Messages[0].Text)
	req.Equal("Alice", r1.Messages[0].Sender.Name)

	r2, ok := rooms.FindByID("r2")
	req.True(ok)
	req.Empty(r2.Messages)
}

func TestDispatcher_MessageForUnknownRoom_DroppedSilently(t *testing.T) {
	req := require.New(t)
	dispatcher, rooms, _, stats := newTestDispatcher()

	dispatcher.Apply(event.MessageReceived{
		Sender: domain.User{ID: "u1", Name: "Alice"},
		RoomID: "never-joined",
		Text:   "hello",
	})

	req.Empty(rooms.List())
	req.Equal(uint64(1), stats.Snapshot().DroppedEvents)
}

func TestDispatcher_Unrecognized_ChangesNothing(t *testing.T) {
	req := require.New(t)
	dispatcher, rooms, users, stats := newTestDispatcher()

	dispatcher.Apply(event.Unrecognized{Raw: "server-maintenance"})

	req.Empty(rooms.List())
	req.Empty(users.List())
	req.Equal(uint64(1), stats.Snapshot().UnknownActions)
	req.Equal(uint64(0), stats.Snapshot().EventsApplied)
}

func TestDispatcher_MessageForUnknownRoom_NoOtherRegistryCalls(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRooms := mocks.NewMockIRooms(ctrl)
	mockUsers := mocks.NewMockIUsers(ctrl)

	dispatcher := NewDispatcher(log, mockRooms, mockUsers, observability.NewSyncStats())

	// Only the append is attempted; a miss must not trigger any
	// fallback mutation such as creating the room.
	mockRooms.EXPECT().AppendMessage(domain.RoomID("r404"), gomock.Any()).Return(false).Times(1)

	dispatcher.Apply(event.MessageReceived{
		Sender: domain.User{ID: "u1", Name: "Alice"},
		RoomID: "r404",
		Text:   "lost",
	})
}

type recordingHandler struct {
	seen []event.Event
}

func (r *recordingHandler) Handle(e event.Event) {
	r.seen = append(r.seen, e)
}

func TestDispatcher_HandlersSeeAppliedEventsOnly(t *testing.T) {
	req := require.New(t)
	dispatcher, _, _, _ := newTestDispatcher()
	handler := &recordingHandler{}
	dispatcher.Add(handler)

	dispatcher.Apply(event.UserJoined{User: domain.User{ID: "u1", Name: "Alice"}})
	dispatcher.Apply(event.Unrecognized{Raw: "noise"})
	dispatcher.Apply(event.MessageReceived{RoomID: "unknown", Text: "dropped"})

	req.Len(handler.seen, 1)
	req.IsType(event.UserJoined{}, handler.seen[0])
}
