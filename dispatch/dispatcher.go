// Package dispatch applies decoded protocol events to the local
// registries. It is the only writer of room and user state and must stay
// total: no decoded event, however inconsistent, may crash or abort it.
package dispatch

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"chat-client/domain"
	"chat-client/domain/event"
	"chat-client/observability"
	"chat-client/registry"
)

// Handler observes events after they have been applied to the
// registries. Used by the UI layer to render live activity; handlers
// must not mutate registry state.
type Handler interface {
	Handle(e event.Event)
}

type Dispatcher struct {
	log      *slog.Logger
	rooms    registry.IRooms
	users    registry.IUsers
	stats    *observability.SyncStats
	handlers []Handler
}

func NewDispatcher(log *slog.Logger, rooms registry.IRooms, users registry.IUsers,
	stats *observability.SyncStats) *Dispatcher {
	return &Dispatcher{
		log:   log,
		rooms: rooms,
		users: users,
		stats: stats,
	}
}

// Add registers handlers notified after each applied event.
func (d *Dispatcher) Add(handlers ...Handler) {
	d.handlers = append(d.handlers, handlers...)
}

// ApplyAll applies a frame's events strictly in decode order.
func (d *Dispatcher) ApplyAll(events []event.Event) {
	for _, e := range events {
		d.Apply(e)
	}
}

// Apply routes one event to its state transition. Events referencing
// unknown rooms or carrying no usable payload are dropped silently:
// they are expected transient state during join races, not errors.
func (d *Dispatcher) Apply(e event.Event) {
	switch evt := e.(type) {
	case event.UserJoined:
		d.applyUserJoined(evt)
	case event.UserLeft:
		d.applyUserLeft(evt)
	case event.RoomJoined:
		d.applyRoomJoined(evt)
	case event.MessageReceived:
		d.applyMessageReceived(evt)
	case event.Unrecognized:
		// Forward compatibility: accepted, no state change.
		d.stats.IncrUnknown()
		d.log.Debug(fmt.Sprintf("Ignoring unrecognized action %q", evt.Raw))
		return
	default:
		d.stats.IncrUnknown()
		return
	}
}

func (d *Dispatcher) applyUserJoined(evt event.UserJoined) {
	if evt.User.ID == "" {
		d.stats.IncrDropped()
		return
	}
	d.users.Add(evt.User)
	d.applied(evt)
}

func (d *Dispatcher) applyUserLeft(evt event.UserLeft) {
	if evt.User.ID == "" {
		d.stats.IncrDropped()
		return
	}
	d.users.RemoveByID(evt.User.ID)
	d.applied(evt)
}

// applyRoomJoined is the sole source of truth for room additions: a room
// exists locally only once the server confirmed the join.
func (d *Dispatcher) applyRoomJoined(evt event.RoomJoined) {
	if evt.RoomID == "" {
		d.stats.IncrDropped()
		return
	}
	name := evt.RoomName
	if evt.Private {
		// Private rooms are named after the inviting user, whatever
		// label the server sent along.
		name = evt.Sender.Name
	}
	d.rooms.Add(domain.NewRoom(evt.RoomID, name, evt.Private))
	d.applied(evt)
}

func (d *Dispatcher) applyMessageReceived(evt event.MessageReceived) {
	message := domain.Message{
		ID:         uuid.New(),
		Sender:     evt.Sender,
		RoomID:     evt.RoomID,
		Text:       evt.Text,
		ReceivedAt: time.Now().UTC(),
	}
	if !d.rooms.AppendMessage(evt.RoomID, message) {
		d.stats.IncrDropped()
		d.log.Debug(fmt.Sprintf("Dropping message for unknown room %q", evt.RoomID))
		return
	}
	d.applied(evt)
}

func (d *Dispatcher) applied(e event.Event) {
	d.stats.IncrApplied()
	for _, handler := range d.handlers {
		handler.Handle(e)
	}
}
