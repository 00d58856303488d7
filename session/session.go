// Package session owns the local identity and the single live
// connection. Inbound frames flow through the codec into the dispatcher;
// outbound commands are encoded and written one frame at a time.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"

	"chat-client/command"
	"chat-client/dispatch"
	"chat-client/domain"
	"chat-client/errors"
	"chat-client/observability"
	"chat-client/protocol"
	"chat-client/registry"
)

// Conn is the subset of the websocket connection the session uses,
// narrowed so tests can script frames without a network.
type Conn interface {
	ReadMessage() (messageType int, data []byte, err error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Session binds one display name to one connection and one registry
// pair. It lives as long as the connection: there is no reconnect or
// resume, connection loss is terminal.
type Session struct {
	log        *slog.Logger
	name       string
	conn       Conn
	rooms      registry.IRooms
	users      registry.IUsers
	dispatcher *dispatch.Dispatcher
	stats      *observability.SyncStats

	// Serializes outbound writes; the UI goroutine and the read pump
	// never write concurrently otherwise, but the conn requires it.
	writeMu sync.Mutex
}

func New(log *slog.Logger, name string, conn Conn, rooms registry.IRooms,
	users registry.IUsers, dispatcher *dispatch.Dispatcher,
	stats *observability.SyncStats) *Session {
	return &Session{
		log:        log,
		name:       name,
		conn:       conn,
		rooms:      rooms,
		users:      users,
		dispatcher: dispatcher,
		stats:      stats,
	}
}

// Dial opens the websocket connection, carrying the display name as a
// query parameter. There is no further handshake: the server starts
// pushing events as soon as the upgrade completes.
func Dial(ctx context.Context, dialer *websocket.Dialer, serverURL, displayName string,
	log *slog.Logger, rooms registry.IRooms, users registry.IUsers,
	dispatcher *dispatch.Dispatcher, stats *observability.SyncStats) (*Session, error) {

	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, fmt.Errorf("parsing server url %q: %w", serverURL, err)
	}
	query := u.Query()
	query.Set("name", displayName)
	u.RawQuery = query.Encode()

	conn, _, err := dialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", u.String(), err)
	}
	return New(log, displayName, conn, rooms, users, dispatcher, stats), nil
}

// Run is the read pump: it blocks reading frames, decodes each into its
// ordered events and applies them. It returns nil on context
// cancellation and the transport error otherwise. Events of one frame
// are applied strictly sequentially, so no locking is needed between
// events.
func (s *Session) Run(ctx context.Context) error {
	for {
		_, frame, err := s.conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("connection lost: %w", err)
		}

		events, errs := protocol.Decode(frame)
		for _, decodeErr := range errs {
			// A malformed segment only costs itself; the rest of the
			// frame has already been decoded.
			s.stats.IncrMalformed()
			s.log.Warn("Skipping malformed segment", "error", decodeErr)
		}
		s.dispatcher.ApplyAll(events)

		select {
		case <-ctx.Done():
			return nil
		default:
		}
	}
}

// Close tears down the connection, which also unblocks Run.
func (s *Session) Close() error {
	return s.conn.Close()
}

// SendDraft emits the room's draft as a send-message frame and clears
// the draft locally, fire-and-forget. An empty draft returns
// ErrEmptyDraft and sends nothing.
func (s *Session) SendDraft(roomID domain.RoomID) error {
	room, ok := s.rooms.FindByID(roomID)
	if !ok {
		return fmt.Errorf("%w: %q", errors.ErrUnknownRoom, roomID)
	}
	if room.Draft == "" {
		return errors.ErrEmptyDraft
	}

	err := s.send(command.SendMessage{
		RoomID:   string(room.ID),
		RoomName: room.Name,
		Text:     room.Draft,
	})
	if err != nil {
		return err
	}
	s.rooms.ClearDraft(roomID)
	return nil
}

// JoinRoom requests a public room by name. The room becomes visible
// locally only once the server answers with room-joined.
func (s *Session) JoinRoom(name string) error {
	return s.send(command.JoinRoom{Name: name})
}

// JoinPrivateRoom requests a private room with the given target id.
func (s *Session) JoinPrivateRoom(targetID string) error {
	return s.send(command.JoinPrivateRoom{TargetID: targetID})
}

// LeaveRoom notifies the server and removes the room locally right away,
// without waiting for a confirmation.
func (s *Session) LeaveRoom(name string) error {
	if err := s.send(command.LeaveRoom{Name: name}); err != nil {
		return err
	}
	s.rooms.RemoveByName(name)
	return nil
}

func (s *Session) send(cmd command.Command) error {
	if err := command.Validate(cmd); err != nil {
		return err
	}
	frame, err := protocol.Encode(cmd.Envelope())
	if err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteMessage(websocket.TextMessage, frame)
}

func (s *Session) Name() string {
	return s.name
}

func (s *Session) Rooms() []registry.RoomView {
	return s.rooms.List()
}

func (s *Session) Users() []domain.User {
	return s.users.List()
}

func (s *Session) SetDraft(roomID domain.RoomID, text string) bool {
	return s.rooms.SetDraft(roomID, text)
}

func (s *Session) Stats() observability.StatsSnapshot {
	return s.stats.Snapshot()
}
