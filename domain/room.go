package domain

// RoomID is the server-assigned identifier of a room, opaque to the client.
type RoomID string

// Room is one joined room: its identity, its message history in arrival
// order, and the draft the local user is typing for it. History and draft
// are unexported so other packages can only reach them through the
// mutation methods below or through read-only copies.
type Room struct {
	ID      RoomID
	Name    string
	Private bool

	messages []Message
	draft    string
}

func NewRoom(id RoomID, name string, private bool) *Room {
	return &Room{
		ID:       id,
		Name:     name,
		Private:  private,
		messages: nil,
	}
}

// AppendMessage records a message at the end of the history.
// History is append-only: no reordering, no deduplication.
func (r *Room) AppendMessage(message Message) {
	r.messages = append(r.messages, message)
}

// Messages returns a copy of the history so callers cannot mutate it.
func (r *Room) Messages() []Message {
	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}

func (r *Room) SetDraft(text string) {
	r.draft = text
}

func (r *Room) Draft() string {
	return r.draft
}

func (r *Room) ClearDraft() {
	r.draft = ""
}
