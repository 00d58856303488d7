package protocol

// Wire action values. Inbound and outbound share the same envelope; only
// send-message travels in both directions.
const (
	SendMessageAction     = "send-message"
	JoinRoomAction        = "join-room"
	JoinRoomPrivateAction = "join-room-private"
	LeaveRoomAction       = "leave-room"
	UserJoinedAction      = "user-join"
	UserLeftAction        = "user-left"
	RoomJoinedAction      = "room-joined"
)
