// Package domain contains core concepts of the chat client.
// This file defines participants visible to the local session.
// No transport, dispatch, or UI logic should be added here.
package domain

// UserID is the server-assigned identifier of a participant.
// The client treats it as opaque and never parses it.
type UserID string

// User represents a participant as announced by the server.
type User struct {
	ID   UserID
	Name string
}
