// Package collab implements realtime co-editing of boards and notebook pages:
// a room registry tracking live connections per document, an access gate that
// admits connections based on share credentials, and a relay that persists
// content updates and fans them out to the rest of the room.
//
// The package is transport-agnostic: connections appear only as the Sender
// interface, so every piece is testable without a live websocket.
package collab

import (
	"context"
	"encoding/json"
	"errors"
)

// Sender is the transport-facing side of a connection. Implementations must
// be safe for concurrent Send calls.
type Sender interface {
	// ID uniquely identifies the connection for the process lifetime.
	ID() string
	// Send delivers one event to the connection's peer.
	Send(event string, payload any) error
}

// Event names exchanged with clients.
const (
	EventJoinRoom       = "join-room"
	EventUpdateContent  = "update-content"
	EventJoined         = "joined"
	EventContentUpdated = "content-updated"
	EventError          = "error"
)

// JoinedPayload acknowledges a successful room join.
type JoinedPayload struct {
	DocumentID string `json:"document_id"`
	Role       string `json:"role"`
}

// ContentUpdatedPayload carries a full document content replacement to peers.
type ContentUpdatedPayload struct {
	DocumentID string          `json:"document_id"`
	Content    json.RawMessage `json:"content"`
}

// ErrorPayload reports a denial or failure to the originating connection only.
type ErrorPayload struct {
	Reason string `json:"reason"`
}

// Error taxonomy. Every failure in this package maps onto exactly one of
// these (persistence failures wrap ErrPersistence); all are recovered at the
// transport boundary and delivered to the initiator, never broadcast.
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrNotFound       = errors.New("document not found")
	ErrUnauthorized   = errors.New("invalid or expired credential")
	ErrForbidden      = errors.New("insufficient role")
	ErrPersistence    = errors.New("persistence failure")
)

// Document is the gate's view of a shareable document: its identity and, when
// public-link sharing is enabled, the standing token that grants viewer access.
type Document struct {
	ID          string
	PublicToken string
}

// DocumentStore is the persistence boundary for collaborative documents.
// Write replaces the full content (last write wins); a failed Write must
// leave the previously persisted content unchanged.
type DocumentStore interface {
	Lookup(ctx context.Context, id string) (Document, error)
	Read(ctx context.Context, id string) (json.RawMessage, error)
	Write(ctx context.Context, id string, content json.RawMessage) error
}
