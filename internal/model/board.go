package model

import (
	"encoding/json"
	"time"
)

// Board represents a moodboard: a named canvas owned by a user, optionally
// filed under a folder. Elements is the full drawable content of the board,
// kept as an opaque JSON blob at this layer; its shape (text boxes, images,
// pen strokes, shapes) is a frontend concern and is always replaced wholesale
// on update.
type Board struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	FolderID string `json:"folder_id,omitempty"`
	Name     string `json:"name"`

	Elements json.RawMessage `json:"elements"`

	// ShareToken, when set, enables the coarse "anyone with the link can
	// view" path: presenting this exact token grants viewer access without
	// a ShareGrant record.
	ShareToken string `json:"share_token,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
