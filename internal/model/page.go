package model

import "time"

// Page is a notebook page: free-form text content owned by a user and
// optionally linked to a folder. Content is overwritten in full on every
// update (last write wins).
type Page struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	FolderID  string    `json:"folder_id,omitempty"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
