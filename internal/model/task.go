package model

import "time"

// Task is a calendar entry. FolderID is empty for standalone tasks.
type Task struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	FolderID   string    `json:"folder_id,omitempty"`
	Text       string    `json:"text"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	IsComplete bool      `json:"is_complete"`
	BackColor  string    `json:"back_color"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
