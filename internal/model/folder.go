package model

import "time"

// Folder groups boards, pages, tasks and uploaded files for one user.
type Folder struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FolderFile is the metadata row for a file uploaded into a folder. The bytes
// themselves live in object storage under StoragePath.
type FolderFile struct {
	ID          string    `json:"id"`
	FolderID    string    `json:"folder_id"`
	Name        string    `json:"name"`
	ContentType string    `json:"content_type"`
	StoragePath string    `json:"storage_path"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
}
