package model

import "time"

// Role is the access level a share grants on a document.
type Role string

const (
	RoleViewer Role = "viewer"
	RoleEditor Role = "editor"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleViewer || r == RoleEditor
}

// DocumentKind identifies which resource type a ShareGrant targets.
type DocumentKind string

const (
	KindBoard  DocumentKind = "board"
	KindPage   DocumentKind = "page"
	KindFolder DocumentKind = "folder"
)

// ShareGrant is a persisted, tokenized authorization record: presenting Token
// for DocumentID yields Role. ExpiresAt is nil for grants without expiry;
// expiry is enforced at lookup time, not by background revocation.
type ShareGrant struct {
	ID         string       `json:"id"`
	DocumentID string       `json:"document_id"`
	Kind       DocumentKind `json:"kind"`
	Token      string       `json:"token"`
	Role       Role         `json:"role"`
	InvitedBy  string       `json:"invited_by"`
	Email      string       `json:"email,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	ExpiresAt  *time.Time   `json:"expires_at,omitempty"`
}

// Expired reports whether the grant is unusable at the given instant.
func (g *ShareGrant) Expired(now time.Time) bool {
	return g.ExpiresAt != nil && now.After(*g.ExpiresAt)
}
