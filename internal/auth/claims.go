package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"notehub/internal/model"
)

// ShareClaims is the payload of a signed share-link token: a role assertion
// scoped to a single document. Presenting one of these is equivalent to
// holding a ShareGrant with the same role, minus the persisted audit trail.
type ShareClaims struct {
	jwt.RegisteredClaims

	DocumentID string     `json:"document_id"`
	Role       model.Role `json:"role"`
}

// AccessClaims is the payload of a user access token issued by the auth
// front-end. Only verification happens in this service.
type AccessClaims struct {
	jwt.RegisteredClaims

	UserID string `json:"user_id"`
}
