package model

import "time"

// Tier is a user's subscription tier. Tier changes arrive from the payment
// provider through an external channel; this service only reads them.
type Tier string

const (
	TierFree    Tier = "free"
	TierPro     Tier = "pro"
	TierPremium Tier = "premium"
)

// UserTier is the persisted tier record for a user.
type UserTier struct {
	UserID    string    `json:"user_id"`
	Tier      Tier      `json:"tier"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginToken is a per-user session handoff token. It is rotated on each
// login; the stored value is compared verbatim on retrieval.
type LoginToken struct {
	UserID    string    `json:"user_id"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
