package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"notehub/internal/config"
	"notehub/internal/model"
)

// Manager signs and verifies the HS256 tokens this service deals with:
// share-link role assertions it mints itself, and user access tokens minted
// by the auth front-end with the same secret.
type Manager struct {
	secret   []byte
	issuer   string
	shareTTL time.Duration
}

// NewManager builds a Manager from config. The secret is mandatory.
func NewManager(cfg config.AuthConfig) (*Manager, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	return &Manager{
		secret:   []byte(cfg.JWTSecret),
		issuer:   cfg.JWTIssuer,
		shareTTL: cfg.ShareTokenTTL,
	}, nil
}

// IssueShareToken mints a role assertion for one document, valid for the
// configured share TTL.
func (m *Manager) IssueShareToken(now time.Time, documentID string, role model.Role) (string, error) {
	if !role.Valid() {
		return "", errors.New("invalid role")
	}
	claims := ShareClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.shareTTL)),
			ID:        uuid.NewString(),
		},
		DocumentID: documentID,
		Role:       role,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// VerifyShareToken parses and validates a share-link token.
func (m *Manager) VerifyShareToken(tokenString string, now time.Time) (ShareClaims, error) {
	var claims ShareClaims
	if err := m.verify(tokenString, &claims, now); err != nil {
		return ShareClaims{}, err
	}
	if claims.DocumentID == "" {
		return ShareClaims{}, errors.New("document_id missing")
	}
	if !claims.Role.Valid() {
		return ShareClaims{}, errors.New("role missing or unknown")
	}
	return claims, nil
}

// VerifyAccessToken parses and validates a user access token.
func (m *Manager) VerifyAccessToken(tokenString string, now time.Time) (AccessClaims, error) {
	var claims AccessClaims
	if err := m.verify(tokenString, &claims, now); err != nil {
		return AccessClaims{}, err
	}
	if claims.UserID == "" {
		return AccessClaims{}, errors.New("user_id missing")
	}
	return claims, nil
}

func (m *Manager) verify(tokenString string, claims jwt.Claims, now time.Time) error {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithLeeway(30*time.Second), // clock skew tolerance
		jwt.WithExpirationRequired(),
	)
	_, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return m.secret, nil
	})
	return err
}
