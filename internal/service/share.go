package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"notehub/internal/mailer"
	"notehub/internal/model"
	"notehub/internal/repository"
)

// ErrTokenInvalid covers unknown and expired share tokens alike so callers
// cannot distinguish the two.
var ErrTokenInvalid = errors.New("share token is invalid or expired")

// boardGrantExpiry is the default lifetime of a board share grant. Folder
// grants have no expiry.
const boardGrantExpiry = 7 * 24 * time.Hour

// CreateShareInput describes the grant to mint.
type CreateShareInput struct {
	DocumentID string             `validate:"required,uuid4"`
	Kind       model.DocumentKind `validate:"required,oneof=board page folder"`
	Role       model.Role         `validate:"required,oneof=viewer editor"`
	Email      string             `validate:"omitempty,email"`
}

// ShareService defines the use cases for tokenized sharing and invitations.
type ShareService interface {
	// CreateShareLink mints a grant and returns it with an absolute link.
	// Board and page grants expire after seven days; folder grants do not.
	CreateShareLink(ctx context.Context, userID string, in CreateShareInput) (*model.ShareGrant, string, error)

	// Invite mints a grant for the recipient and mails them the link.
	Invite(ctx context.Context, userID string, in CreateShareInput) (*model.ShareGrant, error)

	// VerifyToken resolves a token to its grant. Unknown and expired tokens
	// both yield ErrTokenInvalid.
	VerifyToken(ctx context.Context, token string) (*model.ShareGrant, error)

	Revoke(ctx context.Context, userID, grantID string) error
}

type shareService struct {
	grants  repository.ShareGrantRepository
	mail    mailer.Mailer
	baseURL string
}

// NewShareService constructs a ShareService. baseURL is the front-end origin
// links are built against.
func NewShareService(grants repository.ShareGrantRepository, mail mailer.Mailer, baseURL string) ShareService {
	return &shareService{grants: grants, mail: mail, baseURL: baseURL}
}

func (s *shareService) CreateShareLink(ctx context.Context, userID string, in CreateShareInput) (*model.ShareGrant, string, error) {
	g, err := s.mint(ctx, userID, in)
	if err != nil {
		return nil, "", err
	}
	return g, s.link(g), nil
}

func (s *shareService) Invite(ctx context.Context, userID string, in CreateShareInput) (*model.ShareGrant, error) {
	if in.Email == "" {
		return nil, errors.Join(ErrValidation, errors.New("email is required for invitations"))
	}
	g, err := s.mint(ctx, userID, in)
	if err != nil {
		return nil, err
	}
	subject := "You have been invited to collaborate"
	body := fmt.Sprintf(
		`<p>You have been invited to a shared %s as %s.</p><p><a href="%s">Open it here</a>.</p>`,
		g.Kind, g.Role, s.link(g),
	)
	if err := s.mail.Send(ctx, in.Email, subject, body); err != nil {
		// The grant stays valid; the link can be re-sent.
		return g, fmt.Errorf("send invitation: %w", err)
	}
	return g, nil
}

func (s *shareService) VerifyToken(ctx context.Context, token string) (*model.ShareGrant, error) {
	if token == "" {
		return nil, ErrTokenInvalid
	}
	g, err := s.grants.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTokenInvalid
		}
		return nil, err
	}
	if g.Expired(time.Now().UTC()) {
		return nil, ErrTokenInvalid
	}
	return g, nil
}

func (s *shareService) Revoke(ctx context.Context, userID, grantID string) error {
	if grantID == "" {
		return ErrIDRequired
	}
	return s.grants.Delete(ctx, grantID)
}

func (s *shareService) mint(ctx context.Context, userID string, in CreateShareInput) (*model.ShareGrant, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	g := &model.ShareGrant{
		ID:         uuid.New().String(),
		DocumentID: in.DocumentID,
		Kind:       in.Kind,
		Token:      uuid.New().String(),
		Role:       in.Role,
		InvitedBy:  userID,
		Email:      in.Email,
		CreatedAt:  now,
	}
	if in.Kind == model.KindBoard || in.Kind == model.KindPage {
		exp := now.Add(boardGrantExpiry)
		g.ExpiresAt = &exp
	}
	return s.grants.Create(ctx, g)
}

func (s *shareService) link(g *model.ShareGrant) string {
	return fmt.Sprintf("%s/shared/%s/%s?token=%s", s.baseURL, g.Kind, g.DocumentID, g.Token)
}
