package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"notehub/internal/auth"
	"notehub/internal/collab"
	"notehub/internal/model"
	"notehub/internal/service"
)

type createShareRequest struct {
	DocumentID string `json:"document_id"`
	Kind       string `json:"kind"`
	Role       string `json:"role"`
	Email      string `json:"email"`
}

// CreateShareLink mints a tokenized grant and returns it with its link.
func CreateShareLink(svc service.ShareService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createShareRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		g, link, err := svc.CreateShareLink(c.UserContext(), auth.UserID(c), service.CreateShareInput{
			DocumentID: req.DocumentID,
			Kind:       model.DocumentKind(req.Kind),
			Role:       model.Role(req.Role),
		})
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"grant": g, "link": link})
	}
}

// InviteCollaborator mints a grant and mails the recipient the link.
func InviteCollaborator(svc service.ShareService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createShareRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		g, err := svc.Invite(c.UserContext(), auth.UserID(c), service.CreateShareInput{
			DocumentID: req.DocumentID,
			Kind:       model.DocumentKind(req.Kind),
			Role:       model.Role(req.Role),
			Email:      req.Email,
		})
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(g)
	}
}

// VerifyShareToken resolves a bare token to its grant.
func VerifyShareToken(svc service.ShareService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		g, err := svc.VerifyToken(c.UserContext(), c.Query("token"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{
			"document_id": g.DocumentID,
			"kind":        g.Kind,
			"role":        g.Role,
		})
	}
}

func RevokeShare(svc service.ShareService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Revoke(c.UserContext(), auth.UserID(c), c.Params("id")); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// SharedDocs bundles the per-kind access gates and stores backing the shared
// document entry point.
type SharedDocs struct {
	Gates  map[model.DocumentKind]*collab.Gate
	Stores map[model.DocumentKind]collab.DocumentStore
}

// ResolveSharedDocument authorizes a credential for a document and returns
// the content at the granted role. This is the HTTP entry point share links
// land on before the websocket session starts.
func ResolveSharedDocument(docs SharedDocs) fiber.Handler {
	return func(c *fiber.Ctx) error {
		kind := model.DocumentKind(c.Params("kind"))
		gate, ok := docs.Gates[kind]
		store := docs.Stores[kind]
		if !ok || store == nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_KIND", "unknown document kind")
		}

		id := c.Params("id")
		role, err := gate.Authorize(c.UserContext(), id, c.Query("token"))
		if err != nil {
			return collabError(c, err)
		}
		content, err := store.Read(c.UserContext(), id)
		if err != nil {
			return collabError(c, err)
		}
		return c.JSON(fiber.Map{
			"document_id": id,
			"kind":        kind,
			"role":        role,
			"content":     content,
		})
	}
}

// collabError translates the collaboration error taxonomy to HTTP statuses.
func collabError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, collab.ErrInvalidRequest):
		return writeError(c, fiber.StatusBadRequest, "INVALID_REQUEST", "invalid request")
	case errors.Is(err, collab.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
	case errors.Is(err, collab.ErrUnauthorized):
		return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "invalid or expired credential")
	case errors.Is(err, collab.ErrForbidden):
		return writeError(c, fiber.StatusForbidden, "FORBIDDEN", "insufficient role")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
