package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"notehub/internal/auth"
	"notehub/internal/service"
)

type createPageRequest struct {
	Name     string `json:"name"`
	FolderID string `json:"folder_id"`
	Content  string `json:"content"`
}

type updatePageContentRequest struct {
	Content string `json:"content"`
}

// ListPages returns the caller's notebook pages, optionally by folder.
func ListPages(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := auth.UserID(c)
		if folderID := c.Query("folder_id"); folderID != "" {
			pages, err := svc.ListByFolder(c.UserContext(), userID, folderID)
			if err != nil {
				return serviceError(c, err)
			}
			return c.JSON(pages)
		}
		pages, err := svc.ListByUser(c.UserContext(), userID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(pages)
	}
}

func CreatePage(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createPageRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		p, err := svc.Create(c.UserContext(), auth.UserID(c), service.CreatePageInput{
			Name:     req.Name,
			FolderID: req.FolderID,
			Content:  req.Content,
		})
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

func GetPage(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		p, err := svc.Get(c.UserContext(), auth.UserID(c), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(p)
	}
}

// UpdatePageContent replaces the page content in full.
func UpdatePageContent(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var req updatePageContentRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		if err := svc.UpdateContent(c.UserContext(), auth.UserID(c), id, req.Content); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func LinkPageFolder(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var req linkFolderRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		if err := svc.LinkFolder(c.UserContext(), auth.UserID(c), id, req.FolderID); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func DeletePage(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), auth.UserID(c), id); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
