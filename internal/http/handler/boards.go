package handler

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"notehub/internal/auth"
	"notehub/internal/service"
)

type createBoardRequest struct {
	Name     string          `json:"name"`
	FolderID string          `json:"folder_id"`
	Elements json.RawMessage `json:"elements"`
}

type updateBoardRequest struct {
	Name     string          `json:"name"`
	Elements json.RawMessage `json:"elements"`
}

type linkFolderRequest struct {
	FolderID string `json:"folder_id"`
}

// ListBoards returns the caller's boards, optionally filtered by folder.
func ListBoards(svc service.BoardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := auth.UserID(c)
		if folderID := c.Query("folder_id"); folderID != "" {
			boards, err := svc.ListByFolder(c.UserContext(), userID, folderID)
			if err != nil {
				return serviceError(c, err)
			}
			return c.JSON(boards)
		}
		boards, err := svc.ListByUser(c.UserContext(), userID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(boards)
	}
}

func CreateBoard(svc service.BoardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createBoardRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		b, err := svc.Create(c.UserContext(), auth.UserID(c), service.CreateBoardInput{
			Name:     req.Name,
			FolderID: req.FolderID,
			Elements: req.Elements,
		})
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(b)
	}
}

func GetBoard(svc service.BoardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		b, err := svc.Get(c.UserContext(), auth.UserID(c), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(b)
	}
}

func UpdateBoard(svc service.BoardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var req updateBoardRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		b, err := svc.Update(c.UserContext(), auth.UserID(c), id, service.UpdateBoardInput{
			Name:     req.Name,
			Elements: req.Elements,
		})
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(b)
	}
}

// LinkBoardFolder moves a board into a folder.
func LinkBoardFolder(svc service.BoardService) fiber.Handler {
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

// EnableBoardShare mints the board's public view-only link token.
func EnableBoardShare(svc service.BoardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		token, err := svc.EnableShareLink(c.UserContext(), auth.UserID(c), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"share_token": token})
	}
}

func DeleteBoard(svc service.BoardService) fiber.Handler {
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
