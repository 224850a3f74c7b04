package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"notehub/internal/auth"
	"notehub/internal/service"
)

type taskRequest struct {
	Text      string    `json:"text"`
	FolderID  string    `json:"folder_id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	IsDone    bool      `json:"is_complete"`
	BackColor string    `json:"back_color"`
}

func ListTasks(svc service.TaskService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := auth.UserID(c)
		if folderID := c.Query("folder_id"); folderID != "" {
			tasks, err := svc.ListByFolder(c.UserContext(), userID, folderID)
			if err != nil {
				return serviceError(c, err)
			}
			return c.JSON(tasks)
		}
		tasks, err := svc.ListByUser(c.UserContext(), userID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(tasks)
	}
}

func CreateTask(svc service.TaskService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req taskRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		t, err := svc.Create(c.UserContext(), auth.UserID(c), service.CreateTaskInput{
			Text:      req.Text,
			FolderID:  req.FolderID,
			Start:     req.Start,
			End:       req.End,
			BackColor: req.BackColor,
		})
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(t)
	}
}

func UpdateTask(svc service.TaskService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var req taskRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		t, err := svc.Update(c.UserContext(), auth.UserID(c), id, service.UpdateTaskInput{
			Text:      req.Text,
			Start:     req.Start,
			End:       req.End,
			IsDone:    req.IsDone,
			BackColor: req.BackColor,
		})
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(t)
	}
}

func DeleteTask(svc service.TaskService) fiber.Handler {
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
