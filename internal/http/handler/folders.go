package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"notehub/internal/auth"
	"notehub/internal/service"
)

type createFolderRequest struct {
	Name string `json:"name"`
}

func ListFolders(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		folders, err := svc.ListByUser(c.UserContext(), auth.UserID(c))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(folders)
	}
}

func CreateFolder(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createFolderRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		f, err := svc.Create(c.UserContext(), auth.UserID(c), req.Name)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(f)
	}
}

func GetFolder(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		f, err := svc.Get(c.UserContext(), auth.UserID(c), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(f)
	}
}

func DeleteFolder(svc service.FolderService) fiber.Handler {
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

// UploadFolderFile accepts a multipart upload (field name: file) into the folder.
func UploadFolderFile(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		file, err := svc.UploadFile(c.UserContext(), auth.UserID(c), id, f, fh.Filename, ct, fh.Size)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(file)
	}
}

func ListFolderFiles(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		files, err := svc.ListFiles(c.UserContext(), auth.UserID(c), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(files)
	}
}

// DownloadFolderFile consumes the caller's download quota and returns a
// presigned URL for the object.
func DownloadFolderFile(svc service.FolderService, usage service.UsageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileID := c.Params("fileId")
		if fileID == "" {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		userID := auth.UserID(c)
		if _, err := usage.Consume(c.UserContext(), userID, service.MetricDownloads); err != nil {
			return serviceError(c, err)
		}
		url, err := svc.FileDownloadURL(c.UserContext(), userID, fileID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"url": url})
	}
}

func DeleteFolderFile(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileID := c.Params("fileId")
		if fileID == "" {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.DeleteFile(c.UserContext(), auth.UserID(c), fileID); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
