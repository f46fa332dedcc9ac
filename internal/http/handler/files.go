package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/http/middleware"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/model"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/service"
)

// UploadFile creates a folder, file or image.
//
// @Summary  Create an entry
// @Tags     files
// @Accept   json
// @Produce  json
// @Param    X-Token header string true "session token"
// @Param    body body service.UploadInput true "entry; data is base64"
// @Success  201 {object} model.File
// @Failure  400 {object} errorPayload
// @Failure  401 {object} errorPayload
// @Router   /files [post]
func UploadFile(files service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.UploadInput
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&in); err != nil {
				return writeError(c, fiber.StatusBadRequest, "Invalid body")
			}
		}
		f, err := files.Upload(c.UserContext(), middleware.UserID(c), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(f)
	}
}

// GetFile returns metadata of an owned entry.
//
// @Summary  Show an entry
// @Tags     files
// @Produce  json
// @Param    X-Token header string true "session token"
// @Param    id path string true "file id"
// @Success  200 {object} model.File
// @Failure  404 {object} errorPayload
// @Router   /files/{id} [get]
func GetFile(files service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, err := files.Get(c.UserContext(), middleware.UserID(c), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(f)
	}
}

// ListFiles returns one page of the caller's entries under parentId.
//
// @Summary  List entries
// @Tags     files
// @Produce  json
// @Param    X-Token header string true "session token"
// @Param    parentId query string false "containing folder, 0 for root"
// @Param    page query int false "zero-based page of 20"
// @Success  200 {array} model.File
// @Router   /files [get]
func ListFiles(files service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := files.List(c.UserContext(),
			middleware.UserID(c),
			c.Query("parentId", model.RootParentID),
			c.QueryInt("page", 0),
		)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(list)
	}
}

// PublishFile makes an owned entry public.
//
// @Summary  Publish
// @Tags     files
// @Produce  json
// @Param    X-Token header string true "session token"
// @Param    id path string true "file id"
// @Success  200 {object} model.File
// @Failure  404 {object} errorPayload
// @Router   /files/{id}/publish [put]
func PublishFile(files service.FileService) fiber.Handler {
	return setVisibility(files, true)
}

// UnpublishFile makes an owned entry private.
//
// @Summary  Unpublish
// @Tags     files
// @Produce  json
// @Param    X-Token header string true "session token"
// @Param    id path string true "file id"
// @Success  200 {object} model.File
// @Failure  404 {object} errorPayload
// @Router   /files/{id}/unpublish [put]
func UnpublishFile(files service.FileService) fiber.Handler {
	return setVisibility(files, false)
}

func setVisibility(files service.FileService, isPublic bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, err := files.SetVisibility(c.UserContext(), middleware.UserID(c), c.Params("id"), isPublic)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(f)
	}
}

// GetFileData streams the content of a file or one of its thumbnails.
// Public files are readable without a token.
//
// @Summary  Download content
// @Tags     files
// @Produce  octet-stream
// @Param    X-Token header string false "session token"
// @Param    id path string true "file id"
// @Param    size query int false "thumbnail width: 500, 250 or 100"
// @Success  200 {file} binary
// @Failure  400 {object} errorPayload
// @Failure  404 {object} errorPayload
// @Router   /files/{id}/data [get]
func GetFileData(files service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		content, err := files.Download(c.UserContext(), middleware.UserID(c), c.Params("id"), c.Query("size"))
		if err != nil {
			return writeServiceError(c, err)
		}
		c.Set(fiber.HeaderContentType, content.ContentType)
		if content.Size > 0 {
			return c.SendStream(content.Body, int(content.Size))
		}
		return c.SendStream(content.Body)
	}
}
