package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/shravanjnaidu/spicetrade/internal/infrastructure/storage"
	"github.com/shravanjnaidu/spicetrade/pkg/errors"
	"github.com/shravanjnaidu/spicetrade/pkg/logger"
	"github.com/shravanjnaidu/spicetrade/pkg/response"
)

const maxUploadSize = 5 * 1024 * 1024

type FileHandler struct {
	storageClient *storage.CloudStorageClient
}

func NewFileHandler(storageClient *storage.CloudStorageClient) *FileHandler {
	return &FileHandler{
		storageClient: storageClient,
	}
}

func (h *FileHandler) Upload(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid image", err))
	}
	if file.Size > maxUploadSize {
		return response.Error(c, errors.BadRequest("File size exceeds maximum allowed (5MB)", nil))
	}

	contentType := file.Header.Get("Content-Type")
	if !isAllowedImageType(contentType) {
		return response.Error(c, errors.BadRequest("File type not supported", nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Unable to read file", err))
	}
	defer src.Close()

	url, err := h.storageClient.UploadImage(c.Request().Context(), src, contentType)
	if err != nil {
		logger.Error("Upload failed for %s: %v", file.Filename, err)
		return response.Error(c, errors.Internal("Failed to upload file", err))
	}

	return response.Success(c, map[string]interface{}{
		"url": url,
	})
}

func isAllowedImageType(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
		return true
	}
	return false
}
