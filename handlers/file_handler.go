package handlers

import (
	"github.com/gin-gonic/gin"

	"editorial-cms/helper"
	"editorial-cms/services"
)

type FileHandler struct {
	blob   services.BlobClient
	Helper *helper.HTTPHelper
}

func NewFileHandler(blob services.BlobClient, h *helper.HTTPHelper) *FileHandler {
	return &FileHandler{blob: blob, Helper: h}
}

// ListFiles returns the blob-store root listing. The client reports an
// empty list on failure, so this never errors.
func (h *FileHandler) ListFiles(c *gin.Context) {
	h.Helper.SendSuccess(c, "Success", h.blob.List())
}
