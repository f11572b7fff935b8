// internal/handlers/upload.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/niyorhq/niyor-server/internal/services"
	"github.com/niyorhq/niyor-server/internal/utils"
)

type UploadHandler struct {
	storageService *services.StorageService
}

func NewUploadHandler(storageService *services.StorageService) *UploadHandler {
	return &UploadHandler{storageService: storageService}
}

// POST /api/products/upload-images
func (h *UploadHandler) UploadProductImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestResponse(c, "Invalid multipart form")
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		utils.BadRequestResponse(c, "No images uploaded")
		return
	}

	uploaded := []*services.UploadResult{}
	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			logrus.WithError(err).WithField("file", fileHeader.Filename).Warn("Failed to open uploaded file")
			continue
		}

		result, err := h.storageService.UploadImage(file, fileHeader)
		file.Close()
		if err != nil {
			logrus.WithError(err).WithField("file", fileHeader.Filename).Warn("Failed to store uploaded file")
			continue
		}
		uploaded = append(uploaded, result)
	}

	if len(uploaded) == 0 {
		utils.BadRequestResponse(c, "None of the uploaded files could be stored")
		return
	}

	c.JSON(http.StatusOK, gin.H{"images": uploaded})
}
