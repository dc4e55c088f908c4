package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// UploadVehicleImageHandler receives a vehicle photo from the admin console
// and stores it in Cloudinary. The returned public ID goes on the vehicle
// record; the widget gets delivery URLs derived from it.
func (hb *HandlerBundle) UploadVehicleImageHandler(c *gin.Context) {
	if hb.Storage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage is not configured"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := hb.Storage.UploadFile(c, tempFilePath, "vehicles")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file", "detail": err.Error()})
		return
	}

	url, err := hb.Storage.DeliveryURL(publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to construct delivery URL", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"publicId":    publicID,
		"downloadURL": url,
	})
}
