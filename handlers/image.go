package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"traveljournal/media"
)

const maxUploadSize = 10 << 20 // 10 MB

func (h *Handler) UploadImage(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxUploadSize); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Failed to parse form data"))
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("File is required"))
		return
	}
	defer file.Close()

	imageURL, err := h.media.Upload(c.Request.Context(), file, header.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, media.ErrUnsupportedMedia) {
			c.JSON(http.StatusBadRequest, errorResponse("Invalid file type. Only images are allowed."))
			return
		}
		log.Printf("image upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse("Something went wrong"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"imageUrl": imageURL})
}

func (h *Handler) DeleteImage(c *gin.Context) {
	imageURL := c.Query("imageUrl")
	if imageURL == "" {
		c.JSON(http.StatusBadRequest, errorResponse("Image URL is required"))
		return
	}

	// The placeholder is not a real blob and never reaches the gateway.
	if imageURL != h.placeholderURL {
		if err := h.media.Delete(c.Request.Context(), imageURL); err != nil {
			log.Printf("image delete failed for %s: %v", imageURL, err)
			c.JSON(http.StatusInternalServerError, errorResponse("Failed to delete image"))
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image deleted successfully"})
}
