package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enotalexnot/ztk-catalog/internal/upload"
)

// handleUpload accepts one multipart file plus entityName and category
// fields and stores it under the upload tree.
func (s *Server) handleUpload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	entityName := c.PostForm("entityName")
	if entityName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "entityName is required"})
		return
	}
	category := c.PostForm("category")

	result, err := s.uploads.Save(fh, entityName, category)
	if err != nil {
		switch {
		case errors.Is(err, upload.ErrBadCategory):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, upload.ErrTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		case errors.Is(err, upload.ErrUnsupportedType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		}
		return
	}
	c.JSON(http.StatusCreated, result)
}
