// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Response helpers. Success payloads are written as-is to keep the wire
// shapes flat (bare records, arrays, counts); failures always carry a
// human-readable message.

func BadRequestResponse(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}

func ValidationErrorResponse(c *gin.Context, violations []string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"message": "Validation failed",
		"errors":  violations,
	})
}

func UnauthorizedResponse(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"message": message})
}

func NotFoundResponse(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"message": message})
}

func ConflictResponse(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, gin.H{"message": message})
}

// InternalErrorResponse logs the underlying error server-side and sends the
// caller a generic message; store errors never reach the wire verbatim.
func InternalErrorResponse(c *gin.Context, err error) {
	logrus.WithError(err).WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	}).Error("Request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}
