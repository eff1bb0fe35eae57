package middleware

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseleads/internal/pkg/apperrors"
)

// BindJSON decodes the request body into obj. A missing body leaves obj zero-valued so every
// field is treated as absent. Malformed JSON is answered with a 400 carrying message, and
// BindJSON reports false.
func BindJSON(c *gin.Context, obj interface{}, message string) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return true
	}

	if err := c.ShouldBindJSON(obj); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		HandleAPIError(c, apperrors.NewValidationError(message).WithField("body"))
		return false
	}
	return true
}
