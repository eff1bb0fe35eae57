package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseleads/internal/app/models/dto"
	"github.com/yigit/courseleads/internal/pkg/apperrors"
	"github.com/yigit/courseleads/internal/pkg/logger"
)

// HandleAPIError maps an error to its HTTP response.
// Validation errors carry their own client message; everything else is an opaque 500.
func HandleAPIError(c *gin.Context, err error) {
	if msg, ok := apperrors.ValidationMessage(err); ok {
		var ce *apperrors.CustomError
		if errors.As(err, &ce) && ce.Field != "" {
			logger.Ctx(c.Request.Context()).Debug().Str("field", ce.Field).Msg(msg)
		}
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, msg))
		return
	}

	// Storage errors were already logged with their operation by the repository
	if !errors.Is(err, apperrors.ErrStorage) {
		logger.Ctx(c.Request.Context()).Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
	}
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrorCodeInternalServer, apperrors.MsgInternalServerError))
}

// Recovery turns a panic into a logged 500 response
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		logger.Ctx(c.Request.Context()).Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Bytes("stack", debug.Stack()).
			Msg("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrorCodeInternalServer, apperrors.MsgInternalServerError))
	})
}
