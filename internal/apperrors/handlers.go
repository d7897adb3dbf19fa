package apperrors

import (
	"threadhub_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// errorBody is the wire shape of every failed response:
// {"success": false, "message": "...", "details": {...}?}
type errorBody struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// HandleError writes an AppError as the response and aborts the chain.
func HandleError(c *gin.Context, err *AppError) {
	if err.HTTPCode >= 500 {
		logger.CtxError(c.Request.Context(), "server error",
			"code", string(err.Code),
			"error", err.Error(),
			"path", c.Request.URL.Path,
		)
	}

	c.AbortWithStatusJSON(err.HTTPCode, errorBody{
		Success: false,
		Message: err.Message,
		Details: err.Details,
	})
}

// HandleAnyError maps an arbitrary error to a response. Unknown errors
// become an opaque 500 so internals never leak to the client.
func HandleAnyError(c *gin.Context, err error) {
	var appErr *AppError
	if As(err, &appErr) {
		HandleError(c, appErr)
		return
	}
	HandleError(c, InternalError(err))
}
