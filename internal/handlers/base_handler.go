package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"threadhub_backend/internal/apperrors"
	"threadhub_backend/internal/logger"
	"threadhub_backend/internal/middleware"
	"threadhub_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

type BaseHandler struct {
	validator *validator.Validator
	// maxUploadSize bounds multipart file parts, in bytes.
	maxUploadSize int64
}

func NewBaseHandler(v *validator.Validator, maxUploadSize int64) *BaseHandler {
	return &BaseHandler{
		validator:     v,
		maxUploadSize: maxUploadSize,
	}
}

// BindAndValidateJSON binds a JSON body and runs the validator. Returns
// false after writing the error response.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	return h.runValidation(c, obj)
}

// BindAndValidateForm binds multipart/urlencoded form fields.
func (h *BaseHandler) BindAndValidateForm(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBind(obj); err != nil {
		logger.CtxWithError(ctx, "failed to bind form body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	return h.runValidation(c, obj)
}

// BindAndValidateQuery binds query-string parameters.
func (h *BaseHandler) BindAndValidateQuery(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindQuery(obj); err != nil {
		logger.CtxWithError(ctx, "failed to bind query params", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters: "+err.Error()))
		return false
	}

	return h.runValidation(c, obj)
}

func (h *BaseHandler) runValidation(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := h.validator.Validate(obj); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			logger.CtxWarn(ctx, "validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// HandleServiceError maps a service error onto the response.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "service error",
			"error", appErr.Message,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

// RequireIdentity extracts the authenticated identity, rejecting the
// request when the auth middleware never ran.
func (h *BaseHandler) RequireIdentity(c *gin.Context) (*middleware.Identity, bool) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		logger.CtxWarn(c.Request.Context(), "identity missing from context",
			"path", c.Request.URL.Path,
			"ip", c.ClientIP(),
		)
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return nil, false
	}
	return identity, true
}

// ReadImagePart reads the raw bytes of the optional "image" multipart
// part. Returns (nil, true) when the part is absent — an update without a
// new image is valid.
func (h *BaseHandler) ReadImagePart(c *gin.Context) ([]byte, bool) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, true
		}
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid image upload: "+err.Error()))
		return nil, false
	}

	if fileHeader.Size > h.maxUploadSize {
		apperrors.HandleError(c, apperrors.NewBadRequestError("File too large"))
		return nil, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxUploadSize+1))
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return nil, false
	}
	if int64(len(data)) > h.maxUploadSize {
		apperrors.HandleError(c, apperrors.NewBadRequestError("File too large"))
		return nil, false
	}

	return data, true
}

// ParseQueryInt reads an integer query parameter, falling back on any
// non-numeric input.
func ParseQueryInt(c *gin.Context, key string, defaultValue int) int {
	valueStr := c.Query(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
