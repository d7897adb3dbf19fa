package handlers

import (
	"net/http"

	"threadhub_backend/internal/apperrors"
	"threadhub_backend/internal/services"
	"threadhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

// RegisterRoutes registers the admin user routes. The caller mounts the
// group behind authentication and the admin role check.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users", h.List)
	rg.GET("/users/:userId", h.GetByID)
	rg.PUT("/users/:userId/status", h.ChangeStatus)
}

func (h *UserHandler) List(c *gin.Context) {
	var filter dto.AdminUserFilter
	if !h.BindAndValidateQuery(c, &filter) {
		return
	}
	filter.Page = ParseQueryInt(c, "page", 0)
	filter.Limit = ParseQueryInt(c, "limit", 0)

	response, err := h.userService.ListUsers(&filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"data":           response.Data,
		"pagination":     response.Pagination,
		"appliedFilters": response.AppliedFilters,
	})
}

func (h *UserHandler) GetByID(c *gin.Context) {
	user, err := h.userService.GetUserByID(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

func (h *UserHandler) ChangeStatus(c *gin.Context) {
	identity, ok := h.RequireIdentity(c)
	if !ok {
		return
	}

	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == nil {
		apperrors.HandleError(c, apperrors.ErrStatusNotBool)
		return
	}

	user, err := h.userService.ChangeStatus(identity.ID, c.Param("userId"), *req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User status updated successfully",
		"user":    user,
	})
}
