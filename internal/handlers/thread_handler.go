package handlers

import (
	"net/http"

	"threadhub_backend/internal/services"
	"threadhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ThreadHandler struct {
	*BaseHandler
	threadService services.ThreadService
}

func NewThreadHandler(base *BaseHandler, threadService services.ThreadService) *ThreadHandler {
	return &ThreadHandler{
		BaseHandler:   base,
		threadService: threadService,
	}
}

// RegisterRoutes registers the thread routes. Mutating routes and the
// personal listing require an authenticated, active "user"; the listing
// and single-thread reads are public.
func (h *ThreadHandler) RegisterRoutes(rg *gin.RouterGroup, authn, requireUser, requireActive gin.HandlerFunc) {
	rg.POST("/thread", authn, requireUser, requireActive, h.Create)
	rg.GET("/thread/mine", authn, requireUser, requireActive, h.Mine)
	rg.PUT("/thread/:id/update", authn, requireUser, requireActive, h.Update)
	rg.DELETE("/thread/:id/delete", authn, requireUser, requireActive, h.Delete)

	rg.GET("/threads", h.ListAll)
	rg.GET("/thread/:id", h.GetByID)
}

func (h *ThreadHandler) Create(c *gin.Context) {
	identity, ok := h.RequireIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateThreadRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	image, ok := h.ReadImagePart(c)
	if !ok {
		return
	}

	thread, err := h.threadService.Create(c.Request.Context(), identity.ID, &req, image)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Thread created successfully",
		"thread":  thread,
	})
}

func (h *ThreadHandler) Mine(c *gin.Context) {
	identity, ok := h.RequireIdentity(c)
	if !ok {
		return
	}

	query := h.listQuery(c)
	response, err := h.threadService.ListMine(identity.ID, query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"threads":    response.Threads,
		"pagination": response.Pagination,
	})
}

func (h *ThreadHandler) ListAll(c *gin.Context) {
	query := h.listQuery(c)
	response, err := h.threadService.ListAll(query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"threads":    response.Threads,
		"pagination": response.Pagination,
	})
}

func (h *ThreadHandler) GetByID(c *gin.Context) {
	thread, err := h.threadService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"thread":  thread,
	})
}

func (h *ThreadHandler) Update(c *gin.Context) {
	identity, ok := h.RequireIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateThreadRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	image, ok := h.ReadImagePart(c)
	if !ok {
		return
	}

	thread, err := h.threadService.Update(c.Request.Context(), identity.ID, c.Param("id"), &req, image)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Thread updated successfully",
		"thread":  thread,
	})
}

func (h *ThreadHandler) Delete(c *gin.Context) {
	identity, ok := h.RequireIdentity(c)
	if !ok {
		return
	}

	if err := h.threadService.Delete(c.Request.Context(), identity.ID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Thread deleted successfully",
	})
}

// listQuery parses pagination leniently: non-numeric or missing values
// fall back to the defaults downstream instead of failing the request.
func (h *ThreadHandler) listQuery(c *gin.Context) *dto.ThreadListQuery {
	return &dto.ThreadListQuery{
		Page:     ParseQueryInt(c, "page", 0),
		Limit:    ParseQueryInt(c, "limit", 0),
		HasImage: c.Query("hasImage"),
	}
}
