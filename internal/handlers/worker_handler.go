package handlers

import (
	"net/http"

	"gigboard_backend/internal/models"
	"gigboard_backend/internal/services"
	"gigboard_backend/internal/services/dto"
	"gigboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type WorkerHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewWorkerHandler(base *BaseHandler, userService services.UserService) *WorkerHandler {
	return &WorkerHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *WorkerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	workers := rg.Group("/workers")
	{
		workers.GET("", h.ListWorkers)
		workers.GET("/:id", h.GetWorker)
		workers.PUT("/:id", h.UpdateWorker)
		workers.POST("/:id/resume", h.UploadResume)
		workers.DELETE("/:id", h.DeleteWorker)
	}
}

func (h *WorkerHandler) ListWorkers(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	resp, err := h.userService.GetUsersByType(string(models.UserTypeWorker), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WorkerHandler) GetWorker(c *gin.Context) {
	resp, err := h.userService.GetUser(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WorkerHandler) UpdateWorker(c *gin.Context) {
	var req dto.UpdateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.userService.UpdateUser(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WorkerHandler) DeleteWorker(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WorkerHandler) UploadResume(c *gin.Context) {
	file, err := c.FormFile("resume")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("resume file is required"))
		return
	}

	resp, err := h.userService.UploadResume(c.Param("id"), file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
