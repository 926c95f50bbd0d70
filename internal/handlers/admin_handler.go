package handlers

import (
	"net/http"

	"gigboard_backend/internal/middleware"
	"gigboard_backend/internal/models"
	"gigboard_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	statsService services.StatsService
	userService  services.UserService
}

func NewAdminHandler(base *BaseHandler, statsService services.StatsService, userService services.UserService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		statsService: statsService,
		userService:  userService,
	}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("/stats", h.GetDashboardStats)
		admin.GET("/users/workers", h.ListWorkers)
		admin.GET("/users/employers", h.ListEmployers)
		admin.PATCH("/users/:id/toggle-active", h.ToggleUserActive)
	}
}

func (h *AdminHandler) ToggleUserActive(c *gin.Context) {
	resp, err := h.userService.ToggleUserActive(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.statsService.GetDashboardStats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) ListWorkers(c *gin.Context) {
	h.listUsersByType(c, models.UserTypeWorker)
}

func (h *AdminHandler) ListEmployers(c *gin.Context) {
	h.listUsersByType(c, models.UserTypeEmployer)
}

func (h *AdminHandler) listUsersByType(c *gin.Context, userType models.UserType) {
	page, pageSize := ParsePagination(c)

	resp, err := h.userService.GetUsersByType(string(userType), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
