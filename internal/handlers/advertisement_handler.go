package handlers

import (
	"net/http"

	"gigboard_backend/internal/services"
	"gigboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AdvertisementHandler struct {
	*BaseHandler
	adService services.AdvertisementService
}

func NewAdvertisementHandler(base *BaseHandler, adService services.AdvertisementService) *AdvertisementHandler {
	return &AdvertisementHandler{
		BaseHandler: base,
		adService:   adService,
	}
}

func (h *AdvertisementHandler) RegisterRoutes(rg *gin.RouterGroup) {
	ads := rg.Group("/advertisements")
	{
		ads.GET("", h.ListAdvertisements)
		ads.GET("/:id", h.GetAdvertisement)
		ads.POST("", h.CreateAdvertisement)
		ads.PUT("/:id", h.UpdateAdvertisement)
		ads.DELETE("/:id", h.DeleteAdvertisement)
		ads.POST("/:id/track-view", h.TrackView)
		ads.POST("/:id/track-click", h.TrackClick)
	}
}

func (h *AdvertisementHandler) ListAdvertisements(c *gin.Context) {
	var req dto.AdSearchRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	ads, err := h.adService.GetAdvertisements(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ads)
}

func (h *AdvertisementHandler) GetAdvertisement(c *gin.Context) {
	ad, err := h.adService.GetAdvertisement(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ad)
}

func (h *AdvertisementHandler) CreateAdvertisement(c *gin.Context) {
	var req dto.CreateAdvertisementRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	// Media is optional at the binding layer; the service requires it.
	media, _ := c.FormFile("media")

	ad, err := h.adService.CreateAdvertisement(&req, media)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ad)
}

func (h *AdvertisementHandler) UpdateAdvertisement(c *gin.Context) {
	var req dto.UpdateAdvertisementRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	media, _ := c.FormFile("media")

	ad, err := h.adService.UpdateAdvertisement(c.Param("id"), &req, media)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ad)
}

func (h *AdvertisementHandler) DeleteAdvertisement(c *gin.Context) {
	if err := h.adService.DeleteAdvertisement(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdvertisementHandler) TrackView(c *gin.Context) {
	if err := h.adService.TrackView(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdvertisementHandler) TrackClick(c *gin.Context) {
	if err := h.adService.TrackClick(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
