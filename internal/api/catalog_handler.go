package api

import (
	"errors"
	"net/http"

	"akramfit/coaching-app/internal/domain"
	"akramfit/coaching-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogHandler serves the admin CRUD for everything shown on the public
// site: pricing plans, promo codes, gallery and achievements, plus the
// presigned upload URLs for their images.
type CatalogHandler struct {
	catalogService service.CatalogService
	mediaService   service.MediaService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService service.CatalogService, mediaService service.MediaService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		mediaService:   mediaService,
	}
}

// --- Request/Response Structs ---

type PricingPlanRequest struct {
	Name         string   `json:"name" binding:"required"`
	Price        int64    `json:"price" binding:"required,gt=0"`
	DurationDays int      `json:"durationDays" binding:"required,gt=0"`
	Features     []string `json:"features" binding:"required"`
	MostPopular  bool     `json:"mostPopular"`
}

type CreatePromoCodeRequest struct {
	Code               string `json:"code" binding:"required,min=3,max=32"`
	DiscountPercentage int    `json:"discountPercentage" binding:"required,gte=1,lte=100"`
}

type GalleryItemRequest struct {
	ImageURL string `json:"imageURL" binding:"required,url"`
	Caption  string `json:"caption"`
	Position int    `json:"position"`
}

type AchievementRequest struct {
	ImageURL             string `json:"imageURL" binding:"required,url"`
	Caption              string `json:"caption"`
	TransformationPeriod int    `json:"transformationPeriod" binding:"omitempty,gt=0"`
	Position             int    `json:"position"`
}

type UploadURLRequest struct {
	Kind        string `json:"kind" binding:"required,oneof=gallery achievements"`
	ContentType string `json:"contentType" binding:"required"`
}

// --- Pricing Plans ---

func (h *CatalogHandler) CreatePlan(c *gin.Context) {
	var req PricingPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	plan, err := h.catalogService.CreatePlan(c.Request.Context(), &domain.PricingPlan{
		Name:         req.Name,
		Price:        req.Price,
		DurationDays: req.DurationDays,
		Features:     req.Features,
		MostPopular:  req.MostPopular,
	})
	if err != nil {
		if errors.Is(err, service.ErrPlanNameConflict) {
			abortWithError(c, http.StatusConflict, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create pricing plan")
		}
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (h *CatalogHandler) UpdatePlan(c *gin.Context) {
	planID, err := primitive.ObjectIDFromHex(c.Param("planId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid plan ID format")
		return
	}

	var req PricingPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	plan := &domain.PricingPlan{
		ID:           planID,
		Name:         req.Name,
		Price:        req.Price,
		DurationDays: req.DurationDays,
		Features:     req.Features,
		MostPopular:  req.MostPopular,
	}
	if err := h.catalogService.UpdatePlan(c.Request.Context(), plan); err != nil {
		h.respondCatalogError(c, err, "Failed to update pricing plan")
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *CatalogHandler) DeletePlan(c *gin.Context) {
	planID, err := primitive.ObjectIDFromHex(c.Param("planId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid plan ID format")
		return
	}

	if err := h.catalogService.DeletePlan(c.Request.Context(), planID); err != nil {
		h.respondCatalogError(c, err, "Failed to delete pricing plan")
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Promo Codes ---

func (h *CatalogHandler) CreatePromoCode(c *gin.Context) {
	var req CreatePromoCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	promo, err := h.catalogService.CreatePromoCode(c.Request.Context(), req.Code, req.DiscountPercentage)
	if err != nil {
		if errors.Is(err, service.ErrPromoCodeExists) {
			abortWithError(c, http.StatusConflict, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create promo code")
		}
		return
	}
	c.JSON(http.StatusCreated, promo)
}

func (h *CatalogHandler) ListPromoCodes(c *gin.Context) {
	promos, err := h.catalogService.ListPromoCodes(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve promo codes")
		return
	}
	c.JSON(http.StatusOK, promos)
}

func (h *CatalogHandler) DeletePromoCode(c *gin.Context) {
	promoID, err := primitive.ObjectIDFromHex(c.Param("promoId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid promo code ID format")
		return
	}

	if err := h.catalogService.DeletePromoCode(c.Request.Context(), promoID); err != nil {
		h.respondCatalogError(c, err, "Failed to delete promo code")
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Gallery ---

func (h *CatalogHandler) CreateGalleryItem(c *gin.Context) {
	var req GalleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	item, err := h.catalogService.CreateGalleryItem(c.Request.Context(), &domain.GalleryItem{
		ImageURL: req.ImageURL,
		Caption:  req.Caption,
		Position: req.Position,
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create gallery item")
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *CatalogHandler) UpdateGalleryItem(c *gin.Context) {
	itemID, err := primitive.ObjectIDFromHex(c.Param("itemId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid gallery item ID format")
		return
	}

	var req GalleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	item := &domain.GalleryItem{
		ID:       itemID,
		ImageURL: req.ImageURL,
		Caption:  req.Caption,
		Position: req.Position,
	}
	if err := h.catalogService.UpdateGalleryItem(c.Request.Context(), item); err != nil {
		h.respondCatalogError(c, err, "Failed to update gallery item")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CatalogHandler) DeleteGalleryItem(c *gin.Context) {
	itemID, err := primitive.ObjectIDFromHex(c.Param("itemId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid gallery item ID format")
		return
	}

	if err := h.catalogService.DeleteGalleryItem(c.Request.Context(), itemID); err != nil {
		h.respondCatalogError(c, err, "Failed to delete gallery item")
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Achievements ---

func (h *CatalogHandler) CreateAchievement(c *gin.Context) {
	var req AchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	item, err := h.catalogService.CreateAchievement(c.Request.Context(), &domain.Achievement{
		ImageURL:             req.ImageURL,
		Caption:              req.Caption,
		TransformationPeriod: req.TransformationPeriod,
		Position:             req.Position,
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create achievement")
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *CatalogHandler) UpdateAchievement(c *gin.Context) {
	itemID, err := primitive.ObjectIDFromHex(c.Param("itemId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid achievement ID format")
		return
	}

	var req AchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	item := &domain.Achievement{
		ID:                   itemID,
		ImageURL:             req.ImageURL,
		Caption:              req.Caption,
		TransformationPeriod: req.TransformationPeriod,
		Position:             req.Position,
	}
	if err := h.catalogService.UpdateAchievement(c.Request.Context(), item); err != nil {
		h.respondCatalogError(c, err, "Failed to update achievement")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CatalogHandler) DeleteAchievement(c *gin.Context) {
	itemID, err := primitive.ObjectIDFromHex(c.Param("itemId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid achievement ID format")
		return
	}

	if err := h.catalogService.DeleteAchievement(c.Request.Context(), itemID); err != nil {
		h.respondCatalogError(c, err, "Failed to delete achievement")
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Media ---

// GenerateUploadURL hands the admin UI a presigned PUT URL so image bytes go
// straight to object storage instead of through the API.
func (h *CatalogHandler) GenerateUploadURL(c *gin.Context) {
	var req UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	resp, err := h.mediaService.GenerateImageUploadURL(c.Request.Context(), req.Kind, req.ContentType)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedImageType) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to generate upload URL")
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) respondCatalogError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, service.ErrCatalogNotFound) {
		abortWithError(c, http.StatusNotFound, err.Error())
		return
	}
	abortWithError(c, http.StatusInternalServerError, fallback)
}
