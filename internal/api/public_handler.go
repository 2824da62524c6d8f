package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"akramfit/coaching-app/internal/domain"
	"akramfit/coaching-app/internal/service"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the unauthenticated customer-facing endpoints: the
// subscription form, promo validation, the membership lookup page and the
// landing-page catalog reads.
type PublicHandler struct {
	orderService      service.OrderService
	membershipService service.MembershipService
	catalogService    service.CatalogService
}

// NewPublicHandler creates a new PublicHandler.
func NewPublicHandler(orderService service.OrderService, membershipService service.MembershipService, catalogService service.CatalogService) *PublicHandler {
	return &PublicHandler{
		orderService:      orderService,
		membershipService: membershipService,
		catalogService:    catalogService,
	}
}

// --- Request/Response Structs ---

type SubmitOrderRequest struct {
	FullName        string  `json:"fullName" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	PhoneNumber     string  `json:"phoneNumber" binding:"required"`
	Age             int     `json:"age" binding:"required,gte=12,lte=100"`
	Height          float64 `json:"height" binding:"required,gt=0"`
	Weight          float64 `json:"weight" binding:"required,gt=0"`
	ExperienceLevel string  `json:"experienceLevel" binding:"required,oneof=beginner intermediate advanced"`
	PrimaryGoal     string  `json:"primaryGoal" binding:"required,oneof=fat_loss muscle_gain strength other"`
	OtherGoal       string  `json:"otherGoal"`
	InjuriesOrNotes string  `json:"injuriesOrNotes"`

	PreferredPlan        string `json:"preferredPlan" binding:"required"`
	SubscriptionDuration int    `json:"subscriptionDuration" binding:"required,oneof=1 3 6 12"`
	PromoCode            string `json:"promoCode"`
}

type SubmitOrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ValidatePromoRequest struct {
	Code string `json:"code" binding:"required"`
}

type ValidatePromoResponse struct {
	Success   bool   `json:"success"`
	PromoCode string `json:"promoCode,omitempty"`
	Discount  int    `json:"discount,omitempty"`
	Message   string `json:"message"`
}

type MembershipScheduleEntry struct {
	Day  string `json:"day"`
	Time string `json:"time"`
}

type MembershipLookupResponse struct {
	Found            bool                      `json:"found"`
	FullName         string                    `json:"fullName,omitempty"`
	Plan             string                    `json:"plan,omitempty"`
	EndDate          *time.Time                `json:"endDate,omitempty"`
	Status           string                    `json:"status,omitempty"`
	StatusLabel      string                    `json:"statusLabel,omitempty"`
	DaysLeft         int                       `json:"daysLeft,omitempty"`
	CurrentGoalTitle string                    `json:"currentGoalTitle,omitempty"`
	TargetMetric     string                    `json:"targetMetric,omitempty"`
	TargetValue      string                    `json:"targetValue,omitempty"`
	TargetDate       *time.Time                `json:"targetDate,omitempty"`
	Schedule         []MembershipScheduleEntry `json:"schedule"`
}

// --- Handler Methods ---

// SubmitOrder accepts a subscription application from the public form. The
// quoted price is recomputed server-side; the promo code is only checked, not
// consumed, until the admin approves the order.
func (h *PublicHandler) SubmitOrder(c *gin.Context) {
	var req SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	order := &domain.Order{
		FullName:             req.FullName,
		Email:                req.Email,
		PhoneNumber:          req.PhoneNumber,
		Age:                  req.Age,
		HeightCm:             req.Height,
		WeightKg:             req.Weight,
		ExperienceLevel:      domain.ExperienceLevel(req.ExperienceLevel),
		PrimaryGoal:          domain.PrimaryGoal(req.PrimaryGoal),
		OtherGoal:            req.OtherGoal,
		InjuriesOrNotes:      req.InjuriesOrNotes,
		PreferredPlan:        req.PreferredPlan,
		SubscriptionDuration: req.SubscriptionDuration,
		PromoCode:            req.PromoCode,
	}

	if _, err := h.orderService.SubmitOrder(c.Request.Context(), order); err != nil {
		switch {
		case errors.Is(err, service.ErrPlanNotFound),
			errors.Is(err, service.ErrPromoNotFound),
			errors.Is(err, service.ErrPromoAlreadyUsed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			log.Printf("ERROR: submitting order for %s: %v", req.Email, err)
			abortWithError(c, http.StatusInternalServerError, "Failed to submit application")
		}
		return
	}

	c.JSON(http.StatusCreated, SubmitOrderResponse{
		Success: true,
		Message: "Application Sent! Akram will review it shortly.",
	})
}

// ValidatePromoCode checks a promo code before the form is submitted so the
// quoted price can reflect the discount.
func (h *PublicHandler) ValidatePromoCode(c *gin.Context) {
	var req ValidatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	promo, err := h.orderService.ValidatePromoCode(c.Request.Context(), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPromoNotFound), errors.Is(err, service.ErrPromoAlreadyUsed):
			c.JSON(http.StatusOK, ValidatePromoResponse{Success: false, Message: err.Error()})
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to validate promo code")
		}
		return
	}

	c.JSON(http.StatusOK, ValidatePromoResponse{
		Success:   true,
		PromoCode: promo.Code,
		Discount:  promo.DiscountPercentage,
		Message:   fmt.Sprintf("Applied %d%% discount.", promo.DiscountPercentage),
	})
}

// LookupMembership resolves a membership code to the client's public status
// page. Unknown codes return 200 with found=false rather than 404, so the
// endpoint does not reveal which codes exist through the status code.
func (h *PublicHandler) LookupMembership(c *gin.Context) {
	code := c.Param("code")

	info, err := h.membershipService.Lookup(c.Request.Context(), code)
	if err != nil {
		log.Printf("ERROR: membership lookup: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to look up membership")
		return
	}

	c.JSON(http.StatusOK, MapMembershipInfoToResponse(info))
}

// ListPricingPlans returns the public pricing catalog.
func (h *PublicHandler) ListPricingPlans(c *gin.Context) {
	plans, err := h.catalogService.ListPlans(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve pricing plans")
		return
	}
	c.JSON(http.StatusOK, plans)
}

// ListGallery returns landing-page gallery items ordered by position.
func (h *PublicHandler) ListGallery(c *gin.Context) {
	items, err := h.catalogService.ListGallery(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve gallery")
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListAchievements returns landing-page transformations ordered by position.
func (h *PublicHandler) ListAchievements(c *gin.Context) {
	items, err := h.catalogService.ListAchievements(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve achievements")
		return
	}
	c.JSON(http.StatusOK, items)
}

// MapMembershipInfoToResponse converts the service projection to the public
// DTO. Status carries the stored client state; StatusLabel folds in expiry.
func MapMembershipInfoToResponse(info *service.MembershipInfo) MembershipLookupResponse {
	if info == nil || !info.Found {
		return MembershipLookupResponse{Found: false, Schedule: []MembershipScheduleEntry{}}
	}

	schedule := make([]MembershipScheduleEntry, 0, len(info.Schedule))
	for _, entry := range info.Schedule {
		schedule = append(schedule, MembershipScheduleEntry{Day: entry.Day, Time: entry.Time})
	}

	endDate := info.EndDate
	return MembershipLookupResponse{
		Found:            true,
		FullName:         info.FullName,
		Plan:             info.Plan,
		EndDate:          &endDate,
		Status:           string(info.Status),
		StatusLabel:      string(info.StatusLabel),
		DaysLeft:         info.DaysLeft,
		CurrentGoalTitle: info.CurrentGoalTitle,
		TargetMetric:     info.TargetMetric,
		TargetValue:      info.TargetValue,
		TargetDate:       info.TargetDate,
		Schedule:         schedule,
	}
}
