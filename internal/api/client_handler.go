package api

import (
	"errors"
	"net/http"
	"time"

	"akramfit/coaching-app/internal/domain"
	"akramfit/coaching-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClientHandler serves the admin client roster.
type ClientHandler struct {
	clientService service.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// --- Request/Response Structs ---

type ExtendMembershipRequest struct {
	Days int `json:"days" binding:"required,gt=0"`
}

type UpdateGoalRequest struct {
	CurrentGoalTitle string    `json:"currentGoalTitle" binding:"required"`
	TargetMetric     string    `json:"targetMetric"`
	TargetValue      string    `json:"targetValue"`
	TargetDate       time.Time `json:"targetDate"`
}

type UpdateResourcesRequest struct {
	NutritionPlanURL   string `json:"nutritionPlanUrl" binding:"omitempty,url"`
	TrainingProgramURL string `json:"trainingProgramUrl" binding:"omitempty,url"`
}

type AddProgressLogRequest struct {
	Note     string `json:"note" binding:"required,min=5,max=500"`
	Category string `json:"category" binding:"required,oneof=progress setback health general"`
}

// --- Handler Methods ---

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clientService.ListClients(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	clientID, err := primitive.ObjectIDFromHex(c.Param("clientId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	client, err := h.clientService.GetClient(c.Request.Context(), clientID)
	if err != nil {
		h.respondClientError(c, err, "Failed to retrieve client")
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	clientID, err := primitive.ObjectIDFromHex(c.Param("clientId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	if err := h.clientService.DeleteClient(c.Request.Context(), clientID); err != nil {
		h.respondClientError(c, err, "Failed to delete client")
		return
	}
	c.Status(http.StatusNoContent)
}

// Pause freezes the subscription clock, banking the remaining whole days.
func (h *ClientHandler) Pause(c *gin.Context) {
	clientID, err := primitive.ObjectIDFromHex(c.Param("clientId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	client, err := h.clientService.PauseMembership(c.Request.Context(), clientID)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyPaused) {
			abortWithError(c, http.StatusConflict, err.Error())
			return
		}
		h.respondClientError(c, err, "Failed to pause membership")
		return
	}
	c.JSON(http.StatusOK, client)
}

// Resume restarts the clock: the banked days are re-applied from today.
func (h *ClientHandler) Resume(c *gin.Context) {
	clientID, err := primitive.ObjectIDFromHex(c.Param("clientId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	client, err := h.clientService.ResumeMembership(c.Request.Context(), clientID)
	if err != nil {
		if errors.Is(err, service.ErrNotPaused) {
			abortWithError(c, http.StatusConflict, err.Error())
			return
		}
		h.respondClientError(c, err, "Failed to resume membership")
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Extend(c *gin.Context) {
	clientID, err := primitive.ObjectIDFromHex(c.Param("clientId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	var req ExtendMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	client, err := h.clientService.ExtendMembership(c.Request.Context(), clientID, req.Days)
	if err != nil {
		h.respondClientError(c, err, "Failed to extend membership")
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) UpdateGoal(c *gin.Context) {
	clientID, err := primitive.ObjectIDFromHex(c.Param("clientId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	var req UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	client, err := h.clientService.UpdateGoal(c.Request.Context(), clientID, service.ClientGoal{
		CurrentGoalTitle: req.CurrentGoalTitle,
		TargetMetric:     req.TargetMetric,
		TargetValue:      req.TargetValue,
		TargetDate:       req.TargetDate,
	})
	if err != nil {
		h.respondClientError(c, err, "Failed to update goal")
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) UpdateResources(c *gin.Context) {
	clientID, err := primitive.ObjectIDFromHex(c.Param("clientId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	var req UpdateResourcesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	client, err := h.clientService.UpdateResources(c.Request.Context(), clientID, req.NutritionPlanURL, req.TrainingProgramURL)
	if err != nil {
		h.respondClientError(c, err, "Failed to update resources")
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) AddProgressLog(c *gin.Context) {
	clientID, err := primitive.ObjectIDFromHex(c.Param("clientId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	var req AddProgressLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	entry, err := h.clientService.AddProgressLog(c.Request.Context(), clientID, req.Note, domain.LogCategory(req.Category))
	if err != nil {
		h.respondClientError(c, err, "Failed to add progress log")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *ClientHandler) ListProgressLogs(c *gin.Context) {
	clientID, err := primitive.ObjectIDFromHex(c.Param("clientId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	logs, err := h.clientService.GetProgressLogs(c.Request.Context(), clientID)
	if err != nil {
		h.respondClientError(c, err, "Failed to retrieve progress logs")
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (h *ClientHandler) respondClientError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrClientNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrValidationFailed):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, fallback)
	}
}
