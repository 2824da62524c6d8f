package api

import (
	"errors"
	"log"
	"net/http"

	"akramfit/coaching-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderHandler serves the admin order queue.
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// ListPending returns all pending applications, newest first.
func (h *OrderHandler) ListPending(c *gin.Context) {
	orders, err := h.orderService.ListPendingOrders(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Approve converts an order into a client. Client creation, the income ledger
// row, promo consumption and order deletion happen in one transaction; a
// promo raced to "used" by another approval fails the whole operation and
// leaves the order pending.
func (h *OrderHandler) Approve(c *gin.Context) {
	orderID, err := primitive.ObjectIDFromHex(c.Param("orderId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	client, err := h.orderService.ApproveOrder(c.Request.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrPromoNotFound), errors.Is(err, service.ErrPromoAlreadyUsed):
			abortWithError(c, http.StatusConflict, err.Error())
		default:
			log.Printf("ERROR: approving order %s: %v", orderID.Hex(), err)
			abortWithError(c, http.StatusInternalServerError, "Failed to approve order")
		}
		return
	}

	c.JSON(http.StatusCreated, client)
}

// Reject deletes a pending application without creating a client.
func (h *OrderHandler) Reject(c *gin.Context) {
	orderID, err := primitive.ObjectIDFromHex(c.Param("orderId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	if err := h.orderService.RejectOrder(c.Request.Context(), orderID); err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to reject order")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
