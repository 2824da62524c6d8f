package api

import (
	"errors"
	"net/http"

	"akramfit/coaching-app/internal/domain"
	"akramfit/coaching-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FinanceHandler serves the admin ledger.
type FinanceHandler struct {
	financeService service.FinanceService
}

// NewFinanceHandler creates a new FinanceHandler.
func NewFinanceHandler(financeService service.FinanceService) *FinanceHandler {
	return &FinanceHandler{financeService: financeService}
}

type AddExpenseRequest struct {
	Description string `json:"description" binding:"required"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
}

// ListLedger returns income and expense rows merged, newest first.
func (h *FinanceHandler) ListLedger(c *gin.Context) {
	entries, err := h.financeService.ListLedger(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve ledger")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// AddExpense appends a manual expense row. Income rows can only be created by
// approving an order.
func (h *FinanceHandler) AddExpense(c *gin.Context) {
	var req AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	txn, err := h.financeService.AddExpense(c.Request.Context(), req.Description, req.Amount)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to add expense")
		}
		return
	}
	c.JSON(http.StatusCreated, txn)
}

// DeleteEntry removes a ledger row. The type path segment selects which side
// of the books the ID belongs to.
func (h *FinanceHandler) DeleteEntry(c *gin.Context) {
	entryType := domain.TransactionType(c.Param("entryType"))
	if entryType != domain.TransactionIncome && entryType != domain.TransactionExpense {
		abortWithError(c, http.StatusBadRequest, "Entry type must be 'income' or 'expense'")
		return
	}

	entryID, err := primitive.ObjectIDFromHex(c.Param("entryId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid entry ID format")
		return
	}

	if err := h.financeService.DeleteEntry(c.Request.Context(), entryType, entryID); err != nil {
		if errors.Is(err, service.ErrLedgerEntryNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete ledger entry")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// Summary returns the ledger totals.
func (h *FinanceHandler) Summary(c *gin.Context) {
	summary, err := h.financeService.Summary(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}
