package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wayfarerhq/wayfarer-backend/models"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

// ExpenseHandler serves /v1/trips/:id/expenses.
type ExpenseHandler struct {
	expenses *models.ExpenseModel
	users    *models.UserModel
}

func NewExpenseHandler(expenses *models.ExpenseModel, users *models.UserModel) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses, users: users}
}

// CreateExpense godoc
// @Summary Record an expense for a trip
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param expense body types.ExpenseCreate true "Expense to record"
// @Success 201 {object} types.Expense
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/expenses [post]
// @Security BearerAuth
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	var input types.ExpenseCreate
	if !bindJSON(c, &input) {
		return
	}

	e, appErr := h.expenses.CreateExpense(c.Request.Context(), c.Param("id"), user.ID, &input)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusCreated, e)
}

// GetExpense godoc
// @Summary Get an expense
// @Tags expenses
// @Produce json
// @Param id path string true "Trip ID"
// @Param expenseId path string true "Expense ID"
// @Success 200 {object} types.Expense
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/expenses/{expenseId} [get]
// @Security BearerAuth
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	e, appErr := h.expenses.GetExpense(c.Request.Context(), c.Param("id"), c.Param("expenseId"), user.ID)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, e)
}

// ListExpenses godoc
// @Summary List a trip's expenses with the category summary
// @Tags expenses
// @Produce json
// @Param id path string true "Trip ID"
// @Param search query string false "Free-text search"
// @Param category query string false "Free-text category filter"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} types.ExpenseListResponse
// @Router /trips/{id}/expenses [get]
// @Security BearerAuth
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	page, appErr := parsePageRequest(c, listDefaultLimit)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}

	filter := types.ExpenseFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	}

	resp, appErr := h.expenses.ListExpenses(c.Request.Context(), c.Param("id"), user.ID, filter, page)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateExpense godoc
// @Summary Update an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param expenseId path string true "Expense ID"
// @Param expense body types.ExpenseUpdate true "Fields to update"
// @Success 200 {object} types.Expense
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/expenses/{expenseId} [put]
// @Security BearerAuth
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	var update types.ExpenseUpdate
	if !bindJSON(c, &update) {
		return
	}

	e, appErr := h.expenses.UpdateExpense(c.Request.Context(), c.Param("id"), c.Param("expenseId"), user.ID, &update)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, e)
}

// DeleteExpense godoc
// @Summary Delete an expense
// @Tags expenses
// @Produce json
// @Param id path string true "Trip ID"
// @Param expenseId path string true "Expense ID"
// @Success 200 {object} handlers.deleteResponse
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/expenses/{expenseId} [delete]
// @Security BearerAuth
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	if appErr := h.expenses.DeleteExpense(c.Request.Context(), c.Param("id"), c.Param("expenseId"), user.ID); appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, deleteResponse{Message: "Expense deleted successfully"})
}
