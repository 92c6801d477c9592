package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wayfarerhq/wayfarer-backend/models"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

// BudgetHandler serves /v1/trips/:id/budgets.
type BudgetHandler struct {
	budgets *models.BudgetModel
	users   *models.UserModel
}

func NewBudgetHandler(budgets *models.BudgetModel, users *models.UserModel) *BudgetHandler {
	return &BudgetHandler{budgets: budgets, users: users}
}

// CreateBudget godoc
// @Summary Create a budget for a trip category
// @Tags budgets
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param budget body types.BudgetCreate true "Budget to create"
// @Success 201 {object} types.Budget
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/budgets [post]
// @Security BearerAuth
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	var input types.BudgetCreate
	if !bindJSON(c, &input) {
		return
	}

	b, appErr := h.budgets.CreateBudget(c.Request.Context(), c.Param("id"), user.ID, &input)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// GetBudget godoc
// @Summary Get a budget with its derived actual amount
// @Tags budgets
// @Produce json
// @Param id path string true "Trip ID"
// @Param budgetId path string true "Budget ID"
// @Success 200 {object} types.Budget
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/budgets/{budgetId} [get]
// @Security BearerAuth
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	b, appErr := h.budgets.GetBudget(c.Request.Context(), c.Param("id"), c.Param("budgetId"), user.ID)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListBudgets godoc
// @Summary List a trip's budgets with the planned-vs-actual summary
// @Tags budgets
// @Produce json
// @Param id path string true "Trip ID"
// @Param category query string false "Budget category filter"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} types.BudgetListResponse
// @Router /trips/{id}/budgets [get]
// @Security BearerAuth
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	page, appErr := parsePageRequest(c, listDefaultLimit)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}

	filter := types.BudgetFilter{}
	if raw := c.Query("category"); raw != "" {
		category := types.BudgetCategory(raw)
		if !category.IsValid() {
			_ = c.Error(invalidFilterValue("category"))
			return
		}
		filter.Category = &category
	}

	resp, appErr := h.budgets.ListBudgets(c.Request.Context(), c.Param("id"), user.ID, filter, page)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateBudget godoc
// @Summary Update a budget
// @Tags budgets
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param budgetId path string true "Budget ID"
// @Param budget body types.BudgetUpdate true "Fields to update"
// @Success 200 {object} types.Budget
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/budgets/{budgetId} [put]
// @Security BearerAuth
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	var update types.BudgetUpdate
	if !bindJSON(c, &update) {
		return
	}

	b, appErr := h.budgets.UpdateBudget(c.Request.Context(), c.Param("id"), c.Param("budgetId"), user.ID, &update)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, b)
}

// DeleteBudget godoc
// @Summary Delete a budget, unlinking its expenses
// @Tags budgets
// @Produce json
// @Param id path string true "Trip ID"
// @Param budgetId path string true "Budget ID"
// @Success 200 {object} handlers.deleteResponse
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/budgets/{budgetId} [delete]
// @Security BearerAuth
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	if appErr := h.budgets.DeleteBudget(c.Request.Context(), c.Param("id"), c.Param("budgetId"), user.ID); appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, deleteResponse{Message: "Budget deleted successfully"})
}
