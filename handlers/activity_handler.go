package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wayfarerhq/wayfarer-backend/models"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

// ActivityHandler serves /v1/trips/:id/activities.
type ActivityHandler struct {
	activities *models.ActivityModel
	users      *models.UserModel
}

func NewActivityHandler(activities *models.ActivityModel, users *models.UserModel) *ActivityHandler {
	return &ActivityHandler{activities: activities, users: users}
}

// CreateActivity godoc
// @Summary Add an activity to a trip's catalog
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param activity body types.ActivityCreate true "Activity to create"
// @Success 201 {object} types.Activity
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/activities [post]
// @Security BearerAuth
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	var input types.ActivityCreate
	if !bindJSON(c, &input) {
		return
	}

	a, appErr := h.activities.CreateActivity(c.Request.Context(), c.Param("id"), user.ID, &input)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// GetActivity godoc
// @Summary Get a catalog activity
// @Tags activities
// @Produce json
// @Param id path string true "Trip ID"
// @Param activityId path string true "Activity ID"
// @Success 200 {object} types.Activity
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/activities/{activityId} [get]
// @Security BearerAuth
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	a, appErr := h.activities.GetActivity(c.Request.Context(), c.Param("id"), c.Param("activityId"), user.ID)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, a)
}

// ListActivities godoc
// @Summary List a trip's activity catalog
// @Tags activities
// @Produce json
// @Param id path string true "Trip ID"
// @Param search query string false "Free-text search"
// @Param category query string false "Category filter"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} types.ActivityListResponse
// @Router /trips/{id}/activities [get]
// @Security BearerAuth
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	page, appErr := parsePageRequest(c, listDefaultLimit)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}

	filter := types.ActivityFilter{Search: c.Query("search")}
	if raw := c.Query("category"); raw != "" {
		category := types.ActivityCategory(raw)
		if !category.IsValid() {
			_ = c.Error(invalidFilterValue("category"))
			return
		}
		filter.Category = &category
	}

	resp, appErr := h.activities.ListActivities(c.Request.Context(), c.Param("id"), user.ID, filter, page)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateActivity godoc
// @Summary Update a catalog activity
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param activityId path string true "Activity ID"
// @Param activity body types.ActivityUpdate true "Fields to update"
// @Success 200 {object} types.Activity
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/activities/{activityId} [put]
// @Security BearerAuth
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	var update types.ActivityUpdate
	if !bindJSON(c, &update) {
		return
	}

	a, appErr := h.activities.UpdateActivity(c.Request.Context(), c.Param("id"), c.Param("activityId"), user.ID, &update)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, a)
}

// DeleteActivity godoc
// @Summary Delete a catalog activity
// @Description Fails while the activity is still scheduled in any itinerary.
// @Tags activities
// @Produce json
// @Param id path string true "Trip ID"
// @Param activityId path string true "Activity ID"
// @Success 200 {object} handlers.deleteResponse
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/activities/{activityId} [delete]
// @Security BearerAuth
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	if appErr := h.activities.DeleteActivity(c.Request.Context(), c.Param("id"), c.Param("activityId"), user.ID); appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, deleteResponse{Message: "Activity deleted successfully"})
}
