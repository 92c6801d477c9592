package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wayfarerhq/wayfarer-backend/models"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

const listDefaultLimit = 20

// ItineraryHandler serves /v1/trips/:id/itineraries and the nested activity
// entry routes.
type ItineraryHandler struct {
	itineraries *models.ItineraryModel
	users       *models.UserModel
}

func NewItineraryHandler(itineraries *models.ItineraryModel, users *models.UserModel) *ItineraryHandler {
	return &ItineraryHandler{itineraries: itineraries, users: users}
}

// CreateItinerary godoc
// @Summary Create a day plan for a trip
// @Tags itineraries
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param itinerary body types.ItineraryCreate true "Day plan to create"
// @Success 201 {object} types.Itinerary
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/itineraries [post]
// @Security BearerAuth
func (h *ItineraryHandler) CreateItinerary(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	var input types.ItineraryCreate
	if !bindJSON(c, &input) {
		return
	}

	it, appErr := h.itineraries.CreateItinerary(c.Request.Context(), c.Param("id"), user.ID, &input)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusCreated, it)
}

// GetItinerary godoc
// @Summary Get a day plan with its scheduled activities
// @Tags itineraries
// @Produce json
// @Param id path string true "Trip ID"
// @Param itineraryId path string true "Itinerary ID"
// @Success 200 {object} types.Itinerary
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/itineraries/{itineraryId} [get]
// @Security BearerAuth
func (h *ItineraryHandler) GetItinerary(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	it, appErr := h.itineraries.GetItinerary(c.Request.Context(), c.Param("id"), c.Param("itineraryId"), user.ID)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, it)
}

// ListItineraries godoc
// @Summary List a trip's day plans with statistics
// @Tags itineraries
// @Produce json
// @Param id path string true "Trip ID"
// @Param search query string false "Free-text search"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} types.ItineraryListResponse
// @Router /trips/{id}/itineraries [get]
// @Security BearerAuth
func (h *ItineraryHandler) ListItineraries(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	page, appErr := parsePageRequest(c, listDefaultLimit)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}

	filter := types.ItineraryFilter{Search: c.Query("search")}
	resp, appErr := h.itineraries.ListItineraries(c.Request.Context(), c.Param("id"), user.ID, filter, page)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateItinerary godoc
// @Summary Update a day plan
// @Tags itineraries
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param itineraryId path string true "Itinerary ID"
// @Param itinerary body types.ItineraryUpdate true "Fields to update"
// @Success 200 {object} types.Itinerary
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/itineraries/{itineraryId} [put]
// @Security BearerAuth
func (h *ItineraryHandler) UpdateItinerary(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	var update types.ItineraryUpdate
	if !bindJSON(c, &update) {
		return
	}

	it, appErr := h.itineraries.UpdateItinerary(c.Request.Context(), c.Param("id"), c.Param("itineraryId"), user.ID, &update)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, it)
}

// DeleteItinerary godoc
// @Summary Delete a day plan and its entries
// @Tags itineraries
// @Produce json
// @Param id path string true "Trip ID"
// @Param itineraryId path string true "Itinerary ID"
// @Success 200 {object} handlers.deleteResponse
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/itineraries/{itineraryId} [delete]
// @Security BearerAuth
func (h *ItineraryHandler) DeleteItinerary(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	if appErr := h.itineraries.DeleteItinerary(c.Request.Context(), c.Param("id"), c.Param("itineraryId"), user.ID); appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, deleteResponse{Message: "Itinerary deleted successfully"})
}

// AddActivity godoc
// @Summary Schedule an activity into a day plan
// @Tags itineraries
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param itineraryId path string true "Itinerary ID"
// @Param entry body types.ItineraryActivityCreate true "Entry to schedule"
// @Success 201 {object} types.ItineraryActivity
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/itineraries/{itineraryId}/activities [post]
// @Security BearerAuth
func (h *ItineraryHandler) AddActivity(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	var input types.ItineraryActivityCreate
	if !bindJSON(c, &input) {
		return
	}

	entry, appErr := h.itineraries.AddActivity(c.Request.Context(), c.Param("id"), c.Param("itineraryId"), user.ID, &input)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// UpdateActivity godoc
// @Summary Update a scheduled activity entry
// @Tags itineraries
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param itineraryId path string true "Itinerary ID"
// @Param itineraryActivityId path string true "Entry ID"
// @Param entry body types.ItineraryActivityUpdate true "Fields to update"
// @Success 200 {object} types.ItineraryActivity
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/itineraries/{itineraryId}/activities/{itineraryActivityId} [put]
// @Security BearerAuth
func (h *ItineraryHandler) UpdateActivity(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	var update types.ItineraryActivityUpdate
	if !bindJSON(c, &update) {
		return
	}

	entry, appErr := h.itineraries.UpdateActivity(c.Request.Context(),
		c.Param("id"), c.Param("itineraryId"), c.Param("itineraryActivityId"), user.ID, &update)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// RemoveActivity godoc
// @Summary Remove a scheduled activity entry
// @Tags itineraries
// @Produce json
// @Param id path string true "Trip ID"
// @Param itineraryId path string true "Itinerary ID"
// @Param itineraryActivityId path string true "Entry ID"
// @Success 200 {object} handlers.deleteResponse
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/itineraries/{itineraryId}/activities/{itineraryActivityId} [delete]
// @Security BearerAuth
func (h *ItineraryHandler) RemoveActivity(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	if appErr := h.itineraries.RemoveActivity(c.Request.Context(),
		c.Param("id"), c.Param("itineraryId"), c.Param("itineraryActivityId"), user.ID); appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, deleteResponse{Message: "Itinerary activity removed successfully"})
}
