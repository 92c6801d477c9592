package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wayfarerhq/wayfarer-backend/models"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

const tripListDefaultLimit = 10

// TripHandler serves /v1/trips.
type TripHandler struct {
	trips *models.TripModel
	users *models.UserModel
}

func NewTripHandler(trips *models.TripModel, users *models.UserModel) *TripHandler {
	return &TripHandler{trips: trips, users: users}
}

// CreateTrip godoc
// @Summary Create a trip
// @Tags trips
// @Accept json
// @Produce json
// @Param trip body types.TripCreate true "Trip to create"
// @Success 201 {object} types.Trip
// @Failure 400 {object} errors.AppError
// @Router /trips [post]
// @Security BearerAuth
func (h *TripHandler) CreateTrip(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	var input types.TripCreate
	if !bindJSON(c, &input) {
		return
	}

	trip, appErr := h.trips.CreateTrip(c.Request.Context(), user.ID, &input)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

// GetTrip godoc
// @Summary Get a trip by ID
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} types.Trip
// @Failure 404 {object} errors.AppError
// @Router /trips/{id} [get]
// @Security BearerAuth
func (h *TripHandler) GetTrip(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	trip, appErr := h.trips.GetTrip(c.Request.Context(), c.Param("id"), user.ID)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// ListTrips godoc
// @Summary List own trips
// @Tags trips
// @Produce json
// @Param search query string false "Free-text search"
// @Param status query string false "Trip status filter"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} types.TripListResponse
// @Router /trips [get]
// @Security BearerAuth
func (h *TripHandler) ListTrips(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	page, appErr := parsePageRequest(c, tripListDefaultLimit)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}

	filter := types.TripFilter{Search: c.Query("search")}
	if raw := c.Query("status"); raw != "" {
		status := types.TripStatus(raw)
		if !status.IsValid() {
			_ = c.Error(invalidFilterValue("status"))
			return
		}
		filter.Status = &status
	}

	resp, appErr := h.trips.ListTrips(c.Request.Context(), user.ID, filter, page)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateTrip godoc
// @Summary Update a trip
// @Tags trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param trip body types.TripUpdate true "Fields to update"
// @Success 200 {object} types.Trip
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /trips/{id} [put]
// @Security BearerAuth
func (h *TripHandler) UpdateTrip(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	var update types.TripUpdate
	if !bindJSON(c, &update) {
		return
	}

	trip, appErr := h.trips.UpdateTrip(c.Request.Context(), c.Param("id"), user.ID, &update)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// DeleteTrip godoc
// @Summary Delete a trip and everything in it
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} handlers.deleteResponse
// @Failure 404 {object} errors.AppError
// @Router /trips/{id} [delete]
// @Security BearerAuth
func (h *TripHandler) DeleteTrip(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	if appErr := h.trips.DeleteTrip(c.Request.Context(), c.Param("id"), user.ID); appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, deleteResponse{Message: "Trip deleted successfully"})
}
