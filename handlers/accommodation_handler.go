package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wayfarerhq/wayfarer-backend/models"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

// AccommodationHandler serves /v1/trips/:id/accommodations.
type AccommodationHandler struct {
	accommodations *models.AccommodationModel
	users          *models.UserModel
}

func NewAccommodationHandler(accommodations *models.AccommodationModel, users *models.UserModel) *AccommodationHandler {
	return &AccommodationHandler{accommodations: accommodations, users: users}
}

// CreateAccommodation godoc
// @Summary Add a stay to a trip
// @Description Rejects stays that overlap another accommodation of the trip.
// @Tags accommodations
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param accommodation body types.AccommodationCreate true "Stay to create"
// @Success 201 {object} types.Accommodation
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/accommodations [post]
// @Security BearerAuth
func (h *AccommodationHandler) CreateAccommodation(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	var input types.AccommodationCreate
	if !bindJSON(c, &input) {
		return
	}

	a, appErr := h.accommodations.CreateAccommodation(c.Request.Context(), c.Param("id"), user.ID, &input)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// GetAccommodation godoc
// @Summary Get a stay
// @Tags accommodations
// @Produce json
// @Param id path string true "Trip ID"
// @Param accommodationId path string true "Accommodation ID"
// @Success 200 {object} types.Accommodation
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/accommodations/{accommodationId} [get]
// @Security BearerAuth
func (h *AccommodationHandler) GetAccommodation(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	a, appErr := h.accommodations.GetAccommodation(c.Request.Context(), c.Param("id"), c.Param("accommodationId"), user.ID)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, a)
}

// ListAccommodations godoc
// @Summary List a trip's stays
// @Tags accommodations
// @Produce json
// @Param id path string true "Trip ID"
// @Param search query string false "Free-text search"
// @Param type query string false "Accommodation type filter"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} types.AccommodationListResponse
// @Router /trips/{id}/accommodations [get]
// @Security BearerAuth
func (h *AccommodationHandler) ListAccommodations(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	page, appErr := parsePageRequest(c, listDefaultLimit)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}

	filter := types.AccommodationFilter{Search: c.Query("search")}
	if raw := c.Query("type"); raw != "" {
		stayType := types.AccommodationType(raw)
		if !stayType.IsValid() {
			_ = c.Error(invalidFilterValue("type"))
			return
		}
		filter.Type = &stayType
	}

	resp, appErr := h.accommodations.ListAccommodations(c.Request.Context(), c.Param("id"), user.ID, filter, page)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateAccommodation godoc
// @Summary Update a stay
// @Tags accommodations
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param accommodationId path string true "Accommodation ID"
// @Param accommodation body types.AccommodationUpdate true "Fields to update"
// @Success 200 {object} types.Accommodation
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/accommodations/{accommodationId} [put]
// @Security BearerAuth
func (h *AccommodationHandler) UpdateAccommodation(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	var update types.AccommodationUpdate
	if !bindJSON(c, &update) {
		return
	}

	a, appErr := h.accommodations.UpdateAccommodation(c.Request.Context(), c.Param("id"), c.Param("accommodationId"), user.ID, &update)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, a)
}

// DeleteAccommodation godoc
// @Summary Delete a stay
// @Tags accommodations
// @Produce json
// @Param id path string true "Trip ID"
// @Param accommodationId path string true "Accommodation ID"
// @Success 200 {object} handlers.deleteResponse
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/accommodations/{accommodationId} [delete]
// @Security BearerAuth
func (h *AccommodationHandler) DeleteAccommodation(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	if appErr := h.accommodations.DeleteAccommodation(c.Request.Context(), c.Param("id"), c.Param("accommodationId"), user.ID); appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, deleteResponse{Message: "Accommodation deleted successfully"})
}
