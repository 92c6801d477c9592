package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wayfarerhq/wayfarer-backend/models"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

// TransportationHandler serves /v1/trips/:id/transportations.
type TransportationHandler struct {
	transportations *models.TransportationModel
	users           *models.UserModel
}

func NewTransportationHandler(transportations *models.TransportationModel, users *models.UserModel) *TransportationHandler {
	return &TransportationHandler{transportations: transportations, users: users}
}

// CreateTransportation godoc
// @Summary Add a transport leg to a trip
// @Tags transportations
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param transportation body types.TransportationCreate true "Leg to create"
// @Success 201 {object} types.Transportation
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/transportations [post]
// @Security BearerAuth
func (h *TransportationHandler) CreateTransportation(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	var input types.TransportationCreate
	if !bindJSON(c, &input) {
		return
	}

	t, appErr := h.transportations.CreateTransportation(c.Request.Context(), c.Param("id"), user.ID, &input)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// GetTransportation godoc
// @Summary Get a transport leg
// @Tags transportations
// @Produce json
// @Param id path string true "Trip ID"
// @Param transportationId path string true "Transportation ID"
// @Success 200 {object} types.Transportation
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/transportations/{transportationId} [get]
// @Security BearerAuth
func (h *TransportationHandler) GetTransportation(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	t, appErr := h.transportations.GetTransportation(c.Request.Context(), c.Param("id"), c.Param("transportationId"), user.ID)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, t)
}

// ListTransportations godoc
// @Summary List a trip's transport legs
// @Tags transportations
// @Produce json
// @Param id path string true "Trip ID"
// @Param search query string false "Free-text search"
// @Param type query string false "Transportation type filter"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} types.TransportationListResponse
// @Router /trips/{id}/transportations [get]
// @Security BearerAuth
func (h *TransportationHandler) ListTransportations(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	page, appErr := parsePageRequest(c, listDefaultLimit)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}

	filter := types.TransportationFilter{Search: c.Query("search")}
	if raw := c.Query("type"); raw != "" {
		transportType := types.TransportationType(raw)
		if !transportType.IsValid() {
			_ = c.Error(invalidFilterValue("type"))
			return
		}
		filter.Type = &transportType
	}

	resp, appErr := h.transportations.ListTransportations(c.Request.Context(), c.Param("id"), user.ID, filter, page)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateTransportation godoc
// @Summary Update a transport leg
// @Tags transportations
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param transportationId path string true "Transportation ID"
// @Param transportation body types.TransportationUpdate true "Fields to update"
// @Success 200 {object} types.Transportation
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/transportations/{transportationId} [put]
// @Security BearerAuth
func (h *TransportationHandler) UpdateTransportation(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	var update types.TransportationUpdate
	if !bindJSON(c, &update) {
		return
	}

	t, appErr := h.transportations.UpdateTransportation(c.Request.Context(), c.Param("id"), c.Param("transportationId"), user.ID, &update)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, t)
}

// DeleteTransportation godoc
// @Summary Delete a transport leg
// @Tags transportations
// @Produce json
// @Param id path string true "Trip ID"
// @Param transportationId path string true "Transportation ID"
// @Success 200 {object} handlers.deleteResponse
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/transportations/{transportationId} [delete]
// @Security BearerAuth
func (h *TransportationHandler) DeleteTransportation(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	if appErr := h.transportations.DeleteTransportation(c.Request.Context(), c.Param("id"), c.Param("transportationId"), user.ID); appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, deleteResponse{Message: "Transportation deleted successfully"})
}
