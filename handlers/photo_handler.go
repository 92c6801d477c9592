package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wayfarerhq/wayfarer-backend/models"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

// PhotoHandler serves /v1/trips/:id/photos.
type PhotoHandler struct {
	photos *models.PhotoModel
	users  *models.UserModel
}

func NewPhotoHandler(photos *models.PhotoModel, users *models.UserModel) *PhotoHandler {
	return &PhotoHandler{photos: photos, users: users}
}

// CreatePhoto godoc
// @Summary Add a photo reference to a trip
// @Tags photos
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param photo body types.PhotoCreate true "Photo to add"
// @Success 201 {object} types.Photo
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/photos [post]
// @Security BearerAuth
func (h *PhotoHandler) CreatePhoto(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	var input types.PhotoCreate
	if !bindJSON(c, &input) {
		return
	}

	p, appErr := h.photos.CreatePhoto(c.Request.Context(), c.Param("id"), user.ID, &input)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// GetPhoto godoc
// @Summary Get a photo
// @Tags photos
// @Produce json
// @Param id path string true "Trip ID"
// @Param photoId path string true "Photo ID"
// @Success 200 {object} types.Photo
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/photos/{photoId} [get]
// @Security BearerAuth
func (h *PhotoHandler) GetPhoto(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	p, appErr := h.photos.GetPhoto(c.Request.Context(), c.Param("id"), c.Param("photoId"), user.ID)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListPhotos godoc
// @Summary List a trip's photos with association statistics
// @Tags photos
// @Produce json
// @Param id path string true "Trip ID"
// @Param search query string false "Caption search"
// @Param itineraryId query string false "Itinerary filter"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} types.PhotoListResponse
// @Router /trips/{id}/photos [get]
// @Security BearerAuth
func (h *PhotoHandler) ListPhotos(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	page, appErr := parsePageRequest(c, listDefaultLimit)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}

	filter := types.PhotoFilter{Search: c.Query("search")}
	if raw := c.Query("itineraryId"); raw != "" {
		filter.ItineraryID = &raw
	}

	resp, appErr := h.photos.ListPhotos(c.Request.Context(), c.Param("id"), user.ID, filter, page)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdatePhoto godoc
// @Summary Update a photo
// @Tags photos
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param photoId path string true "Photo ID"
// @Param photo body types.PhotoUpdate true "Fields to update"
// @Success 200 {object} types.Photo
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/photos/{photoId} [put]
// @Security BearerAuth
func (h *PhotoHandler) UpdatePhoto(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	var update types.PhotoUpdate
	if !bindJSON(c, &update) {
		return
	}

	p, appErr := h.photos.UpdatePhoto(c.Request.Context(), c.Param("id"), c.Param("photoId"), user.ID, &update)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeletePhoto godoc
// @Summary Delete a photo
// @Tags photos
// @Produce json
// @Param id path string true "Trip ID"
// @Param photoId path string true "Photo ID"
// @Success 200 {object} handlers.deleteResponse
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/photos/{photoId} [delete]
// @Security BearerAuth
func (h *PhotoHandler) DeletePhoto(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	if appErr := h.photos.DeletePhoto(c.Request.Context(), c.Param("id"), c.Param("photoId"), user.ID); appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, deleteResponse{Message: "Photo deleted successfully"})
}
