package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wayfarerhq/wayfarer-backend/models"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

// NoteHandler serves /v1/trips/:id/notes.
type NoteHandler struct {
	notes *models.NoteModel
	users *models.UserModel
}

func NewNoteHandler(notes *models.NoteModel, users *models.UserModel) *NoteHandler {
	return &NoteHandler{notes: notes, users: users}
}

// CreateNote godoc
// @Summary Add a note to a trip
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param note body types.TripNoteCreate true "Note to create"
// @Success 201 {object} types.TripNote
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/notes [post]
// @Security BearerAuth
func (h *NoteHandler) CreateNote(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	var input types.TripNoteCreate
	if !bindJSON(c, &input) {
		return
	}

	n, appErr := h.notes.CreateNote(c.Request.Context(), c.Param("id"), user.ID, &input)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusCreated, n)
}

// GetNote godoc
// @Summary Get a note
// @Tags notes
// @Produce json
// @Param id path string true "Trip ID"
// @Param noteId path string true "Note ID"
// @Success 200 {object} types.TripNote
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/notes/{noteId} [get]
// @Security BearerAuth
func (h *NoteHandler) GetNote(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	n, appErr := h.notes.GetNote(c.Request.Context(), c.Param("id"), c.Param("noteId"), user.ID)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, n)
}

// ListNotes godoc
// @Summary List a trip's notes
// @Tags notes
// @Produce json
// @Param id path string true "Trip ID"
// @Param search query string false "Free-text search"
// @Param type query string false "Note type filter"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} types.TripNoteListResponse
// @Router /trips/{id}/notes [get]
// @Security BearerAuth
func (h *NoteHandler) ListNotes(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	page, appErr := parsePageRequest(c, listDefaultLimit)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}

	filter := types.TripNoteFilter{Search: c.Query("search")}
	if raw := c.Query("type"); raw != "" {
		noteType := types.NoteType(raw)
		if !noteType.IsValid() {
			_ = c.Error(invalidFilterValue("type"))
			return
		}
		filter.Type = &noteType
	}

	resp, appErr := h.notes.ListNotes(c.Request.Context(), c.Param("id"), user.ID, filter, page)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateNote godoc
// @Summary Update a note
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param noteId path string true "Note ID"
// @Param note body types.TripNoteUpdate true "Fields to update"
// @Success 200 {object} types.TripNote
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/notes/{noteId} [put]
// @Security BearerAuth
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	var update types.TripNoteUpdate
	if !bindJSON(c, &update) {
		return
	}

	n, appErr := h.notes.UpdateNote(c.Request.Context(), c.Param("id"), c.Param("noteId"), user.ID, &update)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, n)
}

// DeleteNote godoc
// @Summary Delete a note
// @Tags notes
// @Produce json
// @Param id path string true "Trip ID"
// @Param noteId path string true "Note ID"
// @Success 200 {object} handlers.deleteResponse
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/notes/{noteId} [delete]
// @Security BearerAuth
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	if appErr := h.notes.DeleteNote(c.Request.Context(), c.Param("id"), c.Param("noteId"), user.ID); appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, deleteResponse{Message: "Note deleted successfully"})
}
