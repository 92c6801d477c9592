package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wayfarerhq/wayfarer-backend/models"
	"github.com/wayfarerhq/wayfarer-backend/types"
)

// DocumentHandler serves /v1/trips/:id/documents.
type DocumentHandler struct {
	documents *models.DocumentModel
	users     *models.UserModel
}

func NewDocumentHandler(documents *models.DocumentModel, users *models.UserModel) *DocumentHandler {
	return &DocumentHandler{documents: documents, users: users}
}

// CreateDocument godoc
// @Summary Store a travel document reference
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param document body types.DocumentCreate true "Document to store"
// @Success 201 {object} types.Document
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/documents [post]
// @Security BearerAuth
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	var input types.DocumentCreate
	if !bindJSON(c, &input) {
		return
	}

	d, appErr := h.documents.CreateDocument(c.Request.Context(), c.Param("id"), user.ID, &input)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusCreated, d)
}

// GetDocument godoc
// @Summary Get a document
// @Tags documents
// @Produce json
// @Param id path string true "Trip ID"
// @Param documentId path string true "Document ID"
// @Success 200 {object} types.Document
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/documents/{documentId} [get]
// @Security BearerAuth
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	d, appErr := h.documents.GetDocument(c.Request.Context(), c.Param("id"), c.Param("documentId"), user.ID)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, d)
}

// ListDocuments godoc
// @Summary List a trip's documents with expiry statistics
// @Tags documents
// @Produce json
// @Param id path string true "Trip ID"
// @Param search query string false "Free-text search"
// @Param type query string false "Document type filter"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} types.DocumentListResponse
// @Router /trips/{id}/documents [get]
// @Security BearerAuth
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	page, appErr := parsePageRequest(c, listDefaultLimit)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}

	filter := types.DocumentFilter{Search: c.Query("search")}
	if raw := c.Query("type"); raw != "" {
		docType := types.DocumentType(raw)
		if !docType.IsValid() {
			_ = c.Error(invalidFilterValue("type"))
			return
		}
		filter.Type = &docType
	}

	resp, appErr := h.documents.ListDocuments(c.Request.Context(), c.Param("id"), user.ID, filter, page)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateDocument godoc
// @Summary Update a document
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param documentId path string true "Document ID"
// @Param document body types.DocumentUpdate true "Fields to update"
// @Success 200 {object} types.Document
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/documents/{documentId} [put]
// @Security BearerAuth
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	var update types.DocumentUpdate
	if !bindJSON(c, &update) {
		return
	}

	d, appErr := h.documents.UpdateDocument(c.Request.Context(), c.Param("id"), c.Param("documentId"), user.ID, &update)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, d)
}

// DeleteDocument godoc
// @Summary Delete a document
// @Tags documents
// @Produce json
// @Param id path string true "Trip ID"
// @Param documentId path string true "Document ID"
// @Success 200 {object} handlers.deleteResponse
// @Failure 404 {object} errors.AppError
// @Router /trips/{id}/documents/{documentId} [delete]
// @Security BearerAuth
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	user, ok := resolveUser(c, h.users)
	if !ok {
		return
	}

	if appErr := h.documents.DeleteDocument(c.Request.Context(), c.Param("id"), c.Param("documentId"), user.ID); appErr != nil {
		_ = c.Error(appErr)
		return
	}
	c.JSON(http.StatusOK, deleteResponse{Message: "Document deleted successfully"})
}
