package gallery

import (
	"errors"
	"net/http"

	"github.com/m04kA/TurfBookingService/internal/api/handlers"
	galleryService "github.com/m04kA/TurfBookingService/internal/service/gallery"
	"github.com/m04kA/TurfBookingService/internal/service/gallery/models"
)

const (
	msgInvalidImageID    = "Invalid image ID"
	msgInvalidUpload     = "Invalid upload"
	msgImageRequired     = "Category name and Image are required"
	msgCategoryRequired  = "Category name required"
	msgImageNotFound     = "Image not found"
	msgImageDeleted      = "Image deleted"
	msgDuplicateCategory = "Category already exists"
	msgUploadUnavailable = "Image upload is not configured"
	msgUploadFailed      = "Image upload failed"
)

// Handler галерея: публичный список и управление для администратора
type Handler struct {
	service GalleryService
	logger  Logger
}

func NewHandler(service GalleryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ListImages GET /api/v1/public/gallery
func (h *Handler) ListImages(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListImages(r.Context())
	if err != nil {
		h.logger.Error("GET /public/gallery - Failed to list images: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// ListCategories GET /api/v1/admin/gallery/categories
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/gallery/categories - Failed to list categories: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// CreateCategory POST /api/v1/admin/gallery/categories
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCategoryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/gallery/categories - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		handlers.RespondBadRequest(w, msgCategoryRequired)
		return
	}

	result, err := h.service.CreateCategory(r.Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, galleryService.ErrDuplicateCategory):
			h.logger.Warn("POST /admin/gallery/categories - Duplicate category %q", req.Name)
			handlers.RespondConflict(w, msgDuplicateCategory)

		case errors.Is(err, galleryService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgCategoryRequired)

		default:
			h.logger.Error("POST /admin/gallery/categories - Failed to create category: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/gallery/categories - Category created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// AddImage POST /api/v1/admin/gallery (multipart: image, categoryName или JSON: categoryName, url)
func (h *Handler) AddImage(w http.ResponseWriter, r *http.Request) {
	req, file, err := parseAddImage(w, r)
	if err != nil {
		h.logger.Warn("POST /admin/gallery - Invalid upload: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUpload)
		return
	}
	if file != nil {
		defer file.Close()
	}

	result, err := h.service.AddImage(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, galleryService.ErrInvalidInput):
			h.logger.Warn("POST /admin/gallery - Missing fields: %v", err)
			handlers.RespondBadRequest(w, msgImageRequired)

		case errors.Is(err, galleryService.ErrUploadUnavailable):
			h.logger.Error("POST /admin/gallery - Media storage disabled")
			handlers.RespondError(w, http.StatusBadGateway, msgUploadUnavailable)

		default:
			h.logger.Error("POST /admin/gallery - Failed to add image: %v", err)
			handlers.RespondDomainError(w, err, msgUploadFailed)
		}
		return
	}

	h.logger.Info("POST /admin/gallery - Image added: id=%d, category=%s", result.ID, result.Category)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// DeleteImage DELETE /api/v1/admin/gallery/{id}
func (h *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /admin/gallery/{id} - Invalid image ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidImageID)
		return
	}

	if err := h.service.DeleteImage(r.Context(), id); err != nil {
		if errors.Is(err, galleryService.ErrImageNotFound) {
			h.logger.Warn("DELETE /admin/gallery/{id} - Image not found: id=%d", id)
			handlers.RespondNotFound(w, msgImageNotFound)
			return
		}
		h.logger.Error("DELETE /admin/gallery/{id} - Failed to delete image: id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/gallery/{id} - Image deleted: id=%d", id)
	handlers.RespondMessage(w, http.StatusOK, msgImageDeleted)
}
