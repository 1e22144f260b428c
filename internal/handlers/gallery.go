package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/photoshare/server/internal/logger"
	"github.com/photoshare/server/internal/models"
)

// PublicGalleryLister defines the interface that the service must implement.
type PublicGalleryLister interface {
	ListPublic(ctx context.Context, page int) (*models.PhotoPage, error)
}

// NewGalleryHandler returns an HTTP handler for the shared public gallery.
// No authentication required.
// @Summary List public photos
// @Description Returns one page of all users' public photos, newest first.
// @Tags gallery
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Success 200 {object} handlers.PhotoPageResponse "Gallery page"
// @Router /gallery [get]
func NewGalleryHandler(svc PublicGalleryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := svc.ListPublic(r.Context(), parsePage(r))
		if err != nil {
			logger.Log.Errorw("failed to list public photos", "error", err)
			writePhotoError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(toPhotoPageResponse(page))
	}
}
