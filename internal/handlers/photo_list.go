package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/photoshare/server/internal/logger"
	"github.com/photoshare/server/internal/models"
)

// OwnGalleryLister defines the interface that the service must implement.
type OwnGalleryLister interface {
	ListOwn(ctx context.Context, ownerID uuid.UUID, page int) (*models.PhotoPage, error)
}

// NewPhotoListHandler returns an HTTP handler for the owner's gallery,
// private photos included.
// @Summary List own photos
// @Description Returns one page of the authenticated user's photos, newest first, private photos included.
// @Tags photos
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Success 200 {object} handlers.PhotoPageResponse "Gallery page"
// @Failure 401 {object} handlers.PhotoErrorResponse "Unauthorized"
// @Router /photos [get]
// @Security BearerAuth
func NewPhotoListHandler(svc OwnGalleryLister, tokenGetter PhotoTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewerID := resolveViewer(r, tokenGetter)
		if viewerID == nil {
			writePhotoError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		page, err := svc.ListOwn(r.Context(), *viewerID, parsePage(r))
		if err != nil {
			logger.Log.Errorw("failed to list photos", "userID", viewerID, "error", err)
			writePhotoError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(toPhotoPageResponse(page))
	}
}
