package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/photoshare/server/internal/logger"
)

// PhotoDeleter defines the interface that the service must implement.
type PhotoDeleter interface {
	Delete(ctx context.Context, viewerID uuid.UUID, photoID int64) error
}

// PhotoDeleteResponse represents a successful delete response
// swagger:model PhotoDeleteResponse
type PhotoDeleteResponse struct {
	// Success message
	// default: Photo deleted successfully
	Message string `json:"message"`
}

// NewPhotoDeleteHandler returns an HTTP handler for deleting a photo.
// @Summary Delete a photo
// @Description Removes the photo record and its stored image and thumbnail. Owner only.
// @Tags photos
// @Produce json
// @Param id path int true "Photo ID"
// @Success 200 {object} handlers.PhotoDeleteResponse "Photo deleted"
// @Failure 401 {object} handlers.PhotoErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.PhotoErrorResponse "Not the owner"
// @Failure 404 {object} handlers.PhotoErrorResponse "Photo not found"
// @Router /photos/{id} [delete]
// @Security BearerAuth
func NewPhotoDeleteHandler(svc PhotoDeleter, tokenGetter PhotoTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewerID := resolveViewer(r, tokenGetter)
		if viewerID == nil {
			writePhotoError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		photoID, err := parsePhotoID(r)
		if err != nil {
			writePhotoError(w, http.StatusBadRequest, "Invalid photo id")
			return
		}

		if err := svc.Delete(r.Context(), *viewerID, photoID); err != nil {
			status, message := photoErrorStatus(err)
			if status == http.StatusInternalServerError {
				logger.Log.Errorw("failed to delete photo", "photo_id", photoID, "error", err)
			}
			writePhotoError(w, status, message)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PhotoDeleteResponse{
			Message: "Photo deleted successfully",
		})
	}
}
