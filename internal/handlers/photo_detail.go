package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/photoshare/server/internal/logger"
	"github.com/photoshare/server/internal/models"
)

// PhotoGetter defines the interface that the service must implement.
type PhotoGetter interface {
	Get(ctx context.Context, viewerID *uuid.UUID, photoID int64) (*models.PhotoDetail, error)
}

// PhotoDetailResponse represents a photo with viewer context
// swagger:model PhotoDetailResponse
type PhotoDetailResponse struct {
	Photo PhotoResponse `json:"photo"`

	// Whether the requester owns the photo
	IsOwner bool `json:"is_owner"`

	// ID of the next-newer photo in the same owner's visible stream
	PrevPhotoID *int64 `json:"prev_photo_id,omitempty"`

	// ID of the next-older photo in the same owner's visible stream
	NextPhotoID *int64 `json:"next_photo_id,omitempty"`
}

// NewPhotoDetailHandler returns an HTTP handler for viewing one photo.
// Authentication is optional: anonymous viewers see public photos only.
// @Summary Get photo details
// @Description Returns the photo with ownership flag and neighboring photo ids. Private photos are visible to their owner only.
// @Tags photos
// @Produce json
// @Param id path int true "Photo ID"
// @Success 200 {object} handlers.PhotoDetailResponse "Photo details"
// @Failure 401 {object} handlers.PhotoErrorResponse "Authentication required"
// @Failure 404 {object} handlers.PhotoErrorResponse "Photo not found"
// @Router /photos/{id} [get]
func NewPhotoDetailHandler(svc PhotoGetter, tokenGetter PhotoTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		photoID, err := parsePhotoID(r)
		if err != nil {
			writePhotoError(w, http.StatusBadRequest, "Invalid photo id")
			return
		}

		viewerID := resolveViewer(r, tokenGetter)

		detail, err := svc.Get(r.Context(), viewerID, photoID)
		if err != nil {
			status, message := photoErrorStatus(err)
			if status == http.StatusInternalServerError {
				logger.Log.Errorw("failed to get photo", "photo_id", photoID, "error", err)
			}
			writePhotoError(w, status, message)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PhotoDetailResponse{
			Photo:       toPhotoResponse(detail.Photo),
			IsOwner:     detail.IsOwner,
			PrevPhotoID: detail.PrevPhotoID,
			NextPhotoID: detail.NextPhotoID,
		})
	}
}
