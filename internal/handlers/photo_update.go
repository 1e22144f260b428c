package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/photoshare/server/internal/logger"
	"github.com/photoshare/server/internal/services"
)

// PhotoUpdater defines the interface that the service must implement.
type PhotoUpdater interface {
	Update(ctx context.Context, viewerID uuid.UUID, photoID int64, title, description string, isPublic bool, upload *services.ImageUpload) error
}

// PhotoUpdateResponse represents a successful update response
// swagger:model PhotoUpdateResponse
type PhotoUpdateResponse struct {
	// Success message
	// default: Photo updated successfully
	Message string `json:"message"`
}

// NewPhotoUpdateHandler returns an HTTP handler for editing a photo.
// @Summary Update a photo
// @Description Edits the photo's title, description and visibility. An optional image file replaces the stored image through the full validation pipeline. Owner only.
// @Tags photos
// @Accept mpfd
// @Produce json
// @Param id path int true "Photo ID"
// @Param title formData string true "Photo title"
// @Param description formData string false "Photo description"
// @Param is_public formData bool false "Whether the photo is publicly visible"
// @Param image formData file false "Replacement image file"
// @Success 200 {object} handlers.PhotoUpdateResponse "Photo updated"
// @Failure 400 {object} handlers.PhotoErrorResponse "Rejected input"
// @Failure 401 {object} handlers.PhotoErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.PhotoErrorResponse "Not the owner"
// @Failure 404 {object} handlers.PhotoErrorResponse "Photo not found"
// @Router /photos/{id} [put]
// @Security BearerAuth
func NewPhotoUpdateHandler(svc PhotoUpdater, tokenGetter PhotoTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

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

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			logger.Log.Warnw("failed to parse multipart form", "error", err)
			writePhotoError(w, http.StatusBadRequest, "Invalid multipart form")
			return
		}

		var upload *services.ImageUpload
		file, header, err := r.FormFile("image")
		switch {
		case err == nil:
			defer file.Close()
			data, readErr := io.ReadAll(file)
			if readErr != nil {
				logger.Log.Errorw("failed to read uploaded file", "error", readErr)
				writePhotoError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			upload = &services.ImageUpload{
				Filename:    header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Data:        data,
			}
		case errors.Is(err, http.ErrMissingFile):
			// Text-only edit keeps the stored image.
		default:
			writePhotoError(w, http.StatusBadRequest, "Invalid image file")
			return
		}

		err = svc.Update(ctx,
			*viewerID,
			photoID,
			r.FormValue("title"),
			r.FormValue("description"),
			parseBoolField(r.FormValue("is_public")),
			upload,
		)
		if err != nil {
			status, message := photoErrorStatus(err)
			if status == http.StatusInternalServerError {
				logger.Log.Errorw("failed to update photo", "photo_id", photoID, "error", err)
			}
			writePhotoError(w, status, message)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PhotoUpdateResponse{
			Message: "Photo updated successfully",
		})
	}
}
