package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/photoshare/server/internal/logger"
	"github.com/photoshare/server/internal/services"
)

// PhotoUploader defines the interface that the service must implement.
type PhotoUploader interface {
	Upload(ctx context.Context, ownerID uuid.UUID, title, description string, isPublic bool, upload services.ImageUpload) (int64, error)
}

// PhotoUploadResponse represents a successful upload response
// swagger:model PhotoUploadResponse
type PhotoUploadResponse struct {
	// Success message
	// default: Photo uploaded successfully
	Message string `json:"message"`

	// ID of the created photo
	PhotoID int64 `json:"photo_id"`
}

// NewPhotoUploadHandler returns an HTTP handler for uploading a photo.
// @Summary Upload a photo
// @Description Accepts a multipart form with an image file plus title, description and visibility. The image is validated, normalized and thumbnailed before storage.
// @Tags photos
// @Accept mpfd
// @Produce json
// @Param title formData string true "Photo title"
// @Param description formData string false "Photo description"
// @Param is_public formData bool false "Whether the photo is publicly visible"
// @Param image formData file true "Image file"
// @Success 201 {object} handlers.PhotoUploadResponse "Photo uploaded"
// @Failure 400 {object} handlers.PhotoErrorResponse "Rejected upload"
// @Failure 401 {object} handlers.PhotoErrorResponse "Unauthorized"
// @Router /photos [post]
// @Security BearerAuth
func NewPhotoUploadHandler(svc PhotoUploader, tokenGetter PhotoTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		viewerID := resolveViewer(r, tokenGetter)
		if viewerID == nil {
			writePhotoError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			logger.Log.Warnw("failed to parse multipart form", "error", err)
			writePhotoError(w, http.StatusBadRequest, "Invalid multipart form")
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			writePhotoError(w, http.StatusBadRequest, "Image file is required")
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			logger.Log.Errorw("failed to read uploaded file", "error", err)
			writePhotoError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		upload := services.ImageUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		}

		photoID, err := svc.Upload(ctx,
			*viewerID,
			r.FormValue("title"),
			r.FormValue("description"),
			parseBoolField(r.FormValue("is_public")),
			upload,
		)
		if err != nil {
			status, message := photoErrorStatus(err)
			if status == http.StatusInternalServerError {
				logger.Log.Errorw("failed to upload photo", "userID", viewerID, "error", err)
			}
			writePhotoError(w, status, message)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(PhotoUploadResponse{
			Message: "Photo uploaded successfully",
			PhotoID: photoID,
		})
	}
}
