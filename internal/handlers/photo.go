package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/photoshare/server/internal/imageproc"
	"github.com/photoshare/server/internal/jwt"
	"github.com/photoshare/server/internal/models"
	"github.com/photoshare/server/internal/sanitize"
	"github.com/photoshare/server/internal/services"
)

// maxUploadBytes caps the request body read by the upload handlers, with
// headroom over the per-file limit for the remaining form fields. The
// validator enforces the per-file limit with a proper error message.
const maxUploadBytes = 12 << 20

// PhotoTokener defines only the token methods needed by the photo handlers.
type PhotoTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// PhotoResponse represents one photo in API responses
// swagger:model PhotoResponse
type PhotoResponse struct {
	// Photo ID
	PhotoID int64 `json:"photo_id"`

	// Owner user ID
	OwnerID string `json:"owner_id"`

	// Title
	Title string `json:"title"`

	// Description
	Description string `json:"description"`

	// Storage key of the primary image
	ImageKey string `json:"image_key"`

	// Storage key of the thumbnail, absent when none was generated
	ThumbnailKey *string `json:"thumbnail_key,omitempty"`

	// Visibility
	IsPublic bool `json:"is_public"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toPhotoResponse(p models.PhotoDB) PhotoResponse {
	return PhotoResponse{
		PhotoID:      p.PhotoID,
		OwnerID:      p.OwnerID.String(),
		Title:        p.Title,
		Description:  p.Description,
		ImageKey:     p.ImageKey,
		ThumbnailKey: p.ThumbnailKey,
		IsPublic:     p.IsPublic,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// PhotoPageResponse represents one gallery page
// swagger:model PhotoPageResponse
type PhotoPageResponse struct {
	Photos  []PhotoResponse `json:"photos"`
	Total   int64           `json:"total"`
	Page    int             `json:"page"`
	HasNext bool            `json:"has_next"`
}

func toPhotoPageResponse(page *models.PhotoPage) PhotoPageResponse {
	photos := make([]PhotoResponse, 0, len(page.Photos))
	for _, p := range page.Photos {
		photos = append(photos, toPhotoResponse(p))
	}
	return PhotoPageResponse{
		Photos:  photos,
		Total:   page.Total,
		Page:    page.Page,
		HasNext: page.HasNext,
	}
}

// PhotoErrorResponse represents an error response for photo endpoints
// swagger:model PhotoErrorResponse
type PhotoErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// resolveViewer returns the authenticated user id, or nil for anonymous
// requests. Invalid tokens degrade to anonymous.
func resolveViewer(r *http.Request, tokenGetter PhotoTokener) *uuid.UUID {
	ctx := r.Context()

	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		return nil
	}
	claims, err := tokenGetter.GetClaims(ctx, tokenStr)
	if err != nil {
		return nil
	}
	return &claims.UserID
}

func parsePhotoID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func parsePage(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func parseBoolField(s string) bool {
	switch s {
	case "true", "on", "1":
		return true
	}
	return false
}

// photoErrorStatus maps service and validation errors to an HTTP status and
// a caller-safe message.
func photoErrorStatus(err error) (int, string) {
	var vErr *imageproc.ValidationError
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest, vErr.Message
	case errors.Is(err, sanitize.ErrTitleRequired),
		errors.Is(err, sanitize.ErrTitleTooLong),
		errors.Is(err, sanitize.ErrTitleUnsafe),
		errors.Is(err, sanitize.ErrDescriptionTooLong),
		errors.Is(err, sanitize.ErrDescriptionUnsafe):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrAuthRequired):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, services.ErrPermissionDenied):
		return http.StatusForbidden, "Permission denied"
	case errors.Is(err, services.ErrPhotoNotFound):
		return http.StatusNotFound, "Photo not found"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func writePhotoError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(PhotoErrorResponse{Error: message})
}
