package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/photoshare/server/internal/models"
)

func TestGalleryHandler(t *testing.T) {
	t.Run("lists public photos without authentication", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := NewMockPublicGalleryLister(ctrl)
		mockSvc.EXPECT().
			ListPublic(gomock.Any(), 1).
			Return(&models.PhotoPage{
				Photos:  []models.PhotoDB{{PhotoID: 1, OwnerID: uuid.New(), Title: "Sunset", IsPublic: true}},
				Total:   1,
				Page:    1,
				HasNext: false,
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/gallery", nil)
		rr := httptest.NewRecorder()

		NewGalleryHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp PhotoPageResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp.Photos, 1)
		assert.Equal(t, "Sunset", resp.Photos[0].Title)
	})

	t.Run("bad page values default to one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := NewMockPublicGalleryLister(ctrl)
		mockSvc.EXPECT().
			ListPublic(gomock.Any(), 1).
			Return(&models.PhotoPage{Photos: []models.PhotoDB{}, Page: 1}, nil)

		req := httptest.NewRequest(http.MethodGet, "/gallery?page=-4", nil)
		rr := httptest.NewRecorder()

		NewGalleryHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := NewMockPublicGalleryLister(ctrl)
		mockSvc.EXPECT().
			ListPublic(gomock.Any(), 1).
			Return(nil, errors.New("db down"))

		req := httptest.NewRequest(http.MethodGet, "/gallery", nil)
		rr := httptest.NewRecorder()

		NewGalleryHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
