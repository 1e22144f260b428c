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

func TestPhotoListHandler(t *testing.T) {
	userID := uuid.New()

	t.Run("returns the requested page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := NewMockOwnGalleryLister(ctrl)
		mockTokener := NewMockPhotoTokener(ctrl)

		expectAuth(mockTokener, userID)
		mockSvc.EXPECT().
			ListOwn(gomock.Any(), userID, 2).
			Return(&models.PhotoPage{
				Photos:  []models.PhotoDB{{PhotoID: 13, OwnerID: userID, Title: "Drafts"}},
				Total:   25,
				Page:    2,
				HasNext: true,
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/photos?page=2", nil)
		rr := httptest.NewRecorder()

		NewPhotoListHandler(mockSvc, mockTokener)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp PhotoPageResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp.Photos, 1)
		assert.Equal(t, int64(25), resp.Total)
		assert.Equal(t, 2, resp.Page)
		assert.True(t, resp.HasNext)
	})

	t.Run("missing page defaults to one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := NewMockOwnGalleryLister(ctrl)
		mockTokener := NewMockPhotoTokener(ctrl)

		expectAuth(mockTokener, userID)
		mockSvc.EXPECT().
			ListOwn(gomock.Any(), userID, 1).
			Return(&models.PhotoPage{Photos: []models.PhotoDB{}, Page: 1}, nil)

		req := httptest.NewRequest(http.MethodGet, "/photos", nil)
		rr := httptest.NewRecorder()

		NewPhotoListHandler(mockSvc, mockTokener)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTokener := NewMockPhotoTokener(ctrl)
		expectAnonymous(mockTokener)

		req := httptest.NewRequest(http.MethodGet, "/photos", nil)
		rr := httptest.NewRecorder()

		NewPhotoListHandler(NewMockOwnGalleryLister(ctrl), mockTokener)(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := NewMockOwnGalleryLister(ctrl)
		mockTokener := NewMockPhotoTokener(ctrl)

		expectAuth(mockTokener, userID)
		mockSvc.EXPECT().
			ListOwn(gomock.Any(), userID, 1).
			Return(nil, errors.New("db down"))

		req := httptest.NewRequest(http.MethodGet, "/photos", nil)
		rr := httptest.NewRecorder()

		NewPhotoListHandler(mockSvc, mockTokener)(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
