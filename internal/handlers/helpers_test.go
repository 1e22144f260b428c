package handlers

import (
	"bytes"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/photoshare/server/internal/jwt"
)

// expectAuth wires the tokener mock to authenticate as the given user.
func expectAuth(m *MockPhotoTokener, userID uuid.UUID) {
	m.EXPECT().
		GetTokenFromRequest(gomock.Any(), gomock.Any()).
		Return("token", nil)
	m.EXPECT().
		GetClaims(gomock.Any(), "token").
		Return(&jwt.Claims{UserID: userID}, nil)
}

// expectAnonymous wires the tokener mock to fail token extraction.
func expectAnonymous(m *MockPhotoTokener) {
	m.EXPECT().
		GetTokenFromRequest(gomock.Any(), gomock.Any()).
		Return("", errors.New("authorization header missing"))
}

// multipartBody builds a multipart form with the given text fields and an
// optional file part. Returns the body and the content type to set.
func multipartBody(t *testing.T, fields map[string]string, fileField, filename string, fileData []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		assert.NoError(t, mw.WriteField(k, v))
	}
	if fileData != nil {
		fw, err := mw.CreateFormFile(fileField, filename)
		assert.NoError(t, err)
		_, err = fw.Write(fileData)
		assert.NoError(t, err)
	}
	assert.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}
