package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/photoshare/server/internal/models"
	"github.com/photoshare/server/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	tests := []struct {
		name      string
		username  string
		email     string
		password  string
		exists    bool
		existsErr error
		writerErr error
		wantErr   error
	}{
		{
			name:     "successful registration",
			username: "alice",
			email:    "alice@example.com",
			password: "pass123",
		},
		{
			name:     "username or email taken",
			username: "bob",
			email:    "bob@example.com",
			password: "pass123",
			exists:   true,
			wantErr:  services.ErrUserAlreadyExists,
		},
		{
			name:      "exists check error",
			username:  "eve",
			email:     "eve@example.com",
			password:  "pass123",
			existsErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			username:  "carol",
			email:     "carol@example.com",
			password:  "pass123",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				ExistsByUsernameOrEmail(gomock.Any(), tt.username, tt.email).
				Return(tt.exists, tt.existsErr)

			if !tt.exists && tt.existsErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.username, tt.email, gomock.Any()).
					Return(uuid.New(), tt.writerErr)
			}

			userID, err := svc.Register(context.Background(), tt.username, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Equal(t, uuid.Nil, userID)
			} else {
				assert.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, userID)
			}
		})
	}
}

func TestAuthService_RegisterConcurrentDuplicateMapsUniqueViolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, services.NewMockJWTGenerator(ctrl))

	// The pre-check sees no conflict, then a concurrent registration wins the
	// insert and the unique constraint fires.
	mockReader.EXPECT().
		ExistsByUsernameOrEmail(gomock.Any(), "alice", "alice@example.com").
		Return(false, nil)
	mockWriter.EXPECT().
		Save(gomock.Any(), "alice", "alice@example.com", gomock.Any()).
		Return(uuid.Nil, &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	userID, err := svc.Register(context.Background(), "alice", "alice@example.com", "pass123")

	assert.ErrorIs(t, err, services.ErrUserAlreadyExists)
	assert.Equal(t, uuid.Nil, userID)
}

func TestAuthService_RegisterHashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, services.NewMockJWTGenerator(ctrl))

	mockReader.EXPECT().
		ExistsByUsernameOrEmail(gomock.Any(), "alice", "alice@example.com").
		Return(false, nil)

	mockWriter.EXPECT().
		Save(gomock.Any(), "alice", "alice@example.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, hash string) (uuid.UUID, error) {
			assert.NotEqual(t, "pass123", hash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("pass123")))
			return uuid.New(), nil
		})

	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "pass123")
	assert.NoError(t, err)
}

func TestAuthService_Login(t *testing.T) {
	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userID := uuid.New()

	tests := []struct {
		name       string
		identifier string
		user       *models.UserDB
		readerErr  error
		jwtErr     error
		wantErr    error
		expectJWT  string
		loginPass  string
	}{
		{
			name:       "successful login by username",
			identifier: "alice",
			user:       &models.UserDB{UserID: userID, Username: "alice", PasswordHash: string(hashed)},
			expectJWT:  "token123",
			loginPass:  password,
		},
		{
			name:       "user does not exist",
			identifier: "bob",
			user:       nil,
			wantErr:    services.ErrInvalidCredentials,
			loginPass:  password,
		},
		{
			name:       "invalid password",
			identifier: "carol",
			user:       &models.UserDB{UserID: uuid.New(), Username: "carol", PasswordHash: string(hashed)},
			wantErr:    services.ErrInvalidCredentials,
			loginPass:  "wrongpass",
		},
		{
			name:       "reader error",
			identifier: "eve",
			user:       nil,
			readerErr:  errors.New("db error"),
			wantErr:    errors.New("db error"),
			loginPass:  password,
		},
		{
			name:       "JWT generation error",
			identifier: "dan",
			user:       &models.UserDB{UserID: userID, Username: "dan", PasswordHash: string(hashed)},
			jwtErr:     errors.New("jwt error"),
			wantErr:    errors.New("jwt error"),
			loginPass:  password,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := services.NewMockUserReader(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)
			svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), mockJWT)

			mockReader.EXPECT().
				Get(gomock.Any(), &tt.identifier, (*string)(nil)).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.readerErr == nil && tt.loginPass == password {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.user.UserID).
					Return(tt.expectJWT, tt.jwtErr)
			}

			token, err := svc.Login(context.Background(), tt.identifier, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectJWT, token)
			}
		})
	}
}

func TestAuthService_LoginByEmail(t *testing.T) {
	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userID := uuid.New()
	email := "alice@example.com"

	t.Run("email match", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReader := services.NewMockUserReader(ctrl)
		mockJWT := services.NewMockJWTGenerator(ctrl)
		svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), mockJWT)

		mockReader.EXPECT().
			Get(gomock.Any(), (*string)(nil), &email).
			Return(&models.UserDB{UserID: userID, Username: "alice", PasswordHash: string(hashed)}, nil)
		mockJWT.EXPECT().
			Generate(gomock.Any(), userID).
			Return("token123", nil)

		token, err := svc.Login(context.Background(), email, password)
		assert.NoError(t, err)
		assert.Equal(t, "token123", token)
	})

	t.Run("falls back to username lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReader := services.NewMockUserReader(ctrl)
		mockJWT := services.NewMockJWTGenerator(ctrl)
		svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), mockJWT)

		// Odd but legal: a username that looks like an address.
		mockReader.EXPECT().
			Get(gomock.Any(), (*string)(nil), &email).
			Return(nil, nil)
		mockReader.EXPECT().
			Get(gomock.Any(), &email, (*string)(nil)).
			Return(&models.UserDB{UserID: userID, Username: email, PasswordHash: string(hashed)}, nil)
		mockJWT.EXPECT().
			Generate(gomock.Any(), userID).
			Return("token456", nil)

		token, err := svc.Login(context.Background(), email, password)
		assert.NoError(t, err)
		assert.Equal(t, "token456", token)
	})
}
