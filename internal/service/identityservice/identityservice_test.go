package identityservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"donorhub/internal/domain"
	"donorhub/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)
	service := New(repo, jwtService, time.Hour)
	defer ctrl.Finish()
	return service, repo, jwtService
}

func TestLogin(t *testing.T) {
	service, repo, jwtService := NewMock(t)
	admin := &domain.User{ID: "admin-1", Username: "admin", Role: domain.RoleAdmin, Name: "System Admin"}

	tests := []struct {
		name          string
		username      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedToken string
		expectedError error
	}{
		{
			name:     "Known username logs in",
			username: "admin",
			prepareMock: func() {
				repo.EXPECT().FindByUsername(gomock.Any(), "admin").Return(admin, nil)
				jwtService.EXPECT().GenerateJWT("admin-1", domain.RoleAdmin, gomock.Any()).Return("token", nil)
			},
			expectedUser:  admin,
			expectedToken: "token",
			expectedError: nil,
		},
		{
			name:     "Unknown username is rejected",
			username: "nobody",
			prepareMock: func() {
				repo.EXPECT().FindByUsername(gomock.Any(), "nobody").Return(nil, nil)
			},
			expectedUser:  nil,
			expectedToken: "",
			expectedError: ErrInvalidCredential,
		},
		{
			name:     "Repo failure propagates",
			username: "admin",
			prepareMock: func() {
				repo.EXPECT().FindByUsername(gomock.Any(), "admin").Return(nil, errors.New("some error"))
			},
			expectedUser:  nil,
			expectedToken: "",
			expectedError: errors.New("some error"),
		},
		{
			name:     "Token generation failure propagates",
			username: "admin",
			prepareMock: func() {
				repo.EXPECT().FindByUsername(gomock.Any(), "admin").Return(admin, nil)
				jwtService.EXPECT().GenerateJWT("admin-1", domain.RoleAdmin, gomock.Any()).Return("", errors.New("sign error"))
			},
			expectedUser:  nil,
			expectedToken: "",
			expectedError: errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, token, err := service.Login(context.Background(), tt.username)
			assert.Equal(t, tt.expectedUser, user)
			assert.Equal(t, tt.expectedToken, token)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetByID(t *testing.T) {
	service, repo, _ := NewMock(t)
	user := &domain.User{ID: "user-1", Username: "user", Role: domain.RoleUser, Name: "Demo Volunteer"}

	tests := []struct {
		name          string
		id            string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name: "Existing user",
			id:   "user-1",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "user-1").Return(user, nil)
			},
			expectedUser:  user,
			expectedError: nil,
		},
		{
			name: "Stale token subject",
			id:   "ghost",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "ghost").Return(nil, nil)
			},
			expectedUser:  nil,
			expectedError: ErrInvalidCredential,
		},
		{
			name: "Repo failure propagates",
			id:   "user-1",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "user-1").Return(nil, errors.New("some error"))
			},
			expectedUser:  nil,
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			got, err := service.GetByID(context.Background(), tt.id)
			assert.Equal(t, tt.expectedUser, got)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSeedUsers(t *testing.T) {
	service, repo, _ := NewMock(t)

	repo.EXPECT().Seed(gomock.Any(), gomock.Len(2)).DoAndReturn(
		func(_ context.Context, users []domain.User) error {
			assert.Equal(t, "admin-1", users[0].ID)
			assert.Equal(t, domain.RoleAdmin, users[0].Role)
			assert.Equal(t, "user-1", users[1].ID)
			assert.Equal(t, domain.RoleUser, users[1].Role)
			return nil
		})
	assert.NoError(t, service.SeedUsers(context.Background()))

	repo.EXPECT().Seed(gomock.Any(), gomock.Any()).Return(errors.New("some error"))
	assert.Error(t, service.SeedUsers(context.Background()))
}
