package service

import (
	"testing"

	"donorhub/internal/config"
	"donorhub/internal/repo"
	"donorhub/internal/service/identityservice"
	"donorhub/internal/service/registrationservice"
	"donorhub/internal/service/statsservice"
	pkgauth "donorhub/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := &repo.Repositories{
		UserRepo:         identityservice.NewMockRepo(ctrl),
		RegistrationRepo: registrationservice.NewMockRepo(ctrl),
		StatsRepo:        statsservice.NewMockRepo(ctrl),
	}

	cfg := &config.Config{JWTTTLMin: 60}
	jwtService := pkgauth.NewMockJWTServiceInterface(ctrl)

	services := New(cfg, repos, jwtService)

	assert.NotNil(t, services.IdentityService)
	assert.NotNil(t, services.RegistrationService)
	assert.NotNil(t, services.StatsService)
}
