package service

import (
	"donorhub/internal/config"
	"donorhub/internal/repo"
	"donorhub/internal/service/identityservice"
	"donorhub/internal/service/registrationservice"
	"donorhub/internal/service/statsservice"

	pkgauth "donorhub/pkg/auth"
)

type Services struct {
	IdentityService     *identityservice.Service
	RegistrationService *registrationservice.Service
	StatsService        *statsservice.Service
}

func New(cfg *config.Config, repo *repo.Repositories, jwtService pkgauth.JWTServiceInterface) *Services {
	identityService := identityservice.New(repo.UserRepo, jwtService, cfg.JWTTTL())
	registrationService := registrationservice.New(repo.RegistrationRepo)
	statsService := statsservice.New(repo.StatsRepo)

	return &Services{
		IdentityService:     identityService,
		RegistrationService: registrationService,
		StatsService:        statsService,
	}
}
