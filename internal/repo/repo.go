package repo

import (
	"donorhub/internal/pg"
	registrationrepo "donorhub/internal/repo/registration-repo"
	userrepo "donorhub/internal/repo/user-repo"
	"donorhub/internal/service/identityservice"
	"donorhub/internal/service/registrationservice"
	"donorhub/internal/service/statsservice"
)

type Repositories struct {
	UserRepo         identityservice.Repo
	RegistrationRepo registrationservice.Repo
	StatsRepo        statsservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	registrationRepo := registrationrepo.New(conn, txManager)

	return &Repositories{
		UserRepo:         userRepo,
		RegistrationRepo: registrationRepo,
		StatsRepo:        registrationRepo,
	}
}
