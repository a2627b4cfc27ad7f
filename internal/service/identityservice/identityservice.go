package identityservice

import (
	"context"
	"errors"
	"time"

	"donorhub/internal/domain"
	"donorhub/pkg/auth"

	"go.uber.org/zap"
)

//go:generate mockgen -source=identityservice.go -destination=identityservice_mock.go -package=identityservice

type Repo interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Seed(ctx context.Context, users []domain.User) error
}

// ErrInvalidCredential covers an unknown username or a stale token subject.
var ErrInvalidCredential = errors.New("invalid credential")

type Service struct {
	userRepo   Repo
	jwtService auth.JWTServiceInterface
	tokenTTL   time.Duration
}

func New(repo Repo, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	return &Service{
		userRepo:   repo,
		jwtService: jwtService,
		tokenTTL:   tokenTTL,
	}
}

// Login resolves a username to its seeded identity. There are no passwords:
// the lookup itself is the whole credential.
func (s *Service) Login(ctx context.Context, username string) (*domain.User, string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, "", err
	}
	if user == nil {
		zap.L().Info("login with unknown username", zap.String("username", username))
		return nil, "", ErrInvalidCredential
	}

	token, err := s.jwtService.GenerateJWT(user.ID, user.Role, time.Now().Add(s.tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return nil, "", err
	}

	zap.L().Info("user successfully authenticated", zap.String("username", username))
	return user, token, nil
}

// GetByID resolves a token subject back to its user record.
func (s *Service) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredential
	}
	return user, nil
}

// SeedUsers creates the fixed identities once; reruns are no-ops.
func (s *Service) SeedUsers(ctx context.Context) error {
	users := []domain.User{
		{ID: "admin-1", Username: "admin", Role: domain.RoleAdmin, Name: "System Admin"},
		{ID: "user-1", Username: "user", Role: domain.RoleUser, Name: "Demo Volunteer"},
	}
	if err := s.userRepo.Seed(ctx, users); err != nil {
		zap.L().Error("can't seed users: ", zap.Error(err))
		return err
	}
	return nil
}
