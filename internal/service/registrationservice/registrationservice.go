package registrationservice

import (
	"context"
	"errors"
	"time"

	"donorhub/internal/domain"
	"donorhub/internal/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=registrationservice.go -destination=registrationservice_mock.go -package=registrationservice

type Repo interface {
	Save(ctx context.Context, reg *domain.Registration) error
	FindByID(ctx context.Context, id string) (*domain.Registration, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Registration, error)
	FindAll(ctx context.Context) ([]domain.Registration, error)
	UpdateDonation(ctx context.Context, donation *domain.Donation, regID string) (int64, error)
}

var ErrRegistrationNotFound = errors.New("registration not found")

type Input struct {
	FullName     string
	Phone        string
	CampaignName string
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// Create stores a registration with its PENDING zero-amount donation in one
// durable write, so the intent survives whatever the payment does later.
func (s *Service) Create(ctx context.Context, ownerID string, input Input) (*domain.Registration, error) {
	now := time.Now()
	reg := &domain.Registration{
		ID:           uuid.NewString(),
		UserID:       ownerID,
		FullName:     input.FullName,
		Phone:        input.Phone,
		CampaignName: input.CampaignName,
		CreatedAt:    now,
		Donation: domain.Donation{
			ID:        uuid.NewString(),
			Amount:    0,
			Status:    domain.DonationPending,
			UpdatedAt: now,
		},
	}

	if err := s.repo.Save(ctx, reg); err != nil {
		zap.L().Error("can't save registration: ", zap.Error(err))
		return nil, err
	}

	metrics.RegistrationsTotal.Inc()
	zap.L().Info("registration created",
		zap.String("id", reg.ID),
		zap.String("owner", ownerID),
		zap.String("campaign", input.CampaignName),
	)
	return reg, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	reg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, ErrRegistrationNotFound
	}
	return reg, nil
}

// ListByOwner returns the owner's registrations newest first. The repo hands
// back insertion order and the slice is reversed, never re-sorted by
// timestamp, so two rows written in the same millisecond still come back in
// reverse-creation order.
func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]domain.Registration, error) {
	regs, err := s.repo.FindByUserID(ctx, ownerID)
	if err != nil {
		zap.L().Error("failed to get registrations", zap.Error(err))
		return nil, err
	}
	return reverse(regs), nil
}

// ListAll returns every registration newest first, same reversal rule.
func (s *Service) ListAll(ctx context.Context) ([]domain.Registration, error) {
	regs, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get all registrations", zap.Error(err))
		return nil, err
	}
	return reverse(regs), nil
}

// FinalizeDonation overwrites the nested donation with the resolved amount,
// the terminal status and a fresh timestamp, atomically.
func (s *Service) FinalizeDonation(ctx context.Context, regID string, amount float64, status string) (*domain.Donation, error) {
	donation := &domain.Donation{
		Amount:    amount,
		Status:    status,
		UpdatedAt: time.Now(),
	}

	affected, err := s.repo.UpdateDonation(ctx, donation, regID)
	if err != nil {
		zap.L().Error("can't finalize donation: ", zap.Error(err))
		return nil, err
	}
	if affected == 0 {
		return nil, ErrRegistrationNotFound
	}

	zap.L().Info("donation finalized",
		zap.String("registration", regID),
		zap.Float64("amount", amount),
		zap.String("status", status),
	)
	return donation, nil
}

func reverse(regs []domain.Registration) []domain.Registration {
	for i, j := 0, len(regs)-1; i < j; i, j = i+1, j-1 {
		regs[i], regs[j] = regs[j], regs[i]
	}
	return regs
}
