package statsservice

import (
	"context"

	"donorhub/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=statsservice.go -destination=statsservice_mock.go -package=statsservice

type Repo interface {
	CountAll(ctx context.Context) (int64, error)
	CountByDonationStatus(ctx context.Context, status string) (int64, error)
	SumDonationsByStatus(ctx context.Context, status string) (float64, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// GetStats aggregates the admin dashboard counters. Total donations count
// only SUCCESS amounts.
func (s *Service) GetStats(ctx context.Context) (*domain.Stats, error) {
	var stats domain.Stats

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.repo.CountAll(ctx)
		stats.TotalRegistrations = n
		return err
	})
	g.Go(func() error {
		sum, err := s.repo.SumDonationsByStatus(ctx, domain.DonationSuccess)
		stats.TotalDonations = sum
		return err
	})
	g.Go(func() error {
		n, err := s.repo.CountByDonationStatus(ctx, domain.DonationPending)
		stats.PendingCount = n
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to aggregate stats", zap.Error(err))
		return nil, err
	}

	return &stats, nil
}
