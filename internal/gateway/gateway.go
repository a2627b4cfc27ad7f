// Package gateway drives a registration's donation through the simulated
// payment authorization sequence. Each attempt is a small cooperative state
// machine: IDLE until started, PROCESSING through the scripted phases, then
// SUCCESS or FAILED persisted through the registration service.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"donorhub/internal/config"
	"donorhub/internal/domain"
	"donorhub/internal/metrics"

	"go.uber.org/zap"
)

//go:generate mockgen -source=gateway.go -destination=gateway_mock.go -package=gateway

type Registrations interface {
	GetByID(ctx context.Context, id string) (*domain.Registration, error)
	FinalizeDonation(ctx context.Context, regID string, amount float64, status string) (*domain.Donation, error)
}

var (
	// ErrAlreadyPaid rejects any attempt against a donation that already
	// reached SUCCESS. FAILED stays retryable.
	ErrAlreadyPaid = errors.New("donation already succeeded")
	// ErrAttemptInProgress rejects a second attempt on the same registration
	// while one is still running.
	ErrAttemptInProgress = errors.New("payment attempt already in progress")
	// ErrPersistence marks a finalize whose store write did not land. The
	// attempt ends FAILED in memory and nothing is persisted.
	ErrPersistence = errors.New("can't persist donation")
)

// DefaultAmount is charged when neither the request nor the donation carries
// a positive amount.
const DefaultAmount float64 = 50

const (
	NavigateDashboard = "/dashboard"
	NavigateHome      = "/"
)

type CardDetails struct {
	Name   string
	Number string
	Expiry string
	CVC    string
}

type PaymentRequest struct {
	Amount        float64
	Card          CardDetails
	Authenticated bool
}

type Service struct {
	regs       Registrations
	clock      Clock
	policy     ApprovalPolicy
	observer   Observer
	workerPool WorkerPoolI

	phaseHold      time.Duration
	approvalHold   time.Duration
	navigationHold time.Duration
	declineHold    time.Duration

	inflight sync.Map // regID -> struct{}
	attempts sync.Map // regID -> *Attempt, most recent

	runCtx context.Context
}

func New(cfg *config.Config, regs Registrations) *Service {
	return &Service{
		regs:           regs,
		clock:          RealClock{},
		policy:         AlwaysApprove{},
		observer:       NopObserver{},
		workerPool:     NewWorkerPool(4),
		phaseHold:      cfg.PhaseDuration(),
		approvalHold:   cfg.ApprovalHold(),
		navigationHold: cfg.NavigationDelay(),
		declineHold:    cfg.DeclineHold(),
		runCtx:         context.Background(),
	}
}

// Start binds running attempts to the application lifetime. A request context
// dying never aborts an attempt mid-flight; shutdown does.
func (s *Service) Start(ctx context.Context) {
	s.runCtx = ctx
	zap.L().Info("Payment gateway started")
}

// StartPayment begins the standard authorization flow for the registration's
// donation and returns the live attempt for polling.
func (s *Service) StartPayment(ctx context.Context, regID string, req PaymentRequest) (*Attempt, error) {
	return s.start(ctx, regID, req, false)
}

// StartDecline is the explicit-decline entry point: a short contact phase and
// a FAILED finalize, never reachable from the standard flow.
func (s *Service) StartDecline(ctx context.Context, regID string, req PaymentRequest) (*Attempt, error) {
	return s.start(ctx, regID, req, true)
}

func (s *Service) start(ctx context.Context, regID string, req PaymentRequest, decline bool) (*Attempt, error) {
	reg, err := s.regs.GetByID(ctx, regID)
	if err != nil {
		return nil, err
	}
	if reg.Donation.Status == domain.DonationSuccess {
		zap.L().Info("attempt rejected, donation already succeeded", zap.String("registration", regID))
		return nil, ErrAlreadyPaid
	}

	if _, loaded := s.inflight.LoadOrStore(regID, struct{}{}); loaded {
		return nil, ErrAttemptInProgress
	}

	attempt := newAttempt(regID, resolveAmount(req.Amount, reg.Donation.Amount), req.Authenticated, s.observer)
	s.attempts.Store(regID, attempt)

	err = s.workerPool.AddTask(ctx, func() error {
		defer s.inflight.Delete(regID)
		metrics.PaymentAttemptsInFlight.Inc()
		defer metrics.PaymentAttemptsInFlight.Dec()
		if decline {
			return s.runDecline(s.runCtx, attempt)
		}
		return s.runStandard(s.runCtx, attempt, req.Card)
	})
	if err != nil {
		s.inflight.Delete(regID)
		s.attempts.Delete(regID)
		return nil, err
	}
	return attempt, nil
}

// Status returns the most recent attempt for the registration, running or
// finished. False when no attempt was ever started.
func (s *Service) Status(regID string) (*Attempt, bool) {
	v, ok := s.attempts.Load(regID)
	if !ok {
		return nil, false
	}
	return v.(*Attempt), true
}

// runStandard walks the four scripted phases, asks the approval policy for
// the outcome and finalizes. No phase may be skipped or reordered; each hold
// is a suspension point observing only shutdown.
func (s *Service) runStandard(ctx context.Context, a *Attempt, card CardDetails) error {
	a.setState(StateProcessing)
	for _, label := range ProcessingPhases {
		a.setPhase(label)
		if err := s.clock.Sleep(ctx, s.phaseHold); err != nil {
			return s.abort(a, err)
		}
	}

	if !s.policy.Approve(card) {
		zap.L().Info("payment declined by policy", zap.String("registration", a.regID))
		return s.finalizeFailure(ctx, a)
	}

	a.setPhase(PhaseApproved)
	if err := s.clock.Sleep(ctx, s.approvalHold); err != nil {
		return s.abort(a, err)
	}
	return s.finalizeSuccess(ctx, a)
}

func (s *Service) runDecline(ctx context.Context, a *Attempt) error {
	a.setState(StateProcessing)
	a.setPhase(PhaseContactingBank)
	if err := s.clock.Sleep(ctx, s.declineHold); err != nil {
		return s.abort(a, err)
	}
	return s.finalizeFailure(ctx, a)
}

func (s *Service) finalizeSuccess(ctx context.Context, a *Attempt) error {
	if _, err := s.regs.FinalizeDonation(ctx, a.regID, a.amount, domain.DonationSuccess); err != nil {
		return s.failPersist(a, err)
	}
	a.setState(StateSuccess)
	metrics.DonationsTotal.WithLabelValues(domain.DonationSuccess).Inc()
	zap.L().Info("payment approved",
		zap.String("registration", a.regID),
		zap.Float64("amount", a.amount),
	)

	// The navigation signal is an event for the presentation layer, not a
	// state transition, and fires only after the post-success hold.
	if err := s.clock.Sleep(ctx, s.navigationHold); err != nil {
		return err
	}
	if a.authenticated {
		a.navigate(NavigateDashboard)
	} else {
		a.navigate(NavigateHome)
	}
	return nil
}

func (s *Service) finalizeFailure(ctx context.Context, a *Attempt) error {
	a.setPhase(PhaseDeclined)
	if _, err := s.regs.FinalizeDonation(ctx, a.regID, a.amount, domain.DonationFailed); err != nil {
		return s.failPersist(a, err)
	}
	a.setState(StateFailed)
	metrics.DonationsTotal.WithLabelValues(domain.DonationFailed).Inc()
	zap.L().Info("payment declined",
		zap.String("registration", a.regID),
		zap.Float64("amount", a.amount),
	)
	return nil
}

// failPersist surfaces a finalize whose store write failed: the attempt ends
// FAILED in memory, the store keeps whatever it had, and the error says so.
func (s *Service) failPersist(a *Attempt, err error) error {
	wrapped := fmt.Errorf("%w: %w", ErrPersistence, err)
	a.fail(wrapped)
	zap.L().Error("finalize write failed", zap.String("registration", a.regID), zap.Error(err))
	return wrapped
}

func (s *Service) abort(a *Attempt, err error) error {
	a.fail(err)
	return err
}

func resolveAmount(requested, previous float64) float64 {
	if requested > 0 {
		return requested
	}
	if previous > 0 {
		return previous
	}
	return DefaultAmount
}
