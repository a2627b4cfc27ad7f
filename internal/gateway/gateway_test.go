package gateway

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"donorhub/internal/config"
	"donorhub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

// fakeClock records every requested hold and returns immediately.
type fakeClock struct {
	mu    sync.Mutex
	holds []time.Duration
}

func (c *fakeClock) Sleep(_ context.Context, d time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.holds = append(c.holds, d)
	return nil
}

func (c *fakeClock) recorded() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.holds...)
}

// recorder captures the attempt's emitted phases, states and navigation.
type recorder struct {
	mu     sync.Mutex
	phases []string
	states []State
	navs   []string
}

func (r *recorder) OnPhase(_, label string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.phases = append(r.phases, label)
}

func (r *recorder) OnState(_ string, state State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, state)
}

func (r *recorder) OnNavigate(_, dest string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.navs = append(r.navs, dest)
}

// syncPool runs every task inline so attempts finish before Start returns.
type syncPool struct{}

func (syncPool) AddTask(_ context.Context, task Task) error { return task() }
func (syncPool) Close()                                     {}

func NewMock(t *testing.T) (*Service, *MockRegistrations, *fakeClock, *recorder) {
	ctrl := gomock.NewController(t)
	regs := NewMockRegistrations(ctrl)
	cfg := &config.Config{
		PhaseDurationMs:   800,
		ApprovalHoldMs:    500,
		NavigationDelayMs: 2000,
		DeclineHoldMs:     1000,
	}
	service := New(cfg, regs)
	clock := &fakeClock{}
	obs := &recorder{}
	service.clock = clock
	service.observer = obs
	service.workerPool = syncPool{}
	return service, regs, clock, obs
}

func pendingReg(regID string, amount float64) *domain.Registration {
	return &domain.Registration{
		ID:     regID,
		UserID: "user-1",
		Donation: domain.Donation{
			ID:     "don-1",
			Amount: amount,
			Status: domain.DonationPending,
		},
	}
}

func TestStartPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("Standard flow succeeds with submitted amount", func(t *testing.T) {
		service, regs, clock, obs := NewMock(t)
		regs.EXPECT().GetByID(gomock.Any(), "reg-1").Return(pendingReg("reg-1", 0), nil)
		regs.EXPECT().FinalizeDonation(gomock.Any(), "reg-1", float64(75), domain.DonationSuccess).
			Return(&domain.Donation{Amount: 75, Status: domain.DonationSuccess}, nil)

		attempt, err := service.StartPayment(ctx, "reg-1", PaymentRequest{Amount: 75, Authenticated: true})
		require.NoError(t, err)
		require.NotNil(t, attempt)

		status := attempt.Status()
		assert.Equal(t, StateSuccess, status.State)
		assert.Equal(t, float64(75), status.Amount)
		assert.Equal(t, NavigateDashboard, status.NavigateTo)
		assert.NoError(t, status.Err)

		assert.Equal(t, []string{
			"Encrypting data...",
			"Contacting bank...",
			"Verifying credentials...",
			"Authorizing transaction...",
			"Payment Approved!",
		}, obs.phases)
		assert.Equal(t, []State{StateProcessing, StateSuccess}, obs.states)
		assert.Equal(t, []time.Duration{
			800 * time.Millisecond,
			800 * time.Millisecond,
			800 * time.Millisecond,
			800 * time.Millisecond,
			500 * time.Millisecond,
			2000 * time.Millisecond,
		}, clock.recorded())
	})

	t.Run("Guest attempt navigates home", func(t *testing.T) {
		service, regs, _, obs := NewMock(t)
		regs.EXPECT().GetByID(gomock.Any(), "reg-1").Return(pendingReg("reg-1", 0), nil)
		regs.EXPECT().FinalizeDonation(gomock.Any(), "reg-1", float64(50), domain.DonationSuccess).
			Return(&domain.Donation{Amount: 50, Status: domain.DonationSuccess}, nil)

		attempt, err := service.StartPayment(ctx, "reg-1", PaymentRequest{Authenticated: false})
		require.NoError(t, err)
		assert.Equal(t, NavigateHome, attempt.Status().NavigateTo)
		assert.Equal(t, []string{NavigateHome}, obs.navs)
	})

	t.Run("Zero amount falls back to the prior positive amount", func(t *testing.T) {
		service, regs, _, _ := NewMock(t)
		reg := pendingReg("reg-1", 30)
		reg.Donation.Status = domain.DonationFailed
		regs.EXPECT().GetByID(gomock.Any(), "reg-1").Return(reg, nil)
		regs.EXPECT().FinalizeDonation(gomock.Any(), "reg-1", float64(30), domain.DonationSuccess).
			Return(&domain.Donation{Amount: 30, Status: domain.DonationSuccess}, nil)

		attempt, err := service.StartPayment(ctx, "reg-1", PaymentRequest{Authenticated: true})
		require.NoError(t, err)
		assert.Equal(t, float64(30), attempt.Status().Amount)
	})

	t.Run("Zero amount with no prior amount charges the default", func(t *testing.T) {
		service, regs, _, _ := NewMock(t)
		regs.EXPECT().GetByID(gomock.Any(), "reg-1").Return(pendingReg("reg-1", 0), nil)
		regs.EXPECT().FinalizeDonation(gomock.Any(), "reg-1", DefaultAmount, domain.DonationSuccess).
			Return(&domain.Donation{Amount: DefaultAmount, Status: domain.DonationSuccess}, nil)

		attempt, err := service.StartPayment(ctx, "reg-1", PaymentRequest{Authenticated: true})
		require.NoError(t, err)
		assert.Equal(t, DefaultAmount, attempt.Status().Amount)
	})

	t.Run("Retry after a failed attempt overwrites the outcome", func(t *testing.T) {
		service, regs, _, _ := NewMock(t)
		reg := pendingReg("reg-1", 20)
		reg.Donation.Status = domain.DonationFailed
		regs.EXPECT().GetByID(gomock.Any(), "reg-1").Return(reg, nil)
		regs.EXPECT().FinalizeDonation(gomock.Any(), "reg-1", float64(75), domain.DonationSuccess).
			Return(&domain.Donation{Amount: 75, Status: domain.DonationSuccess}, nil)

		attempt, err := service.StartPayment(ctx, "reg-1", PaymentRequest{Amount: 75, Authenticated: true})
		require.NoError(t, err)
		assert.Equal(t, StateSuccess, attempt.Status().State)
	})

	t.Run("Succeeded donation rejects further attempts", func(t *testing.T) {
		service, regs, _, _ := NewMock(t)
		reg := pendingReg("reg-1", 75)
		reg.Donation.Status = domain.DonationSuccess
		regs.EXPECT().GetByID(gomock.Any(), "reg-1").Return(reg, nil)

		attempt, err := service.StartPayment(ctx, "reg-1", PaymentRequest{Amount: 10})
		assert.Nil(t, attempt)
		assert.ErrorIs(t, err, ErrAlreadyPaid)
	})

	t.Run("Second attempt on a running registration is rejected", func(t *testing.T) {
		service, regs, _, _ := NewMock(t)
		regs.EXPECT().GetByID(gomock.Any(), "reg-1").Return(pendingReg("reg-1", 0), nil)
		service.inflight.Store("reg-1", struct{}{})

		attempt, err := service.StartPayment(ctx, "reg-1", PaymentRequest{Amount: 10})
		assert.Nil(t, attempt)
		assert.ErrorIs(t, err, ErrAttemptInProgress)
	})

	t.Run("Unknown registration propagates the lookup error", func(t *testing.T) {
		service, regs, _, _ := NewMock(t)
		regs.EXPECT().GetByID(gomock.Any(), "reg-404").Return(nil, errors.New("not found"))

		attempt, err := service.StartPayment(ctx, "reg-404", PaymentRequest{})
		assert.Nil(t, attempt)
		assert.EqualError(t, err, "not found")
	})

	t.Run("Policy decline finalizes FAILED", func(t *testing.T) {
		service, regs, _, obs := NewMock(t)
		service.policy = LuhnPolicy{}
		regs.EXPECT().GetByID(gomock.Any(), "reg-1").Return(pendingReg("reg-1", 0), nil)
		regs.EXPECT().FinalizeDonation(gomock.Any(), "reg-1", float64(50), domain.DonationFailed).
			Return(&domain.Donation{Amount: 50, Status: domain.DonationFailed}, nil)

		attempt, err := service.StartPayment(ctx, "reg-1", PaymentRequest{
			Card: CardDetails{Number: "1234 5678 9012 3456"},
		})
		require.NoError(t, err)
		assert.Equal(t, StateFailed, attempt.Status().State)
		assert.Equal(t, PhaseDeclined, attempt.Status().Phase)
		assert.Empty(t, obs.navs)
	})

	t.Run("Finalize write failure ends the attempt FAILED in memory", func(t *testing.T) {
		service, regs, _, _ := NewMock(t)
		regs.EXPECT().GetByID(gomock.Any(), "reg-1").Return(pendingReg("reg-1", 0), nil)
		regs.EXPECT().FinalizeDonation(gomock.Any(), "reg-1", float64(50), domain.DonationSuccess).
			Return(nil, errors.New("connection reset"))

		attempt, err := service.StartPayment(ctx, "reg-1", PaymentRequest{Authenticated: true})
		assert.Nil(t, attempt)
		assert.ErrorIs(t, err, ErrPersistence)
	})
}

func TestStartDecline(t *testing.T) {
	ctx := context.Background()

	t.Run("Manual decline runs the short flow and finalizes FAILED", func(t *testing.T) {
		service, regs, clock, obs := NewMock(t)
		regs.EXPECT().GetByID(gomock.Any(), "reg-1").Return(pendingReg("reg-1", 0), nil)
		regs.EXPECT().FinalizeDonation(gomock.Any(), "reg-1", float64(20), domain.DonationFailed).
			Return(&domain.Donation{Amount: 20, Status: domain.DonationFailed}, nil)

		attempt, err := service.StartDecline(ctx, "reg-1", PaymentRequest{Amount: 20, Authenticated: true})
		require.NoError(t, err)

		status := attempt.Status()
		assert.Equal(t, StateFailed, status.State)
		assert.Empty(t, status.NavigateTo)
		assert.Equal(t, []string{PhaseContactingBank, PhaseDeclined}, obs.phases)
		assert.Equal(t, []time.Duration{1000 * time.Millisecond}, clock.recorded())
	})

	t.Run("Decline on a succeeded donation is rejected", func(t *testing.T) {
		service, regs, _, _ := NewMock(t)
		reg := pendingReg("reg-1", 75)
		reg.Donation.Status = domain.DonationSuccess
		regs.EXPECT().GetByID(gomock.Any(), "reg-1").Return(reg, nil)

		attempt, err := service.StartDecline(ctx, "reg-1", PaymentRequest{})
		assert.Nil(t, attempt)
		assert.ErrorIs(t, err, ErrAlreadyPaid)
	})
}

func TestStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("No attempt ever started", func(t *testing.T) {
		service, _, _, _ := NewMock(t)
		attempt, ok := service.Status("reg-1")
		assert.Nil(t, attempt)
		assert.False(t, ok)
	})

	t.Run("Finished attempt stays pollable", func(t *testing.T) {
		service, regs, _, _ := NewMock(t)
		regs.EXPECT().GetByID(gomock.Any(), "reg-1").Return(pendingReg("reg-1", 0), nil)
		regs.EXPECT().FinalizeDonation(gomock.Any(), "reg-1", float64(50), domain.DonationSuccess).
			Return(&domain.Donation{Amount: 50, Status: domain.DonationSuccess}, nil)

		_, err := service.StartPayment(ctx, "reg-1", PaymentRequest{Authenticated: true})
		require.NoError(t, err)

		attempt, ok := service.Status("reg-1")
		require.True(t, ok)
		assert.Equal(t, StateSuccess, attempt.Status().State)
	})
}

func TestResolveAmount(t *testing.T) {
	assert.Equal(t, float64(75), resolveAmount(75, 30))
	assert.Equal(t, float64(30), resolveAmount(0, 30))
	assert.Equal(t, DefaultAmount, resolveAmount(0, 0))
	assert.Equal(t, DefaultAmount, resolveAmount(-5, -1))
}
