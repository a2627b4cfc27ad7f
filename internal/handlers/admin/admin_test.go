package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"donorhub/internal/domain"
	"donorhub/internal/dto"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AdminHandler, *MockRegistrations, *MockStats) {
	ctrl := gomock.NewController(t)
	regs := NewMockRegistrations(ctrl)
	stats := NewMockStats(ctrl)
	handler := New(regs, stats)
	defer ctrl.Finish()
	return handler, regs, stats
}

func TestListAllHandler(t *testing.T) {
	handler, regs, _ := NewMock(t)

	t.Run("Full listing", func(t *testing.T) {
		now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		regs.EXPECT().ListAll(gomock.Any()).Return([]domain.Registration{
			{
				ID:           "reg-2",
				UserID:       domain.GuestOwnerID,
				FullName:     "John Roe",
				Phone:        "555-0202",
				CampaignName: "Winter Shelter",
				CreatedAt:    now,
				Donation:     domain.Donation{ID: "don-2", Amount: 75, Status: domain.DonationSuccess, UpdatedAt: now},
			},
			{
				ID:           "reg-1",
				UserID:       "user-1",
				FullName:     "Jane Doe",
				Phone:        "555-0101",
				CampaignName: "Food Drive",
				CreatedAt:    now,
				Donation:     domain.Donation{ID: "don-1", Status: domain.DonationPending, UpdatedAt: now},
			},
		}, nil)

		rr := httptest.NewRecorder()
		handler.ListAll(rr, httptest.NewRequest("GET", "/api/admin/registrations", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []dto.RegistrationDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 2)
		assert.Equal(t, "reg-2", resp[0].ID)
		assert.Equal(t, domain.DonationSuccess, resp[0].Donation.Status)
		assert.Equal(t, "reg-1", resp[1].ID)
	})

	t.Run("Empty listing is a JSON array", func(t *testing.T) {
		regs.EXPECT().ListAll(gomock.Any()).Return(nil, nil)

		rr := httptest.NewRecorder()
		handler.ListAll(rr, httptest.NewRequest("GET", "/api/admin/registrations", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})

	t.Run("Service failure", func(t *testing.T) {
		regs.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("some error"))

		rr := httptest.NewRecorder()
		handler.ListAll(rr, httptest.NewRequest("GET", "/api/admin/registrations", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestGetStatsHandler(t *testing.T) {
	handler, _, stats := NewMock(t)

	t.Run("Aggregated counters", func(t *testing.T) {
		stats.EXPECT().GetStats(gomock.Any()).Return(&domain.Stats{
			TotalRegistrations: 4,
			TotalDonations:     125,
			PendingCount:       2,
		}, nil)

		rr := httptest.NewRecorder()
		handler.GetStats(rr, httptest.NewRequest("GET", "/api/admin/stats", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.StatsDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, int64(4), resp.TotalRegistrations)
		assert.Equal(t, float64(125), resp.TotalDonations)
		assert.Equal(t, int64(2), resp.PendingCount)
	})

	t.Run("Service failure", func(t *testing.T) {
		stats.EXPECT().GetStats(gomock.Any()).Return(nil, errors.New("some error"))

		rr := httptest.NewRecorder()
		handler.GetStats(rr, httptest.NewRequest("GET", "/api/admin/stats", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
