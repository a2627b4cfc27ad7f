package admin

import (
	"context"
	"net/http"

	"donorhub/internal/domain"
	"donorhub/internal/dto"
	"donorhub/pkg/utils"
)

//go:generate mockgen -source=admin.go -destination=admin_mock.go -package=admin

type Registrations interface {
	ListAll(ctx context.Context) ([]domain.Registration, error)
}

type Stats interface {
	GetStats(ctx context.Context) (*domain.Stats, error)
}

type AdminHandler struct {
	registrations Registrations
	stats         Stats
}

func New(registrations Registrations, stats Stats) *AdminHandler {
	return &AdminHandler{
		registrations: registrations,
		stats:         stats,
	}
}

// ListAll godoc
//
//	@Summary		List every registration
//	@Description	Full registration list for the administrative view, newest first. Carries all fields an export needs.
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.RegistrationDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/registrations [get]
func (h *AdminHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	regs, err := h.registrations.ListAll(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.NewRegistrationListDTO(regs))
}

// GetStats godoc
//
//	@Summary		Aggregate stats
//	@Description	Registration count, sum of successful donation amounts, pending donation count.
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.StatsDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/stats [get]
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.GetStats(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.NewStatsDTO(stats))
}
