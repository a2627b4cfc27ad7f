package registrations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"donorhub/internal/domain"
	"donorhub/internal/dto"
	"donorhub/internal/service/registrationservice"
	"donorhub/pkg/auth"
	"donorhub/pkg/utils"

	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=registrations.go -destination=registrations_mock.go -package=registrations

type Service interface {
	Create(ctx context.Context, ownerID string, input registrationservice.Input) (*domain.Registration, error)
	GetByID(ctx context.Context, id string) (*domain.Registration, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Registration, error)
}

type RegistrationHandler struct {
	registrationService Service
}

func New(registrationService Service) *RegistrationHandler {
	return &RegistrationHandler{
		registrationService: registrationService,
	}
}

// Create godoc
//
//	@Summary		Create a registration
//	@Description	Record a participant's intent to support a campaign. A PENDING zero-amount donation is created with it. Unauthenticated callers register as guest.
//	@Tags			Registrations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateRegistrationRequestDTO	true	"Registration fields"
//	@Success		201		{object}	dto.RegistrationDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/registrations [post]
func (h *RegistrationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRegistrationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FullName == "" || req.Phone == "" || req.CampaignName == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "fullName, phone and campaignName are required")
		return
	}

	ownerID := auth.UserIDFromContext(r.Context())
	if ownerID == "" {
		ownerID = domain.GuestOwnerID
	}

	reg, err := h.registrationService.Create(r.Context(), ownerID, registrationservice.Input{
		FullName:     req.FullName,
		Phone:        req.Phone,
		CampaignName: req.CampaignName,
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.NewRegistrationDTO(reg))
}

// GetByID godoc
//
//	@Summary		Get a registration
//	@Description	Public read so guest donors can open their payment link.
//	@Tags			Registrations
//	@Produce		json
//	@Param			id	path		string	true	"Registration id"
//	@Success		200	{object}	dto.RegistrationDTO
//	@Failure		404	{object}	utils.Response	"Registration not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/registrations/{id} [get]
func (h *RegistrationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	reg, err := h.registrationService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, registrationservice.ErrRegistrationNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Registration not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.NewRegistrationDTO(reg))
}

// ListMine godoc
//
//	@Summary		List own registrations
//	@Description	The authenticated user's registrations, newest first.
//	@Tags			Registrations
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.RegistrationDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/registrations [get]
func (h *RegistrationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	ownerID := auth.UserIDFromContext(r.Context())

	regs, err := h.registrationService.ListByOwner(r.Context(), ownerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.NewRegistrationListDTO(regs))
}
