package donations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"donorhub/internal/domain"
	"donorhub/internal/dto"
	"donorhub/internal/gateway"
	"donorhub/internal/service/registrationservice"
	"donorhub/pkg/auth"
	"donorhub/pkg/utils"

	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=donations.go -destination=donations_mock.go -package=donations

type Gateway interface {
	StartPayment(ctx context.Context, regID string, req gateway.PaymentRequest) (*gateway.Attempt, error)
	StartDecline(ctx context.Context, regID string, req gateway.PaymentRequest) (*gateway.Attempt, error)
	Status(regID string) (*gateway.Attempt, bool)
}

type Registrations interface {
	GetByID(ctx context.Context, id string) (*domain.Registration, error)
}

type DonationHandler struct {
	gateway       Gateway
	registrations Registrations
}

func New(gw Gateway, registrations Registrations) *DonationHandler {
	return &DonationHandler{
		gateway:       gw,
		registrations: registrations,
	}
}

// Pay godoc
//
//	@Summary		Start the standard authorization flow
//	@Description	Runs the scripted phase sequence against the registration's donation. Poll the attempt endpoint for progress.
//	@Tags			Donations
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Registration id"
//	@Param			request	body		dto.PayRequestDTO	true	"Amount and card details"
//	@Success		202		{object}	dto.AttemptStatusDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Registration not found"
//	@Failure		409		{object}	utils.Response	"Donation already succeeded or attempt in progress"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/registrations/{id}/donation [post]
func (h *DonationHandler) Pay(w http.ResponseWriter, r *http.Request) {
	h.start(w, r, h.gateway.StartPayment)
}

// Decline godoc
//
//	@Summary		Simulate an explicit decline
//	@Description	Distinct entry point: a short contact phase, then the donation is finalized FAILED. No navigation signal.
//	@Tags			Donations
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Registration id"
//	@Param			request	body		dto.PayRequestDTO	true	"Amount and card details"
//	@Success		202		{object}	dto.AttemptStatusDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Registration not found"
//	@Failure		409		{object}	utils.Response	"Donation already succeeded or attempt in progress"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/registrations/{id}/donation/decline [post]
func (h *DonationHandler) Decline(w http.ResponseWriter, r *http.Request) {
	h.start(w, r, h.gateway.StartDecline)
}

func (h *DonationHandler) start(w http.ResponseWriter, r *http.Request, entry func(context.Context, string, gateway.PaymentRequest) (*gateway.Attempt, error)) {
	regID := chi.URLParam(r, "id")

	var req dto.PayRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	attempt, err := entry(r.Context(), regID, gateway.PaymentRequest{
		Amount: req.Amount,
		Card: gateway.CardDetails{
			Name:   req.CardName,
			Number: req.CardNumber,
			Expiry: req.Expiry,
			CVC:    req.CVC,
		},
		Authenticated: auth.UserIDFromContext(r.Context()) != "",
	})
	if err != nil {
		switch {
		case errors.Is(err, registrationservice.ErrRegistrationNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Registration not found")
		case errors.Is(err, gateway.ErrAlreadyPaid):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, gateway.ErrAttemptInProgress):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusAccepted, attemptDTO(attempt.Status()))
}

// Status godoc
//
//	@Summary		Poll the payment attempt
//	@Description	Returns the live attempt snapshot; when no attempt was started, the persisted donation state is mapped instead (PENDING reads as IDLE).
//	@Tags			Donations
//	@Produce		json
//	@Param			id	path		string	true	"Registration id"
//	@Success		200	{object}	dto.AttemptStatusDTO
//	@Failure		404	{object}	utils.Response	"Registration not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/registrations/{id}/donation [get]
func (h *DonationHandler) Status(w http.ResponseWriter, r *http.Request) {
	regID := chi.URLParam(r, "id")

	if attempt, ok := h.gateway.Status(regID); ok {
		utils.RespondWithJSON(w, http.StatusOK, attemptDTO(attempt.Status()))
		return
	}

	reg, err := h.registrations.GetByID(r.Context(), regID)
	if err != nil {
		if errors.Is(err, registrationservice.ErrRegistrationNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Registration not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.AttemptStatusDTO{
		State:  donationState(reg.Donation.Status),
		Amount: reg.Donation.Amount,
	})
}

func attemptDTO(status gateway.Status) dto.AttemptStatusDTO {
	out := dto.AttemptStatusDTO{
		State:      string(status.State),
		Phase:      status.Phase,
		Amount:     status.Amount,
		NavigateTo: status.NavigateTo,
	}
	if status.Err != nil {
		out.Error = status.Err.Error()
	}
	return out
}

func donationState(status string) string {
	if status == domain.DonationPending {
		return string(gateway.StateIdle)
	}
	return status
}
