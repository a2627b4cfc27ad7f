package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"donorhub/internal/domain"
	"donorhub/internal/dto"
	"donorhub/internal/service/identityservice"
	pkgauth "donorhub/pkg/auth"
	"donorhub/pkg/utils"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=auth

type Service interface {
	Login(ctx context.Context, username string) (*domain.User, string, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type AuthHandler struct {
	identityService Service
}

func New(identityService Service) *AuthHandler {
	return &AuthHandler{
		identityService: identityService,
	}
}

// Login godoc
//
//	@Summary		Authenticate by username
//	@Description	Resolve a seeded username to its identity and issue a session token. No password.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Unknown username"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Username is required")
		return
	}

	user, token, err := h.identityService.Login(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, identityservice.ErrInvalidCredential) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid username")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Token: token,
		User:  dto.NewUserDTO(user),
	})
}

// Logout godoc
//
//	@Summary		End the session
//	@Description	Session state lives in the bearer token; the server clears nothing and the client discards the token.
//	@Tags			Auth
//	@Success		204
//	@Router			/api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// Me godoc
//
//	@Summary		Current identity
//	@Description	Resolve the bearer token to its user record.
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.UserDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := pkgauth.UserIDFromContext(r.Context())

	user, err := h.identityService.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, identityservice.ErrInvalidCredential) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserDTO(user))
}
