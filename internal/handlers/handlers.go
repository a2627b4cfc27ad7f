package handlers

import (
	"net/http"

	_ "donorhub/docs"
	"donorhub/internal/domain"
	"donorhub/internal/gateway"
	adminhandlers "donorhub/internal/handlers/admin"
	authhandlers "donorhub/internal/handlers/auth"
	donationhandlers "donorhub/internal/handlers/donations"
	registrationhandlers "donorhub/internal/handlers/registrations"
	"donorhub/internal/service"
	pkgauth "donorhub/pkg/auth"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type RegistrationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type DonationHandler interface {
	Pay(w http.ResponseWriter, r *http.Request)
	Decline(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ListAll(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler         AuthHandler
	RegistrationHandler RegistrationHandler
	DonationHandler     DonationHandler
	AdminHandler        AdminHandler

	jwtService pkgauth.JWTServiceInterface
}

func New(s *service.Services, gw *gateway.Service, jwtService pkgauth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:         authhandlers.New(s.IdentityService),
		RegistrationHandler: registrationhandlers.New(s.RegistrationService),
		DonationHandler:     donationhandlers.New(gw, s.RegistrationService),
		AdminHandler:        adminhandlers.New(s.RegistrationService, s.StatsService),
		jwtService:          jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)

	requireAuth := pkgauth.AuthMiddleware(h.jwtService)
	optionalAuth := pkgauth.OptionalAuthMiddleware(h.jwtService)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.AuthHandler.Login)
			r.Post("/logout", h.AuthHandler.Logout)
			r.With(requireAuth).Get("/me", h.AuthHandler.Me)
		})

		r.Route("/registrations", func(r chi.Router) {
			r.With(optionalAuth).Post("/", h.RegistrationHandler.Create)
			r.Get("/{id}", h.RegistrationHandler.GetByID)

			// Guests pay through the same routes, by link.
			r.Route("/{id}/donation", func(r chi.Router) {
				r.Use(optionalAuth)
				r.Post("/", h.DonationHandler.Pay)
				r.Post("/decline", h.DonationHandler.Decline)
				r.Get("/", h.DonationHandler.Status)
			})
		})

		r.With(requireAuth).Get("/user/registrations", h.RegistrationHandler.ListMine)

		r.Route("/admin", func(r chi.Router) {
			r.Use(requireAuth, pkgauth.RequireRole(domain.RoleAdmin))
			r.Get("/registrations", h.AdminHandler.ListAll)
			r.Get("/stats", h.AdminHandler.GetStats)
		})
	})

	return r
}
