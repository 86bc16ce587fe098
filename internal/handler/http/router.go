package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/handler/http/middleware"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	frontendURL string,
	env string,
	authHandler AuthHandler,
	organizationHandler OrganizationHandler,
	invitationHandler InvitationHandler,
	masterHandler MasterHandler,
	rateHandler RateHandler,
	productionHandler ProductionHandler,
	payrollHandler PayrollHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ratesheet"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Get("/login/oauth/google", authHandler.LoginWithGoogle)
			r.Get("/oauth/callback/google", authHandler.OAuthCallbackGoogle)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Public: invited people open this link before they have an account.
		r.Get("/invitations/token/{token}", invitationHandler.GetByToken)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/organizations", func(r chi.Router) {
				r.Post("/", organizationHandler.Create)
				r.Post("/join", organizationHandler.Join)
				r.Post("/onboarding/complete", organizationHandler.CompleteOnboarding)

				r.Group(func(r chi.Router) {
					r.Use(middleware.OrganizationRequired)
					r.Get("/my", organizationHandler.GetMine)
					r.Get("/my/members", organizationHandler.ListMembers)

					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Put("/my/members/{userId}/role", organizationHandler.UpdateMemberRole)
					})
				})
			})

			// Requires organization membership
			r.Group(func(r chi.Router) {
				r.Use(middleware.OrganizationRequired)

				r.Route("/invitations", func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", invitationHandler.Create)
					r.Get("/", invitationHandler.List)
				})

				r.Route("/sections", func(r chi.Router) {
					r.Post("/", masterHandler.CreateSection)
					r.Get("/", masterHandler.ListSections)
					r.Get("/{id}", masterHandler.GetSection)
					r.Get("/{id}/workers", masterHandler.ListSectionWorkers)
					r.Put("/{id}", masterHandler.UpdateSection)
					r.Delete("/{id}", masterHandler.DeleteSection)
				})

				r.Route("/workers", func(r chi.Router) {
					r.Post("/", masterHandler.CreateWorker)
					r.Get("/", masterHandler.ListWorkers)
					r.Get("/{id}", masterHandler.GetWorker)
					r.Put("/{id}", masterHandler.UpdateWorker)
					r.Delete("/{id}", masterHandler.DeleteWorker)
				})

				r.Route("/styles", func(r chi.Router) {
					r.Post("/", masterHandler.CreateStyle)
					r.Get("/", masterHandler.ListStyles)
					r.Get("/{id}", masterHandler.GetStyle)
					r.Put("/{id}", masterHandler.UpdateStyle)
					r.Delete("/{id}", masterHandler.DeleteStyle)

					r.Route("/{id}/rates", func(r chi.Router) {
						r.Post("/", rateHandler.CreateStyleRate)
						r.Get("/", rateHandler.ListStyleRates)
						r.Get("/resolve", rateHandler.ResolveRate)
					})
				})

				r.Route("/production", func(r chi.Router) {
					r.Post("/", productionHandler.Create)
					r.Put("/{id}", productionHandler.Update)
					r.Delete("/{id}", productionHandler.Delete)
					r.Get("/workers/{id}", productionHandler.ListByWorker)
				})

				r.Get("/payroll/workers/{id}", payrollHandler.GetWorkerPayroll)

				r.Route("/reports", func(r chi.Router) {
					r.Get("/sections/{id}/summary", reportHandler.SectionSummary)
					r.Get("/sections/{id}/styles/{styleId}/summary", reportHandler.StyleSummaryForSection)
					r.Get("/daily", reportHandler.DailyProduction)
				})
			})
		})
	})
	return r
}
