package main

import (
	"fmt"
	"net/http"

	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/config"
	appHTTP "github.com/nomandhoni-cs/ratesheet-backend-go/internal/handler/http"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/pkg/database"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/pkg/jwt"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/pkg/oauth"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/repository/postgresql"
	authService "github.com/nomandhoni-cs/ratesheet-backend-go/internal/service/auth"
	invitationService "github.com/nomandhoni-cs/ratesheet-backend-go/internal/service/invitation"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/service/master"
	organizationService "github.com/nomandhoni-cs/ratesheet-backend-go/internal/service/organization"
	payrollService "github.com/nomandhoni-cs/ratesheet-backend-go/internal/service/payroll"
	productionService "github.com/nomandhoni-cs/ratesheet-backend-go/internal/service/production"
	rateService "github.com/nomandhoni-cs/ratesheet-backend-go/internal/service/rate"
	reportService "github.com/nomandhoni-cs/ratesheet-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	organizationRepo := postgresql.NewOrganizationRepository(db)
	invitationRepo := postgresql.NewInvitationRepository(db)
	sectionRepo := postgresql.NewSectionRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	styleRepo := postgresql.NewStyleRepository(db)
	styleRateRepo := postgresql.NewStyleRateRepository(db)
	entryRepo := postgresql.NewEntryRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := authService.NewAuthService(userRepo, refreshTokenRepo, jwtService)
	organizationSvc := organizationService.NewOrganizationService(db, organizationRepo, userRepo, invitationRepo, cfg.Invite)
	invitationSvc := invitationService.NewInvitationService(invitationRepo, cfg.Invite)
	sectionSvc := master.NewSectionService(sectionRepo, userRepo)
	workerSvc := master.NewWorkerService(workerRepo, sectionRepo)
	styleSvc := master.NewStyleService(styleRepo)
	rateSvc := rateService.NewRateService(styleRateRepo, styleRepo)
	productionSvc := productionService.NewProductionService(entryRepo, workerRepo, styleRepo)
	payrollSvc := payrollService.NewPayrollService(entryRepo, styleRateRepo, styleRepo, workerRepo)
	reportSvc := reportService.NewReportService(entryRepo, styleRateRepo, styleRepo, sectionRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc, googleService, cfg.App.FrontendURL)
	organizationHandler := appHTTP.NewOrganizationHandler(organizationSvc)
	invitationHandler := appHTTP.NewInvitationHandler(invitationSvc)
	masterHandler := appHTTP.NewMasterHandler(sectionSvc, workerSvc, styleSvc)
	rateHandler := appHTTP.NewRateHandler(rateSvc)
	productionHandler := appHTTP.NewProductionHandler(productionSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		jwtService,
		cfg.App.FrontendURL,
		cfg.App.Env,
		authHandler,
		organizationHandler,
		invitationHandler,
		masterHandler,
		rateHandler,
		productionHandler,
		payrollHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
