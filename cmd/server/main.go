package main

import (
	"fmt"
	"log"

	"markguard/internal/config"
	emailnoop "markguard/internal/email/noop"
	emailses "markguard/internal/email/ses"
	"markguard/internal/handler"
	"markguard/internal/port"
	"markguard/internal/repository/postgres"
	"markguard/internal/router"
	"markguard/internal/service"
	s3storage "markguard/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	brandRepo := postgres.NewBrandRepo(db)
	caseRepo := postgres.NewCaseRepo(db)
	paymentRepo := postgres.NewPaymentRepo(db)
	interactionRepo := postgres.NewInteractionRepo(db)
	templateRepo := postgres.NewTemplateRepo(db)
	evidenceRepo := postgres.NewEvidenceRepo(db)
	metricsRepo := postgres.NewMetricsRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email delivery
	var emailSender port.EmailSender
	if cfg.Email.Provider == "ses" {
		emailSender, err = emailses.NewSESSender(
			cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName, cfg.Email.FrontendURL)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	} else {
		emailSender = emailnoop.NewNoopSender(cfg.Email.FrontendURL)
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	userSvc := service.NewUserService(userRepo, emailSender)
	brandSvc := service.NewBrandService(brandRepo, caseRepo)
	caseSvc := service.NewCaseService(caseRepo)
	paymentSvc := service.NewPaymentService(paymentRepo, caseRepo)
	interactionSvc := service.NewInteractionService(interactionRepo, caseRepo)
	templateSvc := service.NewTemplateService(templateRepo)
	evidenceSvc := service.NewEvidenceService(evidenceRepo, caseRepo, s3Client, &cfg.S3)
	metricsSvc := service.NewMetricsService(metricsRepo)

	// Setup router
	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins, router.Handlers{
		Auth:        handler.NewAuthHandler(authSvc, userSvc),
		User:        handler.NewUserHandler(userSvc),
		Brand:       handler.NewBrandHandler(brandSvc),
		Case:        handler.NewCaseHandler(caseSvc),
		Payment:     handler.NewPaymentHandler(paymentSvc),
		Interaction: handler.NewInteractionHandler(interactionSvc),
		Template:    handler.NewTemplateHandler(templateSvc),
		Evidence:    handler.NewEvidenceHandler(evidenceSvc),
		Metrics:     handler.NewMetricsHandler(metricsSvc),
		Health:      handler.NewHealthHandler(db),
	})

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
