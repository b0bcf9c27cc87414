package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/clinic-service/internal/api/http"
	"github.com/spec-kit/clinic-service/internal/api/http/handlers"
	"github.com/spec-kit/clinic-service/internal/auth"
	"github.com/spec-kit/clinic-service/internal/config"
	"github.com/spec-kit/clinic-service/internal/events"
	"github.com/spec-kit/clinic-service/internal/observability"
	"github.com/spec-kit/clinic-service/internal/persistence"
	"github.com/spec-kit/clinic-service/internal/repository"
	"github.com/spec-kit/clinic-service/internal/service"
	"github.com/spec-kit/clinic-service/internal/storage"
	"github.com/spec-kit/clinic-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	staffRepo := repository.NewStaffRepository(pool)
	doctorRepo := repository.NewDoctorRepository(pool)
	patientRepo := repository.NewPatientRepository(pool)
	appointmentRepo := repository.NewAppointmentRepository(pool)
	recordRepo := repository.NewMedicalRecordRepository(pool)
	planRepo := repository.NewTreatmentPlanRepository(pool)
	procedureRepo := repository.NewProcedureRepository(pool)
	documentRepo := repository.NewClinicalDocumentRepository(pool)
	imageRepo := repository.NewPatientImageRepository(pool)
	expenseRepo := repository.NewExpenseRepository(pool)
	incomeRepo := repository.NewOtherIncomeRepository(pool)
	uow := repository.NewUnitOfWork(pool)

	dispatcher := events.NewInMemoryDispatcher()
	diskStore := storage.NewDiskStore(cfg.Upload.BaseDir, cfg.Upload.MaxUploadBytes)
	metrics := observability.NewMetrics()

	authService := service.NewAuthService(*cfg, staffRepo)
	staffService := service.NewStaffService(*cfg, staffRepo, doctorRepo)
	doctorService, err := service.NewDoctorService(*cfg, doctorRepo, uow, dispatcher, redis, logger)
	if err != nil {
		logger.Fatal("failed to init doctor service", zap.Error(err))
	}
	patientService := service.NewPatientService(patientRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, patientRepo, doctorRepo, dispatcher)
	recordService := service.NewMedicalRecordService(recordRepo, patientRepo, doctorRepo)
	planService := service.NewTreatmentPlanService(planRepo, appointmentRepo)
	procedureService := service.NewProcedureService(procedureRepo, planRepo)
	documentService := service.NewDocumentService(documentRepo, patientRepo, diskStore, dispatcher, logger)
	imageService := service.NewImageService(imageRepo, patientRepo, diskStore, logger)
	financeService := service.NewFinanceService(expenseRepo, incomeRepo, staffRepo, patientRepo)
	notificationService := service.NewNotificationService(dispatcher, cfg.Notification, logger)

	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), staffRepo)

	app := fiber.New(fiber.Config{
		AppName:   cfg.App.Name,
		BodyLimit: int(cfg.Upload.MaxUploadBytes) + 1024*1024,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:            handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:              handlers.NewAuthHandler(authService),
		Staff:             handlers.NewStaffHandler(staffService),
		Doctors:           handlers.NewDoctorsHandler(doctorService),
		Patients:          handlers.NewPatientsHandler(patientService),
		Appointments:      handlers.NewAppointmentsHandler(appointmentService),
		MedicalRecords:    handlers.NewMedicalRecordsHandler(recordService),
		TreatmentPlans:    handlers.NewTreatmentPlansHandler(planService),
		Procedures:        handlers.NewProceduresHandler(procedureService),
		ClinicalDocuments: handlers.NewClinicalDocumentsHandler(documentService),
		PatientImages:     handlers.NewPatientImagesHandler(imageService),
		Expenses:          handlers.NewExpensesHandler(financeService),
		OtherIncomes:      handlers.NewOtherIncomesHandler(financeService),
		AuthMiddleware:    authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
