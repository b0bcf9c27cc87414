package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/clinic-service/internal/api/http/handlers"
	"github.com/spec-kit/clinic-service/internal/auth"
	"github.com/spec-kit/clinic-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health            *handlers.HealthHandler
	Auth              *handlers.AuthHandler
	Staff             *handlers.StaffHandler
	Doctors           *handlers.DoctorsHandler
	Patients          *handlers.PatientsHandler
	Appointments      *handlers.AppointmentsHandler
	MedicalRecords    *handlers.MedicalRecordsHandler
	TreatmentPlans    *handlers.TreatmentPlansHandler
	Procedures        *handlers.ProceduresHandler
	ClinicalDocuments *handlers.ClinicalDocumentsHandler
	PatientImages     *handlers.PatientImagesHandler
	Expenses          *handlers.ExpensesHandler
	OtherIncomes      *handlers.OtherIncomesHandler
	AuthMiddleware    *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Read access is open to any clinic role,
// writes are restricted to administrative roles, and doctors may additionally
// write to the clinical resources they author.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	// Stored files are retrievable without authentication; the random
	// uuid filename is the capability. The prefixes are shared with the
	// response mappers so embedded URLs always match a registered route.
	app.Get(handlers.DocumentPublicPrefix+":filename", cfg.ClinicalDocuments.ServeFile)
	app.Get(handlers.ImagePublicPrefix+":filename", cfg.PatientImages.ServeFile)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Patch("/change-password", cfg.AuthMiddleware.Handle, auth.RequireRole(), cfg.Auth.ChangePassword)
	authGroup.Post("/admin/reset-password",
		cfg.AuthMiddleware.Handle,
		auth.RequireRole(domain.StaffRoleSuperAdmin),
		cfg.Auth.AdminResetPassword)

	read := auth.RequireRole(domain.StaffRoleStaff, domain.StaffRoleDoctor, domain.StaffRoleAdmin, domain.StaffRoleSuperAdmin)
	write := auth.RequireRole(domain.StaffRoleStaff, domain.StaffRoleAdmin, domain.StaffRoleSuperAdmin)
	clinicalWrite := auth.RequireRole(domain.StaffRoleStaff, domain.StaffRoleDoctor, domain.StaffRoleAdmin, domain.StaffRoleSuperAdmin)
	remove := auth.RequireRole(domain.StaffRoleAdmin, domain.StaffRoleSuperAdmin)
	admin := auth.RequireRole(domain.StaffRoleAdmin, domain.StaffRoleSuperAdmin)

	staff := app.Group("/staff", cfg.AuthMiddleware.Handle, admin)
	staff.Post("/", cfg.Staff.Create)
	staff.Get("/", cfg.Staff.List)
	staff.Get("/:id", cfg.Staff.Get)
	staff.Patch("/:id", cfg.Staff.Update)
	staff.Delete("/:id", cfg.Staff.Delete)

	doctors := app.Group("/doctors", cfg.AuthMiddleware.Handle)
	doctors.Get("/", read, cfg.Doctors.List)
	doctors.Get("/:id", read, cfg.Doctors.Get)
	doctors.Post("/", write, cfg.Doctors.Create)
	doctors.Patch("/:id", write, cfg.Doctors.Update)
	doctors.Delete("/:id", remove, cfg.Doctors.Delete)

	patients := app.Group("/patients", cfg.AuthMiddleware.Handle)
	patients.Get("/", read, cfg.Patients.List)
	patients.Get("/:id", read, cfg.Patients.Get)
	patients.Post("/", write, cfg.Patients.Create)
	patients.Patch("/:id", write, cfg.Patients.Update)
	patients.Delete("/:id", remove, cfg.Patients.Delete)

	appointments := app.Group("/appointments", cfg.AuthMiddleware.Handle)
	appointments.Get("/", read, cfg.Appointments.List)
	appointments.Get("/:id", read, cfg.Appointments.Get)
	appointments.Post("/", write, cfg.Appointments.Create)
	appointments.Patch("/:id", write, cfg.Appointments.Update)
	appointments.Delete("/:id", remove, cfg.Appointments.Delete)

	records := app.Group("/medical-records", cfg.AuthMiddleware.Handle)
	records.Get("/", read, cfg.MedicalRecords.List)
	records.Get("/:id", read, cfg.MedicalRecords.Get)
	records.Post("/", clinicalWrite, cfg.MedicalRecords.Create)
	records.Patch("/:id", clinicalWrite, cfg.MedicalRecords.Update)
	records.Delete("/:id", remove, cfg.MedicalRecords.Delete)

	plans := app.Group("/treatment-plans", cfg.AuthMiddleware.Handle)
	plans.Get("/", read, cfg.TreatmentPlans.List)
	plans.Get("/:id", read, cfg.TreatmentPlans.Get)
	plans.Post("/", clinicalWrite, cfg.TreatmentPlans.Create)
	plans.Patch("/:id", clinicalWrite, cfg.TreatmentPlans.Update)
	plans.Delete("/:id", remove, cfg.TreatmentPlans.Delete)

	procedures := app.Group("/procedures", cfg.AuthMiddleware.Handle)
	procedures.Get("/", read, cfg.Procedures.List)
	procedures.Get("/:id", read, cfg.Procedures.Get)
	procedures.Post("/", clinicalWrite, cfg.Procedures.Create)
	procedures.Patch("/:id", clinicalWrite, cfg.Procedures.Update)
	procedures.Delete("/:id", remove, cfg.Procedures.Delete)

	documents := app.Group("/clinical-documents", cfg.AuthMiddleware.Handle)
	documents.Get("/", read, cfg.ClinicalDocuments.List)
	documents.Get("/:id", read, cfg.ClinicalDocuments.Get)
	documents.Post("/", write, cfg.ClinicalDocuments.Upload)
	documents.Patch("/:id", write, cfg.ClinicalDocuments.Update)
	documents.Delete("/:id", remove, cfg.ClinicalDocuments.Delete)

	images := app.Group("/patient-images", cfg.AuthMiddleware.Handle)
	images.Get("/", read, cfg.PatientImages.List)
	images.Get("/:id", read, cfg.PatientImages.Get)
	images.Post("/", write, cfg.PatientImages.Upload)
	images.Patch("/:id", write, cfg.PatientImages.Update)
	images.Delete("/:id", remove, cfg.PatientImages.Delete)

	expenses := app.Group("/expenses", cfg.AuthMiddleware.Handle)
	expenses.Get("/", read, cfg.Expenses.List)
	expenses.Get("/:id", read, cfg.Expenses.Get)
	expenses.Post("/", write, cfg.Expenses.Create)
	expenses.Patch("/:id", write, cfg.Expenses.Update)
	expenses.Delete("/:id", remove, cfg.Expenses.Delete)

	incomes := app.Group("/other-incomes", cfg.AuthMiddleware.Handle)
	incomes.Get("/", read, cfg.OtherIncomes.List)
	incomes.Get("/:id", read, cfg.OtherIncomes.Get)
	incomes.Post("/", write, cfg.OtherIncomes.Create)
	incomes.Patch("/:id", write, cfg.OtherIncomes.Update)
	incomes.Delete("/:id", remove, cfg.OtherIncomes.Delete)
}
