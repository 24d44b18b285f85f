package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/logitrack-api/internal/application/auth"
	"github.com/jhoicas/logitrack-api/internal/application/schedule"
	"github.com/jhoicas/logitrack-api/internal/application/usecase"
	"github.com/jhoicas/logitrack-api/internal/domain"
	"github.com/jhoicas/logitrack-api/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ScheduleUC *schedule.ScheduleUseCase
	LocationUC *usecase.LocationUseCase
	ReportUC   *usecase.ReportUseCase
	ExportUC   *usecase.ExportUseCase
	FileUC     *usecase.FileUseCase
	PlannerUC  *usecase.PlannerUseCase
	ActivityUC *usecase.ActivityUseCase
	PDFGen     *pdf.MarotoReportGenerator
	JWTSecret  string
}

// Roles con permiso de edición y de administración.
var (
	editRoles  = []string{domain.RoleManager, domain.RoleAdmin, domain.RoleOwner}
	adminRoles = []string{domain.RoleAdmin, domain.RoleOwner}
)

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público, salvo logout)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Schedules: lectura para todos, mutación para roles de edición
	schedules := protected.Group("/schedules")
	scheduleHandler := NewScheduleHandler(deps.ScheduleUC)
	schedules.Get("/", scheduleHandler.List)
	schedules.Get("/:id", scheduleHandler.GetByID)
	schedules.Post("/", RequireRole(editRoles...), scheduleHandler.Create)
	schedules.Put("/:id/status", RequireRole(editRoles...), scheduleHandler.UpdateStatus)

	// Locations: lectura para todos, alta/baja para admin y owner
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Get("/", locationHandler.List)
	locations.Post("/", RequireRole(adminRoles...), locationHandler.Add)
	locations.Delete("/", RequireRole(adminRoles...), locationHandler.Delete)

	// Dashboard y stock
	dashboardHandler := NewDashboardHandler(deps.ScheduleUC, deps.LocationUC, deps.ReportUC)
	protected.Get("/dashboard", dashboardHandler.Dashboard)
	protected.Get("/stock", dashboardHandler.StockLevels)

	// Reportes
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.LocationUC, deps.PDFGen)
	reports.Get("/", reportHandler.Summary)
	reports.Get("/pdf", reportHandler.PDF)

	// Archivos: descarga para todos, subida para roles de edición
	files := protected.Group("/files")
	fileHandler := NewFileHandler(deps.FileUC)
	files.Get("/", fileHandler.List)
	files.Get("/:id/download", fileHandler.Download)
	files.Post("/", RequireRole(editRoles...), fileHandler.Upload)

	// Exportación
	exportHandler := NewExportHandler(deps.ExportUC)
	protected.Get("/export/:dataset", exportHandler.Export)

	// Planner (mock)
	planner := protected.Group("/planner")
	plannerHandler := NewPlannerHandler(deps.PlannerUC)
	planner.Post("/optimize", plannerHandler.Optimize)
	planner.Get("/delay-predictions", plannerHandler.DelayPredictions)

	// Bitácora de actividad (solo admin y owner)
	activityHandler := NewActivityHandler(deps.ActivityUC)
	protected.Get("/activities", RequireRole(adminRoles...), activityHandler.List)
}
