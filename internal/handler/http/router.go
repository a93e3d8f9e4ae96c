package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/callpoint-hr/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/callpoint-hr/timeclock-backend-go/internal/repository/postgresql"
)

func NewRouter(
	allowedIPRepo postgresql.AllowedIPRepository,
	reportHandler ReportHandler,
	groupHandler GroupHandler,
	scheduleHandler ScheduleHandler,
	justificationHandler JustificationHandler,
	permissionHandler PermissionHandler,
	masterHandler MasterHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timeclock-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RealIP)

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.IPAllowed(allowedIPRepo))

		r.Route("/reports", func(r chi.Router) {
			r.Post("/attendance", reportHandler.GenerateAttendanceReport)
			r.Post("/attendance/export", reportHandler.ExportAttendanceReport)
		})

		r.Route("/portfolios", func(r chi.Router) {
			r.Post("/", groupHandler.CreatePortfolio)
			r.Get("/", groupHandler.ListPortfolios)
			r.Put("/{id}", groupHandler.UpdatePortfolio)
			r.Delete("/{id}", groupHandler.VoidPortfolio)
		})

		r.Route("/groups", func(r chi.Router) {
			r.Post("/", groupHandler.CreateGroup)
			r.Get("/", groupHandler.ListGroups)
			r.Get("/{id}", groupHandler.GetGroupDetail)
			r.Put("/{id}", groupHandler.UpdateGroup)
			r.Delete("/{id}", groupHandler.DeleteGroup)

			r.Post("/{id}/members", groupHandler.AssignMembers)
			r.Delete("/{id}/members", groupHandler.RemoveMembers)

			r.Post("/assignments/upload", groupHandler.UploadAssignmentSheet)
			r.Get("/assignments/template", groupHandler.DownloadAssignmentTemplate)
		})

		r.Route("/schedule-overrides", func(r chi.Router) {
			r.Post("/", scheduleHandler.UpsertOverride)
			r.Get("/", scheduleHandler.ListOverrides)
			r.Delete("/{id}", scheduleHandler.DeleteOverride)
		})

		r.Route("/justifications", func(r chi.Router) {
			r.Post("/", justificationHandler.CreateJustification)
			r.Get("/", justificationHandler.ListJustifications)
			r.Put("/{id}", justificationHandler.UpdateJustification)
			r.Delete("/{id}", justificationHandler.VoidJustification)
		})

		r.Route("/permissions", func(r chi.Router) {
			r.Post("/", permissionHandler.CreatePermission)
			r.Get("/", permissionHandler.ListPermissions)
			r.Put("/{id}", permissionHandler.UpdatePermission)
			r.Delete("/{id}", permissionHandler.DeletePermission)
		})

		r.Route("/master", func(r chi.Router) {
			r.Get("/departments", masterHandler.ListDepartments)
			r.Get("/employees", masterHandler.SearchEmployees)
		})
	})

	return r
}
