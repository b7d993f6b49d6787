package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/hrlite/crm-backend-go/internal/handler/http/middleware"
	"github.com/hrlite/crm-backend-go/internal/pkg/session"
)

type RouterConfig struct {
	Env            string
	AllowedOrigins []string
}

func NewRouter(
	cfg RouterConfig,
	sessions *session.Store,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	departmentHandler DepartmentHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	payrollHandler PayrollHandler,
	dashboardHandler DashboardHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-crm"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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
			r.Post("/sign-in", authHandler.SignIn)
			r.Post("/sign-up", authHandler.SignUp)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AuthRequired(sessions))
				r.Get("/me", authHandler.Me)
				r.Post("/sign-out", authHandler.SignOut)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthRequired(sessions))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.ListEmployees)
				r.Post("/", employeeHandler.CreateEmployee)
				r.Get("/next-code", employeeHandler.NextCode)
				r.Get("/{id}", employeeHandler.GetEmployee)
				r.Put("/{id}", employeeHandler.UpdateEmployee)
				r.Delete("/{id}", employeeHandler.DeleteEmployee)
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", departmentHandler.ListDepartments)
				r.Post("/", departmentHandler.CreateDepartment)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", attendanceHandler.ListAttendance)
				r.Post("/mark-all", attendanceHandler.MarkAllPresent)
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Get("/", leaveHandler.ListLeaveRequests)
				r.Post("/", leaveHandler.CreateLeaveRequest)
				r.Post("/{id}/approve", leaveHandler.ApproveLeaveRequest)
				r.Post("/{id}/reject", leaveHandler.RejectLeaveRequest)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/", payrollHandler.ListPayroll)
				r.Post("/run", payrollHandler.RunPayroll)
			})

			r.Get("/dashboard", dashboardHandler.Summary)
			r.Get("/reports/overview", reportHandler.Overview)
		})
	})

	return r
}
