package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hrlite/crm-backend-go/internal/config"
	"github.com/hrlite/crm-backend-go/internal/fixtures"
	appHTTP "github.com/hrlite/crm-backend-go/internal/handler/http"
	"github.com/hrlite/crm-backend-go/internal/pkg/database"
	"github.com/hrlite/crm-backend-go/internal/pkg/session"
	"github.com/hrlite/crm-backend-go/internal/repository/sqlite"
	attendanceService "github.com/hrlite/crm-backend-go/internal/service/attendance"
	authService "github.com/hrlite/crm-backend-go/internal/service/auth"
	dashboardService "github.com/hrlite/crm-backend-go/internal/service/dashboard"
	departmentService "github.com/hrlite/crm-backend-go/internal/service/department"
	employeeService "github.com/hrlite/crm-backend-go/internal/service/employee"
	leaveService "github.com/hrlite/crm-backend-go/internal/service/leave"
	payrollService "github.com/hrlite/crm-backend-go/internal/service/payroll"
	reportService "github.com/hrlite/crm-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewSQLiteDB(cfg.Database.DSN)
	if err != nil {
		fmt.Println("Error opening database:", err)
		return
	}
	defer db.Close()

	ctx := context.Background()
	if err := sqlite.Migrate(ctx, db); err != nil {
		fmt.Println("Error migrating database:", err)
		return
	}

	userRepo := sqlite.NewUserRepository(db)
	departmentRepo := sqlite.NewDepartmentRepository(db)
	employeeRepo := sqlite.NewEmployeeRepository(db)
	attendanceRepo := sqlite.NewAttendanceRepository(db)
	leaveRepo := sqlite.NewLeaveRepository(db)
	payrollRepo := sqlite.NewPayrollRepository(db)
	dashboardRepo := sqlite.NewDashboardRepository(db)
	reportRepo := sqlite.NewReportRepository(db)

	if cfg.Database.SeedDemoData {
		if err := fixtures.Seed(ctx, db, userRepo, departmentRepo, employeeRepo); err != nil {
			fmt.Println("Error seeding database:", err)
			return
		}
	}

	sessions := session.NewStore()

	authSvc := authService.NewAuthService(userRepo, sessions)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, departmentRepo)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)
	reportSvc := reportService.NewReportService(reportRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	departmentHandler := appHTTP.NewDepartmentHandler(departmentSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:            cfg.App.Env,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		},
		sessions,
		authHandler,
		employeeHandler,
		departmentHandler,
		attendanceHandler,
		leaveHandler,
		payrollHandler,
		dashboardHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
