package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/callpoint-hr/timeclock-backend-go/internal/config"
	appHTTP "github.com/callpoint-hr/timeclock-backend-go/internal/handler/http"
	"github.com/callpoint-hr/timeclock-backend-go/internal/pkg/database"
	"github.com/callpoint-hr/timeclock-backend-go/internal/repository/postgresql"
	groupService "github.com/callpoint-hr/timeclock-backend-go/internal/service/group"
	justificationService "github.com/callpoint-hr/timeclock-backend-go/internal/service/justification"
	permissionService "github.com/callpoint-hr/timeclock-backend-go/internal/service/permission"
	reportService "github.com/callpoint-hr/timeclock-backend-go/internal/service/report"
	scheduleService "github.com/callpoint-hr/timeclock-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	punchRepo := postgresql.NewPunchRepository(db, cfg.Report.Timezone)
	portfolioRepo := postgresql.NewPortfolioRepository(db)
	groupRepo := postgresql.NewGroupRepository(db)
	overrideRepo := postgresql.NewOverrideRepository(db)
	justificationRepo := postgresql.NewJustificationRepository(db)
	permissionRepo := postgresql.NewPermissionRepository(db)
	allowedIPRepo := postgresql.NewAllowedIPRepository(db)

	reports, err := reportService.NewReportService(
		cfg.Report, employeeRepo, punchRepo, overrideRepo,
		justificationRepo, permissionRepo, groupRepo,
	)
	if err != nil {
		log.Fatal("Error building report service: ", err)
	}
	groups := groupService.NewGroupService(portfolioRepo, groupRepo, employeeRepo)
	overrides := scheduleService.NewOverrideService(overrideRepo, groupRepo)
	justifications := justificationService.NewJustificationService(cfg.Report.LeaveCategories, justificationRepo, employeeRepo)
	permissions := permissionService.NewPermissionService(permissionRepo, employeeRepo)

	router := appHTTP.NewRouter(
		allowedIPRepo,
		appHTTP.NewReportHandler(reports),
		appHTTP.NewGroupHandler(groups),
		appHTTP.NewScheduleHandler(overrides),
		appHTTP.NewJustificationHandler(justifications),
		appHTTP.NewPermissionHandler(permissions),
		appHTTP.NewMasterHandler(cfg.Report.Departments, employeeRepo, departmentRepo),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
