package report

import (
	"context"
	"fmt"
	"time"

	"github.com/callpoint-hr/timeclock-backend-go/internal/config"
	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/employee"
	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/group"
	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/justification"
	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/permission"
	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/report"
	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/schedule"
	"github.com/callpoint-hr/timeclock-backend-go/internal/pkg/timeutil"
)

type ReportServiceImpl struct {
	cfg    config.ReportConfig
	loc    *time.Location
	engine *Engine

	employeeRepo      employee.EmployeeRepository
	punchRepo         report.PunchRepository
	overrideRepo      schedule.OverrideRepository
	justificationRepo justification.JustificationRepository
	permissionRepo    permission.PermissionRepository
	groupRepo         group.GroupRepository
}

func NewReportService(
	cfg config.ReportConfig,
	employeeRepo employee.EmployeeRepository,
	punchRepo report.PunchRepository,
	overrideRepo schedule.OverrideRepository,
	justificationRepo justification.JustificationRepository,
	permissionRepo permission.PermissionRepository,
	groupRepo group.GroupRepository,
) (report.ReportService, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid report timezone: %w", err)
	}
	entrance, err := time.Parse("15:04", cfg.DefaultEntrance)
	if err != nil {
		return nil, fmt.Errorf("invalid default entrance: %w", err)
	}
	exit, err := time.Parse("15:04", cfg.DefaultExit)
	if err != nil {
		return nil, fmt.Errorf("invalid default exit: %w", err)
	}

	engine := NewEngine(report.EngineConfig{
		DefaultEntrance:       entrance,
		DefaultExit:           exit,
		LateGraceMinutes:      cfg.LateGraceMinutes,
		RestDay:               cfg.RestDay,
		SaturdayNeedsApproval: cfg.SaturdayNeedsApproval,
	})

	return &ReportServiceImpl{
		cfg:               cfg,
		loc:               loc,
		engine:            engine,
		employeeRepo:      employeeRepo,
		punchRepo:         punchRepo,
		overrideRepo:      overrideRepo,
		justificationRepo: justificationRepo,
		permissionRepo:    permissionRepo,
		groupRepo:         groupRepo,
	}, nil
}

// GenerateAttendanceReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateAttendanceReport(ctx context.Context, req report.AttendanceReportRequest) (report.AttendanceReportResponse, error) {
	result, err := s.compute(ctx, req)
	if err != nil {
		return report.AttendanceReportResponse{}, err
	}
	return s.mapResult(req, result), nil
}

// ExportAttendanceReport implements report.ReportService.
func (s *ReportServiceImpl) ExportAttendanceReport(ctx context.Context, req report.ExportReportRequest) ([]byte, string, error) {
	result, err := s.compute(ctx, req.AttendanceReportRequest)
	if err != nil {
		return nil, "", err
	}

	file, err := buildWorkbook(result, req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build workbook: %w", err)
	}

	filename := fmt.Sprintf("attendance_report_%s_to_%s.xlsx", req.From, req.To)
	return file, filename, nil
}

// compute materializes the snapshot and runs the engine. An empty roster is
// an empty report, never an error.
func (s *ReportServiceImpl) compute(ctx context.Context, req report.AttendanceReportRequest) (report.Result, error) {
	if err := req.Validate(); err != nil {
		return report.Result{}, err
	}

	from, _ := time.ParseInLocation("2006-01-02", req.From, s.loc)
	to, _ := time.ParseInLocation("2006-01-02", req.To, s.loc)

	employees, err := s.employeeRepo.ListReportable(ctx, s.cfg.Departments, req.DepartmentID)
	if err != nil {
		return report.Result{}, fmt.Errorf("failed to list employees: %w", err)
	}
	if len(employees) == 0 {
		return report.Result{}, nil
	}

	ids := make([]int, 0, len(employees))
	passports := make([]string, 0, len(employees))
	for _, e := range employees {
		ids = append(ids, e.ID)
		passports = append(passports, e.Passport)
	}

	punches, err := s.punchRepo.ListByEmployees(ctx, ids, from, to)
	if err != nil {
		return report.Result{}, fmt.Errorf("failed to list punches: %w", err)
	}
	justifications, err := s.justificationRepo.ListActiveOverlapping(ctx, passports, from, to)
	if err != nil {
		return report.Result{}, fmt.Errorf("failed to list justifications: %w", err)
	}
	permissions, err := s.permissionRepo.ListInRange(ctx, passports, from, to)
	if err != nil {
		return report.Result{}, fmt.Errorf("failed to list permissions: %w", err)
	}
	overrides, err := s.overrideRepo.ListInRange(ctx, from, to)
	if err != nil {
		return report.Result{}, fmt.Errorf("failed to list schedule overrides: %w", err)
	}
	assignments, err := s.groupRepo.AssignmentsByPassport(ctx)
	if err != nil {
		return report.Result{}, fmt.Errorf("failed to list group assignments: %w", err)
	}

	return s.engine.ComputeAttendance(report.Input{
		Employees:        employees,
		Punches:          punches,
		Overrides:        overrides,
		Justifications:   justifications,
		Permissions:      permissions,
		GroupAssignments: assignments,
		PeriodStart:      from,
		PeriodEnd:        to,
	}), nil
}

func (s *ReportServiceImpl) mapResult(req report.AttendanceReportRequest, result report.Result) report.AttendanceReportResponse {
	resp := report.AttendanceReportResponse{
		From:      req.From,
		To:        req.To,
		Employees: make([]report.EmployeeReportResponse, 0, len(result.Reports)),
	}

	for _, rep := range result.Reports {
		employeeResp := report.EmployeeReportResponse{
			Passport:       rep.Employee.Passport,
			EmployeeName:   rep.Employee.FullName(),
			DepartmentName: rep.Employee.DepartmentName,
			Days:           make([]report.DayRecordResponse, 0, len(rep.Days)),
			Summary:        mapSummary(rep.Summary),
		}
		for _, day := range rep.Days {
			employeeResp.Days = append(employeeResp.Days, mapDayRecord(day))
		}
		resp.Employees = append(resp.Employees, employeeResp)
	}

	for _, a := range result.Anomalies {
		resp.Anomalies = append(resp.Anomalies, report.AnomalyResponse{
			Passport: a.Passport,
			Date:     timeutil.DateKey(a.Date),
			Kind:     string(a.Kind),
			Detail:   a.Detail,
		})
	}
	return resp
}

func mapDayRecord(d report.DayRecord) report.DayRecordResponse {
	return report.DayRecordResponse{
		Date:            timeutil.DateKey(d.Date),
		Weekday:         d.Date.Weekday().String(),
		Outcome:         string(d.Outcome),
		DayType:         string(d.DayType),
		HolidayWorked:   d.HolidayWorked,
		ScheduledWindow: timeutil.FormatClock(d.ScheduledEntrance) + " - " + timeutil.FormatClock(d.ScheduledExit),
		Entrance:        clockPtr(d.Entrance),
		LunchOut:        clockPtr(d.LunchOut),
		LunchIn:         clockPtr(d.LunchIn),
		Exit:            clockPtr(d.Exit),
		LatenessMinutes: d.LatenessMinutes,
		Lunch:           timeutil.FormatHHMM(d.Lunch),
		Worked:          timeutil.FormatHHMM(d.Worked),
		Overtime:        timeutil.FormatHHMM(d.Overtime),
	}
}

func mapSummary(s report.Summary) report.SummaryResponse {
	return report.SummaryResponse{
		Attendances:                   s.Attendances,
		LateNormal:                    s.LateNormal,
		LateSatHoliday:                s.LateSatHoliday,
		LateMinutesNormal:             s.LateMinutesNormal,
		LateMinutesSatHoliday:         s.LateMinutesSatHoliday,
		AbsencesNormal:                s.AbsencesNormal,
		AbsencesSatHoliday:            s.AbsencesSatHoliday,
		UnjustifiedAbsencesNormal:     s.UnjustifiedAbsencesNormal,
		UnjustifiedAbsencesSatHoliday: s.UnjustifiedAbsencesSatHoliday,
		JustifiedAbsences:             s.JustifiedAbsences,
		OvertimeNormal:                timeutil.FormatHHMM(s.OvertimeNormal),
		OvertimeSatHoliday:            timeutil.FormatHHMM(s.OvertimeSatHoliday),
	}
}

// clockPtr renders an optional instant as an optional "15:04" string.
func clockPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	clock := timeutil.FormatClock(*t)
	return &clock
}
