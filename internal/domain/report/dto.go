package report

import (
	"github.com/callpoint-hr/timeclock-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type AttendanceReportRequest struct {
	From         string `json:"from"` // "2006-01-02"
	To           string `json:"to"`
	DepartmentID int    `json:"department_id"` // 0 = all reportable departments
}

func (r *AttendanceReportRequest) Validate() error {
	var errs validator.ValidationErrors

	from, okFrom := validator.IsValidDate(r.From)
	if !okFrom {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "from must be YYYY-MM-DD"})
	}
	to, okTo := validator.IsValidDate(r.To)
	if !okTo {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "to must be YYYY-MM-DD"})
	}
	if okFrom && okTo {
		if to.Before(from) {
			errs = append(errs, validator.ValidationError{Field: "to", Message: "to must not precede from"})
		}
		// A year is far beyond any payroll period; refuse runaway ranges.
		if to.Sub(from).Hours() > 366*24 {
			errs = append(errs, validator.ValidationError{Field: "to", Message: "period must not exceed one year"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CostRates are the externally supplied money knobs of the spreadsheet
// export. The engine itself knows nothing about money; these only multiply
// its outcome counts downstream.
type CostRates struct {
	HourNormal            decimal.Decimal `json:"hour_normal"`
	HourSatHoliday        decimal.Decimal `json:"hour_sat_holiday"`
	FineLateNormal        decimal.Decimal `json:"fine_late_normal"`
	FineLateSatHoliday    decimal.Decimal `json:"fine_late_sat_holiday"`
	FineAbsenceNormal     decimal.Decimal `json:"fine_absence_normal"`
	FineAbsenceSatHoliday decimal.Decimal `json:"fine_absence_sat_holiday"`
}

type ExportReportRequest struct {
	AttendanceReportRequest
	Rates CostRates `json:"rates"`
}

// DayRecordResponse is a DayRecord rendered for transport: clocks as HH:MM,
// durations as HH:MM, outcome labels stable for clients.
type DayRecordResponse struct {
	Date            string  `json:"date"`
	Weekday         string  `json:"weekday"`
	Outcome         string  `json:"outcome"`
	DayType         string  `json:"day_type"`
	HolidayWorked   bool    `json:"holiday_worked"`
	ScheduledWindow string  `json:"scheduled_window"` // "08:00 - 18:00"
	Entrance        *string `json:"entrance,omitempty"`
	LunchOut        *string `json:"lunch_out,omitempty"`
	LunchIn         *string `json:"lunch_in,omitempty"`
	Exit            *string `json:"exit,omitempty"`
	LatenessMinutes int     `json:"lateness_minutes"`
	Lunch           string  `json:"lunch"`
	Worked          string  `json:"worked"`
	Overtime        string  `json:"overtime"`
}

type SummaryResponse struct {
	Attendances                   int    `json:"attendances"`
	LateNormal                    int    `json:"late_normal"`
	LateSatHoliday                int    `json:"late_sat_holiday"`
	LateMinutesNormal             int    `json:"late_minutes_normal"`
	LateMinutesSatHoliday         int    `json:"late_minutes_sat_holiday"`
	AbsencesNormal                int    `json:"absences_normal"`
	AbsencesSatHoliday            int    `json:"absences_sat_holiday"`
	UnjustifiedAbsencesNormal     int    `json:"unjustified_absences_normal"`
	UnjustifiedAbsencesSatHoliday int    `json:"unjustified_absences_sat_holiday"`
	JustifiedAbsences             int    `json:"justified_absences"`
	OvertimeNormal                string `json:"overtime_normal"`
	OvertimeSatHoliday            string `json:"overtime_sat_holiday"`
}

type EmployeeReportResponse struct {
	Passport       string              `json:"passport"`
	EmployeeName   string              `json:"employee_name"`
	DepartmentName string              `json:"department_name"`
	Days           []DayRecordResponse `json:"days"`
	Summary        SummaryResponse     `json:"summary"`
}

type AnomalyResponse struct {
	Passport string `json:"passport"`
	Date     string `json:"date"`
	Kind     string `json:"kind"`
	Detail   string `json:"detail"`
}

type AttendanceReportResponse struct {
	From      string                   `json:"from"`
	To        string                   `json:"to"`
	Employees []EmployeeReportResponse `json:"employees"`
	Anomalies []AnomalyResponse        `json:"anomalies,omitempty"`
}
