package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/report"
)

// costRow is one employee's money line on the export's cost sheet.
type costRow struct {
	Passport   string
	Name       string
	Department string

	OvertimeHoursNormal     decimal.Decimal
	OvertimeHoursSatHoliday decimal.Decimal
	OvertimePay             decimal.Decimal
	LateFines               decimal.Decimal
	AbsenceFines            decimal.Decimal
	Net                     decimal.Decimal
}

var minutesPerHour = decimal.NewFromInt(60)

// durationHours converts an overtime duration to decimal hours at minute
// resolution, matching how the engine accumulates overtime.
func durationHours(d time.Duration) decimal.Decimal {
	minutes := decimal.NewFromInt(int64(d / time.Minute))
	return minutes.Div(minutesPerHour)
}

// buildCostRows prices each employee summary against the supplied rates.
// Overtime pays per hour by day type, lateness and unjustified absences
// fine per occurrence, and the net may well go negative.
func buildCostRows(result report.Result, rates report.CostRates) []costRow {
	rows := make([]costRow, 0, len(result.Reports))
	for _, rep := range result.Reports {
		sum := rep.Summary

		hoursNormal := durationHours(sum.OvertimeNormal)
		hoursSatHoliday := durationHours(sum.OvertimeSatHoliday)

		pay := hoursNormal.Mul(rates.HourNormal).
			Add(hoursSatHoliday.Mul(rates.HourSatHoliday))

		lateFines := decimal.NewFromInt(int64(sum.LateNormal)).Mul(rates.FineLateNormal).
			Add(decimal.NewFromInt(int64(sum.LateSatHoliday)).Mul(rates.FineLateSatHoliday))

		absenceFines := decimal.NewFromInt(int64(sum.UnjustifiedAbsencesNormal)).Mul(rates.FineAbsenceNormal).
			Add(decimal.NewFromInt(int64(sum.UnjustifiedAbsencesSatHoliday)).Mul(rates.FineAbsenceSatHoliday))

		rows = append(rows, costRow{
			Passport:                rep.Employee.Passport,
			Name:                    rep.Employee.FullName(),
			Department:              rep.Employee.DepartmentName,
			OvertimeHoursNormal:     hoursNormal,
			OvertimeHoursSatHoliday: hoursSatHoliday,
			OvertimePay:             pay,
			LateFines:               lateFines,
			AbsenceFines:            absenceFines,
			Net:                     pay.Sub(lateFines).Sub(absenceFines),
		})
	}
	return rows
}
