package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/report"
)

func TestBuildCostRows(t *testing.T) {
	result := report.Result{Reports: []report.EmployeeReport{{
		Employee: testEmployee(),
		Summary: report.Summary{
			Attendances:                   20,
			LateNormal:                    2,
			LateSatHoliday:                1,
			UnjustifiedAbsencesNormal:     1,
			UnjustifiedAbsencesSatHoliday: 0,
			OvertimeNormal:                90 * time.Minute,
			OvertimeSatHoliday:            4 * time.Hour,
		},
	}}}

	rates := report.CostRates{
		HourNormal:            decimal.NewFromFloat(3.50),
		HourSatHoliday:        decimal.NewFromFloat(5.25),
		FineLateNormal:        decimal.NewFromFloat(2.00),
		FineLateSatHoliday:    decimal.NewFromFloat(3.00),
		FineAbsenceNormal:     decimal.NewFromFloat(25.00),
		FineAbsenceSatHoliday: decimal.NewFromFloat(40.00),
	}

	rows := buildCostRows(result, rates)
	require.Len(t, rows, 1)
	row := rows[0]

	assert.Equal(t, "1.5", row.OvertimeHoursNormal.String())
	assert.Equal(t, "4", row.OvertimeHoursSatHoliday.String())
	// 1.5 * 3.50 + 4 * 5.25
	assert.True(t, row.OvertimePay.Equal(decimal.NewFromFloat(26.25)), "pay = %s", row.OvertimePay)
	// 2 * 2.00 + 1 * 3.00
	assert.True(t, row.LateFines.Equal(decimal.NewFromFloat(7.00)), "late fines = %s", row.LateFines)
	// 1 * 25.00
	assert.True(t, row.AbsenceFines.Equal(decimal.NewFromFloat(25.00)), "absence fines = %s", row.AbsenceFines)
	assert.True(t, row.Net.Equal(decimal.NewFromFloat(-5.75)), "net = %s", row.Net)
}

func TestBuildCostRows_TruncatesSubMinuteOvertime(t *testing.T) {
	result := report.Result{Reports: []report.EmployeeReport{{
		Employee: testEmployee(),
		Summary:  report.Summary{OvertimeNormal: 59*time.Minute + 59*time.Second},
	}}}

	rows := buildCostRows(result, report.CostRates{HourNormal: decimal.NewFromInt(10)})
	require.Len(t, rows, 1)
	// Seconds are dropped before converting to hours: 59 minutes, not 59:59.
	want := decimal.NewFromInt(59).Div(decimal.NewFromInt(60))
	assert.True(t, rows[0].OvertimeHoursNormal.Equal(want), "hours = %s", rows[0].OvertimeHoursNormal)
}
