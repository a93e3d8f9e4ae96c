package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/report"
	"github.com/callpoint-hr/timeclock-backend-go/internal/pkg/timeutil"
)

const (
	sheetWorkMatrix  = "Work Matrix"
	sheetCostSummary = "Cost Summary"
	sheetAnomalies   = "Anomalies"
)

var workMatrixHeader = []interface{}{
	"Passport", "Employee", "Department", "Date", "Weekday", "Outcome",
	"Scheduled Entrance", "Scheduled Exit", "Entrance", "Lunch Out",
	"Lunch In", "Exit", "Late Minutes", "Lunch", "Worked", "Overtime",
}

var costSummaryHeader = []interface{}{
	"Passport", "Employee", "Department", "OT Hours (Normal)",
	"OT Hours (Sat/Holiday)", "Overtime Pay", "Late Fines",
	"Absence Fines", "Net",
}

var anomalyHeader = []interface{}{"Passport", "Date", "Kind", "Detail"}

// outcomeFills colors the outcome cell the way reviewers scan the sheet:
// warm colors for trouble, cool for excused days.
var outcomeFills = map[report.Outcome]string{
	report.OutcomeLate:       "FFC7CE",
	report.OutcomeAbsent:     "FF9999",
	report.OutcomeJustified:  "BDD7EE",
	report.OutcomePermission: "BDD7EE",
	report.OutcomeHoliday:    "C6EFCE",
	report.OutcomeWeekend:    "D9D9D9",
}

// buildWorkbook renders the engine result into an xlsx with one row per
// employee-day, a per-employee cost sheet, and an anomaly sheet when the
// input data was dirty.
func buildWorkbook(result report.Result, req report.ExportReportRequest) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeWorkMatrix(f, result); err != nil {
		return nil, err
	}
	if err := writeCostSummary(f, result, req.Rates); err != nil {
		return nil, err
	}
	if len(result.Anomalies) > 0 {
		if err := writeAnomalies(f, result); err != nil {
			return nil, err
		}
	}

	// The default sheet only existed to be renamed.
	if err := f.SetSheetName("Sheet1", sheetWorkMatrix); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeWorkMatrix(f *excelize.File, result report.Result) error {
	sheet := "Sheet1" // renamed at the end of buildWorkbook

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	outcomeStyles := make(map[report.Outcome]int, len(outcomeFills))
	for outcome, color := range outcomeFills {
		style, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
		if err != nil {
			return err
		}
		outcomeStyles[outcome] = style
	}

	if err := f.SetSheetRow(sheet, "A1", &workMatrixHeader); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "P1", headerStyle); err != nil {
		return err
	}

	row := 2
	for _, rep := range result.Reports {
		for _, day := range rep.Days {
			cells := []interface{}{
				rep.Employee.Passport,
				rep.Employee.FullName(),
				rep.Employee.DepartmentName,
				timeutil.DateKey(day.Date),
				day.Date.Weekday().String(),
				string(day.Outcome),
				timeutil.FormatClock(day.ScheduledEntrance),
				timeutil.FormatClock(day.ScheduledExit),
				optionalCell(day.Entrance),
				optionalCell(day.LunchOut),
				optionalCell(day.LunchIn),
				optionalCell(day.Exit),
				day.LatenessMinutes,
				timeutil.FormatHHMM(day.Lunch),
				timeutil.FormatHHMM(day.Worked),
				timeutil.FormatHHMM(day.Overtime),
			}
			cell := fmt.Sprintf("A%d", row)
			if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
				return err
			}
			if style, ok := outcomeStyles[day.Outcome]; ok {
				target := fmt.Sprintf("F%d", row)
				if err := f.SetCellStyle(sheet, target, target, style); err != nil {
					return err
				}
			}
			row++
		}
	}

	if err := f.SetColWidth(sheet, "A", "C", 22); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "D", "P", 14); err != nil {
		return err
	}

	// Keep the header visible while scrolling through a month of rows.
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func writeCostSummary(f *excelize.File, result report.Result, rates report.CostRates) error {
	if _, err := f.NewSheet(sheetCostSummary); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetCostSummary, "A1", &costSummaryHeader); err != nil {
		return err
	}

	for i, row := range buildCostRows(result, rates) {
		cells := []interface{}{
			row.Passport,
			row.Name,
			row.Department,
			row.OvertimeHoursNormal.StringFixed(2),
			row.OvertimeHoursSatHoliday.StringFixed(2),
			row.OvertimePay.StringFixed(2),
			row.LateFines.StringFixed(2),
			row.AbsenceFines.StringFixed(2),
			row.Net.StringFixed(2),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetCostSummary, cell, &cells); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheetCostSummary, "A", "I", 20)
}

func writeAnomalies(f *excelize.File, result report.Result) error {
	if _, err := f.NewSheet(sheetAnomalies); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetAnomalies, "A1", &anomalyHeader); err != nil {
		return err
	}
	for i, a := range result.Anomalies {
		cells := []interface{}{a.Passport, timeutil.DateKey(a.Date), string(a.Kind), a.Detail}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetAnomalies, cell, &cells); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheetAnomalies, "A", "D", 26)
}

func optionalCell(t *time.Time) interface{} {
	if t == nil {
		return ""
	}
	return timeutil.FormatClock(*t)
}
