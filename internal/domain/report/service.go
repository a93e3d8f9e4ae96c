package report

import "context"

// ReportService runs the reconciliation engine over a period / department
// snapshot and renders the results.
type ReportService interface {
	// GenerateAttendanceReport fetches the snapshot and computes the report.
	GenerateAttendanceReport(ctx context.Context, req AttendanceReportRequest) (AttendanceReportResponse, error)

	// ExportAttendanceReport renders the same computation as a spreadsheet.
	// Returns the file bytes and the suggested filename.
	ExportAttendanceReport(ctx context.Context, req ExportReportRequest) ([]byte, string, error)
}
