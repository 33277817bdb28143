package report

import "context"

// ReportService builds export-shaped monthly reports.
type ReportService interface {
	GenerateMonthlyReport(ctx context.Context, req MonthlyReportRequest) (MonthlyReport, error)
}
