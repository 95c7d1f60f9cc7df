package report

import "context"

// ReportService derives summaries from records already stored by the
// attendance layer; it never mutates anything.
type ReportService interface {
	Monthly(ctx context.Context, req MonthlyReportRequest) (MonthlyReport, error)
}
