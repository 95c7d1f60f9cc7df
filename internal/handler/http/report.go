package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/mobinh8585/attendance-system/internal/domain/report"
	"github.com/mobinh8585/attendance-system/internal/handler/http/response"
	"github.com/mobinh8585/attendance-system/internal/pkg/export"
	"github.com/mobinh8585/attendance-system/internal/pkg/jalali"
)

type ReportHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
	exporters     map[string]export.Exporter
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
		exporters: map[string]export.Exporter{
			"csv":  export.NewCSVExporter(),
			"xlsx": export.NewXLSXExporter(),
		},
	}
}

func monthlyRequestFromQuery(r *http.Request) report.MonthlyReportRequest {
	q := r.URL.Query()
	year, _ := strconv.Atoi(q.Get("year"))
	month, _ := strconv.Atoi(q.Get("month"))
	return report.MonthlyReportRequest{
		WorkerID: q.Get("worker_id"),
		Year:     year,
		Month:    month,
	}
}

// Monthly implements ReportHandler.
func (h *reportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Monthly(r.Context(), monthlyRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Export implements ReportHandler. Streams the monthly report as a CSV or
// XLSX download with Persian headers and digits.
func (h *reportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "xlsx"
	}
	exporter, ok := h.exporters[format]
	if !ok {
		response.BadRequest(w, fmt.Sprintf("unsupported format: %s", format))
		return
	}

	result, err := h.reportService.Monthly(r.Context(), monthlyRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	grid := monthlyReportGrid(result)

	filename := fmt.Sprintf("attendance-%s-%d-%02d.%s",
		result.PersonnelNumber, result.Year, result.Month, exporter.Extension())
	w.Header().Set("Content-Type", exporter.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if err := exporter.Export(w, grid); err != nil {
		// Headers are already out; the truncated body is the best signal left.
		return
	}
}

func monthlyReportGrid(rep report.MonthlyReport) export.Grid {
	grid := export.Grid{
		Title: fmt.Sprintf("گزارش کارکرد %s - %s %s",
			rep.WorkerName, rep.MonthName, jalali.ToPersianDigits(strconv.Itoa(rep.Year))),
		Headers: []string{"ردیف", "تاریخ", "ورود", "خروج", "مدت (ساعت)"},
	}

	for i, rec := range rep.Records {
		entry, exit := "-", "-"
		if rec.EntryTime != nil {
			entry = jalali.ToPersianDigits(*rec.EntryTime)
		}
		if rec.ExitTime != nil {
			exit = jalali.ToPersianDigits(*rec.ExitTime)
		}
		grid.Rows = append(grid.Rows, []string{
			jalali.ToPersianDigits(strconv.Itoa(i + 1)),
			jalali.ToPersianDigits(rec.JalaliDate),
			entry,
			exit,
			jalali.ToPersianDigits(fmt.Sprintf("%.2f", rec.TotalHours)),
		})
	}

	grid.Rows = append(grid.Rows, []string{
		"",
		"جمع",
		"",
		fmt.Sprintf("روز کارکرد: %s", jalali.ToPersianDigits(strconv.Itoa(rep.Summary.DaysWorked))),
		jalali.ToPersianDigits(fmt.Sprintf("%.2f", rep.Summary.TotalHours)),
	})

	return grid
}
