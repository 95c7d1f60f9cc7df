package http

import (
	"net/http/httptest"
	"testing"

	"github.com/mobinh8585/attendance-system/internal/domain/attendance"
	"github.com/mobinh8585/attendance-system/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestParseDateRange(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/attendance/my", nil)
		rng, err := parseDateRange(r)
		require.NoError(t, err)
		assert.Nil(t, rng)
	})

	t.Run("inclusive to becomes half-open end", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/attendance/my?from=2024-03-20&to=2024-03-21", nil)
		rng, err := parseDateRange(r)
		require.NoError(t, err)
		require.NotNil(t, rng)
		assert.Equal(t, "2024-03-20", rng.Start.Format("2006-01-02"))
		assert.Equal(t, "2024-03-22", rng.End.Format("2006-01-02"))
	})

	t.Run("half a range", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/attendance/my?from=2024-03-20", nil)
		_, err := parseDateRange(r)
		assert.Error(t, err)
	})

	t.Run("malformed date", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/attendance/my?from=20-03-2024&to=2024-03-21", nil)
		_, err := parseDateRange(r)
		assert.Error(t, err)
	})
}

func TestMonthlyReportGrid(t *testing.T) {
	rep := report.MonthlyReport{
		WorkerName:      "علی رضایی",
		PersonnelNumber: "1001",
		Year:            1403,
		Month:           1,
		MonthName:       "فروردین",
		Summary:         report.MonthlySummary{DaysWorked: 2, TotalHours: 14.5, AverageHours: 7.25},
		Records: []attendance.AttendanceResponse{
			{
				JalaliDate: "1403/01/01",
				EntryTime:  strPtr("2024-03-20 08:00:00"),
				ExitTime:   strPtr("2024-03-20 16:00:00"),
				TotalHours: 8,
			},
			{
				JalaliDate: "1403/01/22",
				EntryTime:  strPtr("2024-04-10 08:30:00"),
				TotalHours: 0,
			},
		},
	}

	grid := monthlyReportGrid(rep)

	assert.Equal(t, []string{"ردیف", "تاریخ", "ورود", "خروج", "مدت (ساعت)"}, grid.Headers)
	require.Len(t, grid.Rows, 3)

	assert.Equal(t, "۱", grid.Rows[0][0])
	assert.Equal(t, "۱۴۰۳/۰۱/۰۱", grid.Rows[0][1])
	assert.Equal(t, "۸.۰۰", grid.Rows[0][4])

	// An open session renders a dash for the missing exit.
	assert.Equal(t, "-", grid.Rows[1][3])

	// Summary row carries the totals.
	assert.Equal(t, "۱۴.۵۰", grid.Rows[2][4])
}
