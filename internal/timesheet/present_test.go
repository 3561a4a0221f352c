package timesheet

import (
	"testing"

	"github.com/alexanderramin/timereview/internal/domain"
	"github.com/alexanderramin/timereview/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresentRow_ActionControlFollowsStatus(t *testing.T) {
	days := testutil.NewTestWeek()
	cases := []struct {
		status  domain.TimesheetStatus
		enabled bool
		style   StyleTag
	}{
		{domain.StatusPending, true, StyleNeutral},
		{domain.StatusAccepted, false, StyleApproved},
		{domain.StatusRejected, false, StyleRejected},
	}
	for _, tc := range cases {
		row := testutil.NewTestRow("Dev", []string{"08:00"}, testutil.WithStatus(tc.status))
		got := PresentRow(row, days)
		assert.Equal(t, tc.enabled, got.ActionEnabled, "status=%s", tc.status)
		assert.Equal(t, tc.style, got.Style, "status=%s", tc.status)
	}
}

func TestPresentRow_CellsAlignWithDays(t *testing.T) {
	days := testutil.NewTestWeek()
	row := testutil.NewTestRow("Dev", []string{"08:00", "", "04:30"})

	got := PresentRow(row, days)

	require.Len(t, got.Cells, 7)
	assert.Equal(t, "Mon", got.Cells[0].Day)
	assert.Equal(t, "08:00", got.Cells[0].Value)
	assert.Equal(t, "00:00", got.Cells[1].Value, "empty hours render as zero")
	assert.Equal(t, "04:30", got.Cells[2].Value)
	assert.Equal(t, "00:00", got.Cells[6].Value, "missing entry renders as placeholder")
	assert.False(t, got.Cells[6].Disabled)
	assert.Equal(t, "12:30", got.Total)
	assert.Equal(t, 750, got.TotalMinutes)
}

func TestPresentRow_DisabledEntriesCarryTooltip(t *testing.T) {
	days := testutil.NewTestWeek()
	row := testutil.NewTestRow("Dev", []string{"08:00", "08:00", "08:00", "08:00", "08:00", "00:00", "00:00"},
		testutil.WithDisabledFrom(5))

	got := PresentRow(row, days)

	assert.False(t, got.Cells[4].Disabled)
	assert.Empty(t, got.Cells[4].Tooltip)
	assert.True(t, got.Cells[5].Disabled)
	assert.Equal(t, DisabledTooltip, got.Cells[5].Tooltip)
	assert.True(t, got.Cells[6].Disabled)
}

func TestPresentRow_Labels(t *testing.T) {
	row := testutil.NewTestRow("Design", nil, testutil.WithProject("Apollo"), testutil.WithTaskDetail("  mockups \n"))

	got := PresentRow(row, nil)

	assert.Equal(t, "Design", got.Task)
	assert.Equal(t, "Apollo", got.Project)
	assert.Equal(t, "Design · Apollo", got.Label())
	assert.Equal(t, "mockups", got.Details)
	assert.Equal(t, row.TimesheetID, got.TimesheetID)
}

func TestPresentSheet_TotalRowAppendedLast(t *testing.T) {
	days := testutil.NewTestWeek(5, 6)
	rows := []domain.TimesheetRow{
		testutil.NewTestRow("Dev", []string{"08:00", "07:00"}),
		testutil.NewTestRow("Ops", []string{"01:30", "", "02:00"}),
	}

	got := PresentSheet(rows, days)

	require.Len(t, got, 3)
	total := got[2]
	assert.True(t, total.IsTotal)
	assert.False(t, got[0].IsTotal)
	assert.False(t, total.ActionEnabled)
	assert.Equal(t, "Total", total.Task)
	assert.Equal(t, "09:30", total.Cells[0].Value)
	assert.Equal(t, "07:00", total.Cells[1].Value)
	assert.Equal(t, "02:00", total.Cells[2].Value)
	assert.True(t, total.Cells[5].Holiday)
	assert.Equal(t, "18:30", total.Total)
}

func TestPresentSheet_DoesNotMutateRows(t *testing.T) {
	days := testutil.NewTestWeek()
	rows := []domain.TimesheetRow{testutil.NewTestRow("Dev", []string{""})}

	PresentSheet(rows, days)

	assert.Equal(t, "", rows[0].DataSheet[0].Hours)
	assert.Len(t, rows, 1)
}

func TestColumns(t *testing.T) {
	days := testutil.NewTestWeek(6)

	cols := Columns(days)

	require.Len(t, cols, 11)
	assert.Equal(t, ColumnTask, cols[0].Key)
	assert.Equal(t, ColumnDetails, cols[1].Key)
	assert.Equal(t, "Mon", cols[2].Title)
	assert.Equal(t, days[0].FormattedDate, cols[2].Date)
	assert.True(t, cols[8].Holiday)
	assert.Equal(t, ColumnTotal, cols[9].Key)
	assert.Equal(t, ColumnAction, cols[10].Key)
}
