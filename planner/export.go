package planner

import (
	"strconv"
	"strings"
	"time"

	"github.com/dayplanner/backend/domain"
)

// exportHeaders are the spreadsheet columns, in export order.
var exportHeaders = []string{"Date", "Task", "Category", "Time Required (mins)", "Status", "Created"}

// ExportCSV serializes a task list for file download. The task text is quoted
// with doubled inner quotes; other columns never contain commas.
func ExportCSV(tasks []domain.Task) string {
	var b strings.Builder
	b.WriteString(strings.Join(exportHeaders, ","))
	for i := range tasks {
		t := &tasks[i]
		b.WriteByte('\n')
		b.WriteString(strings.Join([]string{
			exportDate(t),
			`"` + strings.ReplaceAll(t.Task, `"`, `""`) + `"`,
			string(t.Category),
			strconv.Itoa(t.TimeRequired),
			string(t.Status),
			exportCreated(t),
		}, ","))
	}
	return b.String()
}

// ExportTSV serializes a task list for clipboard paste into a spreadsheet.
func ExportTSV(tasks []domain.Task) string {
	var b strings.Builder
	b.WriteString(strings.Join(exportHeaders[:5], "\t"))
	for i := range tasks {
		t := &tasks[i]
		b.WriteByte('\n')
		b.WriteString(strings.Join([]string{
			exportDate(t),
			t.Task,
			string(t.Category),
			strconv.Itoa(t.TimeRequired),
			string(t.Status),
		}, "\t"))
	}
	return b.String()
}

func exportDate(t *domain.Task) string {
	if t.Date == nil {
		return ""
	}
	return *t.Date
}

func exportCreated(t *domain.Task) string {
	if t.CreatedAt.IsZero() {
		return ""
	}
	return t.CreatedAt.UTC().Format(time.RFC3339)
}
