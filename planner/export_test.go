package planner

import (
	"strings"
	"testing"
	"time"

	"github.com/dayplanner/backend/domain"
)

func TestExportCSV(t *testing.T) {
	t.Parallel()

	date := "2024-06-10"
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tasks := []domain.Task{
		{
			Date:         &date,
			Task:         `review "final" draft`,
			Category:     domain.CategoryWork,
			TimeRequired: 45,
			Status:       domain.StatusPending,
			CreatedAt:    created,
		},
	}

	got := ExportCSV(tasks)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if lines[0] != "Date,Task,Category,Time Required (mins),Status,Created" {
		t.Errorf("header = %q", lines[0])
	}
	want := `2024-06-10,"review ""final"" draft",Work,45,Pending,2024-06-01T12:00:00Z`
	if lines[1] != want {
		t.Errorf("row = %q, want %q", lines[1], want)
	}
}

func TestExportCSVParkedTaskHasEmptyDate(t *testing.T) {
	t.Parallel()

	tasks := []domain.Task{{Task: "someday", Category: domain.CategoryPersonal, TimeRequired: 30, Status: domain.StatusPending}}
	lines := strings.Split(ExportCSV(tasks), "\n")
	if !strings.HasPrefix(lines[1], `,"someday",`) {
		t.Errorf("row = %q", lines[1])
	}
}

func TestExportTSV(t *testing.T) {
	t.Parallel()

	date := "2024-06-10"
	tasks := []domain.Task{
		{Date: &date, Task: "standup", Category: domain.CategoryWork, TimeRequired: 15, Status: domain.StatusDone},
	}

	got := ExportTSV(tasks)
	lines := strings.Split(got, "\n")
	if lines[0] != "Date\tTask\tCategory\tTime Required (mins)\tStatus" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "2024-06-10\tstandup\tWork\t15\tDone" {
		t.Errorf("row = %q", lines[1])
	}
}
