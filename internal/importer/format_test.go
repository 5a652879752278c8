package importer

import (
	"testing"
	"time"

	"github.com/beatrizodsk/popmenu-api/internal/domain"
)

func TestFormatReport(t *testing.T) {
	report := &domain.ImportReport{
		RunID:   "run-1",
		Success: true,
		Counts: map[domain.ImportEventLevel]int{
			domain.LevelInfo:    3,
			domain.LevelWarning: 2,
			domain.LevelError:   1,
		},
		Events: []domain.ImportEvent{
			{Level: domain.LevelInfo, Message: "Starting restaurant data import", Timestamp: time.Now()},
		},
		Summary: domain.ImportSummary{
			RestaurantsProcessed: 2,
			MenusCreated:         3,
			MenuItemsCreated:     5,
			AssociationsCreated:  6,
		},
	}

	resp := FormatReport(report)

	if !resp.Success {
		t.Error("expected success to carry through")
	}
	if resp.Message != "Import completed successfully" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
	if resp.Results == nil {
		t.Fatal("expected results to be present")
	}
	if resp.Results.RestaurantsProcessed != 2 || resp.Results.MenusCreated != 3 ||
		resp.Results.MenuItemsCreated != 5 || resp.Results.AssociationsCreated != 6 {
		t.Errorf("unexpected counts: %+v", resp.Results)
	}
	if resp.Results.Errors != 1 || resp.Results.Warnings != 2 {
		t.Errorf("unexpected severity counts: errors=%d warnings=%d", resp.Results.Errors, resp.Results.Warnings)
	}
	if len(resp.Results.Logs) != 1 {
		t.Errorf("expected 1 log event, got %d", len(resp.Results.Logs))
	}
}

func TestFormatReportWithoutEvents(t *testing.T) {
	resp := FormatReport(&domain.ImportReport{Success: true})
	if resp.Results == nil {
		t.Fatal("expected results to be present")
	}
	if resp.Results.Logs == nil {
		t.Error("expected logs to be an empty slice, not nil")
	}
}

func TestFormatFailure(t *testing.T) {
	resp := FormatFailure("Data validation error: invalid price format: free")
	if resp.Success {
		t.Error("expected failure")
	}
	if resp.Message != "Data validation error: invalid price format: free" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
	if resp.Results != nil {
		t.Error("expected null results on failure")
	}
}
