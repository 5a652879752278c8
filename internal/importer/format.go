package importer

import "github.com/beatrizodsk/popmenu-api/internal/domain"

// FormatReport maps a run's internal report into the external response
// shape. Counts come from the report's explicit creation counters, not
// from matching log message text.
func FormatReport(report *domain.ImportReport) domain.ImportResponse {
	message := "Import failed"
	if report.Success {
		message = "Import completed successfully"
	}

	logs := report.Events
	if logs == nil {
		logs = []domain.ImportEvent{}
	}

	return domain.ImportResponse{
		Success: report.Success,
		Message: message,
		Results: &domain.ImportResults{
			RestaurantsProcessed: report.Summary.RestaurantsProcessed,
			MenusCreated:         report.Summary.MenusCreated,
			MenuItemsCreated:     report.Summary.MenuItemsCreated,
			AssociationsCreated:  report.Summary.AssociationsCreated,
			Errors:               report.Counts[domain.LevelError],
			Warnings:             report.Counts[domain.LevelWarning],
			Logs:                 logs,
		},
	}
}

// FormatFailure builds the response for a run that produced no report:
// results are null because the transaction guarantees no partial counts
// exist.
func FormatFailure(message string) domain.ImportResponse {
	return domain.ImportResponse{
		Success: false,
		Message: message,
		Results: nil,
	}
}
