package services

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"jira-mr-linker/models"
)

// csvHeader is the fixed seven-column schema of the export file
var csvHeader = []string{
	"ticket_key",
	"ticket_status",
	"ticket_assignee",
	"mr_id",
	"mr_state",
	"mr_author",
	"mr_title",
}

// Exporter writes the link report to a CSV file
type Exporter struct {
	logger *zap.Logger
}

// NewExporter creates a new Exporter
func NewExporter(logger *zap.Logger) *Exporter {
	return &Exporter{logger: logger}
}

// Export writes one CSV row per report row, in the same order as the console
// report: linked ticket/merge-request pairs, then tickets without merge
// requests (summary in the mr_title column), then unlinked merge requests.
// A destination that cannot be created or written yields an error; the file
// handle is closed either way.
func (e *Exporter) Export(report *models.Report, allTickets []models.Ticket, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, linked := range report.Linked {
		for _, mergeRequest := range linked.MergeRequests {
			row := []string{
				linked.Ticket.Key,
				linked.Ticket.Status,
				linked.Ticket.Assignee,
				strconv.Itoa(mergeRequest.ID),
				mergeRequest.State,
				mergeRequest.Author,
				mergeRequest.Title,
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
	}

	linkedKeys := report.LinkedKeys()
	for _, ticket := range allTickets {
		if linkedKeys[ticket.Key] {
			continue
		}
		row := []string{ticket.Key, ticket.Status, ticket.Assignee, "", "", "", ticket.Summary}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	for _, mergeRequest := range report.UnlinkedMergeRequests {
		row := []string{
			"",
			"",
			"",
			strconv.Itoa(mergeRequest.ID),
			mergeRequest.State,
			mergeRequest.Author,
			mergeRequest.Title,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV file %s: %w", path, err)
	}

	e.logger.Info("CSV exported", zap.String("path", path))
	return nil
}
