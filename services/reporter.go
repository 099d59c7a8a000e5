package services

import (
	"fmt"
	"io"
	"strings"

	"jira-mr-linker/models"
)

// Reporter renders the link report as fixed-width text sections
type Reporter struct {
	out io.Writer
}

// NewReporter creates a new Reporter writing to the given stream
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Render writes the three report sections in fixed order: tickets with merge
// requests, tickets without any merge request, and merge requests without a
// linked ticket. Tickets with several merge requests produce one row per
// merge request.
func (r *Reporter) Render(report *models.Report, allTickets []models.Ticket) {
	fmt.Fprintf(r.out, "\n=== Jira Tickets with Merge Requests ===\n\n")
	header := fmt.Sprintf("%-10s | %-12s | %-10s | %-5s | %-8s | %-8s | Title",
		"Ticket", "Status", "Assignee", "MR ID", "MR State", "Author")
	fmt.Fprintln(r.out, header)
	fmt.Fprintln(r.out, strings.Repeat("-", len(header)))
	for _, linked := range report.Linked {
		for _, mergeRequest := range linked.MergeRequests {
			fmt.Fprintf(r.out, "%-10s | %-12s | %-10s | %-5d | %-8s | %-8s | %s\n",
				linked.Ticket.Key, linked.Ticket.Status, linked.Ticket.Assignee,
				mergeRequest.ID, mergeRequest.State, mergeRequest.Author, mergeRequest.Title)
		}
	}

	linkedKeys := report.LinkedKeys()

	fmt.Fprintf(r.out, "\n=== Jira Tickets WITHOUT any Merge Request ===\n\n")
	fmt.Fprintf(r.out, "%-10s | %-12s | %-10s | Summary\n", "Ticket", "Status", "Assignee")
	fmt.Fprintln(r.out, strings.Repeat("-", 60))
	for _, ticket := range allTickets {
		if linkedKeys[ticket.Key] {
			continue
		}
		fmt.Fprintf(r.out, "%-10s | %-12s | %-10s | %s\n",
			ticket.Key, ticket.Status, ticket.Assignee, ticket.Summary)
	}

	fmt.Fprintf(r.out, "\n=== Merge Requests WITHOUT linked Jira Ticket ===\n\n")
	fmt.Fprintf(r.out, "%-5s | %-8s | %-8s | Title\n", "MR ID", "State", "Author")
	fmt.Fprintln(r.out, strings.Repeat("-", 60))
	for _, mergeRequest := range report.UnlinkedMergeRequests {
		fmt.Fprintf(r.out, "%-5d | %-8s | %-8s | %s\n",
			mergeRequest.ID, mergeRequest.State, mergeRequest.Author, mergeRequest.Title)
	}
}
