package services

import (
	"fmt"

	"go.uber.org/zap"

	"jira-mr-linker/models"
)

// Linker builds the three-way partition of tickets and merge requests: tickets
// with merge requests, tickets without, and merge requests with no resolvable
// ticket.
type Linker struct {
	tickets       TicketSource
	mergeRequests MergeRequestSource
	extractor     *TicketExtractor
	logger        *zap.Logger
}

// NewLinker creates a new Linker
func NewLinker(tickets TicketSource, mergeRequests MergeRequestSource, extractor *TicketExtractor, logger *zap.Logger) *Linker {
	return &Linker{
		tickets:       tickets,
		mergeRequests: mergeRequests,
		extractor:     extractor,
		logger:        logger,
	}
}

// Link groups merge requests by extracted ticket key and resolves each group
// against the ticket source. Merge requests with no extractable key keep their
// source order at the head of the unlinked partition; groups whose key is
// unknown to the tracker are appended to its tail in group-then-member order.
// Linked pairs appear in first-seen order of their key among merge requests.
func (l *Linker) Link() (*models.Report, error) {
	mergeRequests, err := l.mergeRequests.ListMergeRequests()
	if err != nil {
		return nil, fmt.Errorf("failed to list merge requests: %w", err)
	}

	groups := make(map[string][]models.MergeRequest)
	var groupOrder []string
	report := &models.Report{}

	for _, mergeRequest := range mergeRequests {
		key, ok := l.extractor.ExtractFromMergeRequest(mergeRequest)
		if !ok {
			l.logger.Debug("No ticket key in merge request", zap.Int("mr_id", mergeRequest.ID))
			report.UnlinkedMergeRequests = append(report.UnlinkedMergeRequests, mergeRequest)
			continue
		}
		if _, seen := groups[key]; !seen {
			groupOrder = append(groupOrder, key)
		}
		groups[key] = append(groups[key], mergeRequest)
	}

	for _, key := range groupOrder {
		ticket, err := l.tickets.GetTicket(key)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve ticket %s: %w", key, err)
		}
		if ticket == nil {
			// The key was extracted but the tracker has no such ticket:
			// the whole group counts as unlinked.
			l.logger.Debug("Extracted key has no ticket", zap.String("key", key))
			report.UnlinkedMergeRequests = append(report.UnlinkedMergeRequests, groups[key]...)
			continue
		}
		report.Linked = append(report.Linked, models.LinkedTicket{
			Ticket:        *ticket,
			MergeRequests: groups[key],
		})
	}

	l.logger.Info("Linked tickets and merge requests",
		zap.Int("linked_tickets", len(report.Linked)),
		zap.Int("unlinked_merge_requests", len(report.UnlinkedMergeRequests)))

	return report, nil
}
