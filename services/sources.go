package services

import (
	"jira-mr-linker/models"
)

// TicketSource defines the interface for the issue tracker backing the linker
type TicketSource interface {
	// GetTicket returns the ticket with the given key, or nil when no such ticket exists
	GetTicket(key string) (*models.Ticket, error)

	// ListTickets returns every known ticket in a stable order
	ListTickets() ([]models.Ticket, error)
}

// MergeRequestSource defines the interface for the source-control host backing the linker
type MergeRequestSource interface {
	// ListMergeRequests returns every merge request in creation order
	ListMergeRequests() ([]models.MergeRequest, error)
}
