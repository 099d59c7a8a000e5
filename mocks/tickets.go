package mocks

import (
	"jira-mr-linker/models"
)

// MockTicketSource is a mock implementation of the TicketSource interface
type MockTicketSource struct {
	GetTicketFunc   func(key string) (*models.Ticket, error)
	ListTicketsFunc func() ([]models.Ticket, error)
}

// GetTicket is the mock implementation of TicketSource's GetTicket method
func (m *MockTicketSource) GetTicket(key string) (*models.Ticket, error) {
	if m.GetTicketFunc != nil {
		return m.GetTicketFunc(key)
	}
	return nil, nil
}

// ListTickets is the mock implementation of TicketSource's ListTickets method
func (m *MockTicketSource) ListTickets() ([]models.Ticket, error) {
	if m.ListTicketsFunc != nil {
		return m.ListTicketsFunc()
	}
	return nil, nil
}
