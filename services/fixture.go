package services

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"jira-mr-linker/models"
)

// FixtureData is the in-memory dataset standing in for the real Jira and
// GitLab APIs.
type FixtureData struct {
	Tickets       []models.Ticket       `yaml:"tickets"`
	MergeRequests []models.MergeRequest `yaml:"merge_requests"`
}

// DefaultFixtureData returns the built-in dataset
func DefaultFixtureData() *FixtureData {
	return &FixtureData{
		Tickets: []models.Ticket{
			{
				Key:      "MBUX-123",
				Summary:  "Fix navigation crash",
				Status:   "In Progress",
				Assignee: "alice",
			},
			{
				Key:      "MBUX-456",
				Summary:  "Improve ASR latency",
				Status:   "To Do",
				Assignee: "bob",
			},
			{
				Key:      "MBUX-789",
				Summary:  "Add logging for HIL failures",
				Status:   "Done",
				Assignee: "carol",
			},
		},
		MergeRequests: []models.MergeRequest{
			{
				ID:           1,
				Title:        "MBUX-123: Fix NLU crash when navigating home",
				SourceBranch: "feature/MBUX-123-fix-nlu-crash",
				State:        "merged",
				Author:       "dave",
				WebURL:       "https://git.example.com/pr/1",
			},
			{
				ID:           2,
				Title:        "Improve logging for test failures",
				SourceBranch: "feature/MBUX-789-logging",
				State:        "open",
				Author:       "erin",
				WebURL:       "https://git.example.com/pr/2",
			},
			{
				ID:           3,
				Title:        "WIP: experiment with audio pipeline",
				SourceBranch: "experiment/audio-refactor",
				State:        "open",
				Author:       "frank",
				WebURL:       "https://git.example.com/pr/3",
			},
		},
	}
}

// LoadFixtureData reads a fixture dataset from a YAML file
func LoadFixtureData(path string) (*FixtureData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture data file: %w", err)
	}

	var fixture FixtureData
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("failed to parse fixture data file: %w", err)
	}

	return &fixture, nil
}

// FixtureTicketSource implements the TicketSource interface over a fixed
// in-memory dataset. Tickets list in declaration order.
type FixtureTicketSource struct {
	tickets []models.Ticket
	byKey   map[string]models.Ticket
}

// NewFixtureTicketSource creates a new FixtureTicketSource
func NewFixtureTicketSource(tickets []models.Ticket) *FixtureTicketSource {
	byKey := make(map[string]models.Ticket, len(tickets))
	for _, ticket := range tickets {
		byKey[ticket.Key] = ticket
	}
	return &FixtureTicketSource{
		tickets: tickets,
		byKey:   byKey,
	}
}

// GetTicket returns the ticket with the given key, or nil when no such ticket exists
func (s *FixtureTicketSource) GetTicket(key string) (*models.Ticket, error) {
	if ticket, ok := s.byKey[key]; ok {
		return &ticket, nil
	}
	return nil, nil
}

// ListTickets returns every known ticket in declaration order
func (s *FixtureTicketSource) ListTickets() ([]models.Ticket, error) {
	return s.tickets, nil
}

// FixtureMergeRequestSource implements the MergeRequestSource interface over a
// fixed in-memory dataset
type FixtureMergeRequestSource struct {
	mergeRequests []models.MergeRequest
}

// NewFixtureMergeRequestSource creates a new FixtureMergeRequestSource
func NewFixtureMergeRequestSource(mergeRequests []models.MergeRequest) *FixtureMergeRequestSource {
	return &FixtureMergeRequestSource{mergeRequests: mergeRequests}
}

// ListMergeRequests returns every merge request in declaration order
func (s *FixtureMergeRequestSource) ListMergeRequests() ([]models.MergeRequest, error) {
	return s.mergeRequests, nil
}
