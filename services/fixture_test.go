package services

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultFixtureData tests the shape of the built-in dataset
func TestDefaultFixtureData(t *testing.T) {
	fixture := DefaultFixtureData()

	if len(fixture.Tickets) != 3 {
		t.Errorf("Expected 3 fixture tickets, got %d", len(fixture.Tickets))
	}
	if len(fixture.MergeRequests) != 3 {
		t.Errorf("Expected 3 fixture merge requests, got %d", len(fixture.MergeRequests))
	}

	expectedKeys := []string{"MBUX-123", "MBUX-456", "MBUX-789"}
	for i, key := range expectedKeys {
		if fixture.Tickets[i].Key != key {
			t.Errorf("Expected ticket %d to be %s, got %s", i, key, fixture.Tickets[i].Key)
		}
	}
}

// TestFixtureTicketSource tests lookup and stable enumeration
func TestFixtureTicketSource(t *testing.T) {
	source := NewFixtureTicketSource(DefaultFixtureData().Tickets)

	ticket, err := source.GetTicket("MBUX-123")
	if err != nil {
		t.Fatalf("GetTicket returned error: %v", err)
	}
	if ticket == nil || ticket.Summary != "Fix navigation crash" {
		t.Errorf("Expected MBUX-123 with its summary, got %+v", ticket)
	}

	// An unknown key is absence, not an error
	ticket, err = source.GetTicket("MBUX-999")
	if err != nil {
		t.Fatalf("GetTicket returned error: %v", err)
	}
	if ticket != nil {
		t.Errorf("Expected nil for unknown key, got %+v", ticket)
	}

	first, err := source.ListTickets()
	if err != nil {
		t.Fatalf("ListTickets returned error: %v", err)
	}
	second, err := source.ListTickets()
	if err != nil {
		t.Fatalf("ListTickets returned error: %v", err)
	}
	for i := range first {
		if first[i].Key != second[i].Key {
			t.Errorf("Expected stable enumeration order, got %s vs %s", first[i].Key, second[i].Key)
		}
	}
}

// TestFixtureMergeRequestSource tests enumeration in declaration order
func TestFixtureMergeRequestSource(t *testing.T) {
	source := NewFixtureMergeRequestSource(DefaultFixtureData().MergeRequests)

	mergeRequests, err := source.ListMergeRequests()
	if err != nil {
		t.Fatalf("ListMergeRequests returned error: %v", err)
	}
	for i, mergeRequest := range mergeRequests {
		if mergeRequest.ID != i+1 {
			t.Errorf("Expected merge request %d at position %d, got %d", i+1, i, mergeRequest.ID)
		}
	}
}

// TestLoadFixtureData tests loading a dataset from a YAML file
func TestLoadFixtureData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.yaml")
	data := `tickets:
  - key: PROJ-1
    summary: First ticket
    status: To Do
    assignee: alice
merge_requests:
  - id: 1
    title: "PROJ-1: do the thing"
    source_branch: feature/PROJ-1-thing
    state: open
    author: bob
    web_url: https://git.example.com/pr/1
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("Failed to write fixture file: %v", err)
	}

	fixture, err := LoadFixtureData(path)
	if err != nil {
		t.Fatalf("LoadFixtureData returned error: %v", err)
	}

	if len(fixture.Tickets) != 1 || fixture.Tickets[0].Key != "PROJ-1" {
		t.Errorf("Expected one PROJ-1 ticket, got %+v", fixture.Tickets)
	}
	if len(fixture.MergeRequests) != 1 || fixture.MergeRequests[0].SourceBranch != "feature/PROJ-1-thing" {
		t.Errorf("Expected one merge request, got %+v", fixture.MergeRequests)
	}
}

// TestLoadFixtureData_Errors tests missing and malformed files
func TestLoadFixtureData_Errors(t *testing.T) {
	if _, err := LoadFixtureData(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing fixture file")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("tickets: [}"), 0o600); err != nil {
		t.Fatalf("Failed to write fixture file: %v", err)
	}
	if _, err := LoadFixtureData(path); err == nil {
		t.Error("Expected error for malformed fixture file")
	}
}
