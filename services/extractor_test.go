package services

import (
	"testing"
)

// TestTicketExtractor_Extract tests extraction over ordered candidate strings
func TestTicketExtractor_Extract(t *testing.T) {
	// Test cases
	testCases := []struct {
		name        string
		candidates  []string
		expectedKey string
		expectedOK  bool
	}{
		{
			name:        "uppercase key in title",
			candidates:  []string{"MBUX-123: Fix NLU crash when navigating home", "feature/MBUX-123-fix-nlu-crash"},
			expectedKey: "MBUX-123",
			expectedOK:  true,
		},
		{
			name:        "lowercase key",
			candidates:  []string{"mbux-123: fix nlu crash"},
			expectedKey: "MBUX-123",
			expectedOK:  true,
		},
		{
			name:        "mixed case key",
			candidates:  []string{"Mbux-123 fixes the crash"},
			expectedKey: "MBUX-123",
			expectedOK:  true,
		},
		{
			name:        "key only in branch",
			candidates:  []string{"Improve logging for test failures", "feature/MBUX-789-logging"},
			expectedKey: "MBUX-789",
			expectedOK:  true,
		},
		{
			name:        "title wins over branch",
			candidates:  []string{"MBUX-123: fix", "feature/MBUX-456-other"},
			expectedKey: "MBUX-123",
			expectedOK:  true,
		},
		{
			name:        "first match within a candidate wins",
			candidates:  []string{"MBUX-1 supersedes MBUX-2"},
			expectedKey: "MBUX-1",
			expectedOK:  true,
		},
		{
			name:        "no match in any candidate",
			candidates:  []string{"WIP: experiment with audio pipeline", "experiment/audio-refactor"},
			expectedKey: "",
			expectedOK:  false,
		},
		{
			name:        "prefix without hyphen and digits",
			candidates:  []string{"MBUX 123"},
			expectedKey: "",
			expectedOK:  false,
		},
		{
			name:        "no candidates",
			candidates:  nil,
			expectedKey: "",
			expectedOK:  false,
		},
	}

	extractor, err := NewTicketExtractor("MBUX")
	if err != nil {
		t.Fatalf("NewTicketExtractor returned error: %v", err)
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			key, ok := extractor.Extract(tc.candidates...)
			if ok != tc.expectedOK {
				t.Errorf("Expected ok %v, got %v", tc.expectedOK, ok)
			}
			if key != tc.expectedKey {
				t.Errorf("Expected key %q, got %q", tc.expectedKey, key)
			}
		})
	}
}

// TestTicketExtractor_ExtractFromMergeRequest tests title-before-branch priority
func TestTicketExtractor_ExtractFromMergeRequest(t *testing.T) {
	extractor, err := NewTicketExtractor("MBUX")
	if err != nil {
		t.Fatalf("NewTicketExtractor returned error: %v", err)
	}

	fixture := DefaultFixtureData()

	key, ok := extractor.ExtractFromMergeRequest(fixture.MergeRequests[0])
	if !ok || key != "MBUX-123" {
		t.Errorf("Expected MBUX-123 from first fixture MR, got %q (ok=%v)", key, ok)
	}

	key, ok = extractor.ExtractFromMergeRequest(fixture.MergeRequests[1])
	if !ok || key != "MBUX-789" {
		t.Errorf("Expected MBUX-789 from second fixture MR, got %q (ok=%v)", key, ok)
	}

	_, ok = extractor.ExtractFromMergeRequest(fixture.MergeRequests[2])
	if ok {
		t.Error("Expected no key from third fixture MR")
	}
}

// TestTicketExtractor_CustomPrefix tests extraction with a non-default prefix
func TestTicketExtractor_CustomPrefix(t *testing.T) {
	extractor, err := NewTicketExtractor("CORE")
	if err != nil {
		t.Fatalf("NewTicketExtractor returned error: %v", err)
	}

	key, ok := extractor.Extract("core-42: bump dependencies")
	if !ok || key != "CORE-42" {
		t.Errorf("Expected CORE-42, got %q (ok=%v)", key, ok)
	}

	if _, ok := extractor.Extract("MBUX-123: wrong project"); ok {
		t.Error("Expected no match for a different prefix")
	}
}
