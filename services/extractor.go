package services

import (
	"fmt"
	"regexp"
	"strings"

	"jira-mr-linker/models"
)

// TicketExtractor finds ticket keys like MBUX-123 in free text. Extraction is
// case-insensitive; results are reported upper-cased.
type TicketExtractor struct {
	pattern *regexp.Regexp
}

// NewTicketExtractor compiles the ticket-key pattern for the given project prefix
func NewTicketExtractor(prefix string) (*TicketExtractor, error) {
	pattern, err := regexp.Compile(fmt.Sprintf(`(?i)(%s-\d+)`, regexp.QuoteMeta(prefix)))
	if err != nil {
		return nil, fmt.Errorf("failed to compile ticket pattern for prefix %q: %w", prefix, err)
	}
	return &TicketExtractor{pattern: pattern}, nil
}

// Extract returns the first ticket key found in the candidates, trying them in
// the given order. Only the first match within the first matching candidate is
// used. The second return value is false when no candidate contains a key;
// absence is a normal outcome, not an error.
func (e *TicketExtractor) Extract(candidates ...string) (string, bool) {
	for _, text := range candidates {
		if match := e.pattern.FindString(text); match != "" {
			return strings.ToUpper(match), true
		}
	}
	return "", false
}

// ExtractFromMergeRequest extracts a ticket key from a merge request, trying
// the title before the source branch.
func (e *TicketExtractor) ExtractFromMergeRequest(mr models.MergeRequest) (string, bool) {
	return e.Extract(mr.Title, mr.SourceBranch)
}
