package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"jira-mr-linker/models"
)

const (
	// Response body truncation for error messages
	maxBodyErrorLength = 200

	jiraRequestTimeout = 30 * time.Second
)

// JiraTicketSource implements the TicketSource interface against the Jira
// REST API. It is the production counterpart of FixtureTicketSource.
type JiraTicketSource struct {
	config *models.Config
	client *http.Client
	logger *zap.Logger
}

// NewJiraTicketSource creates a new JiraTicketSource
func NewJiraTicketSource(config *models.Config, logger *zap.Logger) *JiraTicketSource {
	return &JiraTicketSource{
		config: config,
		client: &http.Client{Timeout: jiraRequestTimeout},
		logger: logger,
	}
}

// truncateForError truncates response body for error messages
func truncateForError(body []byte) string {
	bodyStr := string(body)
	if len(bodyStr) > maxBodyErrorLength {
		return bodyStr[:maxBodyErrorLength] + fmt.Sprintf("... (truncated, total: %d chars)", len(bodyStr))
	}
	return bodyStr
}

// doGet performs an authenticated GET against the Jira API and returns the
// status code and response body
func (s *JiraTicketSource) doGet(requestURL string) (int, []byte, error) {
	s.logger.Debug("Requesting Jira", zap.String("url", requestURL))

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.config.Jira.APIToken))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return resp.StatusCode, body, nil
}

func (s *JiraTicketSource) baseURL() string {
	return strings.TrimSuffix(s.config.Jira.BaseURL, "/")
}

// GetTicket fetches a ticket from Jira. A 404 maps to (nil, nil) since an
// unknown key is a normal outcome for the linker.
func (s *JiraTicketSource) GetTicket(key string) (*models.Ticket, error) {
	requestURL := fmt.Sprintf("%s/rest/api/2/issue/%s", s.baseURL(), key)

	status, body, err := s.doGet(requestURL)
	if err != nil {
		return nil, err
	}

	switch status {
	case http.StatusOK:
		var issue models.JiraIssue
		if err := json.Unmarshal(body, &issue); err != nil {
			return nil, fmt.Errorf("failed to parse Jira issue %s: %w", key, err)
		}
		ticket := issue.ToTicket()
		return &ticket, nil
	case http.StatusNotFound:
		s.logger.Debug("Ticket not found in Jira", zap.String("key", key))
		return nil, nil
	default:
		return nil, fmt.Errorf("jira returned status %d for issue %s: %s", status, key, truncateForError(body))
	}
}

// ListTickets returns every ticket of the configured project, ordered by key
func (s *JiraTicketSource) ListTickets() ([]models.Ticket, error) {
	jql := url.QueryEscape(fmt.Sprintf("project = %s ORDER BY key ASC", s.config.Jira.ProjectKey))
	requestURL := fmt.Sprintf("%s/rest/api/2/search?jql=%s", s.baseURL(), jql)

	status, body, err := s.doGet(requestURL)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("jira returned status %d for search: %s", status, truncateForError(body))
	}

	var searchResponse models.JiraSearchResponse
	if err := json.Unmarshal(body, &searchResponse); err != nil {
		return nil, fmt.Errorf("failed to parse Jira search response: %w", err)
	}

	tickets := make([]models.Ticket, 0, len(searchResponse.Issues))
	for _, issue := range searchResponse.Issues {
		tickets = append(tickets, issue.ToTicket())
	}

	s.logger.Debug("Listed Jira tickets", zap.Int("count", len(tickets)))
	return tickets, nil
}
