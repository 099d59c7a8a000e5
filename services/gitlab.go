package services

import (
	"fmt"

	"github.com/xanzy/go-gitlab"
	"go.uber.org/zap"

	"jira-mr-linker/models"
)

// GitLabMergeRequestSource implements the MergeRequestSource interface against
// the GitLab API. It is the production counterpart of
// FixtureMergeRequestSource.
type GitLabMergeRequestSource struct {
	client  *gitlab.Client
	project string
	logger  *zap.Logger
}

// NewGitLabMergeRequestSource creates a new GitLabMergeRequestSource
func NewGitLabMergeRequestSource(config *models.Config, logger *zap.Logger) (*GitLabMergeRequestSource, error) {
	options := []gitlab.ClientOptionFunc{}
	if config.GitLab.BaseURL != "" {
		options = append(options, gitlab.WithBaseURL(config.GitLab.BaseURL))
	}

	client, err := gitlab.NewClient(config.GitLab.APIToken, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gitlab client: %w", err)
	}

	return &GitLabMergeRequestSource{
		client:  client,
		project: config.GitLab.ProjectID,
		logger:  logger,
	}, nil
}

// ListMergeRequests returns every merge request of the configured project in
// creation order
func (s *GitLabMergeRequestSource) ListMergeRequests() ([]models.MergeRequest, error) {
	var all []models.MergeRequest

	options := &gitlab.ListProjectMergeRequestsOptions{
		OrderBy: gitlab.String("created_at"),
		Sort:    gitlab.String("asc"),
	}
	for {
		mergeRequests, resp, err := s.client.MergeRequests.ListProjectMergeRequests(s.project, options)
		if err != nil {
			return nil, fmt.Errorf("failed to list merge requests: %w", err)
		}

		for _, mergeRequest := range mergeRequests {
			all = append(all, convertMergeRequest(mergeRequest))
		}

		if resp.CurrentPage >= resp.TotalPages {
			break
		}
		options.Page = resp.NextPage
	}

	s.logger.Debug("Listed GitLab merge requests", zap.Int("count", len(all)))
	return all, nil
}

// convertMergeRequest maps a GitLab merge request onto the linker's model
func convertMergeRequest(mr *gitlab.MergeRequest) models.MergeRequest {
	converted := models.MergeRequest{
		ID:           mr.IID,
		Title:        mr.Title,
		SourceBranch: mr.SourceBranch,
		State:        mr.State,
		WebURL:       mr.WebURL,
	}
	if mr.Author != nil {
		converted.Author = mr.Author.Username
	}
	return converted
}
