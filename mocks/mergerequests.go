package mocks

import (
	"jira-mr-linker/models"
)

// MockMergeRequestSource is a mock implementation of the MergeRequestSource interface
type MockMergeRequestSource struct {
	ListMergeRequestsFunc func() ([]models.MergeRequest, error)
}

// ListMergeRequests is the mock implementation of MergeRequestSource's ListMergeRequests method
func (m *MockMergeRequestSource) ListMergeRequests() ([]models.MergeRequest, error) {
	if m.ListMergeRequestsFunc != nil {
		return m.ListMergeRequestsFunc()
	}
	return nil, nil
}
