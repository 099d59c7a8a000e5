package models

// MergeRequest represents a source-control merge request
type MergeRequest struct {
	ID           int    `yaml:"id"`
	Title        string `yaml:"title"`
	SourceBranch string `yaml:"source_branch"`
	State        string `yaml:"state"`
	Author       string `yaml:"author"`
	WebURL       string `yaml:"web_url"`
}
