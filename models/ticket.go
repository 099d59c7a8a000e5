package models

// Ticket represents an issue-tracker ticket
type Ticket struct {
	Key      string `yaml:"key"`
	Summary  string `yaml:"summary"`
	Status   string `yaml:"status"`
	Assignee string `yaml:"assignee"`
}
