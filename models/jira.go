package models

// JiraIssue represents a Jira issue
type JiraIssue struct {
	ID     string     `json:"id"`
	Self   string     `json:"self"`
	Key    string     `json:"key"`
	Fields JiraFields `json:"fields"`
}

// JiraFields represents the fields of a Jira issue
type JiraFields struct {
	Summary  string     `json:"summary"`
	Status   JiraStatus `json:"status"`
	Assignee *JiraUser  `json:"assignee,omitempty"`
}

// JiraStatus represents the status of a Jira issue
type JiraStatus struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// JiraUser represents a Jira user
type JiraUser struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

// JiraSearchResponse represents the response from a Jira search
type JiraSearchResponse struct {
	StartAt    int         `json:"startAt"`
	MaxResults int         `json:"maxResults"`
	Total      int         `json:"total"`
	Issues     []JiraIssue `json:"issues"`
}

// ToTicket maps a Jira issue onto the linker's ticket model. An unassigned
// issue maps to an empty assignee.
func (i *JiraIssue) ToTicket() Ticket {
	ticket := Ticket{
		Key:     i.Key,
		Summary: i.Fields.Summary,
		Status:  i.Fields.Status.Name,
	}
	if i.Fields.Assignee != nil {
		ticket.Assignee = i.Fields.Assignee.DisplayName
	}
	return ticket
}
