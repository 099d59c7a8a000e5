package models

// LinkedTicket pairs a ticket with the merge requests that reference it.
// Merge requests keep the order in which they were supplied by the source.
type LinkedTicket struct {
	Ticket        Ticket
	MergeRequests []MergeRequest
}

// Report is the three-way partition produced by the linker: tickets with at
// least one merge request, and merge requests with no resolvable ticket.
// Tickets without merge requests are derived by subtracting LinkedKeys from
// the full ticket enumeration.
type Report struct {
	Linked                []LinkedTicket
	UnlinkedMergeRequests []MergeRequest
}

// LinkedKeys returns the set of ticket keys that have at least one merge request.
func (r *Report) LinkedKeys() map[string]bool {
	keys := make(map[string]bool, len(r.Linked))
	for _, linked := range r.Linked {
		keys[linked.Ticket.Key] = true
	}
	return keys
}
