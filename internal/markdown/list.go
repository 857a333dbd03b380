package markdown

import (
	"fmt"

	"jira-scribe/internal/models"
)

// Projects renders a paginated project listing
func (f *Formatter) Projects(res models.ProjectSearchResponse) string {
	items := NumberedList(len(res.Values), func(i int) string {
		p := res.Values[i]
		pairs := []Pair{
			{Key: "ID", Value: p.ID},
		}
		if p.ProjectTypeKey != "" {
			pairs = append(pairs, Pair{Key: "Type", Value: p.ProjectTypeKey})
		}
		if p.Lead != nil {
			pairs = append(pairs, Pair{Key: "Lead", Value: p.Lead.DisplayName})
		}
		return Heading(fmt.Sprintf("%d. %s (%s)", i+1, p.Name, p.Key), 3) + "\n\n" + BulletList(pairs, nil)
	})

	return document(
		Heading("Jira Projects", 1),
		items,
		f.Pagination(models.PageOf(res.StartAt, len(res.Values), res.Total)),
	)
}

// SearchResults renders a paginated JQL search result listing
func (f *Formatter) SearchResults(res models.SearchResponse) string {
	items := NumberedList(len(res.Issues), func(i int) string {
		issue := res.Issues[i]
		pairs := []Pair{
			{Key: "Summary", Value: issue.Fields.Summary},
		}
		if issue.Fields.Status != nil {
			pairs = append(pairs, Pair{Key: "Status", Value: issue.Fields.Status.Name})
		}
		if issue.Fields.Assignee != nil {
			pairs = append(pairs, Pair{Key: "Assignee", Value: issue.Fields.Assignee.DisplayName})
		}
		if issue.Fields.IssueType != nil {
			pairs = append(pairs, Pair{Key: "Type", Value: issue.Fields.IssueType.Name})
		}
		if issue.Fields.Created != "" {
			pairs = append(pairs, Pair{Key: "Created", Value: issue.Fields.Created})
		}
		if issue.Fields.Updated != "" {
			pairs = append(pairs, Pair{Key: "Updated", Value: issue.Fields.Updated})
		}
		if issue.Self != "" {
			pairs = append(pairs, Pair{Key: "Link", Value: models.Link{URL: BrowseURL(issue.Self)}})
		}
		return Heading(fmt.Sprintf("%d. %s", i+1, issue.Key), 3) + "\n\n" + BulletList(pairs, nil)
	})

	return document(
		Heading("Search Results", 1),
		items,
		f.Pagination(models.PageOf(res.StartAt, len(res.Issues), res.Total)),
	)
}

// Transitions renders the workflow transitions available to an issue
func (f *Formatter) Transitions(issueKey string, res models.TransitionsResponse) string {
	blocks := []string{Heading("Available Transitions: "+issueKey, 1)}

	if len(res.Transitions) == 0 {
		blocks = append(blocks, "*No transitions available for this issue.*")
	} else {
		pairs := make([]Pair, 0, len(res.Transitions))
		for _, t := range res.Transitions {
			target := NotAvailable
			if t.To != nil {
				target = t.To.Name
			}
			pairs = append(pairs, Pair{
				Key:   t.Name,
				Value: fmt.Sprintf("ID %s, moves issue to %s", t.ID, target),
			})
		}
		blocks = append(blocks, BulletList(pairs, nil))
	}

	blocks = append(blocks, f.footer("Retrieved at"))
	return document(blocks...)
}
