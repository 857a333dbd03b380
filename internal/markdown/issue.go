package markdown

import (
	"fmt"
	"sort"
	"strings"

	"jira-scribe/internal/models"
)

// apiIssuePath is the REST resource path segment rewritten into a browse
// URL. When the segment is absent the replacement is a no-op and the browse
// link duplicates the API link; Jira treats that as acceptable, so do we.
const apiIssuePath = "/rest/api/3/issue/"

// BrowseURL derives the human-facing browse URL from an issue's canonical
// API URL
func BrowseURL(self string) string {
	return strings.Replace(self, apiIssuePath, "/browse/", 1)
}

// CreateIssue renders the confirmation document for a created issue,
// including any transition outcome and its validation errors.
func (f *Formatter) CreateIssue(res models.CreateIssueResponse) string {
	blocks := []string{
		Heading("Issue Created Successfully", 1),
		BulletList([]Pair{
			{Key: "Key", Value: res.Key},
			{Key: "ID", Value: res.ID},
			{Key: "API URL", Value: models.Link{URL: res.Self}},
			{Key: "Browse URL", Value: models.Link{URL: BrowseURL(res.Self)}},
		}, nil),
	}

	if res.Transition != nil {
		blocks = append(blocks, fmt.Sprintf("**Transition Status**: %d", res.Transition.Status))
		blocks = append(blocks, errorCollectionBlocks(res.Transition.ErrorCollection)...)
	}

	blocks = append(blocks, f.footer("Created at"))
	return document(blocks...)
}

// errorCollectionBlocks renders the free-form messages and the per-field
// errors of a transition's error collection; both parts are optional and
// rendered independently
func errorCollectionBlocks(ec *models.ErrorCollection) []string {
	if ec == nil {
		return nil
	}

	var blocks []string
	if len(ec.ErrorMessages) > 0 {
		lines := []string{"**Warnings:**"}
		for _, msg := range ec.ErrorMessages {
			lines = append(lines, "- "+msg)
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	if len(ec.Errors) > 0 {
		fields := make([]string, 0, len(ec.Errors))
		for field := range ec.Errors {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		lines := []string{"**Field Errors:**"}
		for _, field := range fields {
			lines = append(lines, fmt.Sprintf("- **%s**: %s", field, ec.Errors[field]))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return blocks
}
