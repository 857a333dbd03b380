package markdown

import (
	"fmt"
	"strings"

	"jira-scribe/internal/models"
)

// Pagination renders the trailing result-set footer for any listable
// resource. It always begins with a separator line and ends with the
// retrieval timestamp.
func (f *Formatter) Pagination(p models.Pagination) string {
	var b strings.Builder
	b.WriteString(Separator())
	b.WriteString("\n\n")

	switch {
	case p.Total != nil && *p.Total >= 0:
		fmt.Fprintf(&b, "Showing %d of %d total items.", p.Count, *p.Total)
	case p.Count >= 0:
		noun := "items"
		if p.Count == 1 {
			noun = "item"
		}
		fmt.Fprintf(&b, "Showing %d %s.", p.Count, noun)
	}

	if p.HasMore {
		b.WriteString(" More results are available.")
		if p.NextCursor != nil {
			fmt.Fprintf(&b, " Use --start-at %d to retrieve the next page.", *p.NextCursor)
		}
	}

	b.WriteString("\n\nRetrieved at: ")
	b.WriteString(FormatDate(f.now()))

	out := b.String()
	f.log.WithField("footer", out).Debug("rendered pagination footer")
	return out
}
