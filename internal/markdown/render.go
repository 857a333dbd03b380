package markdown

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"jira-scribe/internal/models"
)

// Sentinel strings substituted for values that cannot be rendered. The two
// date sentinels are intentionally distinct: one covers unusable time values,
// the other covers strings that look like ISO timestamps but fail to parse.
const (
	NotAvailable      = "Not available"
	InvalidDate       = "Invalid date"
	InvalidDateString = "Invalid date string"
)

// DateFormat is the standardized timestamp layout for all rendered output
const DateFormat = "2006-01-02 15:04:05"

var isoDateTimePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`)

var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000-0700",
	"2006-01-02T15:04:05",
}

// FormatDate renders an instant in the standardized date format
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateFormat) + " UTC"
}

func parseISO(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range isoLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// FormatValue converts a single typed value into its markdown representation.
// All failure paths degrade to a sentinel string; no error is ever returned.
func FormatValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return NotAvailable
	case time.Time:
		if v.IsZero() {
			return InvalidDate
		}
		return FormatDate(v)
	case *time.Time:
		if v == nil {
			return NotAvailable
		}
		return FormatValue(*v)
	case models.Link:
		return URLLink(v.URL, v.Title)
	case *models.Link:
		if v == nil {
			return NotAvailable
		}
		return URLLink(v.URL, v.Title)
	case bool:
		if v {
			return "Yes"
		}
		return "No"
	case string:
		if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
			return URLLink(v, "")
		}
		if isoDateTimePrefix.MatchString(v) {
			t, err := parseISO(v)
			if err != nil {
				return InvalidDateString
			}
			return FormatDate(t)
		}
		return v
	default:
		return fmt.Sprint(value)
	}
}

// Heading renders a markdown heading, clamping the level to [1,6]
func Heading(text string, level int) string {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return strings.Repeat("#", level) + " " + text
}

// URLLink renders a markdown link, falling back to the URL itself as the
// title. An absent URL renders as the NotAvailable sentinel, not a link.
func URLLink(url, title string) string {
	if url == "" {
		return NotAvailable
	}
	if title == "" {
		title = url
	}
	return fmt.Sprintf("[%s](%s)", title, url)
}

// Separator renders the horizontal-rule token
func Separator() string {
	return "---"
}

// Pair is one ordered key/value entry for BulletList
type Pair struct {
	Key   string
	Value interface{}
}

// BulletList renders ordered key/value pairs as markdown bullets, skipping
// entries with nil values. The optional keyFormat transforms keys before
// rendering. Values go through FormatValue.
func BulletList(entries []Pair, keyFormat func(string) string) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Value == nil {
			continue
		}
		key := e.Key
		if keyFormat != nil {
			key = keyFormat(key)
		}
		lines = append(lines, fmt.Sprintf("- **%s**: %s", key, FormatValue(e.Value)))
	}
	return strings.Join(lines, "\n")
}

// NumberedList formats n items independently and joins them with a separator
// flanked by blank lines. The formatter receives the zero-based item index.
func NumberedList(n int, format func(i int) string) string {
	if n == 0 {
		return "No items."
	}
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		parts = append(parts, format(i))
	}
	return strings.Join(parts, "\n\n"+Separator()+"\n\n")
}
