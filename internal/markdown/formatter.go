// Package markdown renders Jira API response shapes as markdown documents.
// Formatters are pure: they take an already-decoded response object and
// return a string, with a single debug log line as the only side effect.
package markdown

import (
	"io"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Formatter renders response objects as markdown documents. Construct with
// NewFormatter; the zero value has no logger or clock.
type Formatter struct {
	log log.FieldLogger
	now func() time.Time
}

// NewFormatter returns a Formatter logging diagnostics through logger. A nil
// logger disables diagnostic output.
func NewFormatter(logger log.FieldLogger) *Formatter {
	if logger == nil {
		l := log.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &Formatter{log: logger, now: time.Now}
}

// document joins blocks with blank lines into a single markdown string
func document(blocks ...string) string {
	return strings.Join(blocks, "\n\n") + "\n"
}

// footer renders the trailing separator plus timestamp block every document
// ends with
func (f *Formatter) footer(label string) string {
	return Separator() + "\n" + label + ": " + FormatDate(f.now())
}
