package markdown

import (
	"fmt"
	"sort"
	"strings"

	"jira-scribe/internal/models"
)

// optionalFieldLimit caps the optional-field listing in the legacy
// multi-type metadata path
const optionalFieldLimit = 10

// allowedValueLimit caps the allowed-value preview on a field detail line
const allowedValueLimit = 5

// fieldEntry pairs a field descriptor with its field-map key so rendering
// can fall back to the map key as the display identifier
type fieldEntry struct {
	id    string
	field models.FieldDescriptor
}

// partitionFields splits a field map into required and optional lists,
// ordered by field id so output is deterministic
func partitionFields(fields map[string]models.FieldDescriptor) (required, optional []fieldEntry) {
	ids := make([]string, 0, len(fields))
	for id := range fields {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		entry := fieldEntry{id: id, field: fields[id]}
		if entry.field.Required {
			required = append(required, entry)
		} else {
			optional = append(optional, entry)
		}
	}
	return required, optional
}

// fieldList renders one bullet per field: display name plus display
// identifier, then an indented detail line joining schema info, a preview of
// allowed values, and the default value with " | ".
func fieldList(entries []fieldEntry) string {
	lines := make([]string, 0, len(entries)*2)
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("- **%s** (`%s`)", e.field.Name, e.field.Identifier(e.id)))

		details := []string{"Type: " + e.field.Schema.Type}
		if e.field.Schema.System != "" {
			details = append(details, "System: "+e.field.Schema.System)
		}
		if e.field.Schema.Custom != "" {
			details = append(details, "Custom: "+e.field.Schema.Custom)
		}
		if len(e.field.AllowedValues) > 0 {
			values := e.field.AllowedValues
			truncated := false
			if len(values) > allowedValueLimit {
				values = values[:allowedValueLimit]
				truncated = true
			}
			names := make([]string, 0, len(values))
			for _, v := range values {
				names = append(names, v.Display())
			}
			preview := strings.Join(names, ", ")
			if truncated {
				preview += ", ..."
			}
			details = append(details, "Allowed values: "+preview)
		}
		if e.field.DefaultValue != nil {
			details = append(details, "Default: "+FormatValue(e.field.DefaultValue))
		}

		lines = append(lines, "  "+strings.Join(details, " | "))
	}
	return strings.Join(lines, "\n")
}

// fieldSection renders a heading plus field list, with an italic None
// placeholder when the list is empty
func fieldSection(title string, entries []fieldEntry) []string {
	blocks := []string{Heading(title, 3)}
	if len(entries) == 0 {
		blocks = append(blocks, "*None*")
	} else {
		blocks = append(blocks, fieldList(entries))
	}
	return blocks
}

// CreateMeta renders issue-creation metadata for a project. The response
// comes in one of two mutually exclusive shapes; the shape discriminator
// picks the branch once at entry.
func (f *Formatter) CreateMeta(meta models.CreateMetaResponse, projectKey string) string {
	var blocks []string

	switch meta.Shape() {
	case models.CreateMetaSingleType:
		blocks = singleTypeBlocks(meta, projectKey)
	case models.CreateMetaLegacy:
		blocks = legacyBlocks(meta.Projects[0])
	default:
		blocks = []string{"*No issue types available for this project.*"}
	}

	blocks = append(blocks, f.footer("Retrieved at"))
	return document(blocks...)
}

func singleTypeBlocks(meta models.CreateMetaResponse, projectKey string) []string {
	blocks := []string{
		Heading("Issue Creation Metadata: "+projectKey, 1),
		Heading("Issue Type: "+meta.Name, 2),
	}
	if meta.Description != "" {
		blocks = append(blocks, "*"+meta.Description+"*")
	}

	required, optional := partitionFields(meta.Fields)
	blocks = append(blocks, fieldSection("Required Fields", required)...)
	blocks = append(blocks, fieldSection("Optional Fields", optional)...)
	return blocks
}

func legacyBlocks(project models.CreateMetaProject) []string {
	blocks := []string{
		Heading(fmt.Sprintf("Issue Creation Metadata: %s (%s)", project.Name, project.Key), 1),
	}

	for i, issueType := range project.IssueTypes {
		if i > 0 {
			blocks = append(blocks, Separator())
		}
		blocks = append(blocks, issueTypeBlocks(issueType)...)
	}
	return blocks
}

func issueTypeBlocks(issueType models.IssueTypeMetadata) []string {
	info := []Pair{
		{Key: "ID", Value: issueType.ID},
	}
	if issueType.Description != "" {
		info = append(info, Pair{Key: "Description", Value: issueType.Description})
	}
	info = append(info, Pair{Key: "Subtask", Value: issueType.Subtask})

	blocks := []string{
		Heading("Issue Type: "+issueType.Name, 2),
		BulletList(info, nil),
	}

	required, optional := partitionFields(issueType.Fields)
	blocks = append(blocks, fieldSection("Required Fields", required)...)

	blocks = append(blocks, Heading("Optional Fields", 3))
	switch {
	case len(optional) == 0:
		blocks = append(blocks, "*No optional fields available*")
	case len(optional) > optionalFieldLimit:
		blocks = append(blocks, fieldList(optional[:optionalFieldLimit]))
		blocks = append(blocks, fmt.Sprintf("*... and %d more optional fields*", len(optional)-optionalFieldLimit))
	default:
		blocks = append(blocks, fieldList(optional))
	}
	return blocks
}
