package markdown

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jira-scribe/internal/models"
)

func TestCreateMetaSingleTypeEmptyFields(t *testing.T) {
	f := newTestFormatter()

	out := f.CreateMeta(models.CreateMetaResponse{
		Fields: map[string]models.FieldDescriptor{},
		Name:   "Bug",
	}, "ABC")

	assert.Contains(t, out, "# Issue Creation Metadata: ABC")
	assert.Contains(t, out, "## Issue Type: Bug")
	assert.Contains(t, out, "### Required Fields\n\n*None*")
	assert.Contains(t, out, "### Optional Fields\n\n*None*")
}

func TestCreateMetaSingleTypePartitionsFields(t *testing.T) {
	f := newTestFormatter()

	out := f.CreateMeta(models.CreateMetaResponse{
		Name:        "Task",
		Description: "A unit of work",
		Fields: map[string]models.FieldDescriptor{
			"summary": {
				Name:     "Summary",
				Key:      "summary",
				Required: true,
				Schema:   models.FieldSchema{Type: "string", System: "summary"},
			},
			"labels": {
				Name:   "Labels",
				Key:    "labels",
				Schema: models.FieldSchema{Type: "array", System: "labels"},
			},
		},
	}, "ABC")

	assert.Contains(t, out, "*A unit of work*")

	requiredIdx := strings.Index(out, "### Required Fields")
	optionalIdx := strings.Index(out, "### Optional Fields")
	summaryIdx := strings.Index(out, "- **Summary** (`summary`)")
	labelsIdx := strings.Index(out, "- **Labels** (`labels`)")
	require.True(t, requiredIdx >= 0 && optionalIdx >= 0 && summaryIdx >= 0 && labelsIdx >= 0)

	assert.True(t, requiredIdx < summaryIdx && summaryIdx < optionalIdx, "summary must be under Required Fields")
	assert.True(t, optionalIdx < labelsIdx, "labels must be under Optional Fields")

	assert.Contains(t, out, "Type: string | System: summary")
}

func TestCreateMetaEmptyShape(t *testing.T) {
	f := newTestFormatter()

	expected := "*No issue types available for this project.*\n\n---\nRetrieved at: 2024-05-01 12:00:00 UTC\n"

	t.Run("zero value", func(t *testing.T) {
		assert.Equal(t, expected, f.CreateMeta(models.CreateMetaResponse{}, "ABC"))
	})

	t.Run("empty projects array", func(t *testing.T) {
		out := f.CreateMeta(models.CreateMetaResponse{Projects: []models.CreateMetaProject{}}, "ABC")
		assert.Equal(t, expected, out)
	})
}

func TestCreateMetaLegacyShape(t *testing.T) {
	f := newTestFormatter()

	out := f.CreateMeta(models.CreateMetaResponse{
		Projects: []models.CreateMetaProject{
			{
				Key:  "ABC",
				Name: "Alphabet",
				IssueTypes: []models.IssueTypeMetadata{
					{
						ID:          "10001",
						Name:        "Bug",
						Description: "A software defect",
						Fields: map[string]models.FieldDescriptor{
							"summary": {Name: "Summary", Key: "summary", Required: true, Schema: models.FieldSchema{Type: "string"}},
						},
					},
					{
						ID:      "10002",
						Name:    "Sub-task",
						Subtask: true,
						Fields:  map[string]models.FieldDescriptor{},
					},
				},
			},
		},
	}, "ABC")

	assert.Contains(t, out, "# Issue Creation Metadata: Alphabet (ABC)")
	assert.Contains(t, out, "## Issue Type: Bug")
	assert.Contains(t, out, "- **ID**: 10001")
	assert.Contains(t, out, "- **Description**: A software defect")
	assert.Contains(t, out, "- **Subtask**: No")
	assert.Contains(t, out, "## Issue Type: Sub-task")
	assert.Contains(t, out, "- **Subtask**: Yes")
	assert.Contains(t, out, "*No optional fields available*")

	// issue types after the first are preceded by a separator
	firstIdx := strings.Index(out, "## Issue Type: Bug")
	secondIdx := strings.Index(out, "## Issue Type: Sub-task")
	sepIdx := strings.Index(out[firstIdx:secondIdx], "\n---\n")
	assert.True(t, sepIdx > 0, "expected a separator between issue types")
}

func TestCreateMetaLegacyOptionalTruncation(t *testing.T) {
	f := newTestFormatter()

	fields := map[string]models.FieldDescriptor{}
	for i := 1; i <= 12; i++ {
		id := fmt.Sprintf("field%02d", i)
		fields[id] = models.FieldDescriptor{
			Name:   fmt.Sprintf("Field %02d", i),
			Key:    id,
			Schema: models.FieldSchema{Type: "string"},
		}
	}

	out := f.CreateMeta(models.CreateMetaResponse{
		Projects: []models.CreateMetaProject{
			{Key: "ABC", Name: "Alphabet", IssueTypes: []models.IssueTypeMetadata{
				{ID: "1", Name: "Task", Fields: fields},
			}},
		},
	}, "ABC")

	assert.Contains(t, out, "*... and 2 more optional fields*")
	assert.Contains(t, out, "- **Field 10** (`field10`)")
	assert.NotContains(t, out, "Field 11")
	assert.NotContains(t, out, "Field 12")
	assert.Equal(t, 10, strings.Count(out, "- **Field "))
}

func TestFieldListDetails(t *testing.T) {
	entries := []fieldEntry{
		{
			id: "priority",
			field: models.FieldDescriptor{
				Name:     "Priority",
				Key:      "priority",
				Schema:   models.FieldSchema{Type: "priority", System: "priority"},
				Required: true,
				AllowedValues: []models.AllowedValue{
					{Name: "Highest"}, {Name: "High"}, {Name: "Medium"},
					{Name: "Low"}, {Name: "Lowest"}, {Name: "Trivial"},
				},
				DefaultValue: "Medium",
			},
		},
	}

	out := fieldList(entries)
	assert.Contains(t, out, "- **Priority** (`priority`)")
	assert.Contains(t, out, "Allowed values: Highest, High, Medium, Low, Lowest, ...")
	assert.NotContains(t, out, "Trivial")
	assert.Contains(t, out, "Default: Medium")
}

func TestFieldListCustomSchema(t *testing.T) {
	entries := []fieldEntry{
		{
			id: "customfield_10010",
			field: models.FieldDescriptor{
				Name:   "Story Points",
				Schema: models.FieldSchema{Type: "number", Custom: "com.atlassian.jira.plugin:float"},
			},
		},
	}

	out := fieldList(entries)
	// no key or fieldId set, so the map key is the display identifier
	assert.Contains(t, out, "- **Story Points** (`customfield_10010`)")
	assert.Contains(t, out, "Type: number | Custom: com.atlassian.jira.plugin:float")
}

func TestPartitionFieldsStableOrder(t *testing.T) {
	fields := map[string]models.FieldDescriptor{
		"charlie": {Name: "Charlie"},
		"alpha":   {Name: "Alpha", Required: true},
		"bravo":   {Name: "Bravo"},
	}

	required, optional := partitionFields(fields)
	require.Len(t, required, 1)
	require.Len(t, optional, 2)
	assert.Equal(t, "alpha", required[0].id)
	assert.Equal(t, "bravo", optional[0].id)
	assert.Equal(t, "charlie", optional[1].id)
}
