package models

// FieldSchema describes the value type of a creatable field
type FieldSchema struct {
	Type   string `json:"type"`
	System string `json:"system,omitempty"`
	Custom string `json:"custom,omitempty"`
}

// AllowedValue is one permitted value for a constrained field
type AllowedValue struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"`
}

// Display returns the human-readable form of an allowed value
func (v AllowedValue) Display() string {
	if v.Name != "" {
		return v.Name
	}
	if v.Value != "" {
		return v.Value
	}
	return v.ID
}

// FieldDescriptor describes one creatable/editable field on an issue type
type FieldDescriptor struct {
	Name          string         `json:"name"`
	Key           string         `json:"key,omitempty"`
	FieldID       string         `json:"fieldId,omitempty"`
	Required      bool           `json:"required"`
	Schema        FieldSchema    `json:"schema"`
	AllowedValues []AllowedValue `json:"allowedValues,omitempty"`
	DefaultValue  interface{}    `json:"defaultValue,omitempty"`
}

// Identifier returns the field's display identifier: key, else fieldId,
// else the fallback (normally the field-map key)
func (f FieldDescriptor) Identifier(fallback string) string {
	if f.Key != "" {
		return f.Key
	}
	if f.FieldID != "" {
		return f.FieldID
	}
	return fallback
}

// IssueTypeMetadata is one creatable issue type within a project
type IssueTypeMetadata struct {
	ID          string                     `json:"id"`
	Name        string                     `json:"name"`
	Description string                     `json:"description,omitempty"`
	Subtask     bool                       `json:"subtask"`
	Fields      map[string]FieldDescriptor `json:"fields"`
}

// CreateMetaProject is one project entry in the legacy createmeta response
type CreateMetaProject struct {
	Key        string              `json:"key"`
	Name       string              `json:"name"`
	IssueTypes []IssueTypeMetadata `json:"issuetypes"`
}

// CreateMetaResponse is the root create-metadata response. Jira returns one
// of two mutually exclusive shapes: the issue-type-scoped endpoint populates
// Fields/Name/Description, the legacy project-wide endpoint populates
// Projects. Shape() resolves which one.
type CreateMetaResponse struct {
	Fields      map[string]FieldDescriptor `json:"fields,omitempty"`
	Name        string                     `json:"name,omitempty"`
	Description string                     `json:"description,omitempty"`
	Projects    []CreateMetaProject        `json:"projects,omitempty"`
}

// CreateMetaShape discriminates the two createmeta response forms
type CreateMetaShape int

const (
	// CreateMetaEmpty means neither shape is populated
	CreateMetaEmpty CreateMetaShape = iota
	// CreateMetaSingleType is the issue-type-scoped shape
	CreateMetaSingleType
	// CreateMetaLegacy is the project-wide multi-type shape
	CreateMetaLegacy
)

// Shape resolves which response form is populated
func (m CreateMetaResponse) Shape() CreateMetaShape {
	if m.Fields != nil || m.Name != "" {
		return CreateMetaSingleType
	}
	if len(m.Projects) > 0 {
		return CreateMetaLegacy
	}
	return CreateMetaEmpty
}

// ErrorCollection holds validation errors attached to a transition attempt
type ErrorCollection struct {
	ErrorMessages []string          `json:"errorMessages,omitempty"`
	Errors        map[string]string `json:"errors,omitempty"`
}

// TransitionOutcome reports the status of a transition applied during issue
// creation, with any validation errors Jira attached to it
type TransitionOutcome struct {
	Status          int              `json:"status"`
	ErrorCollection *ErrorCollection `json:"errorCollection,omitempty"`
}

// CreateIssueResponse is the result of a create-issue call
type CreateIssueResponse struct {
	ID         string             `json:"id"`
	Key        string             `json:"key"`
	Self       string             `json:"self"`
	Transition *TransitionOutcome `json:"transition,omitempty"`
}

// Link is a URL with an optional display title
type Link struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

// User is a Jira user reference
type User struct {
	AccountID   string `json:"accountId,omitempty"`
	DisplayName string `json:"displayName"`
}

// Status is an issue workflow status
type Status struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// IssueTypeRef is a minimal issue type reference on an issue
type IssueTypeRef struct {
	Name string `json:"name"`
}

// Project is a Jira project
type Project struct {
	ID             string `json:"id"`
	Key            string `json:"key"`
	Name           string `json:"name"`
	ProjectTypeKey string `json:"projectTypeKey,omitempty"`
	Lead           *User  `json:"lead,omitempty"`
}

// ProjectSearchResponse is the paginated project search response
type ProjectSearchResponse struct {
	StartAt    int       `json:"startAt"`
	MaxResults int       `json:"maxResults"`
	Total      int       `json:"total"`
	IsLast     bool      `json:"isLast"`
	Values     []Project `json:"values"`
}

// IssueFields is the subset of issue fields the tool surfaces
type IssueFields struct {
	Summary   string        `json:"summary"`
	Status    *Status       `json:"status,omitempty"`
	Assignee  *User         `json:"assignee,omitempty"`
	IssueType *IssueTypeRef `json:"issuetype,omitempty"`
	Created   string        `json:"created,omitempty"`
	Updated   string        `json:"updated,omitempty"`
}

// Issue is a Jira issue
type Issue struct {
	ID     string      `json:"id"`
	Key    string      `json:"key"`
	Self   string      `json:"self"`
	Fields IssueFields `json:"fields"`
}

// SearchResponse is a JQL search response
type SearchResponse struct {
	StartAt    int     `json:"startAt"`
	MaxResults int     `json:"maxResults"`
	Total      int     `json:"total"`
	Issues     []Issue `json:"issues"`
}

// Transition is a workflow transition available to an issue
type Transition struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	To   *Status `json:"to,omitempty"`
}

// TransitionsResponse wraps the transitions listing for an issue
type TransitionsResponse struct {
	Transitions []Transition `json:"transitions"`
}
