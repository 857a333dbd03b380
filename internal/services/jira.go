package services

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"jira-scribe/internal/config"
	"jira-scribe/internal/helpers"
	"jira-scribe/internal/markdown"
	"jira-scribe/internal/repositories"
)

// JiraService joins the Jira repository with the markdown formatting
// pipeline: fetch one response, render one document.
type JiraService struct {
	repo   *repositories.JiraRepository
	format *markdown.Formatter
	config *config.Config
}

// NewJiraService creates a new Jira service
func NewJiraService(cfg *config.Config) *JiraService {
	return &JiraService{
		repo:   repositories.NewJiraRepository(&cfg.Jira),
		format: markdown.NewFormatter(log.StandardLogger()),
		config: cfg,
	}
}

// CreateIssueParams carries the user-supplied values for a new issue
type CreateIssueParams struct {
	ProjectKey  string
	IssueType   string
	Summary     string
	Description string
}

// CreateMeta fetches issue-creation metadata and renders it
func (s *JiraService) CreateMeta(projectKey, issueTypeID string) (string, error) {
	meta, err := s.repo.GetCreateMeta(projectKey, issueTypeID)
	if err != nil {
		return "", err
	}
	return s.format.CreateMeta(*meta, projectKey), nil
}

// CreateIssue creates an issue and renders the confirmation document
func (s *JiraService) CreateIssue(params CreateIssueParams) (string, error) {
	if params.ProjectKey == "" {
		params.ProjectKey = s.config.Jira.ProjectKey
	}
	if params.ProjectKey == "" {
		return "", fmt.Errorf("no project key given and none configured")
	}

	fields := map[string]interface{}{
		"project":   map[string]string{"key": params.ProjectKey},
		"summary":   params.Summary,
		"issuetype": map[string]string{"name": params.IssueType},
	}
	if params.Description != "" {
		fields["description"] = adfParagraph(params.Description)
	}

	created, err := s.repo.CreateIssue(fields)
	if err != nil {
		return "", err
	}
	return s.format.CreateIssue(*created), nil
}

// Projects fetches one page of the project listing and renders it
func (s *JiraService) Projects(startAt, maxResults int) (string, error) {
	if maxResults <= 0 {
		maxResults = s.config.Output.MaxResults
	}

	res, err := s.repo.ListProjects(startAt, maxResults)
	if err != nil {
		return "", err
	}
	return s.format.Projects(*res), nil
}

// SearchIssues runs a JQL search and renders one page of results
func (s *JiraService) SearchIssues(jql string, startAt, maxResults int) (string, error) {
	if maxResults <= 0 {
		maxResults = s.config.Output.MaxResults
	}

	res, err := s.repo.SearchIssues(jql, startAt, maxResults)
	if err != nil {
		return "", err
	}
	return s.format.SearchResults(*res), nil
}

// Transitions fetches the transitions available to an issue and renders them
func (s *JiraService) Transitions(issueKey string) (string, error) {
	res, err := s.repo.ListTransitions(issueKey)
	if err != nil {
		return "", err
	}
	return s.format.Transitions(issueKey, *res), nil
}

// Save writes a rendered document into the configured output directory
func (s *JiraService) Save(prefix, doc string) error {
	path, err := helpers.SaveMarkdown(s.config.Output.Dir, prefix, doc)
	if err != nil {
		return err
	}
	helpers.PrintSuccess("Saved markdown: %s", path)
	return nil
}

// adfParagraph wraps plain text in the Atlassian document format the v3 API
// expects for description bodies
func adfParagraph(text string) map[string]interface{} {
	return map[string]interface{}{
		"type":    "doc",
		"version": 1,
		"content": []interface{}{
			map[string]interface{}{
				"type": "paragraph",
				"content": []interface{}{
					map[string]interface{}{"type": "text", "text": text},
				},
			},
		},
	}
}
