package repositories

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"jira-scribe/internal/config"
	"jira-scribe/internal/models"
)

// JiraRepository handles Jira REST API interactions
type JiraRepository struct {
	config *config.JiraConfig
	client *http.Client
}

// NewJiraRepository creates a new Jira repository
func NewJiraRepository(jiraConfig *config.JiraConfig) *JiraRepository {
	return &JiraRepository{
		config: jiraConfig,
		client: &http.Client{
			Timeout: time.Duration(jiraConfig.Timeout) * time.Second,
		},
	}
}

// do issues an authenticated request and decodes the JSON response into out.
// Any status outside wantStatus is returned as an error carrying the
// response body.
func (r *JiraRepository) do(method, path string, query url.Values, body interface{}, wantStatus int, out interface{}) error {
	endpoint := r.config.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, endpoint, payload)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.SetBasicAuth(r.config.Username, r.config.APIToken)

	log.WithFields(log.Fields{"method": method, "path": path}).Debug("jira api request")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("jira api returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// GetCreateMeta fetches issue-creation metadata for a project. With an issue
// type ID it uses the scoped endpoint, which yields the single-type response
// shape; without one it falls back to the legacy project-wide endpoint.
func (r *JiraRepository) GetCreateMeta(projectKey, issueTypeID string) (*models.CreateMetaResponse, error) {
	var meta models.CreateMetaResponse

	if issueTypeID != "" {
		path := fmt.Sprintf("/rest/api/3/issue/createmeta/%s/issuetypes/%s", projectKey, issueTypeID)
		if err := r.do(http.MethodGet, path, nil, nil, http.StatusOK, &meta); err != nil {
			return nil, fmt.Errorf("failed to fetch create metadata: %w", err)
		}
		return &meta, nil
	}

	query := url.Values{}
	query.Set("projectKeys", projectKey)
	query.Set("expand", "projects.issuetypes.fields")
	if err := r.do(http.MethodGet, "/rest/api/3/issue/createmeta", query, nil, http.StatusOK, &meta); err != nil {
		return nil, fmt.Errorf("failed to fetch create metadata: %w", err)
	}
	return &meta, nil
}

// CreateIssue creates a new Jira issue from raw field values
func (r *JiraRepository) CreateIssue(fields map[string]interface{}) (*models.CreateIssueResponse, error) {
	body := map[string]interface{}{"fields": fields}

	var created models.CreateIssueResponse
	if err := r.do(http.MethodPost, "/rest/api/3/issue", nil, body, http.StatusCreated, &created); err != nil {
		return nil, fmt.Errorf("failed to create issue: %w", err)
	}
	return &created, nil
}

// ListProjects fetches one page of the project listing
func (r *JiraRepository) ListProjects(startAt, maxResults int) (*models.ProjectSearchResponse, error) {
	query := url.Values{}
	query.Set("startAt", strconv.Itoa(startAt))
	query.Set("maxResults", strconv.Itoa(maxResults))

	var res models.ProjectSearchResponse
	if err := r.do(http.MethodGet, "/rest/api/3/project/search", query, nil, http.StatusOK, &res); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return &res, nil
}

// SearchIssues runs a JQL search and returns one page of results
func (r *JiraRepository) SearchIssues(jql string, startAt, maxResults int) (*models.SearchResponse, error) {
	query := url.Values{}
	query.Set("jql", jql)
	query.Set("startAt", strconv.Itoa(startAt))
	query.Set("maxResults", strconv.Itoa(maxResults))
	query.Set("fields", "summary,status,assignee,issuetype,created,updated")

	var res models.SearchResponse
	if err := r.do(http.MethodGet, "/rest/api/3/search", query, nil, http.StatusOK, &res); err != nil {
		return nil, fmt.Errorf("failed to search issues: %w", err)
	}
	return &res, nil
}

// ListTransitions fetches the workflow transitions available to an issue
func (r *JiraRepository) ListTransitions(issueKey string) (*models.TransitionsResponse, error) {
	path := fmt.Sprintf("/rest/api/3/issue/%s/transitions", issueKey)

	var res models.TransitionsResponse
	if err := r.do(http.MethodGet, path, nil, nil, http.StatusOK, &res); err != nil {
		return nil, fmt.Errorf("failed to list transitions: %w", err)
	}
	return &res, nil
}
