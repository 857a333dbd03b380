package repositories

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jira-scribe/internal/config"
)

func newTestRepo(t *testing.T, handler http.HandlerFunc) *JiraRepository {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewJiraRepository(&config.JiraConfig{
		BaseURL:  server.URL,
		Username: "user@example.com",
		APIToken: "token",
		Timeout:  5,
	})
}

func TestGetCreateMetaScoped(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/issue/createmeta/ABC/issuetypes/10001", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "user@example.com", user)
		assert.Equal(t, "token", pass)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"name":   "Bug",
			"fields": map[string]interface{}{},
		})
	})

	meta, err := repo.GetCreateMeta("ABC", "10001")
	require.NoError(t, err)
	assert.Equal(t, "Bug", meta.Name)
	assert.NotNil(t, meta.Fields)
}

func TestGetCreateMetaLegacy(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/issue/createmeta", r.URL.Path)
		assert.Equal(t, "ABC", r.URL.Query().Get("projectKeys"))
		assert.Equal(t, "projects.issuetypes.fields", r.URL.Query().Get("expand"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"projects": []map[string]interface{}{
				{"key": "ABC", "name": "Alphabet", "issuetypes": []interface{}{}},
			},
		})
	})

	meta, err := repo.GetCreateMeta("ABC", "")
	require.NoError(t, err)
	require.Len(t, meta.Projects, 1)
	assert.Equal(t, "Alphabet", meta.Projects[0].Name)
}

func TestCreateIssue(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/api/3/issue", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body struct {
			Fields map[string]interface{} `json:"fields"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Fix it", body.Fields["summary"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{
			"id":   "10001",
			"key":  "ABC-1",
			"self": "https://x.atlassian.net/rest/api/3/issue/10001",
		})
	})

	created, err := repo.CreateIssue(map[string]interface{}{"summary": "Fix it"})
	require.NoError(t, err)
	assert.Equal(t, "ABC-1", created.Key)
	assert.Equal(t, "10001", created.ID)
}

func TestCreateIssueErrorStatus(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errorMessages":["Summary is required"]}`))
	})

	_, err := repo.CreateIssue(map[string]interface{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Contains(t, err.Error(), "Summary is required")
}

func TestListProjects(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/project/search", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("startAt"))
		assert.Equal(t, "5", r.URL.Query().Get("maxResults"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"startAt":    10,
			"maxResults": 5,
			"total":      12,
			"values": []map[string]string{
				{"id": "1", "key": "ABC", "name": "Alphabet"},
			},
		})
	})

	res, err := repo.ListProjects(10, 5)
	require.NoError(t, err)
	assert.Equal(t, 12, res.Total)
	require.Len(t, res.Values, 1)
	assert.Equal(t, "ABC", res.Values[0].Key)
}

func TestSearchIssues(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/search", r.URL.Path)
		assert.Equal(t, "project = ABC", r.URL.Query().Get("jql"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"startAt": 0,
			"total":   1,
			"issues": []map[string]interface{}{
				{"id": "10001", "key": "ABC-1", "fields": map[string]string{"summary": "First"}},
			},
		})
	})

	res, err := repo.SearchIssues("project = ABC", 0, 10)
	require.NoError(t, err)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, "First", res.Issues[0].Fields.Summary)
}

func TestListTransitions(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/issue/ABC-1/transitions", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"transitions": []map[string]interface{}{
				{"id": "11", "name": "Start Progress", "to": map[string]string{"id": "3", "name": "In Progress"}},
			},
		})
	})

	res, err := repo.ListTransitions("ABC-1")
	require.NoError(t, err)
	require.Len(t, res.Transitions, 1)
	assert.Equal(t, "Start Progress", res.Transitions[0].Name)
	require.NotNil(t, res.Transitions[0].To)
	assert.Equal(t, "In Progress", res.Transitions[0].To.Name)
}
