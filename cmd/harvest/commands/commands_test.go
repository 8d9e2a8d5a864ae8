package commands_test

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/harvest-client/cmd/harvest/commands"
	"github.com/fivetwenty-io/harvest-client/internal/constants"
	"github.com/fivetwenty-io/harvest-client/pkg/harvest"
)

func TestNewRootCommand(t *testing.T) {
	root := commands.NewRootCommand("1.2.3", "abc123", "2026-01-01")
	assert.Equal(t, "harvest", root.Use)

	for _, name := range []string{"version", "login", "config", "applications", "candidates", "custom-fields", "jobs", "job-posts"} {
		assert.NotNil(t, findSubcommand(root, name), "missing command %s", name)
	}

	for _, flag := range []string{"config", "api-key", "base-url", "on-behalf-of", "output", "verbose", "log-level"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), "missing flag %s", flag)
	}
}

func TestResourceSubcommands(t *testing.T) {
	tests := []struct {
		group       string
		subcommands []string
	}{
		{"applications", []string{"list", "get", "delete", "reject", "unreject", "advance"}},
		{"candidates", []string{"list", "get", "delete", "profile-url", "add-note", "merge"}},
		{"custom-fields", []string{"list", "get", "options"}},
		{"jobs", []string{"list", "get", "hiring-team"}},
		{"job-posts", []string{"list", "get", "for-job", "update-status"}},
		{"config", []string{"show", "set", "unset"}},
	}

	root := commands.NewRootCommand("dev", "none", "unknown")

	for _, testCase := range tests {
		t.Run(testCase.group, func(t *testing.T) {
			group := findSubcommand(root, testCase.group)
			require.NotNil(t, group)
			assert.Len(t, group.Commands(), len(testCase.subcommands))

			for _, name := range testCase.subcommands {
				sub := findSubcommand(group, name)
				require.NotNil(t, sub, "missing %s %s", testCase.group, name)
				assert.NotNil(t, sub.RunE)
			}
		})
	}
}

func TestVersionCommand_JSON(t *testing.T) {
	result := executeCommand(t, "", "--output", "json", "version")
	require.NoError(t, result.err)

	var info commands.VersionInfo
	require.NoError(t, json.Unmarshal([]byte(result.stdout), &info))
	assert.Equal(t, commands.VersionInfo{Version: "1.2.3", Commit: "abc123", Built: "2026-01-01"}, info)
}

func TestVersionCommand_Table(t *testing.T) {
	result := executeCommand(t, "", "version")
	require.NoError(t, result.err)
	assert.Contains(t, result.stdout, "1.2.3")
	assert.Contains(t, result.stdout, "abc123")
}

func TestInvalidOutputFormat(t *testing.T) {
	result := executeCommand(t, "", "--output", "xml", "version")
	require.ErrorIs(t, result.err, constants.ErrInvalidOutput)
}

func TestCandidatesProfileURL(t *testing.T) {
	result := executeCommand(t, "", "candidates", "profile-url", "12345")
	require.NoError(t, result.err)
	assert.Equal(t, "https://app7.greenhouse.io/people/12345\n", result.stdout)
}

func TestArgumentErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{
			name:    "non numeric id",
			args:    []string{"--api-key", "abc", "candidates", "get", "abc"},
			wantErr: constants.ErrInvalidID,
		},
		{
			name:    "negative id",
			args:    []string{"--api-key", "abc", "jobs", "get", "--", "-4"},
			wantErr: constants.ErrInvalidID,
		},
		{
			name:    "missing API key",
			args:    []string{"jobs", "get", "1"},
			wantErr: constants.ErrNoAPIKeyConfigured,
		},
		{
			name:    "write without acting user",
			args:    []string{"--api-key", "abc", "applications", "unreject", "5"},
			wantErr: constants.ErrOnBehalfOfRequired,
		},
		{
			name:    "job post status without acting user",
			args:    []string{"--api-key", "abc", "job-posts", "update-status", "5", "live"},
			wantErr: constants.ErrOnBehalfOfRequired,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			result := executeCommand(t, "", testCase.args...)
			require.ErrorIs(t, result.err, testCase.wantErr)
		})
	}
}

func TestJobsGet_CallsAPI(t *testing.T) {
	fake := newFakeHarvest(t, http.StatusOK, `{"id": 6404, "name": "Archaeologist", "status": "open"}`)

	result := executeCommand(t, "", "--api-key", "abc", "--base-url", fake.URL, "-o", "json", "jobs", "get", "6404")
	require.NoError(t, result.err)

	var job harvest.Job
	require.NoError(t, json.Unmarshal([]byte(result.stdout), &job))
	assert.Equal(t, "Archaeologist", job.Name)

	requests := fake.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodGet, requests[0].method)
	assert.Equal(t, "/v1/jobs/6404", requests[0].path)
	assert.Equal(t, "Basic YWJjOg==", requests[0].header.Get("Authorization"))
}

func TestApplicationsList_SendsFilters(t *testing.T) {
	fake := newFakeHarvest(t, http.StatusOK, `[{"id": 1, "candidate_id": 2, "status": "active", "jobs": [{"id": 3, "name": "Archaeologist"}]}]`)

	result := executeCommand(t, "", "--api-key", "abc", "--base-url", fake.URL, "--on-behalf-of", "4080",
		"applications", "list", "--job-id", "3", "--status", "active")
	require.NoError(t, result.err)
	assert.Contains(t, result.stdout, "Archaeologist")

	requests := fake.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, "/v1/applications", requests[0].path)
	assert.Equal(t, "job_id=3&per_page=100&status=active", requests[0].query)
	assert.Equal(t, "4080", requests[0].header.Get("On-Behalf-Of"))
}

func TestJobPostsUpdateStatus_SendsActor(t *testing.T) {
	fake := newFakeHarvest(t, http.StatusOK, `{"success": true}`)

	result := executeCommand(t, "", "--api-key", "abc", "--base-url", fake.URL, "--on-behalf-of", "4080",
		"-o", "yaml", "job-posts", "update-status", "123", "offline")
	require.NoError(t, result.err)

	var out harvest.SuccessResult
	require.NoError(t, yaml.Unmarshal([]byte(result.stdout), &out))
	assert.True(t, out.Success)

	requests := fake.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodPatch, requests[0].method)
	assert.Equal(t, "/v2/job_posts/123/status", requests[0].path)
	assert.Equal(t, "4080", requests[0].header.Get("On-Behalf-Of"))
	assert.JSONEq(t, `{"status":"offline"}`, requests[0].body)
}

func TestApplicationsDelete_Cancelled(t *testing.T) {
	fake := newFakeHarvest(t, http.StatusOK, `{"message": "Application 5 has been deleted."}`)

	result := executeCommand(t, "n\n", "--api-key", "abc", "--base-url", fake.URL, "--on-behalf-of", "4080",
		"applications", "delete", "5")
	require.NoError(t, result.err)
	assert.Contains(t, result.stdout, "Cancelled")
	assert.Empty(t, fake.recorded())
}

func TestApplicationsDelete_Force(t *testing.T) {
	fake := newFakeHarvest(t, http.StatusOK, `{"message": "Application 5 has been deleted."}`)

	result := executeCommand(t, "", "--api-key", "abc", "--base-url", fake.URL, "--on-behalf-of", "4080",
		"-o", "json", "applications", "delete", "5", "--force")
	require.NoError(t, result.err)
	assert.Contains(t, result.stdout, "Application 5 has been deleted.")

	requests := fake.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodDelete, requests[0].method)
	assert.Equal(t, "/v1/applications/5", requests[0].path)
}

func TestCandidatesGet_SeveralIDs(t *testing.T) {
	fake := newFakeHarvest(t, http.StatusOK, `{"id": 9, "first_name": "Ada", "last_name": "Lovelace"}`)

	result := executeCommand(t, "", "--api-key", "abc", "--base-url", fake.URL, "-o", "json", "candidates", "get", "9", "10", "11")
	require.NoError(t, result.err)

	var candidates []harvest.Candidate
	require.NoError(t, json.Unmarshal([]byte(result.stdout), &candidates))
	assert.Len(t, candidates, 3)

	paths := make([]string, 0, 3)
	for _, request := range fake.recorded() {
		paths = append(paths, request.path)
	}

	assert.ElementsMatch(t, []string{"/v1/candidates/9", "/v1/candidates/10", "/v1/candidates/11"}, paths)
}

func TestRequestFailure_IsReported(t *testing.T) {
	fake := newFakeHarvest(t, http.StatusNotFound, `{"message": "Resource not found"}`)

	result := executeCommand(t, "", "--api-key", "abc", "--base-url", fake.URL, "candidates", "get", "9")
	require.Error(t, result.err)
	assert.True(t, harvest.IsNotFound(result.err))
	assert.Contains(t, result.err.Error(), "API request failed: 404 Not Found")
	assert.Contains(t, result.stderr, "API request failed")
}

func TestVerbose_LogsRequests(t *testing.T) {
	fake := newFakeHarvest(t, http.StatusOK, `{"id": 6404, "name": "Archaeologist"}`)

	result := executeCommand(t, "", "--api-key", "abc", "--base-url", fake.URL, "--verbose", "-o", "json", "jobs", "get", "6404")
	require.NoError(t, result.err)
	assert.Contains(t, result.stderr, "HTTP Request")
	assert.Contains(t, result.stderr, "HTTP Response")
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestConfigAndLogin(t *testing.T) {
	t.Setenv("HARVEST_API_KEY", "")
	t.Setenv("HARVEST_BASE_URL", "")
	t.Setenv("HARVEST_ON_BEHALF_OF", "")
	t.Cleanup(viper.Reset)

	configFile := filepath.Join(t.TempDir(), "harvest", "config.yml")

	result := executeWithConfig(configFile, "", "login", "--key", " secret-key \n")
	require.NoError(t, result.err)

	result = executeWithConfig(configFile, "", "config", "set", "base_url", "https://harvest.example.com")
	require.NoError(t, result.err)

	result = executeWithConfig(configFile, "", "config", "set", "on_behalf_of", "4080")
	require.NoError(t, result.err)

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)

	var stored commands.Config
	require.NoError(t, yaml.Unmarshal(data, &stored))
	assert.Equal(t, commands.Config{
		APIKey:     "secret-key",
		BaseURL:    "https://harvest.example.com",
		OnBehalfOf: "4080",
	}, stored)

	info, err := os.Stat(configFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(constants.ConfigFilePerm), info.Mode().Perm())

	result = executeWithConfig(configFile, "", "-o", "json", "config", "show")
	require.NoError(t, result.err)

	var shown commands.Config
	require.NoError(t, json.Unmarshal([]byte(result.stdout), &shown))
	assert.Equal(t, constants.MaskedSecret, shown.APIKey)
	assert.Equal(t, "https://harvest.example.com", shown.BaseURL)

	result = executeWithConfig(configFile, "", "config", "unset", "on_behalf_of")
	require.NoError(t, result.err)

	data, err = os.ReadFile(configFile)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "on_behalf_of")

	result = executeWithConfig(configFile, "", "config", "set", "colour", "blue")
	require.ErrorIs(t, result.err, constants.ErrUnknownConfigKey)

	result = executeWithConfig(configFile, "", "login", "--key", "   ")
	require.ErrorIs(t, result.err, constants.ErrEmptyAPIKey)
}

func TestMalformedConfig_IsNeverOverwritten(t *testing.T) {
	t.Setenv("HARVEST_API_KEY", "")
	t.Setenv("HARVEST_BASE_URL", "")
	t.Setenv("HARVEST_ON_BEHALF_OF", "")
	t.Cleanup(viper.Reset)

	original := "api_key: secret-key\nbase_url: https://example.test\non_behalf_of: [42\n"

	tests := []struct {
		name string
		args []string
	}{
		{name: "config set", args: []string{"config", "set", "output", "json"}},
		{name: "config unset", args: []string{"config", "unset", "base_url"}},
		{name: "config show", args: []string{"config", "show"}},
		{name: "login", args: []string{"login", "--key", "new-key"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			configFile := filepath.Join(t.TempDir(), "config.yml")
			require.NoError(t, os.WriteFile(configFile, []byte(original), constants.ConfigFilePerm))

			result := executeWithConfig(configFile, "", testCase.args...)
			require.Error(t, result.err)
			assert.Contains(t, result.err.Error(), "failed to parse config file")

			data, err := os.ReadFile(configFile)
			require.NoError(t, err)
			assert.Equal(t, original, string(data))
		})
	}
}

func TestStoredConfig_IsUsedForRequests(t *testing.T) {
	fake := newFakeHarvest(t, http.StatusOK, `{"id": 1, "title": "Engineer", "job_id": 2}`)

	t.Setenv("HARVEST_API_KEY", "")
	t.Setenv("HARVEST_BASE_URL", "")
	t.Setenv("HARVEST_ON_BEHALF_OF", "")
	t.Cleanup(viper.Reset)

	configFile := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configFile, []byte("api_key: abc\nbase_url: "+fake.URL+"\n"), 0o600))

	result := executeWithConfig(configFile, "", "-o", "json", "job-posts", "get", "1")
	require.NoError(t, result.err)
	assert.Contains(t, result.stdout, "Engineer")

	requests := fake.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, "/v1/job_posts/1", requests[0].path)
	assert.Equal(t, "Basic YWJjOg==", requests[0].header.Get("Authorization"))
}
