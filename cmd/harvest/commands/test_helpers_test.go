package commands_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/harvest-client/cmd/harvest/commands"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// commandResult is the captured output of one CLI invocation.
type commandResult struct {
	stdout string
	stderr string
	err    error
}

// executeCommand runs the CLI with a config file in a temp dir. Commands
// share viper's global state, so callers must not run in parallel.
func executeCommand(t *testing.T, stdin string, args ...string) commandResult {
	t.Helper()

	t.Setenv("HARVEST_API_KEY", "")
	t.Setenv("HARVEST_BASE_URL", "")
	t.Setenv("HARVEST_ON_BEHALF_OF", "")

	viper.Reset()
	t.Cleanup(viper.Reset)

	configFile := filepath.Join(t.TempDir(), "config.yml")

	return executeWithConfig(configFile, stdin, args...)
}

func executeWithConfig(configFile, stdin string, args ...string) commandResult {
	viper.Reset()

	root := commands.NewRootCommand("1.2.3", "abc123", "2026-01-01")

	var stdout, stderr bytes.Buffer

	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config", configFile}, args...))

	err := root.Execute()

	return commandResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// recordedRequest is what the fake Harvest server received.
type recordedRequest struct {
	method string
	path   string
	query  string
	header http.Header
	body   string
}

type fakeHarvest struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
}

// newFakeHarvest answers every request with status and response.
func newFakeHarvest(t *testing.T, status int, response string) *fakeHarvest {
	t.Helper()

	fake := &fakeHarvest{}
	fake.Server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		body, _ := io.ReadAll(request.Body)

		fake.mu.Lock()
		fake.requests = append(fake.requests, recordedRequest{
			method: request.Method,
			path:   request.URL.Path,
			query:  request.URL.RawQuery,
			header: request.Header.Clone(),
			body:   string(body),
		})
		fake.mu.Unlock()

		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(status)
		_, _ = writer.Write([]byte(response))
	}))
	t.Cleanup(fake.Close)

	return fake
}

func (f *fakeHarvest) recorded() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]recordedRequest(nil), f.requests...)
}
