//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIKey      string
	BaseURL     string
	OnBehalfOf  string
	HarvestPath string
	Verbose     bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIKey:      os.Getenv("HARVEST_API_KEY"),
		BaseURL:     os.Getenv("HARVEST_BASE_URL"),
		OnBehalfOf:  os.Getenv("HARVEST_ON_BEHALF_OF"),
		HarvestPath: getHarvestPath(),
		Verbose:     os.Getenv("HARVEST_VERBOSE") == "true",
	}
}

// getHarvestPath determines the path to the harvest binary
func getHarvestPath() string {
	if path := os.Getenv("HARVEST_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../harvest",
		"./harvest",
		"../harvest",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "harvest"
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.APIKey == "" {
		t.Skip("HARVEST_API_KEY not set, skipping integration test")
	}
}

// SkipIfMissingBinary skips test if the harvest binary cannot be found
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath(config.HarvestPath); err != nil {
		t.Skipf("harvest binary not found at %s, skipping integration test", config.HarvestPath)
	}
}

// CommandRunner runs the harvest binary against an isolated config file
type CommandRunner struct {
	config     *TestConfig
	configFile string
	t          *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	t.Helper()

	return &CommandRunner{
		config:     config,
		configFile: filepath.Join(t.TempDir(), "config.yml"),
		t:          t,
	}
}

// Run executes a harvest command and returns output
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	return runner.RunWithInput("", args...)
}

// RunWithInput executes a harvest command with stdin input
func (runner *CommandRunner) RunWithInput(input string, args ...string) (stdout, stderr string, err error) {
	args = append([]string{"--config", runner.configFile}, args...)

	cmd := exec.Command(runner.config.HarvestPath, args...)
	cmd.Env = append(os.Environ(), "HARVEST_API_KEY="+runner.config.APIKey)

	if runner.config.BaseURL != "" {
		cmd.Env = append(cmd.Env, "HARVEST_BASE_URL="+runner.config.BaseURL)
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	cmd.Stdin = strings.NewReader(input)

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.HarvestPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// AssertJSONOutput verifies command output is valid JSON
func AssertJSONOutput(t *testing.T, output string) {
	t.Helper()

	if !json.Valid([]byte(strings.TrimSpace(output))) {
		t.Errorf("Output is not valid JSON: %s", output)
	}
}

// AssertYAMLOutput verifies command output is valid YAML
func AssertYAMLOutput(t *testing.T, output string) {
	t.Helper()

	var decoded interface{}
	if err := yaml.Unmarshal([]byte(output), &decoded); err != nil {
		t.Errorf("Output is not valid YAML: %v\n%s", err, output)
	}
}
