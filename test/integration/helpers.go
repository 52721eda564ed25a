//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIKey     string
	PageID     string
	BaseURL    string
	BinaryPath string
	Verbose    bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIKey:     os.Getenv("STATUSPAGE_API_KEY"),
		PageID:     os.Getenv("STATUSPAGE_PAGE_ID"),
		BaseURL:    os.Getenv("STATUSPAGE_BASE_URL"),
		BinaryPath: getBinaryPath(),
		Verbose:    os.Getenv("STATUSPAGE_VERBOSE") == "true",
	}
}

// getBinaryPath determines the path to the statuspage binary
func getBinaryPath() string {
	if path := os.Getenv("STATUSPAGE_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../statuspage",
		"./statuspage",
		"../statuspage",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "statuspage" // Fallback to PATH
}

// SkipIfMissingConfig skips test if the API key or page is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.APIKey == "" || config.PageID == "" {
		t.Skip("STATUSPAGE_API_KEY or STATUSPAGE_PAGE_ID not set, skipping integration test")
	}
}

// SkipIfMissingBinary skips test if the CLI binary cannot be found
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("statuspage binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// CommandRunner provides utilities for running statuspage commands
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		t:      t,
	}
}

// Run executes a statuspage command and returns output. Credentials are passed
// through the environment so they never show up in verbose logs.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.BinaryPath, args...)
	cmd.Env = append(os.Environ(),
		"STATUSPAGE_API_KEY="+runner.config.APIKey,
		"STATUSPAGE_PAGE_ID="+runner.config.PageID,
	)

	if runner.config.BaseURL != "" {
		cmd.Env = append(cmd.Env, "STATUSPAGE_BASE_URL="+runner.config.BaseURL)
	}

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// GenerateTestName creates a unique test resource name
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().Unix())
}

// CleanupResource attempts to delete a test resource
func (runner *CommandRunner) CleanupResource(resourceType, id string) {
	var args []string

	switch resourceType {
	case "component":
		args = []string{"components", "delete", id, "--force"}
	case "incident":
		args = []string{"incidents", "delete", id, "--force"}
	default:
		runner.t.Logf("Unknown resource type for cleanup: %s", resourceType)

		return
	}

	stdout, stderr, err := runner.Run(args...)
	if err != nil && runner.config.Verbose {
		runner.t.Logf("Cleanup warning for %s %s: %s\nStderr: %s", resourceType, id, stdout, stderr)
	}
}

// DecodeJSONOutput verifies command output is JSON and decodes it into v
func DecodeJSONOutput(t *testing.T, output string, v interface{}) {
	t.Helper()

	assert.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(output)), v), "Output does not appear to be JSON: %s", output)
}
