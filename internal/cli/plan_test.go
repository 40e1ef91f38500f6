package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// executeCommand runs the root command with args and captures stdout/stderr.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&errOut)
	RootCmd.SetArgs(args)
	defer func() {
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		RootCmd.SetArgs(nil)
	}()

	err := RootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sampleScenario = `
name: "smoke"
profiles:
  - type: burst
    users: 2
  - type: ramp
    users: 3
    duration: 10s
`

func TestPlanCommand_JSON(t *testing.T) {
	path := writeScenario(t, sampleScenario)

	out, _, err := executeCommand(t, "plan", path, "--format", "json", "--preview", "5", "--no-color")
	require.NoError(t, err)
	require.True(t, gjson.Valid(out), "plan output should be valid JSON: %s", out)

	parsed := gjson.Parse(out)
	assert.Equal(t, "smoke", parsed.Get("name").String())
	assert.Equal(t, int64(5), parsed.Get("totalUsers").Int())
	assert.Equal(t, int64(2), parsed.Get("profiles.#").Int())
	assert.Equal(t, "burst", parsed.Get("profiles.0.kind").String())
	assert.Equal(t, "ramp", parsed.Get("profiles.1.kind").String())
	assert.Equal(t, "10s", parsed.Get("profiles.1.duration").String())
	assert.Equal(t, int64(5), parsed.Get("preview.#").Int())
	assert.Equal(t, "0s", parsed.Get("preview.0").String())
}

func TestPlanCommand_Text(t *testing.T) {
	path := writeScenario(t, sampleScenario)

	out, _, err := executeCommand(t, "plan", path, "--format", "text", "--preview", "3", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Schedule plan: smoke")
	assert.Contains(t, out, "5 users")
	assert.Contains(t, out, "burst")
}

func TestPlanCommand_UnknownFormat(t *testing.T) {
	path := writeScenario(t, sampleScenario)

	_, _, err := executeCommand(t, "plan", path, "--format", "xml")
	require.Error(t, err)
}

func TestPlanCommand_MissingFile(t *testing.T) {
	_, _, err := executeCommand(t, "plan", "/nonexistent/scenario.yaml", "--format", "text")
	require.Error(t, err)
}

func TestPlanCommand_InvalidScenario(t *testing.T) {
	path := writeScenario(t, `
profiles:
  - type: ramp
    users: 0
    duration: 10s
`)

	_, _, err := executeCommand(t, "plan", path, "--format", "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "users")
}

func TestValidateCommand_Valid(t *testing.T) {
	path := writeScenario(t, sampleScenario)

	out, _, err := executeCommand(t, "validate", path, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "scenario is valid")
	assert.Contains(t, out, "5 users")
}

func TestValidateCommand_Invalid(t *testing.T) {
	path := writeScenario(t, `
profiles:
  - type: burst
    users: -1
`)

	_, errOut, err := executeCommand(t, "validate", path, "--no-color")
	require.Error(t, err)
	assert.Contains(t, errOut, "users")
}
