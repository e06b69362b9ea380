package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	binaryPath := buildBinary(t)
	configHome := t.TempDir()

	stdout, stderr, err := runProbe(t, binaryPath, configHome, "version")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "dev")

	stdout, stderr, err = runProbe(t, binaryPath, configHome, "oauth2")
	require.NoError(t, err, "placeholder credentials exit zero; stderr: %s", stderr)
	assert.Contains(t, stdout, "placeholder credentials")
	assert.Contains(t, stdout, "CRIBL_ORG_ID")

	stdout, stderr, err = runProbe(t, binaryPath, configHome, "bearer")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "CRIBL_BEARER_TOKEN")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "criblprobe-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/criblprobe")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build criblprobe binary: %s", string(output))
	return binaryPath
}

func runProbe(t *testing.T, binaryPath, configHome string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(cleanEnv(), "XDG_CONFIG_HOME="+configHome)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// cleanEnv drops any CRIBL_* variables so the smoke run always starts from
// the documented defaults. XDG_CONFIG_HOME is dropped too so the caller's
// override is the only entry.
func cleanEnv() []string {
	env := make([]string, 0, len(os.Environ()))
	for _, entry := range os.Environ() {
		if strings.HasPrefix(entry, "CRIBL_") || strings.HasPrefix(entry, "XDG_CONFIG_HOME=") {
			continue
		}
		env = append(env, entry)
	}
	return env
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
