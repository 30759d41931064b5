package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "timely", cmd.Use)

	for _, name := range []string{"describe", "datetimes", "match", "join"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
}

func TestDescribe(t *testing.T) {
	out, _, err := run(t, "describe", "--every", "1 week", "-i", "2023-01-02/2023-01-30")
	require.NoError(t, err)
	assert.Equal(t, "every Monday, Jan 2–Jan 30, 2023\n", out)

	out, _, err = run(t, "describe", "--every", "month", "-i", "2023-01-15/2023-06-15", "-i", "2023-07-04")
	require.NoError(t, err)
	assert.Equal(t, "every 15th of the month, Jan 15–Jun 15, 2023 and Jul 4, 2023\n", out)
}

func TestDescribeErrors(t *testing.T) {
	_, _, err := run(t, "describe")
	assert.ErrorContains(t, err, "at least one interval")

	_, _, err = run(t, "describe", "--every", "fortnight", "-i", "2023-01-02")
	assert.Error(t, err)

	_, _, err = run(t, "describe", "-i", "2023-01-30/2023-01-02")
	assert.Error(t, err)

	_, _, err = run(t, "--timezone", "Nowhere/Special", "describe", "-i", "2023-01-02")
	assert.ErrorContains(t, err, "invalid timezone")
}

func TestDatetimes(t *testing.T) {
	out, _, err := run(t, "datetimes", "--every", "1 week",
		"-i", "2023-01-02/2023-01-16", "-i", "2023-02-01")
	require.NoError(t, err)
	assert.Equal(t, `# Jan 2–Jan 16, 2023
2023-01-02T00:00:00Z
2023-01-09T00:00:00Z
2023-01-16T00:00:00Z

# Feb 1, 2023
2023-02-01T00:00:00Z
`, out)
}

func TestDatetimesTimezoneAndCap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timely.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timezone: Asia/Seoul\nmax_datetimes: 2\n"), 0o600))

	out, _, err := run(t, "--config", path, "datetimes", "-i", "2023-01-01/2023-01-05")
	require.NoError(t, err)
	assert.Equal(t, `# Jan 1–Jan 5, 2023
2023-01-01T00:00:00+09:00
2023-01-02T00:00:00+09:00
... 3 more
`, out)
}

func TestMatch(t *testing.T) {
	args := []string{"match", "--every", "1 week", "-i", "2023-01-02/2023-01-30"}

	out, _, err := run(t, append(args, "2023-01-09", "20230116")...)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, _, err = run(t, append(args, "2023-01-10")...)
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)

	out, _, err = run(t, append(args, "whenever")...)
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)

	out, _, err = run(t, args...)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestJoin(t *testing.T) {
	out, _, err := run(t, "join", "-i", "2023-01-01/2023-01-03", "-w", "2023-01-02/2023-01-04")
	require.NoError(t, err)
	assert.Equal(t, "every day, Jan 1–Jan 4, 2023\n", out)

	out, _, err = run(t, "join", "-i", "2023-01-01/2023-01-03", "-w", "2023-01-02/2023-01-04", "--with-every", "2 days")
	require.NoError(t, err)
	assert.Equal(t, "not joinable\n", out)
}

func TestVerboseLogsToStderr(t *testing.T) {
	out, stderr, err := run(t, "-v", "join", "-i", "2023-01-01", "-w", "2023-01-02", "--with-every", "1 week")
	require.NoError(t, err)
	assert.Equal(t, "not joinable\n", out)
	assert.Contains(t, stderr, "effective config")
	assert.Contains(t, stderr, "frequencies differ")
}
