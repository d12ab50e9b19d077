package input_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvlquest/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSecrets_RoundTrip verifies write-then-load through the JSON file.
func TestSecrets_RoundTrip(t *testing.T) {
	t.Setenv("AOC_COOKIE", "")
	t.Setenv("AOC_YEAR", "")
	path := filepath.Join(t.TempDir(), input.SecretFileName)

	want := input.Secrets{Cookie: "53cr3t", Year: "2025"}
	require.NoError(t, input.WriteSecrets(path, want))

	// Owner-only permissions on the credentials file.
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := input.LoadSecrets(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestLoadSecrets_EnvWins verifies environment precedence over the file.
func TestLoadSecrets_EnvWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), input.SecretFileName)
	require.NoError(t, input.WriteSecrets(path, input.Secrets{Cookie: "from-file", Year: "2024"}))

	t.Setenv("AOC_COOKIE", "from-env")
	t.Setenv("AOC_YEAR", "2025")

	got, err := input.LoadSecrets(path)
	require.NoError(t, err)
	assert.Equal(t, input.Secrets{Cookie: "from-env", Year: "2025"}, got)
}

// TestLoadSecrets_Missing verifies the nothing-configured sentinel.
func TestLoadSecrets_Missing(t *testing.T) {
	t.Setenv("AOC_COOKIE", "")
	t.Setenv("AOC_YEAR", "")

	_, err := input.LoadSecrets(filepath.Join(t.TempDir(), input.SecretFileName))
	assert.ErrorIs(t, err, input.ErrNoSecrets)
}

// TestLoadSecrets_Invalid verifies validation of present-but-broken values.
func TestLoadSecrets_Invalid(t *testing.T) {
	t.Setenv("AOC_COOKIE", "")
	t.Setenv("AOC_YEAR", "")
	dir := t.TempDir()

	cases := map[string]string{
		"not json":     "{cookie",
		"empty cookie": `{"AOC_COOKIE": "", "YEAR": "2025"}`,
		"bad year":     `{"AOC_COOKIE": "c", "YEAR": "soon"}`,
		"ancient year": `{"AOC_COOKIE": "c", "YEAR": "1999"}`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".json")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

			_, err := input.LoadSecrets(path)
			assert.ErrorIs(t, err, input.ErrBadSecrets)
		})
	}
}

// TestWriteSecrets_RejectsInvalid verifies nothing broken reaches the disk.
func TestWriteSecrets_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), input.SecretFileName)

	err := input.WriteSecrets(path, input.Secrets{Cookie: "", Year: "2025"})
	assert.ErrorIs(t, err, input.ErrBadSecrets)
	assert.NoFileExists(t, path)
}
