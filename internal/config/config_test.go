package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_OverridesLayeredOverDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), `
roots:
  - core
  - plugins
rules:
  advisory: warn
  disabled:
    - line-length
  budgets:
    line_length: 120
verify:
  command: ["cargo", "check", "--all-targets"]
fix:
  batch: 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"core", "plugins"}, cfg.Roots)
	assert.Equal(t, AdvisoryWarn, cfg.Rules.Advisory)
	assert.True(t, cfg.RuleDisabled("line-length"))
	assert.False(t, cfg.RuleDisabled("file-length"))
	assert.Equal(t, 120, cfg.Rules.Budgets.LineLength)
	assert.Equal(t, []string{"cargo", "check", "--all-targets"}, cfg.Verify.Command)
	assert.Equal(t, 5, cfg.Fix.Batch)

	// Untouched fields keep their defaults.
	assert.Equal(t, Default().Rules.Budgets.FileLength, cfg.Rules.Budgets.FileLength)
	assert.Equal(t, Default().ReportsDir, cfg.ReportsDir)
}

func TestLoad_EmptyFileIsDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), "")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_UnknownKeyFails(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), "rootz: [src]\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rootz")
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		content string
	}{
		{name: "bad advisory", content: "rules:\n  advisory: maybe\n"},
		{name: "zero batch", content: "fix:\n  batch: 0\n"},
		{name: "empty verifier", content: "verify:\n  command: []\n"},
	}

	for _, tc := range cases {
		tc := tc // per-iteration copy for toolchains before Go 1.22
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeConfig(t, t.TempDir(), tc.content)

			_, err := Load(path)
			require.Error(t, err)
		})
	}
}

func TestDiscover_WalksUpToConfig(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeConfig(t, root, "roots: [lib]\n")

	nested := filepath.Join(root, "src", "deep")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	cfg, path, err := Discover(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, FileName), path)
	assert.Equal(t, []string{"lib"}, cfg.Roots)
}

func TestDiscover_NoFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, path, err := Discover(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, Default(), cfg)
}

func TestLanguageProfile_PartialOverride(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Profile.BlockMarkers = []string{"namespace"}
	cfg.Profile.Include = []string{"**/*.cpp"}

	profile := cfg.LanguageProfile()
	assert.Equal(t, []string{"namespace"}, profile.BlockMarkers)
	assert.Equal(t, []string{"**/*.cpp"}, profile.Include)

	// Unset pieces come from the built-in profile.
	assert.Equal(t, []string{"impl", "trait"}, profile.ImplMarkers)
	assert.Contains(t, profile.EntryFiles, "lib.rs")
}
