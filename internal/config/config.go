// Package config loads workspace configuration for the redress CLI from
// .redress.yaml. Every field has a default, so a missing file is valid.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	m "github.com/redress-dev/redress/internal/model"
)

// FileName is the configuration file searched from the reviewed root upwards.
const FileName = ".redress.yaml"

// ProfileConfig overrides pieces of the built-in language profile.
// Empty fields keep the profile defaults.
type ProfileConfig struct {
	Name            string   `yaml:"name"`
	Include         []string `yaml:"include"`
	Exclude         []string `yaml:"exclude"`
	EntryFiles      []string `yaml:"entry_files"`
	CommentPrefixes []string `yaml:"comment_prefixes"`
	BlockMarkers    []string `yaml:"block_markers"`
	ImplMarkers     []string `yaml:"impl_markers"`
	FilePattern     string   `yaml:"file_pattern"`
}

// Budgets holds the numeric limits enforced by the advisory rules.
type Budgets struct {
	LineLength   int `yaml:"line_length"`
	FileLength   int `yaml:"file_length"`
	MethodLength int `yaml:"method_length"`
	BlockDepth   int `yaml:"block_depth"`
}

// RulesConfig selects and tunes the rule catalogue.
type RulesConfig struct {
	// Disabled lists rule ids excluded from the suite tree.
	Disabled []string `yaml:"disabled"`

	// Advisory is "fail" or "warn". With "warn", advisory-only failures do
	// not flip the aggregate outcome.
	Advisory string `yaml:"advisory"`

	Budgets Budgets `yaml:"budgets"`
}

// VerifyConfig is the external command that validates every remediation unit.
// Only its exit status is interpreted.
type VerifyConfig struct {
	Command []string `yaml:"command"`
	Dir     string   `yaml:"dir"`
}

// FixConfig tunes batch remediation.
type FixConfig struct {
	Batch      int      `yaml:"batch"`
	Transforms []string `yaml:"transforms"`
}

// Config is the decoded .redress.yaml layered over defaults.
type Config struct {
	Roots      []string      `yaml:"roots"`
	Profile    ProfileConfig `yaml:"profile"`
	Rules      RulesConfig   `yaml:"rules"`
	Verify     VerifyConfig  `yaml:"verify"`
	Fix        FixConfig     `yaml:"fix"`
	ReportsDir string        `yaml:"reports_dir"`
	LogFile    string        `yaml:"log_file"`
}

// AdvisoryFail and AdvisoryWarn are the accepted rules.advisory values.
const (
	AdvisoryFail = "fail"
	AdvisoryWarn = "warn"
)

// Default returns the configuration used when no .redress.yaml exists.
func Default() Config {
	return Config{
		Roots: []string{"src"},
		Rules: RulesConfig{
			Advisory: AdvisoryFail,
			Budgets: Budgets{
				LineLength:   100,
				FileLength:   600,
				MethodLength: 40,
				BlockDepth:   5,
			},
		},
		Verify: VerifyConfig{
			Command: []string{"cargo", "build"},
		},
		Fix: FixConfig{
			Batch: 1,
		},
		ReportsDir: ".redress",
		LogFile:    "review.log",
	}
}

// Load decodes the file at path over Default. Unknown keys are an error so
// typos fail loudly instead of silently keeping defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path comes from config discovery, not remote input
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Discover walks up from startDir looking for .redress.yaml and loads the
// first one found. Without a file it returns Default with ok=false.
func Discover(startDir string) (Config, string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return Config{}, "", fmt.Errorf("failed to resolve %s: %w", startDir, err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			cfg, err := Load(candidate)
			if err != nil {
				return Config{}, "", err
			}

			return cfg, candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), "", nil
		}

		dir = parent
	}
}

func (c Config) validate() error {
	if c.Rules.Advisory != AdvisoryFail && c.Rules.Advisory != AdvisoryWarn {
		return fmt.Errorf("rules.advisory must be %q or %q, got %q", AdvisoryFail, AdvisoryWarn, c.Rules.Advisory)
	}

	if c.Fix.Batch < 1 {
		return fmt.Errorf("fix.batch must be at least 1, got %d", c.Fix.Batch)
	}

	if len(c.Verify.Command) == 0 {
		return errors.New("verify.command must name at least the executable")
	}

	if c.Profile.FilePattern != "" {
		if _, err := regexp.Compile(c.Profile.FilePattern); err != nil {
			return fmt.Errorf("profile.file_pattern is not a valid regexp: %w", err)
		}
	}

	return nil
}

// LanguageProfile maps the profile section onto the scanner profile,
// falling back to the built-in defaults field by field.
func (c Config) LanguageProfile() m.Profile {
	profile := m.DefaultProfile()

	if c.Profile.Name != "" {
		profile.Name = c.Profile.Name
	}

	if len(c.Profile.Include) > 0 {
		profile.Include = c.Profile.Include
	}

	if len(c.Profile.Exclude) > 0 {
		profile.Exclude = c.Profile.Exclude
	}

	if len(c.Profile.EntryFiles) > 0 {
		profile.EntryFiles = c.Profile.EntryFiles
	}

	if len(c.Profile.CommentPrefixes) > 0 {
		profile.CommentPrefixes = c.Profile.CommentPrefixes
	}

	if len(c.Profile.BlockMarkers) > 0 {
		profile.BlockMarkers = c.Profile.BlockMarkers
	}

	if len(c.Profile.ImplMarkers) > 0 {
		profile.ImplMarkers = c.Profile.ImplMarkers
	}

	if c.Profile.FilePattern != "" {
		profile.FilePattern = c.Profile.FilePattern
	}

	return profile
}

// RuleDisabled reports whether the given rule id is switched off.
func (c Config) RuleDisabled(id string) bool {
	for _, disabled := range c.Rules.Disabled {
		if disabled == id {
			return true
		}
	}

	return false
}
