package project

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config mirrors declcheck.toml.
type Config struct {
	Analysis AnalysisConfig `toml:"analysis"`
	Output   OutputConfig   `toml:"output"`
	Files    FilesConfig    `toml:"files"`
	Cache    CacheConfig    `toml:"cache"`
}

type AnalysisConfig struct {
	Policy         string `toml:"policy"`
	StripComments  bool   `toml:"strip_comments"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
	Stages         string `toml:"stages"`
}

type OutputConfig struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

type FilesConfig struct {
	Extensions []string `toml:"extensions"`
}

type CacheConfig struct {
	Enabled bool `toml:"enabled"`
}

// Manifest is a loaded declcheck.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// DefaultConfig is what `declcheck init` writes and what applies without a
// manifest.
func DefaultConfig() Config {
	return Config{
		Analysis: AnalysisConfig{
			Policy:         "strict",
			StripComments:  true,
			MaxDiagnostics: 100,
			Stages:         "all",
		},
		Output: OutputConfig{Format: "report", Color: "auto"},
		Files:  FilesConfig{Extensions: []string{".java", ".decl"}},
	}
}

var (
	validPolicies = []string{"strict", "legacy"}
	validFormats  = []string{"report", "pretty", "json", "short", "dump"}
	validColors   = []string{"auto", "on", "off"}
)

// LoadManifest finds declcheck.toml above startDir and decodes it.
// ok is false when there is no manifest.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := LoadConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

// LoadConfig decodes path over DefaultConfig, so omitted keys keep their
// defaults, and validates enumerated values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}
	if meta.IsDefined("analysis", "policy") && !oneOf(cfg.Analysis.Policy, validPolicies) {
		return Config{}, fmt.Errorf("%s: [analysis].policy must be one of %s", path, strings.Join(validPolicies, "|"))
	}
	if cfg.Analysis.MaxDiagnostics < 0 {
		return Config{}, fmt.Errorf("%s: [analysis].max_diagnostics must be >= 0", path)
	}
	if meta.IsDefined("output", "format") && !oneOf(cfg.Output.Format, validFormats) {
		return Config{}, fmt.Errorf("%s: [output].format must be one of %s", path, strings.Join(validFormats, "|"))
	}
	if meta.IsDefined("output", "color") && !oneOf(cfg.Output.Color, validColors) {
		return Config{}, fmt.Errorf("%s: [output].color must be one of %s", path, strings.Join(validColors, "|"))
	}
	if meta.IsDefined("files", "extensions") {
		for _, ext := range cfg.Files.Extensions {
			if !strings.HasPrefix(ext, ".") {
				return Config{}, fmt.Errorf("%s: [files].extensions entry %q must start with '.'", path, ext)
			}
		}
	}
	return cfg, nil
}

// WriteManifest writes cfg to dir/declcheck.toml. An existing file is kept
// unless force is set.
func WriteManifest(dir string, cfg Config, force bool) (string, error) {
	path := filepath.Join(dir, ManifestName)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, fmt.Errorf("%s already exists", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return path, err
		}
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return path, fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return path, err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return path, fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
