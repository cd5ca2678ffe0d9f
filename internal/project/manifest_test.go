package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-test/deep"
)

func TestWriteAndLoadManifest(t *testing.T) {
	root := t.TempDir()
	path, err := WriteManifest(root, DefaultConfig(), false)
	if err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}
	if _, err := WriteManifest(root, DefaultConfig(), false); err == nil {
		t.Fatal("second write without force must fail")
	}

	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	m, ok, err := LoadManifest(nested)
	if err != nil || !ok {
		t.Fatalf("LoadManifest: ok=%v err=%v", ok, err)
	}
	if m.Path != path || m.Root != root {
		t.Fatalf("unexpected manifest location %q / %q", m.Path, m.Root)
	}
	if diff := deep.Equal(m.Config, DefaultConfig()); diff != nil {
		t.Fatal(diff)
	}
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ManifestName)
	body := "[analysis]\npolicy = \"legacy\"\n\n[files]\nextensions = [\".txt\"]\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Analysis.Policy != "legacy" || !cfg.Analysis.StripComments || cfg.Output.Format != "report" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if len(cfg.Files.Extensions) != 1 || cfg.Files.Extensions[0] != ".txt" {
		t.Fatalf("unexpected extensions %v", cfg.Files.Extensions)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{"[analysis]\npolicy = \"loose\"\n", "[analysis].policy"},
		{"[output]\nformat = \"xml\"\n", "[output].format"},
		{"[output]\ncolor = \"maybe\"\n", "[output].color"},
		{"[files]\nextensions = [\"java\"]\n", "[files].extensions"},
		{"[analysis]\nmax_diagnostics = -1\n", "max_diagnostics"},
		{"[analysis]\nunknown = 1\n", "unknown key"},
		{"[analysis\n", "failed to parse TOML"},
	}
	for _, tt := range tests {
		path := filepath.Join(t.TempDir(), ManifestName)
		if err := os.WriteFile(path, []byte(tt.body), 0o600); err != nil {
			t.Fatal(err)
		}
		_, err := LoadConfig(path)
		if err == nil || !strings.Contains(err.Error(), tt.want) || !strings.HasPrefix(err.Error(), path) {
			t.Errorf("%q: got %v, want error mentioning %q", tt.body, err, tt.want)
		}
	}
}

func TestFindManifestMissing(t *testing.T) {
	_, ok, err := FindManifest(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	// временные каталоги не лежат под declcheck.toml
	if ok {
		t.Skip("a declcheck.toml exists above the temp dir")
	}
}

func TestDigest(t *testing.T) {
	a, b := Sum("ab", "c"), Sum("a", "bc")
	if a == b {
		t.Fatal("length prefix must separate parts")
	}
	if a.IsZero() || (Digest{}).IsZero() == false {
		t.Fatal("IsZero")
	}
	if Combine(a, b) == Combine(b, a) {
		t.Fatal("Combine is order sensitive")
	}
	if len(a.String()) != 64 {
		t.Fatalf("hex digest length %d", len(a.String()))
	}
}
