package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	yaml "gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
}

func TestLoadConfiguration_DefaultComposite(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	c := cfg.Composite

	if c.Width != 900 || c.Height != 1780 {
		t.Errorf("dimensions = %dx%d, want 900x1780", c.Width, c.Height)
	}
	if c.Background != "#080808" {
		t.Errorf("Background = %q, want #080808", c.Background)
	}
	if c.AssetsDir != "assets" {
		t.Errorf("AssetsDir = %q, want assets", c.AssetsDir)
	}
	if c.Output != filepath.Join("assets", "readme_full.svg") {
		t.Errorf("Output = %q", c.Output)
	}
	if c.Dedupe != DedupeModeStructural {
		t.Errorf("Dedupe = %v, want structural", c.Dedupe)
	}
	if c.StyleCollisions != CollisionModeWarn {
		t.Errorf("StyleCollisions = %v, want warn", c.StyleCollisions)
	}
	if c.Preview.Enable {
		t.Error("Preview must be disabled by default")
	}

	want := []FragmentConfig{
		{"header", "header.svg", 0},
		{"about", "about.svg", 230},
		{"divider", "divider.svg", 540},
		{"skills", "skills.svg", 590},
		{"divider", "divider.svg", 1000},
		{"projects", "projects.svg", 1050},
		{"divider", "divider.svg", 1420},
		{"terminal", "terminal.svg", 1470},
		{"footer", "footer.svg", 1720},
	}
	if len(c.Fragments) != len(want) {
		t.Fatalf("got %d fragments, want %d", len(c.Fragments), len(want))
	}
	for i, f := range c.Fragments {
		if f != want[i] {
			t.Errorf("fragment[%d] = %+v, want %+v", i, f, want[i])
		}
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	path := writeConfig(t, `version: 1
composite:
  assets_dir: ./art/../svg
  output: out/readme.svg
  height: 500
  dedupe: textual
  style_collisions: ignore
  fragments:
    - name: top
      file: top.svg
      y_offset: 0
    - name: bottom
      file: bottom.svg
      y_offset: 250
  preview:
    enable: true
    destination: out/readme.png
    width: 300
logging:
  console:
    level: debug
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	c := cfg.Composite

	if c.AssetsDir != "svg" {
		t.Errorf("AssetsDir = %q, want cleaned path svg", c.AssetsDir)
	}
	if c.Height != 500 {
		t.Errorf("Height = %d, want 500", c.Height)
	}
	if c.Width != 900 {
		t.Errorf("Width = %d, want default 900", c.Width)
	}
	if c.Dedupe != DedupeModeTextual {
		t.Errorf("Dedupe = %v, want textual", c.Dedupe)
	}
	if c.StyleCollisions != CollisionModeIgnore {
		t.Errorf("StyleCollisions = %v, want ignore", c.StyleCollisions)
	}
	if len(c.Fragments) != 2 {
		t.Fatalf("fragments from file must replace defaults, got %d", len(c.Fragments))
	}
	if c.Fragments[1].Name != "bottom" || c.Fragments[1].YOffset != 250 {
		t.Errorf("fragment[1] = %+v", c.Fragments[1])
	}
	if !c.Preview.Enable || c.Preview.Width != 300 {
		t.Errorf("Preview = %+v", c.Preview)
	}
	if cfg.Logging.ConsoleLogger.Level != "debug" {
		t.Errorf("console level = %q, want debug", cfg.Logging.ConsoleLogger.Level)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "invalid yaml",
			content: "version: 1\ncomposite:\n  width: 900\n  invalid indent\n",
		},
		{
			name:    "unknown field",
			content: "version: 1\nunknown_field: value\n",
		},
		{
			name:    "wrong version",
			content: "version: 2\n",
		},
		{
			name:    "unknown dedupe mode",
			content: "version: 1\ncomposite:\n  dedupe: fuzzy\n",
		},
		{
			name:    "zero width",
			content: "version: 1\ncomposite:\n  width: 0\n",
		},
		{
			name:    "negative offset",
			content: "version: 1\ncomposite:\n  fragments:\n    - name: a\n      file: a.svg\n      y_offset: -5\n",
		},
		{
			name:    "empty fragment list",
			content: "version: 1\ncomposite:\n  fragments: []\n",
		},
		{
			name:    "name breaks comment",
			content: "version: 1\ncomposite:\n  fragments:\n    - name: a--b\n      file: a.svg\n      y_offset: 0\n",
		},
		{
			name:    "preview without destination",
			content: "version: 1\ncomposite:\n  preview:\n    enable: true\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Prepare() returned empty data")
	}
	if !strings.Contains(string(data), "fragments:") {
		t.Error("Prepared configuration does not contain fragments")
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	// enums must be dumped by name so the result can be loaded back
	if !strings.Contains(string(data), "dedupe: structural") {
		t.Errorf("Dump() does not contain dedupe mode name:\n%s", data)
	}

	var back Config
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&back); err != nil {
		t.Fatalf("unable to decode dumped configuration: %v", err)
	}
	if len(back.Composite.Fragments) != len(cfg.Composite.Fragments) {
		t.Errorf("round trip lost fragments: %d != %d", len(back.Composite.Fragments), len(cfg.Composite.Fragments))
	}
}

func TestEnums(t *testing.T) {
	if m, err := ParseDedupeMode("textual"); err != nil || m != DedupeModeTextual {
		t.Errorf("ParseDedupeMode(textual) = %v, %v", m, err)
	}
	if _, err := ParseDedupeMode("merge"); err == nil {
		t.Error("expected error for unknown dedupe mode")
	}
	if got := CollisionModeWarn.String(); got != "warn" {
		t.Errorf("CollisionModeWarn.String() = %q", got)
	}
	if got := DedupeMode(7).String(); got != "DedupeMode(7)" {
		t.Errorf("invalid DedupeMode.String() = %q", got)
	}
}
