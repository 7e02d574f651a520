package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Indent.Style != "space" || cfg.Indent.Size != 4 {
		t.Errorf("Default indent %s/%d, want space/4", cfg.Indent.Style, cfg.Indent.Size)
	}
	if got := cfg.Indent.Unit(); got != "    " {
		t.Errorf("Default unit %q, want four spaces", got)
	}
	if len(cfg.Extensions) != 1 || cfg.Extensions[0] != ".cs" {
		t.Errorf("Default extensions %v, want [.cs]", cfg.Extensions)
	}
	for _, id := range []string{"member-order", "block-format"} {
		if !cfg.RuleEnabled(id) {
			t.Errorf("Rule %s disabled by default", id)
		}
	}
}

func TestIndentUnit(t *testing.T) {
	tests := []struct {
		name   string
		indent IndentConfig
		want   string
	}{
		{name: "tab", indent: IndentConfig{Style: "tab"}, want: "\t"},
		{name: "two_spaces", indent: IndentConfig{Style: "space", Size: 2}, want: "  "},
		{name: "four_spaces", indent: IndentConfig{Style: "space", Size: 4}, want: "    "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.indent.Unit(); got != tt.want {
				t.Errorf("Unit() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRuleEnabled(t *testing.T) {
	cfg := &Config{Rules: map[string]bool{"block-format": false}}

	if cfg.RuleEnabled("block-format") {
		t.Error("Explicitly disabled rule reported enabled")
	}
	if !cfg.RuleEnabled("member-order") {
		t.Error("Unlisted rule should default to enabled")
	}
	if !(&Config{}).RuleEnabled("member-order") {
		t.Error("Nil rules map should default to enabled")
	}
}

func TestLoadPartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tree-styler.yml")
	content := `indent:
  style: tab
rules:
  block-format: false
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Indent.Style != "tab" {
		t.Errorf("Indent style %q, want tab", cfg.Indent.Style)
	}
	if cfg.RuleEnabled("block-format") {
		t.Error("block-format should be disabled")
	}
	// Unspecified fields keep their defaults.
	if len(cfg.Extensions) != 1 || cfg.Extensions[0] != ".cs" {
		t.Errorf("Extensions %v, want defaults", cfg.Extensions)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("Expected error for explicitly named missing file")
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	if got := Discover(dir); got != "" {
		t.Errorf("Discover in empty dir = %q, want empty", got)
	}

	path := filepath.Join(dir, ".tree-styler.yml")
	if err := os.WriteFile(path, []byte("{}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if got := Discover(dir); got != path {
		t.Errorf("Discover = %q, want %q", got, path)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		indent  IndentConfig
		wantErr bool
	}{
		{name: "spaces_ok", indent: IndentConfig{Style: "space", Size: 4}},
		{name: "tab_ok", indent: IndentConfig{Style: "tab"}},
		{name: "bad_style", indent: IndentConfig{Style: "elastic"}, wantErr: true},
		{name: "zero_size", indent: IndentConfig{Style: "space", Size: 0}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Indent = tt.indent
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
