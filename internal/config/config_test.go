package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"pgregory.net/rapid"
)

// Feature: culling-graph, Property 6: config merge precedence
func TestConfigMergePrecedence(t *testing.T) {
	// Generator for a non-empty string field value.
	nonEmptyString := rapid.StringMatching(`[a-zA-Z0-9/_.-]{1,20}`)

	// Each field is independently either unset or set.
	configGen := rapid.Custom(func(t *rapid.T) *Config {
		cfg := &Config{}
		if rapid.Bool().Draw(t, "hasLogPath") {
			cfg.LogPath = nonEmptyString.Draw(t, "logPath")
		}
		if rapid.Bool().Draw(t, "hasOutputDir") {
			cfg.OutputDir = nonEmptyString.Draw(t, "outputDir")
		}
		if rapid.Bool().Draw(t, "hasDefaultFormat") {
			cfg.DefaultFormat = nonEmptyString.Draw(t, "defaultFormat")
		}
		if rapid.Bool().Draw(t, "hasOpenBrowser") {
			open := rapid.Bool().Draw(t, "openBrowser")
			cfg.OpenBrowser = &open
		}
		return cfg
	})

	rapid.Check(t, func(t *rapid.T) {
		global := configGen.Draw(t, "global")
		project := configGen.Draw(t, "project")

		merged := Merge(global, project)
		defaults := Defaults()

		checkStringField(t, "LogPath",
			global.LogPath, project.LogPath, defaults.LogPath, merged.LogPath)
		checkStringField(t, "OutputDir",
			global.OutputDir, project.OutputDir, defaults.OutputDir, merged.OutputDir)
		checkStringField(t, "DefaultFormat",
			global.DefaultFormat, project.DefaultFormat, defaults.DefaultFormat, merged.DefaultFormat)

		want := true
		switch {
		case project.OpenBrowser != nil:
			want = *project.OpenBrowser
		case global.OpenBrowser != nil:
			want = *global.OpenBrowser
		}
		if merged.ShouldOpen() != want {
			t.Fatalf("OpenBrowser: expected %v, got %v", want, merged.ShouldOpen())
		}
	})
}

// checkStringField asserts the merge precedence rule for a single string field:
//   - project non-empty  → merged == project
//   - project empty, global non-empty → merged == global
//   - both empty → merged == defaultVal
func checkStringField(t *rapid.T, name, globalVal, projectVal, defaultVal, mergedVal string) {
	t.Helper()
	switch {
	case projectVal != "":
		if mergedVal != projectVal {
			t.Fatalf("%s: both set — expected project value %q, got %q", name, projectVal, mergedVal)
		}
	case globalVal != "":
		if mergedVal != globalVal {
			t.Fatalf("%s: only global set — expected global value %q, got %q", name, globalVal, mergedVal)
		}
	default:
		if mergedVal != defaultVal {
			t.Fatalf("%s: neither set — expected default %q, got %q", name, defaultVal, mergedVal)
		}
	}
}

func TestMergeDoesNotAliasOpenBrowser(t *testing.T) {
	off := false
	merged := Merge(&Config{OpenBrowser: &off}, nil)
	off = true
	if merged.ShouldOpen() {
		t.Error("merged config changed when the source config was mutated")
	}
}

func TestDefaultsValues(t *testing.T) {
	d := Defaults()
	if d.DefaultFormat != "html" {
		t.Errorf("DefaultFormat: want %q, got %q", "html", d.DefaultFormat)
	}
	if !d.ShouldOpen() {
		t.Error("OpenBrowser: want true by default")
	}
	if d.LogPath != "" || d.OutputDir != "" {
		t.Errorf("paths should default to auto-detection, got %+v", d)
	}
}

func TestLoadGlobalMissingFileReturnsDefaults(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	cfg, err := LoadGlobal()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected non-nil config, got nil")
	}
	if cfg.DefaultFormat != Defaults().DefaultFormat {
		t.Errorf("DefaultFormat: want %q, got %q", Defaults().DefaultFormat, cfg.DefaultFormat)
	}
}

func TestLoadGlobalReadsYAML(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	cfgDir := filepath.Join(tmp, ".config", "culling-graph")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	yml := "log_path: D:/Games/Victory.log\noutput_dir: /tmp/reports\nopen_browser: false\nquiet: true\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGlobal()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogPath != "D:/Games/Victory.log" {
		t.Errorf("LogPath: got %q", cfg.LogPath)
	}
	if cfg.OutputDir != "/tmp/reports" {
		t.Errorf("OutputDir: got %q", cfg.OutputDir)
	}
	if cfg.ShouldOpen() {
		t.Error("OpenBrowser: want false")
	}
	if !cfg.Quiet {
		t.Error("Quiet: want true")
	}
}

func TestLoadProjectMissingFileReturnsNil(t *testing.T) {
	tmp := t.TempDir()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(orig) })

	cfg, err := LoadProject()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config, got %+v", cfg)
	}
}

func TestLoadGlobalParseError(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	// Write an invalid YAML file where LoadGlobal expects it.
	cfgDir := filepath.Join(tmp, ".config", "culling-graph")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte("log_path: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadGlobal()
	if err == nil {
		t.Fatal("expected an error for invalid YAML, got nil")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("expected *ParseError, got %T: %v", err, err)
	}
}
