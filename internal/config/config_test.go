package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thywilljoshua/mathq/internal/ai"
	"github.com/thywilljoshua/mathq/internal/questions"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
output_path: "/tmp/questions.txt"
page_limit: 12
reader: ledongthuc
ai:
  model: gemini-2.5-pro
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OutputPath != "/tmp/questions.txt" || cfg.Pages() != 12 || cfg.Reader != "ledongthuc" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.AI.Model != "gemini-2.5-pro" {
		t.Errorf("model = %q", cfg.AI.Model)
	}
	if cfg.Debug {
		t.Error("debug should default to false when unset")
	}
}

func TestLoad_defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "debug: true\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Debug {
		t.Error("debug should be true when set in config")
	}
	if cfg.OutputPath != DefaultOutputPath || cfg.Pages() != 5 || cfg.Reader != "rsc" || cfg.AI.Model != DefaultModel {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoad_zeroPageLimitKept(t *testing.T) {
	cfg, err := Load(writeConfig(t, "page_limit: 0\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Pages() != 0 {
		t.Errorf("Pages() = %d, want 0", cfg.Pages())
	}
}

func TestLoad_relativeOutputPath(t *testing.T) {
	path := writeConfig(t, "output_path: out/q.txt\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(filepath.Dir(path), "out/q.txt"); cfg.OutputPath != want {
		t.Errorf("OutputPath = %q, want %q", cfg.OutputPath, want)
	}
}

func TestLoad_errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Load(writeConfig(t, "page_limit: [1, 2\n")); err == nil {
		t.Error("expected error for invalid yaml")
	}
	if _, err := Load(writeConfig(t, "page_limit: -3\n")); err == nil {
		t.Error("expected error for negative page_limit")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.OutputPath != "extracted_questions.txt" || cfg.Pages() != 5 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestDefault_matchesExtractor(t *testing.T) {
	cfg := Default()
	want := questions.DefaultConfig()
	if cfg.OutputPath != want.OutputPath || cfg.Pages() != want.PageLimit || cfg.Reader != want.Reader {
		t.Errorf("config defaults %+v differ from extractor defaults %+v", cfg, want)
	}
	if cfg.AI.Model != ai.DefaultModel {
		t.Errorf("model = %q, want %q", cfg.AI.Model, ai.DefaultModel)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "from-env")
	cfg := Default()
	cfg.AI.APIKey = "from-file"
	cfg.ApplyEnv()
	if cfg.AI.APIKey != "from-env" {
		t.Errorf("APIKey = %q", cfg.AI.APIKey)
	}
}

func TestApplyEnv_unsetKeepsFile(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	cfg := Default()
	cfg.AI.APIKey = "from-file"
	cfg.ApplyEnv()
	if cfg.AI.APIKey != "from-file" {
		t.Errorf("APIKey = %q", cfg.AI.APIKey)
	}
}
