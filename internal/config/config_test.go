package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GeminiModel != DefaultGeminiModel {
		t.Errorf("GeminiModel = %q, want %q", cfg.GeminiModel, DefaultGeminiModel)
	}
	if cfg.DefaultField != DefaultField || cfg.DefaultTone != "friendly" || cfg.DefaultQuestions != DefaultQuestions {
		t.Errorf("interview defaults = %q/%q/%d", cfg.DefaultField, cfg.DefaultTone, cfg.DefaultQuestions)
	}
	if cfg.OutputDir != "." || cfg.LogLevel != "info" {
		t.Errorf("OutputDir = %q, LogLevel = %q", cfg.OutputDir, cfg.LogLevel)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".interviewer")
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatal(err)
	}
	file := `{"gemini_api_key": "from-file", "gemini_model": "gemini-2.5-pro", "default_tone": "professional"}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(file), 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("INTERVIEWER_GEMINI_MODEL", "gemini-2.5-flash-lite")
	t.Setenv("INTERVIEWER_DEFAULT_QUESTIONS", "7")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GeminiAPIKey != "from-file" {
		t.Errorf("GeminiAPIKey = %q, want value from file", cfg.GeminiAPIKey)
	}
	if cfg.GeminiModel != "gemini-2.5-flash-lite" {
		t.Errorf("GeminiModel = %q, want env override", cfg.GeminiModel)
	}
	if cfg.DefaultTone != "professional" || cfg.DefaultQuestions != 7 {
		t.Errorf("DefaultTone = %q, DefaultQuestions = %d", cfg.DefaultTone, cfg.DefaultQuestions)
	}
}

func TestLoadRejectsBadTone(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("INTERVIEWER_DEFAULT_TONE", "sarcastic")

	if _, err := Load(); err == nil {
		t.Error("expected an error for an unknown tone")
	}
}

func TestValidateQuestionCount(t *testing.T) {
	for _, ok := range []string{"1", "5", "20"} {
		if err := validateQuestionCount(ok); err != nil {
			t.Errorf("validateQuestionCount(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"0", "21", "-3", "five", ""} {
		if err := validateQuestionCount(bad); err == nil {
			t.Errorf("validateQuestionCount(%q) accepted invalid input", bad)
		}
	}
}
