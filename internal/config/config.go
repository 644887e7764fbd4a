package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go-interviewer/internal/interview"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/huh"
	"github.com/joho/godotenv"
)

const (
	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultField       = "Data Science"
	DefaultQuestions   = 5

	envPrefix = "INTERVIEWER_"
)

type Config struct {
	GeminiAPIKey     string `json:"gemini_api_key" env:"GEMINI_API_KEY"`
	GeminiModel      string `json:"gemini_model" env:"GEMINI_MODEL"`
	DefaultField     string `json:"default_field" env:"DEFAULT_FIELD"`
	DefaultTone      string `json:"default_tone" env:"DEFAULT_TONE"`
	DefaultQuestions int    `json:"default_questions" env:"DEFAULT_QUESTIONS"`
	OutputDir        string `json:"output_dir" env:"OUTPUT_DIR"`
	LogLevel         string `json:"log_level" env:"LOG_LEVEL"`
}

func GeminiModelOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("Gemini 2.5 Flash", "gemini-2.5-flash"),
		huh.NewOption("Gemini 2.5 Flash Lite", "gemini-2.5-flash-lite"),
		huh.NewOption("Gemini 2.5 Pro", "gemini-2.5-pro"),
	}
}

func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".interviewer")
}

func configPath() string {
	return filepath.Join(Dir(), "config.json")
}

func Exists() bool {
	_, err := os.Stat(configPath())
	return err == nil
}

// Load reads the config file if present, fills in defaults, and applies
// INTERVIEWER_* environment overrides on top (a .env file in the working
// directory is honored). A missing config file is fine; only a malformed one
// is an error.
func Load() (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(configPath())
	switch {
	case err == nil:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid config file: %w", err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("read config file: %w", err)
	}

	_ = godotenv.Load()
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	cfg.applyDefaults()
	if _, err := interview.ParseTone(cfg.DefaultTone); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.GeminiModel == "" {
		c.GeminiModel = DefaultGeminiModel
	}
	if c.DefaultField == "" {
		c.DefaultField = DefaultField
	}
	if c.DefaultTone == "" {
		c.DefaultTone = string(interview.ToneFriendly)
	}
	if c.DefaultQuestions == 0 {
		c.DefaultQuestions = DefaultQuestions
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func Save(cfg *Config) error {
	if err := os.MkdirAll(Dir(), 0700); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(configPath(), data, 0600)
}

func RunSetup() (*Config, error) {
	existing := &Config{}
	if cfg, err := Load(); err == nil {
		existing = cfg
	}
	existing.applyDefaults()

	cfg := *existing
	questions := strconv.Itoa(cfg.DefaultQuestions)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Gemini API Key").
				EchoMode(huh.EchoModePassword).
				Value(&cfg.GeminiAPIKey).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("API key is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Gemini Model").
				Options(GeminiModelOptions()...).
				Value(&cfg.GeminiModel),
		).Title("Gemini"),

		huh.NewGroup(
			huh.NewInput().
				Title("Default field").
				Placeholder(DefaultField).
				Value(&cfg.DefaultField),
			huh.NewSelect[string]().
				Title("Default tone").
				Options(toneOptions()...).
				Value(&cfg.DefaultTone),
			huh.NewInput().
				Title("Default number of questions (1-20)").
				Value(&questions).
				Validate(validateQuestionCount),
			huh.NewInput().
				Title("Transcript output directory").
				Placeholder(".").
				Value(&cfg.OutputDir),
		).Title("Interview Defaults"),
	)

	if err := form.Run(); err != nil {
		return nil, err
	}

	cfg.DefaultQuestions, _ = strconv.Atoi(questions)
	cfg.applyDefaults()

	if err := Save(&cfg); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("\nConfig saved to %s\n", configPath())
	return &cfg, nil
}

func toneOptions() []huh.Option[string] {
	tones := interview.Tones()
	opts := make([]huh.Option[string], len(tones))
	for i, tone := range tones {
		opts[i] = huh.NewOption(string(tone), string(tone))
	}
	return opts
}

func validateQuestionCount(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 20 {
		return fmt.Errorf("must be a number between 1 and 20")
	}
	return nil
}
