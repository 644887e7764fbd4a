package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"go-interviewer/internal/config"
	"go-interviewer/internal/llm"
	"go-interviewer/internal/logging"
	"go-interviewer/internal/session"

	"github.com/pterm/pterm"
	"go.uber.org/zap"
)

var Version = "dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Println("interviewer version", Version)
		return
	}

	if len(os.Args) > 1 && os.Args[1] == "config" {
		if _, err := config.RunSetup(); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(1)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		pterm.Error.Println("Failed to load config: " + err.Error())
		os.Exit(1)
	}

	if cfg.GeminiAPIKey == "" {
		fmt.Println("No configuration found. Let's set it up!")
		fmt.Println()
		cfg, err = config.RunSetup()
		if err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log, err := logging.New(filepath.Join(config.Dir(), "interviewer.log"), cfg.LogLevel)
	if err != nil {
		pterm.Println(pterm.Gray("Logging disabled: " + err.Error()))
		log = zap.NewNop()
	}
	defer log.Sync()

	prompts, err := llm.LoadPrompts(filepath.Join(config.Dir(), "prompts.yaml"))
	if err != nil {
		pterm.Println(pterm.Gray("Using default prompts: " + err.Error()))
	}

	client, err := llm.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, prompts, log)
	if err != nil {
		pterm.Error.Println("Failed to initialize Gemini: " + err.Error())
		os.Exit(1)
	}

	runner := session.NewRunner(client, cfg, log)
	if err := runner.Run(ctx); err != nil {
		if ctx.Err() != nil {
			pterm.Println()
			pterm.Println(pterm.Gray("Interrupted. See you next time!"))
			os.Exit(0)
		}
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}
