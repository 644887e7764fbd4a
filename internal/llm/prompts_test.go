package llm

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-interviewer/internal/interview"
)

func TestQuestionsPrompt(t *testing.T) {
	got := DefaultPrompts().QuestionsPrompt("Data Science", interview.ToneFriendly, 5)

	for _, want := range []string{"Generate 5 unique", "Field: Data Science", "Tone: friendly", "1. Question 1"} {
		if !strings.Contains(got, want) {
			t.Errorf("questions prompt missing %q:\n%s", want, got)
		}
	}
}

func TestEvaluationPrompt(t *testing.T) {
	got := DefaultPrompts().EvaluationPrompt("What is a goroutine?", "A lightweight thread.")

	for _, want := range []string{"Question: What is a goroutine?", "Answer: A lightweight thread.", "Score: <score out of 10>", "Comment: <short comment>"} {
		if !strings.Contains(got, want) {
			t.Errorf("evaluation prompt missing %q:\n%s", want, got)
		}
	}
}

func TestLoadPrompts(t *testing.T) {
	t.Run("missing file keeps defaults", func(t *testing.T) {
		got, err := LoadPrompts(filepath.Join(t.TempDir(), "prompts.yaml"))
		if err != nil {
			t.Fatalf("LoadPrompts: %v", err)
		}
		if got != DefaultPrompts() {
			t.Error("missing file changed the default prompts")
		}
	})

	t.Run("partial override", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prompts.yaml")
		content := "questions: |\n  Give me %d questions about %s, tone %s.\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		got, err := LoadPrompts(path)
		if err != nil {
			t.Fatalf("LoadPrompts: %v", err)
		}
		if !strings.Contains(got.QuestionsPrompt("Go", interview.ToneSimple, 3), "Give me 3 questions about Go, tone simple.") {
			t.Errorf("override not applied: %q", got.Questions)
		}
		if got.Evaluation != defaultEvaluationPrompt {
			t.Error("evaluation prompt should keep its default")
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prompts.yaml")
		if err := os.WriteFile(path, []byte("questions: [unclosed"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadPrompts(path); err == nil {
			t.Error("expected an error for malformed YAML")
		}
	})
}
