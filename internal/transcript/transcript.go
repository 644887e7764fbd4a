package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go-interviewer/internal/interview"
)

// Transcript is the on-disk record of one session. The key set and the
// index alignment across questions/answers/evaluations are load-bearing:
// other tooling reads these files, so nothing else goes in.
type Transcript struct {
	Field       string                 `json:"field"`
	Tone        string                 `json:"tone"`
	Questions   []string               `json:"questions"`
	Answers     []string               `json:"answers"`
	Evaluations []interview.Evaluation `json:"evaluations"`
}

func FromSession(s *interview.Session) Transcript {
	return Transcript{
		Field:       s.Field,
		Tone:        string(s.Tone),
		Questions:   s.Questions,
		Answers:     s.Answers,
		Evaluations: s.Evaluations,
	}
}

// Filename derives the transcript file name from the field, spaces replaced
// with underscores: "Data Science" -> "interview_Data_Science.json".
func Filename(field string) string {
	return "interview_" + strings.ReplaceAll(field, " ", "_") + ".json"
}

// Save writes the transcript into dir and returns the full path.
func Save(dir string, t Transcript) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(t, "", "    ")
	if err != nil {
		return "", fmt.Errorf("marshal transcript: %w", err)
	}

	path := filepath.Join(dir, Filename(t.Field))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write transcript %s: %w", path, err)
	}
	return path, nil
}

func Load(path string) (Transcript, error) {
	var t Transcript
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read transcript %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse transcript %s: %w", path, err)
	}
	return t, nil
}
