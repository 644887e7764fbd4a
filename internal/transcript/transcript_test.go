package transcript

import (
	"os"
	"reflect"
	"strings"
	"testing"

	"go-interviewer/internal/interview"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		field string
		want  string
	}{
		{"Data Science", "interview_Data_Science.json"},
		{"Go", "interview_Go.json"},
		{"Site Reliability Engineering", "interview_Site_Reliability_Engineering.json"},
		{"", "interview_.json"},
	}

	for _, tt := range tests {
		if got := Filename(tt.field); got != tt.want {
			t.Errorf("Filename(%q) = %q, want %q", tt.field, got, tt.want)
		}
	}
}

func sampleTranscript() Transcript {
	return Transcript{
		Field:     "Data Science",
		Tone:      "friendly",
		Questions: []string{"1. What is overfitting?", "2. Explain cross-validation."},
		Answers:   []string{"Fitting noise.", "Splitting data into folds."},
		Evaluations: []interview.Evaluation{
			{Score: 8.5, Comment: "Good depth", Parsed: true},
			{Score: 0, Comment: ""},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	orig := sampleTranscript()

	path, err := Save(dir, orig)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasSuffix(path, "interview_Data_Science.json") {
		t.Errorf("unexpected path %q", path)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded.Questions) != len(loaded.Answers) || len(loaded.Answers) != len(loaded.Evaluations) {
		t.Fatalf("arrays misaligned: %d/%d/%d", len(loaded.Questions), len(loaded.Answers), len(loaded.Evaluations))
	}
	if !reflect.DeepEqual(loaded.Questions, orig.Questions) || !reflect.DeepEqual(loaded.Answers, orig.Answers) {
		t.Errorf("round trip changed content: %+v", loaded)
	}
	if loaded.Evaluations[0].Score != 8.5 || loaded.Evaluations[0].Comment != "Good depth" {
		t.Errorf("evaluation round trip: %+v", loaded.Evaluations[0])
	}
}

func TestSaveShape(t *testing.T) {
	dir := t.TempDir()

	path, err := Save(dir, sampleTranscript())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	raw := string(data)
	for _, key := range []string{`"field"`, `"tone"`, `"questions"`, `"answers"`, `"evaluations"`, `"score"`, `"comment"`} {
		if !strings.Contains(raw, key) {
			t.Errorf("transcript JSON missing key %s", key)
		}
	}
	// The parse-status flag is internal state, not part of the file format.
	if strings.Contains(strings.ToLower(raw), "parsed") {
		t.Error("transcript JSON leaks the Parsed flag")
	}
}

func TestSavePDF(t *testing.T) {
	dir := t.TempDir()

	path, err := SavePDF(dir, sampleTranscript())
	if err != nil {
		t.Fatalf("SavePDF: %v", err)
	}
	if !strings.HasSuffix(path, "interview_Data_Science.pdf") {
		t.Errorf("unexpected path %q", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("pdf file is empty")
	}
}
