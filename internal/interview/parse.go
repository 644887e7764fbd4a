package interview

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParseQuestions extracts the numbered question lines from raw model output.
// A line survives iff it is non-blank after trimming and its first character
// is a decimal digit; surviving lines keep their "N." markers and order.
// Anything else the model said around the list is dropped.
func ParseQuestions(text string) []string {
	var questions []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r, _ := utf8.DecodeRuneInString(line)
		if unicode.IsDigit(r) {
			questions = append(questions, line)
		}
	}
	return questions
}

// ParseEvaluation pulls a score and comment out of raw model output. The
// first line containing "Score:" is split on that marker and the remainder
// parsed as a float; the first line containing "Comment:" supplies the
// comment. The two extractions are independent, so a mangled score line does
// not cost the comment. Missing or unparseable parts default to zero/"".
func ParseEvaluation(text string) Evaluation {
	var eval Evaluation
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		if !strings.Contains(line, "Score:") {
			continue
		}
		rest := strings.TrimSpace(strings.SplitN(line, "Score:", 2)[1])
		if score, err := strconv.ParseFloat(rest, 64); err == nil {
			eval.Score = score
			eval.Parsed = true
		}
		break
	}

	for _, line := range lines {
		if !strings.Contains(line, "Comment:") {
			continue
		}
		eval.Comment = strings.TrimSpace(strings.SplitN(line, "Comment:", 2)[1])
		break
	}

	return eval
}
