package interview

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyAnswer = errors.New("answer is empty")
	ErrSessionDone = errors.New("no question is awaiting an answer")
)

// Generator produces the raw model output for a question-generation request.
type Generator interface {
	GenerateQuestions(ctx context.Context, field string, tone Tone, count int) (string, error)
}

// Evaluator produces the raw model output for a single question/answer pair.
type Evaluator interface {
	EvaluateAnswer(ctx context.Context, question, answer string) (string, error)
}

// Session holds one interview run. Answers and Evaluations grow in lockstep
// with Current, so len(Answers) == len(Evaluations) == Current at all times
// and Current never exceeds len(Questions).
type Session struct {
	ID          string
	Field       string
	Tone        Tone
	Questions   []string
	Answers     []string
	Evaluations []Evaluation
	Current     int
}

// Start generates the question list and returns a fresh session. A failed
// generation call or an output with no digit-led lines yields a session with
// zero questions, which is already in StateCompleted.
func Start(ctx context.Context, gen Generator, field string, tone Tone, count int) *Session {
	s := &Session{
		ID:    uuid.NewString(),
		Field: field,
		Tone:  tone,
	}
	raw, err := gen.GenerateQuestions(ctx, field, tone, count)
	if err != nil {
		return s
	}
	s.Questions = ParseQuestions(raw)
	return s
}

func (s *Session) State() State {
	if s == nil || s.ID == "" {
		return StateNotStarted
	}
	if s.Current < len(s.Questions) {
		return StateAwaitingAnswer
	}
	return StateCompleted
}

// CurrentQuestion returns the question awaiting an answer, if any.
func (s *Session) CurrentQuestion() (string, bool) {
	if s.State() != StateAwaitingAnswer {
		return "", false
	}
	return s.Questions[s.Current], true
}

// SubmitAnswer records text against the current question and advances the
// session. A blank answer is rejected with ErrEmptyAnswer and leaves the
// session untouched. A failed or unparseable evaluation call still records
// the answer, paired with an unparsed zero evaluation.
func (s *Session) SubmitAnswer(ctx context.Context, ev Evaluator, text string) (Evaluation, error) {
	if s.State() != StateAwaitingAnswer {
		return Evaluation{}, ErrSessionDone
	}
	if strings.TrimSpace(text) == "" {
		return Evaluation{}, ErrEmptyAnswer
	}

	var eval Evaluation
	raw, err := ev.EvaluateAnswer(ctx, s.Questions[s.Current], text)
	if err == nil {
		eval = ParseEvaluation(raw)
	}

	s.Answers = append(s.Answers, text)
	s.Evaluations = append(s.Evaluations, eval)
	s.Current++
	return eval, nil
}

// Reset abandons the session and returns it to StateNotStarted.
func (s *Session) Reset() {
	*s = Session{}
}
