package interview

import "fmt"

type Tone string

const (
	ToneFriendly     Tone = "friendly"
	ToneProfessional Tone = "professional"
	ToneSimple       Tone = "simple"
)

func Tones() []Tone {
	return []Tone{ToneFriendly, ToneProfessional, ToneSimple}
}

func ParseTone(s string) (Tone, error) {
	switch Tone(s) {
	case ToneFriendly, ToneProfessional, ToneSimple:
		return Tone(s), nil
	}
	return "", fmt.Errorf("unknown tone %q", s)
}

// Evaluation is the model's verdict on a single answer. Parsed is false when
// the response carried no usable "Score:" line and the zero score is a
// fallback rather than a real grade.
type Evaluation struct {
	Score   float64 `json:"score"`
	Comment string  `json:"comment"`
	Parsed  bool    `json:"-"`
}

type State int

const (
	StateNotStarted State = iota
	StateAwaitingAnswer
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateAwaitingAnswer:
		return "awaiting_answer"
	case StateCompleted:
		return "completed"
	}
	return "unknown"
}
