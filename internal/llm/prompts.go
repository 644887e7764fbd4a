package llm

import (
	"fmt"
	"os"

	"go-interviewer/internal/interview"

	"gopkg.in/yaml.v3"
)

// Prompts holds the two instruction templates sent to the model. Both are
// fmt templates: Questions takes count, field, tone in that order, Evaluation
// takes question then answer. Overrides loaded from a YAML file must keep the
// same verbs in the same order.
type Prompts struct {
	Questions  string `yaml:"questions"`
	Evaluation string `yaml:"evaluation"`
}

const defaultQuestionsPrompt = `You are an expert interviewer. Generate %d unique, clear, field-specific questions.

Field: %s
Tone: %s

Return format:
1. Question 1
2. Question 2
3. Question 3
`

const defaultEvaluationPrompt = `You are an expert evaluator. Evaluate the following interview answer for quality, relevance, and clarity.
Score it out of 10 and provide a brief comment.

Question: %s
Answer: %s

Return format:
Score: <score out of 10>
Comment: <short comment>
`

func DefaultPrompts() Prompts {
	return Prompts{
		Questions:  defaultQuestionsPrompt,
		Evaluation: defaultEvaluationPrompt,
	}
}

// LoadPrompts reads template overrides from path. A missing file is not an
// error; the defaults fill any template the file leaves empty.
func LoadPrompts(path string) (Prompts, error) {
	prompts := DefaultPrompts()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return prompts, nil
		}
		return prompts, fmt.Errorf("read prompts file: %w", err)
	}

	var override Prompts
	if err := yaml.Unmarshal(data, &override); err != nil {
		return prompts, fmt.Errorf("parse prompts file: %w", err)
	}
	if override.Questions != "" {
		prompts.Questions = override.Questions
	}
	if override.Evaluation != "" {
		prompts.Evaluation = override.Evaluation
	}
	return prompts, nil
}

func (p Prompts) QuestionsPrompt(field string, tone interview.Tone, count int) string {
	return fmt.Sprintf(p.Questions, count, field, tone)
}

func (p Prompts) EvaluationPrompt(question, answer string) string {
	return fmt.Sprintf(p.Evaluation, question, answer)
}
