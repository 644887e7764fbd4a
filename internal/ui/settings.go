package ui

import (
	"fmt"
	"strconv"

	"go-interviewer/internal/interview"

	"github.com/charmbracelet/huh"
)

type Settings struct {
	Field string
	Tone  interview.Tone
	Count int
}

// ReadSettings shows the pre-interview form, seeded with defaults. The form
// validates the field to be non-blank and the count to be 1..20.
func ReadSettings(defaults Settings) (Settings, error) {
	field := defaults.Field
	tone := string(defaults.Tone)
	count := strconv.Itoa(defaults.Count)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Field").
				Placeholder("Data Science").
				Value(&field).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("field cannot be empty")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Tone").
				Options(toneOptions()...).
				Value(&tone),
			huh.NewInput().
				Title("Number of questions (1-20)").
				Value(&count).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 1 || n > 20 {
						return fmt.Errorf("must be a number between 1 and 20")
					}
					return nil
				}),
		).Title("Interview Settings"),
	)

	if err := form.Run(); err != nil {
		return Settings{}, fmt.Errorf("interview settings: %w", err)
	}

	parsedTone, err := interview.ParseTone(tone)
	if err != nil {
		return Settings{}, err
	}
	n, _ := strconv.Atoi(count)

	return Settings{Field: field, Tone: parsedTone, Count: n}, nil
}

func toneOptions() []huh.Option[string] {
	tones := interview.Tones()
	opts := make([]huh.Option[string], len(tones))
	for i, tone := range tones {
		opts[i] = huh.NewOption(string(tone), string(tone))
	}
	return opts
}
