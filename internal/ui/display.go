package ui

import (
	"fmt"

	"go-interviewer/internal/interview"

	"github.com/pterm/pterm"
)

func PrintWelcome() {
	pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgCyan)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack, pterm.Bold)).
		Println("AI Interview")
	pterm.Println(pterm.Gray("Mock interviews in your terminal, graded by Gemini"))
	pterm.Println()
}

func PrintQuestion(index, total int, question string) {
	pterm.Println()
	pterm.DefaultSection.WithStyle(pterm.NewStyle(pterm.FgCyan, pterm.Bold)).
		Printfln("Question %d of %d", index+1, total)
	pterm.Println(pterm.Bold.Sprint(question))
	pterm.Println()
}

func PrintEvaluation(eval interview.Evaluation) {
	pterm.Println()
	pterm.Println(pterm.FgYellow.Sprint("Score: ") + formatScore(eval))
	if eval.Comment != "" {
		pterm.Println(pterm.FgYellow.Sprint("Comment: ") + eval.Comment)
	}
	pterm.Println()
}

func PrintReport(s *interview.Session) {
	pterm.Println()
	pterm.Success.Println("Interview completed!")
	pterm.DefaultSection.WithStyle(pterm.NewStyle(pterm.FgCyan, pterm.Bold)).Println("Interview Report")

	for i, question := range s.Questions {
		pterm.Println(pterm.Bold.Sprint(question))
		if i < len(s.Answers) {
			pterm.Println(pterm.Gray("Your answer: ") + s.Answers[i])
		}
		if i < len(s.Evaluations) {
			eval := s.Evaluations[i]
			pterm.Println(pterm.Gray("Score: ") + formatScore(eval))
			if eval.Comment != "" {
				pterm.Println(pterm.Gray("Comment: ") + eval.Comment)
			}
		}
		pterm.Println()
	}

	tableData := pterm.TableData{
		{"#", "Score", "Comment"},
	}
	total := 0.0
	scored := 0
	for i, eval := range s.Evaluations {
		if eval.Parsed {
			total += eval.Score
			scored++
		}
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", i+1),
			formatScore(eval),
			eval.Comment,
		})
	}
	if scored > 0 {
		tableData = append(tableData, []string{
			pterm.Bold.Sprint("AVG"),
			pterm.Bold.Sprint(pterm.FgYellow.Sprintf("%.1f / 10", total/float64(scored))),
			"",
		})
	}

	pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(tableData).Render()
	pterm.Println()
}

func formatScore(eval interview.Evaluation) string {
	if !eval.Parsed {
		return pterm.Gray("-- / 10")
	}
	return pterm.FgYellow.Sprintf("%.1f / 10", eval.Score)
}

func PrintNoQuestions() {
	pterm.Warning.Println("The model returned no questions.")
	pterm.Println(pterm.Gray("Try again, or rephrase the field."))
}

func PrintEmptyAnswerWarning() {
	pterm.Warning.Println("Please type an answer before submitting.")
}

func PrintSaved(path string) {
	pterm.Success.Printfln("Transcript saved to %s", path)
}

func PrintCancelled() {
	pterm.Warning.Println("Interview abandoned.")
}

func PrintFarewell() {
	pterm.Println()
	pterm.Println(pterm.Gray("Thanks for practicing. Good luck out there!"))
	pterm.Println()
}

func PrintError(msg string) {
	pterm.Println(pterm.Gray("⚠ " + msg))
}

func PrintStatus(msg string) {
	pterm.Println(pterm.Gray(msg))
}
