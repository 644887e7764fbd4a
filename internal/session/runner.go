package session

import (
	"context"
	"errors"

	"go-interviewer/internal/config"
	"go-interviewer/internal/interview"
	"go-interviewer/internal/llm"
	"go-interviewer/internal/transcript"
	"go-interviewer/internal/ui"

	"github.com/pterm/pterm"
	"go.uber.org/zap"
)

type Runner struct {
	llm *llm.Client
	cfg *config.Config
	log *zap.Logger
}

func NewRunner(client *llm.Client, cfg *config.Config, log *zap.Logger) *Runner {
	return &Runner{
		llm: client,
		cfg: cfg,
		log: log,
	}
}

func (r *Runner) Run(ctx context.Context) error {
	ui.PrintWelcome()

	for {
		again, err := r.runSession(ctx)
		if err != nil {
			return err
		}
		if !again {
			break
		}
	}

	ui.PrintFarewell()
	return nil
}

func (r *Runner) runSession(ctx context.Context) (bool, error) {
	defaultTone, err := interview.ParseTone(r.cfg.DefaultTone)
	if err != nil {
		defaultTone = interview.ToneFriendly
	}
	settings, err := ui.ReadSettings(ui.Settings{
		Field: r.cfg.DefaultField,
		Tone:  defaultTone,
		Count: r.cfg.DefaultQuestions,
	})
	if err != nil {
		return false, err
	}

	spinner, _ := pterm.DefaultSpinner.Start("Generating interview questions...")
	sess := interview.Start(ctx, r.llm, settings.Field, settings.Tone, settings.Count)
	spinner.Stop()
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.log.Info("session started",
		zap.String("session_id", sess.ID),
		zap.String("field", sess.Field),
		zap.String("tone", string(sess.Tone)),
		zap.Int("requested", settings.Count),
		zap.Int("questions", len(sess.Questions)))

	if sess.State() == interview.StateCompleted {
		ui.PrintNoQuestions()
		return ui.ConfirmYesNo("Try again?"), nil
	}

	for sess.State() == interview.StateAwaitingAnswer {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		question, _ := sess.CurrentQuestion()
		ui.PrintQuestion(sess.Current, len(sess.Questions), question)

		answer := ui.ReadInput("Your answer: ")
		if ui.IsExitCommand(answer) {
			if !ui.ConfirmYesNo("Abandon this interview?") {
				continue
			}
			r.log.Info("session abandoned",
				zap.String("session_id", sess.ID),
				zap.Int("answered", sess.Current))
			sess.Reset()
			ui.PrintCancelled()
			return ui.ConfirmYesNo("Start another interview?"), nil
		}

		spinner, _ := pterm.DefaultSpinner.WithRemoveWhenDone(true).Start("Evaluating your answer...")
		eval, err := sess.SubmitAnswer(ctx, r.llm, answer)
		spinner.Stop()
		if errors.Is(err, interview.ErrEmptyAnswer) {
			ui.PrintEmptyAnswerWarning()
			continue
		}
		if err != nil {
			return false, err
		}
		if !eval.Parsed {
			r.log.Warn("evaluation fell back to zero score",
				zap.String("session_id", sess.ID),
				zap.Int("question", sess.Current-1))
		}
		ui.PrintEvaluation(eval)
	}

	ui.PrintReport(sess)
	r.saveTranscript(sess)

	return ui.ConfirmYesNo("Start another interview?"), nil
}

func (r *Runner) saveTranscript(sess *interview.Session) {
	if !ui.ConfirmYesNo("Save transcript to JSON?") {
		return
	}

	t := transcript.FromSession(sess)
	path, err := transcript.Save(r.cfg.OutputDir, t)
	if err != nil {
		r.log.Error("transcript save failed", zap.String("session_id", sess.ID), zap.Error(err))
		ui.PrintError("Could not save transcript: " + err.Error())
		return
	}
	r.log.Info("transcript saved", zap.String("session_id", sess.ID), zap.String("path", path))
	ui.PrintSaved(path)

	if ui.ConfirmYesNo("Also export a PDF report?") {
		pdfPath, err := transcript.SavePDF(r.cfg.OutputDir, t)
		if err != nil {
			r.log.Error("pdf export failed", zap.String("session_id", sess.ID), zap.Error(err))
			ui.PrintError("Could not export PDF: " + err.Error())
			return
		}
		ui.PrintSaved(pdfPath)
	}
}
