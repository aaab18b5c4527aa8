package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/influeapp/influe-cli/internal/client/services"
)

// SubmitText prompts for a block of text and runs it through the submission
// workflow.
func (a *App) SubmitText(ctx context.Context) error {
	text, err := getSimpleText(a.reader, "Enter the text you want to check", os.Stdout)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		a.view.Error("enter some text to check")
		return nil
	}

	release, ok := a.beginOp()
	if !ok {
		return nil
	}
	defer release()
	defer a.refreshCredits(ctx)

	res, err := a.submission.SubmitText(ctx, text)
	if err != nil {
		a.view.Error(err.Error())
		return err
	}
	a.renderOutcome(res)
	return nil
}

// SubmitPhoto prompts for a photo path and an optional intent, then runs the
// photo through shrink-and-submit.
func (a *App) SubmitPhoto(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Path to the photo (jpg/png)", os.Stdout)
	if err != nil {
		return err
	}
	if path == "" {
		a.view.Error("select a photo first")
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		a.view.Error("cannot read photo: " + err.Error())
		return nil
	}
	a.setPreview(data)

	intent, err := getSimpleText(a.reader, "Intent, e.g. \"instagram post\" (optional, max 140 chars)", os.Stdout)
	if err != nil {
		return err
	}

	release, ok := a.beginOp()
	if !ok {
		return nil
	}
	defer release()
	defer a.refreshCredits(ctx)

	res, err := a.submission.SubmitPhoto(ctx, filepath.Base(path), data, intent)
	if err != nil {
		a.view.Error(err.Error())
		return err
	}
	a.renderOutcome(res)
	return nil
}

// renderOutcome maps a terminal submission outcome onto the view. A 402
// resolves to either the login prompt or the purchase message, never both.
func (a *App) renderOutcome(res *services.SubmitResult) {
	switch res.Outcome {
	case services.OutcomeSuccess:
		a.view.Analysis(res.Analysis)
		a.view.Success("Analysis complete.")

	case services.OutcomeNeedsLogin:
		a.view.LoginPrompt()

	case services.OutcomeNeedsPurchase:
		a.view.Error("you are out of credits; use 'buy' to purchase a package")

	case services.OutcomeRateLimited:
		a.view.Error("too many requests, try again in a moment")

	case services.OutcomeServerFailure:
		msg := res.Message
		if msg == "" {
			msg = "server unavailable, try again later"
		}
		a.view.Error(msg)

	case services.OutcomeNetworkFailure:
		a.view.Error("network error, check your connection and try again")
	}
}
