package cli

import "github.com/influeapp/influe-cli/internal/client/api"

// View is the injected render surface the controller talks to. Each method
// covers one UI region; the terminal implementation is TermView, tests use a
// recording fake. Keeping the controller behind this interface means no
// handler ever reaches for output primitives directly.
type View interface {
	// Info shows a neutral feedback line.
	Info(msg string)

	// Success shows a positive feedback line.
	Success(msg string)

	// Error shows a failure feedback line.
	Error(msg string)

	// Analysis renders an assessment result. Absent or malformed fields are
	// replaced with placeholders, never propagated as failures.
	Analysis(a *api.Analysis)

	// Credits updates the displayed session/account credit counts.
	Credits(cs *api.CreditStatus)

	// LoginPrompt surfaces the auth dialog equivalent: tells the user to
	// authenticate before continuing.
	LoginPrompt()

	// History renders the account profile with past analyses.
	History(p *api.Profile)
}
