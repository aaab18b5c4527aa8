package cli

import (
	"bufio"
	"context"
	"io"
	"testing"

	"github.com/influeapp/influe-cli/internal/client/api"
	"github.com/influeapp/influe-cli/internal/client/services"
)

// fakeView records everything the controller renders.
type fakeView struct {
	infos        []string
	successes    []string
	errors       []string
	analyses     []*api.Analysis
	credits      []*api.CreditStatus
	loginPrompts int
	profiles     []*api.Profile
}

func (v *fakeView) Info(msg string)               { v.infos = append(v.infos, msg) }
func (v *fakeView) Success(msg string)            { v.successes = append(v.successes, msg) }
func (v *fakeView) Error(msg string)              { v.errors = append(v.errors, msg) }
func (v *fakeView) Analysis(a *api.Analysis)      { v.analyses = append(v.analyses, a) }
func (v *fakeView) Credits(cs *api.CreditStatus)  { v.credits = append(v.credits, cs) }
func (v *fakeView) LoginPrompt()                  { v.loginPrompts++ }
func (v *fakeView) History(p *api.Profile)        { v.profiles = append(v.profiles, p) }

// fakeAPI implements api.Client for controller tests.
type fakeAPI struct {
	CreditsRet   *api.CreditStatus
	CreditsErr   error
	CreditsCalls int

	GateRet *api.GateDecision
	GateErr error

	ProfileRet *api.Profile
	ProfileErr error

	PrivacyRet string
	PrivacyErr error

	PurchaseErr  error
	PurchasePkgs []int

	PingErr error

	Token string
}

func (f *fakeAPI) Login(context.Context, string, string) (string, error)    { return "", nil }
func (f *fakeAPI) Register(context.Context, string, string) (string, error) { return "", nil }

func (f *fakeAPI) CreditsStatus(context.Context) (*api.CreditStatus, error) {
	f.CreditsCalls++
	return f.CreditsRet, f.CreditsErr
}

func (f *fakeAPI) GateLogin(context.Context) (*api.GateDecision, error) {
	return f.GateRet, f.GateErr
}

func (f *fakeAPI) AnalyzeText(context.Context, string) (*api.Analysis, error) {
	return nil, nil
}

func (f *fakeAPI) AnalyzePhoto(context.Context, string, io.Reader, string) (*api.Analysis, error) {
	return nil, nil
}

func (f *fakeAPI) Purchase(_ context.Context, pkg int) error {
	f.PurchasePkgs = append(f.PurchasePkgs, pkg)
	return f.PurchaseErr
}

func (f *fakeAPI) Profile(context.Context) (*api.Profile, error) { return f.ProfileRet, f.ProfileErr }
func (f *fakeAPI) Privacy(context.Context) (string, error)       { return f.PrivacyRet, f.PrivacyErr }
func (f *fakeAPI) Ping(context.Context) error                    { return f.PingErr }
func (f *fakeAPI) SetToken(token string)                         { f.Token = token }
func (f *fakeAPI) ClearToken()                                   { f.Token = "" }

// fakeAuth implements services.AuthService.
type fakeAuth struct {
	LoginErr    error
	RegisterErr error
	LogoutErr   error
	RestoreRet  string

	LoginCalls  int
	LogoutCalls int
	LastEmail   string
}

func (f *fakeAuth) Login(_ context.Context, email, _ string) error {
	f.LoginCalls++
	f.LastEmail = email
	return f.LoginErr
}

func (f *fakeAuth) Register(_ context.Context, email, _, _, _ string) error {
	f.LastEmail = email
	return f.RegisterErr
}

func (f *fakeAuth) Logout(context.Context) error {
	f.LogoutCalls++
	return f.LogoutErr
}

func (f *fakeAuth) Restore(context.Context) (string, error) { return f.RestoreRet, nil }

// fakeSubmission implements services.SubmissionService.
type fakeSubmission struct {
	TextRet  *services.SubmitResult
	TextErr  error
	PhotoRet *services.SubmitResult
	PhotoErr error

	TextCalls  int
	PhotoCalls int
	LastText   string
}

func (f *fakeSubmission) SubmitText(_ context.Context, text string) (*services.SubmitResult, error) {
	f.TextCalls++
	f.LastText = text
	return f.TextRet, f.TextErr
}

func (f *fakeSubmission) SubmitPhoto(context.Context, string, []byte, string) (*services.SubmitResult, error) {
	f.PhotoCalls++
	return f.PhotoRet, f.PhotoErr
}

// stubInputs replaces the input seams for the duration of a test.
func stubInputs(t *testing.T, texts []string, passwords [][]byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword

	ti, pi := 0, 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if ti >= len(texts) {
			return "", io.EOF
		}
		s := texts[ti]
		ti++
		return s, nil
	}
	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		if pi >= len(passwords) {
			return nil, io.EOF
		}
		p := passwords[pi]
		pi++
		return append([]byte(nil), p...), nil
	}

	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}
