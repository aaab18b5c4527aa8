package services

import (
	"context"
	"io"

	"github.com/influeapp/influe-cli/internal/client/api"
)

// fakeClient implements api.Client for service unit tests.
type fakeClient struct {
	// canned results
	LoginToken  string
	LoginErr    error
	RegToken    string
	RegErr      error
	CreditsRet  *api.CreditStatus
	CreditsErr  error
	GateRet     *api.GateDecision
	GateErr     error
	AnalysisRet *api.Analysis
	AnalysisErr error
	PurchaseErr error

	// recorded calls
	LoginCalls    int
	RegisterCalls int
	GateCalls     int
	LastEmail     string
	LastPassword  string
	LastText      string
	LastFilename  string
	LastPhoto     []byte
	LastIntent    string
	Token         string
	TokenCleared  bool
}

func (f *fakeClient) Login(_ context.Context, email, password string) (string, error) {
	f.LoginCalls++
	f.LastEmail, f.LastPassword = email, password
	return f.LoginToken, f.LoginErr
}

func (f *fakeClient) Register(_ context.Context, email, password string) (string, error) {
	f.RegisterCalls++
	f.LastEmail, f.LastPassword = email, password
	return f.RegToken, f.RegErr
}

func (f *fakeClient) CreditsStatus(context.Context) (*api.CreditStatus, error) {
	return f.CreditsRet, f.CreditsErr
}

func (f *fakeClient) GateLogin(context.Context) (*api.GateDecision, error) {
	f.GateCalls++
	return f.GateRet, f.GateErr
}

func (f *fakeClient) AnalyzeText(_ context.Context, text string) (*api.Analysis, error) {
	f.LastText = text
	return f.AnalysisRet, f.AnalysisErr
}

func (f *fakeClient) AnalyzePhoto(_ context.Context, filename string, photo io.Reader, intent string) (*api.Analysis, error) {
	f.LastFilename, f.LastIntent = filename, intent
	f.LastPhoto, _ = io.ReadAll(photo)
	return f.AnalysisRet, f.AnalysisErr
}

func (f *fakeClient) Purchase(context.Context, int) error { return f.PurchaseErr }

func (f *fakeClient) Profile(context.Context) (*api.Profile, error) { return nil, nil }

func (f *fakeClient) Privacy(context.Context) (string, error) { return "", nil }

func (f *fakeClient) Ping(context.Context) error { return nil }

func (f *fakeClient) SetToken(token string) { f.Token = token }

func (f *fakeClient) ClearToken() {
	f.Token = ""
	f.TokenCleared = true
}

// fakeMeta is an in-memory metadata.Repository.
type fakeMeta struct {
	kv      map[string][]byte
	cleared bool
}

func newFakeMeta() *fakeMeta { return &fakeMeta{kv: map[string][]byte{}} }

func (m *fakeMeta) Get(_ context.Context, key string) ([]byte, error) { return m.kv[key], nil }

func (m *fakeMeta) Set(_ context.Context, key string, value []byte) error {
	m.kv[key] = append([]byte(nil), value...)
	return nil
}

func (m *fakeMeta) SetMany(ctx context.Context, values map[string][]byte) error {
	for key, value := range values {
		if err := m.Set(ctx, key, value); err != nil {
			return err
		}
	}
	return nil
}

func (m *fakeMeta) Delete(_ context.Context, key string) error {
	delete(m.kv, key)
	return nil
}

func (m *fakeMeta) Clear(context.Context) error {
	m.kv = map[string][]byte{}
	m.cleared = true
	return nil
}
