// Package api implements the REST client for the Influe portal backend.
//
// All operations work both anonymously (session credits, carried by the
// server's session cookie) and authenticated (bearer token); the token is
// attached when set and never interpreted client-side.
package api

import (
	"context"
	"io"
)

// Client is the surface the services layer depends on. The concrete
// implementation is HTTPClient; tests substitute fakes.
type Client interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, email, password string) (string, error)

	// Register creates an account and returns a bearer token.
	Register(ctx context.Context, email, password string) (string, error)

	// CreditsStatus fetches the remaining session/user credit counts.
	CreditsStatus(ctx context.Context) (*CreditStatus, error)

	// GateLogin fetches the server's verdict on a blocked submission.
	GateLogin(ctx context.Context) (*GateDecision, error)

	// AnalyzeText submits a block of text for assessment.
	AnalyzeText(ctx context.Context, text string) (*Analysis, error)

	// AnalyzePhoto submits an image for assessment. The optional intent
	// (what the user plans to post it for) travels as a form field.
	AnalyzePhoto(ctx context.Context, filename string, photo io.Reader, intent string) (*Analysis, error)

	// Purchase starts a checkout for a credit package (10, 20 or 50).
	Purchase(ctx context.Context, pkg int) error

	// Profile fetches account state and analysis history.
	Profile(ctx context.Context) (*Profile, error)

	// Privacy fetches the data-retention policy line.
	Privacy(ctx context.Context) (string, error)

	// Ping checks server liveness.
	Ping(ctx context.Context) error

	// SetToken attaches a bearer token to subsequent requests.
	SetToken(token string)

	// ClearToken reverts to anonymous requests.
	ClearToken()
}
