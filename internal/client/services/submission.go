package services

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"github.com/influeapp/influe-cli/internal/client/api"
	"github.com/influeapp/influe-cli/internal/client/imaging"
	"github.com/influeapp/influe-cli/internal/logging"
)

// Outcome is the terminal state of one submission attempt.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	// OutcomeNeedsLogin: out of credits and the gate demands authentication.
	OutcomeNeedsLogin
	// OutcomeNeedsPurchase: authenticated (or gate passed) but out of credits.
	OutcomeNeedsPurchase
	OutcomeRateLimited
	OutcomeServerFailure
	OutcomeNetworkFailure
)

// SubmitResult carries the outcome plus whatever came with it: the analysis
// on success, or a server-supplied detail message on failure.
type SubmitResult struct {
	Outcome  Outcome
	Analysis *api.Analysis
	Message  string
}

// SubmissionService runs the credit-gated submission workflow: (optional
// shrink) → submit → classify the response. A 402 is resolved through the
// login gate into either NeedsLogin or NeedsPurchase. Nothing is retried
// automatically; the caller re-triggers on user action.
type SubmissionService interface {
	SubmitText(ctx context.Context, text string) (*SubmitResult, error)
	SubmitPhoto(ctx context.Context, filename string, photo []byte, intent string) (*SubmitResult, error)
}

type submissionService struct {
	client api.Client
	shrink imaging.Options
	log    logging.Logger
}

func NewSubmissionService(client api.Client, shrink imaging.Options, log logging.Logger) SubmissionService {
	return &submissionService{
		client: client,
		shrink: shrink,
		log:    log.With("component", "submission"),
	}
}

func (s *submissionService) SubmitText(ctx context.Context, text string) (*SubmitResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, validationErrorf("enter some text to check")
	}

	analysis, err := s.client.AnalyzeText(ctx, text)
	if err != nil {
		return s.classify(ctx, err), nil
	}
	return &SubmitResult{Outcome: OutcomeSuccess, Analysis: analysis}, nil
}

func (s *submissionService) SubmitPhoto(ctx context.Context, filename string, photo []byte, intent string) (*SubmitResult, error) {
	if len(photo) == 0 {
		return nil, validationErrorf("select a photo first")
	}
	if err := validateIntent(intent); err != nil {
		return nil, err
	}

	// Shrinking always completes before the request goes out. A passthrough
	// result means the original bytes are uploaded unchanged.
	res := imaging.Shrink(photo, s.shrink)
	if res.Encoded {
		s.log.Debug(ctx, "photo re-encoded", "bytes_in", len(photo), "bytes_out", len(res.Data),
			"width", res.Width, "height", res.Height)
	} else {
		s.log.Debug(ctx, "photo re-encode skipped, uploading original", "bytes", len(photo))
	}

	analysis, err := s.client.AnalyzePhoto(ctx, filename, bytes.NewReader(res.Data), intent)
	if err != nil {
		return s.classify(ctx, err), nil
	}
	return &SubmitResult{Outcome: OutcomeSuccess, Analysis: analysis}, nil
}

// classify maps a failed submission onto a terminal outcome.
func (s *submissionService) classify(ctx context.Context, err error) *SubmitResult {
	switch {
	case errors.Is(err, api.ErrNoCredits):
		return s.resolveGate(ctx)
	case errors.Is(err, api.ErrRateLimited):
		return &SubmitResult{Outcome: OutcomeRateLimited}
	case errors.Is(err, api.ErrUnavailable):
		return &SubmitResult{Outcome: OutcomeNetworkFailure}
	case errors.Is(err, api.ErrServer), errors.Is(err, api.ErrMalformedResponse):
		return &SubmitResult{Outcome: OutcomeServerFailure, Message: detailOf(err)}
	default:
		return &SubmitResult{Outcome: OutcomeServerFailure, Message: detailOf(err)}
	}
}

// resolveGate turns a 402 into a login or purchase prompt. When the gate
// query itself fails, the non-intrusive purchase prompt is shown rather than
// forcing a login dialog on a network blip.
func (s *submissionService) resolveGate(ctx context.Context) *SubmitResult {
	decision, err := s.client.GateLogin(ctx)
	if err != nil {
		s.log.Warn(ctx, "gate query failed", "err", err)
		return &SubmitResult{Outcome: OutcomeNeedsPurchase}
	}
	if decision.Verdict() == api.VerdictLogin {
		return &SubmitResult{Outcome: OutcomeNeedsLogin, Message: decision.Reason}
	}
	return &SubmitResult{Outcome: OutcomeNeedsPurchase, Message: decision.Reason}
}

// detailOf extracts the human-facing part of a wrapped API error.
func detailOf(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
