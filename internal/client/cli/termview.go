package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/influeapp/influe-cli/internal/client/api"
)

const (
	defaultSummary             = "Analysis complete."
	placeholder                = "-"
	maxRenderedRecommendations = 3
)

// TermView renders to a terminal writer.
type TermView struct {
	w io.Writer
}

func NewTermView(w io.Writer) *TermView {
	return &TermView{w: w}
}

func (v *TermView) Info(msg string) {
	fmt.Fprintln(v.w, msg)
}

func (v *TermView) Success(msg string) {
	fmt.Fprintln(v.w, msg)
}

func (v *TermView) Error(msg string) {
	fmt.Fprintln(v.w, "error:", msg)
}

func (v *TermView) Analysis(a *api.Analysis) {
	if a == nil {
		a = &api.Analysis{}
	}

	summary := a.Summary
	if summary == "" {
		summary = defaultSummary
	}
	score := placeholder
	if a.ScoreRisk != nil {
		score = strconv.Itoa(*a.ScoreRisk)
	}
	tags := placeholder
	if len(a.Tags) > 0 {
		tags = strings.Join(a.Tags, ", ")
	}

	fmt.Fprintln(v.w, summary)
	fmt.Fprintln(v.w, "Risk score:", score)
	fmt.Fprintln(v.w, "Tags:", tags)

	recs := a.Recommendations
	if len(recs) > maxRenderedRecommendations {
		recs = recs[:maxRenderedRecommendations]
	}
	if len(recs) > 0 {
		fmt.Fprintln(v.w, "Recommendations:")
		for _, r := range recs {
			fmt.Fprintln(v.w, "  *", r)
		}
	}
}

func (v *TermView) Credits(cs *api.CreditStatus) {
	if cs == nil {
		return
	}
	fmt.Fprintf(v.w, "Credits: session %s, account %s\n",
		formatCount(cs.Session), formatCount(cs.User))
}

func (v *TermView) LoginPrompt() {
	fmt.Fprintln(v.w, "Please log in to continue (type 'login', or 'register' to create an account).")
}

func (v *TermView) History(p *api.Profile) {
	if p == nil || !p.LoggedIn {
		fmt.Fprintln(v.w, "Not logged in.")
		return
	}
	fmt.Fprintf(v.w, "Credits remaining: %d\n", p.CreditsRemaining)
	if len(p.History) == 0 {
		fmt.Fprintln(v.w, "No analyses yet.")
		return
	}
	fmt.Fprintln(v.w, "Recent analyses:")
	for _, item := range p.History {
		tags := placeholder
		if len(item.Tags) > 0 {
			tags = strings.Join(item.Tags, ", ")
		}
		fmt.Fprintf(v.w, "  #%d %s risk=%d tags=%s (%s)\n",
			item.ID, item.Type, item.ScoreRisk, tags, item.CreatedAt)
	}
}

// formatCount renders a nullable credit count, substituting a placeholder
// when the server has no matching record.
func formatCount(n *int) string {
	if n == nil {
		return placeholder
	}
	return strconv.Itoa(*n)
}
