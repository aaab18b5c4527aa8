package api

import "encoding/json"

// CreditStatus is a snapshot of the caller's remaining usage allowance.
// Session and User are nil when the server has no matching record; the
// rendering layer shows a placeholder in that case. Never cached beyond
// the current render.
type CreditStatus struct {
	Session     *int `json:"session"`
	User        *int `json:"user"`
	FreeCredits int  `json:"free_credits"`
}

// GateVerdict is the normalized tri-state result of the login gate.
type GateVerdict int

const (
	// VerdictPass means submission may proceed as-is.
	VerdictPass GateVerdict = iota
	// VerdictLogin means the user must authenticate first.
	VerdictLogin
	// VerdictPurchase means the user is authenticated but out of credits.
	VerdictPurchase
)

// GateDecision is the server's verdict on whether a blocked submission
// should prompt login or prompt purchase.
type GateDecision struct {
	RequireLogin bool   `json:"require_login"`
	NeedPurchase bool   `json:"need_purchase"`
	LoggedIn     bool   `json:"logged_in"`
	Reason       string `json:"reason"`
}

// Verdict collapses the server flags into a single tri-state. RequireLogin
// wins over NeedPurchase when both are set.
func (d GateDecision) Verdict() GateVerdict {
	switch {
	case d.RequireLogin:
		return VerdictLogin
	case d.NeedPurchase:
		return VerdictPurchase
	default:
		return VerdictPass
	}
}

// Analysis is the server's assessment of a submitted photo or text.
//
// The wire shape is not trusted: any field may be absent or carry the wrong
// type, and rendering must still succeed. UnmarshalJSON therefore keeps only
// the values it can interpret and drops the rest.
type Analysis struct {
	Summary         string
	ScoreRisk       *int
	Tags            []string
	Recommendations []string
}

func (a *Analysis) UnmarshalJSON(b []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if s, ok := raw["summary"].(string); ok {
		a.Summary = s
	}
	if n, ok := raw["score_risk"].(float64); ok {
		v := int(n)
		a.ScoreRisk = &v
	}
	a.Tags = stringList(raw["tags"])
	a.Recommendations = stringList(raw["recommendations"])
	return nil
}

// stringList extracts the string elements of a decoded JSON array.
// Non-arrays and non-string elements yield nothing rather than an error.
func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// HistoryItem is one past analysis from the account history.
type HistoryItem struct {
	ID        int64    `json:"id"`
	Type      string   `json:"type"`
	ScoreRisk int      `json:"score_risk"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"created_at"`
}

// Profile describes the authenticated account: remaining credits and the
// most recent analyses. LoggedIn is false when the request carried no valid
// token; History is empty in that case.
type Profile struct {
	LoggedIn         bool          `json:"logged_in"`
	CreditsRemaining int           `json:"credits_remaining"`
	History          []HistoryItem `json:"history"`
}
