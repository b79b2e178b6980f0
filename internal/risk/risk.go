// Package risk scores conversations against a caller-supplied keyword
// policy. Scoring is pure and deterministic: same inputs, same report.
package risk

import (
	"math"
	"strings"
)

// Outcome is the categorical call disposition derived from sentiment.
type Outcome string

const (
	OutcomeEscalated Outcome = "Escalated"
	OutcomeResolved  Outcome = "Resolved"
	OutcomeNeutral   Outcome = "Neutral"
)

const negativeSentimentBoost = 0.15

// Report is the result of scoring one conversation.
type Report struct {
	RiskDetected    bool
	TriggerKeywords []string
	RiskScore       float64
	CallOutcome     Outcome
}

// Score computes a risk report for the conversation. Keywords are matched
// case-insensitively as substrings; TriggerKeywords preserves the caller's
// original ordering and casing. The score denominator is the configured
// keyword count (clamped to 1), so the score reads as fraction-of-policy
// triggered. Empty keywords are skipped. Never fails.
func Score(conversation string, keywords []string, sentiment string) Report {
	lowered := strings.ToLower(conversation)

	triggers := []string{}
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(kw)) {
			triggers = append(triggers, kw)
		}
	}

	denom := len(keywords)
	if denom < 1 {
		denom = 1
	}
	score := math.Min(1.0, float64(len(triggers))/float64(denom))

	sentimentLower := strings.ToLower(sentiment)
	if strings.Contains(sentimentLower, "neg") {
		score = math.Min(1.0, score+negativeSentimentBoost)
	}

	outcome := OutcomeNeutral
	switch {
	case strings.Contains(sentimentLower, "neg"):
		outcome = OutcomeEscalated
	case strings.Contains(sentimentLower, "pos"):
		outcome = OutcomeResolved
	}

	return Report{
		RiskDetected:    len(triggers) > 0,
		TriggerKeywords: triggers,
		RiskScore:       round3(score),
		CallOutcome:     outcome,
	}
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
