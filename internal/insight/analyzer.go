package insight

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"convo-intel/internal/oracle"
)

const fallbackSummaryLimit = 300

// Analyzer turns raw conversation text into a ModelInsight by asking the
// oracle and defensively normalizing whatever comes back. Analyze never
// fails: every upstream problem degrades to a defaulted or truncated
// insight so the endpoint stays available.
type Analyzer struct {
	oracle oracle.Client
	log    *slog.Logger
}

// NewAnalyzer builds an analyzer over the given oracle.
func NewAnalyzer(client oracle.Client, log *slog.Logger) *Analyzer {
	return &Analyzer{oracle: client, log: log}
}

// Analyze produces a fully-populated insight for the conversation.
func (a *Analyzer) Analyze(ctx context.Context, conversation string) ModelInsight {
	if conversation == "" {
		return Default()
	}

	raw, err := a.oracle.Generate(ctx, buildPrompt(conversation))
	if err != nil {
		if errors.Is(err, oracle.ErrNotConfigured) {
			a.log.Info("oracle not configured, using fallback insight")
		} else {
			a.log.Warn("oracle call failed, using fallback insight", "err", err)
		}
		return fallback(conversation)
	}

	value, err := ExtractJSON(raw)
	if err != nil {
		a.log.Warn("no JSON recovered from oracle reply, using fallback insight", "err", err)
		return fallback(conversation)
	}

	obj, ok := value.(map[string]any)
	if !ok {
		a.log.Warn("oracle reply was JSON but not an object, using defaults")
		return Default()
	}
	return fromObject(obj)
}

func buildPrompt(conversation string) string {
	return fmt.Sprintf(`You are a conversation intelligence engine. Analyze the conversation below and return ONLY a JSON object with exactly these fields:
  "summary": a 1-2 sentence summary,
  "detected_languages": array of language names present,
  "sentiment": one of "Positive", "Neutral", "Negative",
  "primary_intents": array of short intent labels,
  "topics_entities": array of topics and named entities.
Do not wrap the JSON in prose, explanations, or markdown fences.

Conversation:
%s`, conversation)
}

// fromObject populates each field independently; one malformed field does
// not invalidate the others.
func fromObject(obj map[string]any) ModelInsight {
	ins := Default()
	if s, ok := obj["summary"].(string); ok {
		ins.Summary = s
	}
	ins.DetectedLanguages = stringSlice(obj["detected_languages"])
	if s, ok := obj["sentiment"].(string); ok {
		ins.Sentiment = ParseSentiment(s)
	}
	ins.PrimaryIntents = stringSlice(obj["primary_intents"])
	ins.TopicsEntities = stringSlice(obj["topics_entities"])
	return ins
}

func stringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// fallback builds the degraded insight used when the oracle is
// unreachable or its reply contains no JSON at all.
func fallback(conversation string) ModelInsight {
	ins := Default()
	ins.Summary = truncateSummary(conversation, fallbackSummaryLimit)
	return ins
}

// truncateSummary limits text to max runes, appending an ellipsis marker
// when anything was cut.
func truncateSummary(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
