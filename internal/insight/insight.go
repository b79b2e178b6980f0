package insight

import "strings"

// Sentiment is the categorical label attached to a conversation.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentNegative Sentiment = "Negative"
)

// ParseSentiment maps free-form model output onto a canonical label.
// Matching is case-insensitive on the leading token; anything
// unrecognized is Neutral.
func ParseSentiment(raw string) Sentiment {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.HasPrefix(lowered, "pos"):
		return SentimentPositive
	case strings.HasPrefix(lowered, "neg"):
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// ModelInsight is the normalized result of one oracle round trip.
// Every field is always populated; failures default rather than omit.
type ModelInsight struct {
	Summary           string
	DetectedLanguages []string
	Sentiment         Sentiment
	PrimaryIntents    []string
	TopicsEntities    []string
}

// Default returns a fully-defaulted insight.
func Default() ModelInsight {
	return ModelInsight{
		DetectedLanguages: []string{},
		Sentiment:         SentimentNeutral,
		PrimaryIntents:    []string{},
		TopicsEntities:    []string{},
	}
}
