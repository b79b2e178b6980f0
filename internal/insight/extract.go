package insight

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// ExtractionError reports that no parseable JSON could be recovered from
// the oracle's reply. Segment carries the candidate text for diagnostics.
type ExtractionError struct {
	Segment string
	Err     error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract json: %v (segment: %.120q)", e.Err, e.Segment)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

var trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)

// ExtractJSON recovers the first JSON object or array embedded in raw
// text. The model is asked for bare JSON but routinely wraps it in
// prose, leaves trailing commas, or uses single quotes; this tolerates
// all three.
func ExtractJSON(raw string) (any, error) {
	segment := firstBalancedSegment(raw)
	if segment == "" {
		// Last resort: maybe the whole reply is JSON.
		segment = raw
	}

	cleaned := strings.TrimSpace(segment)
	cleaned = trailingCommaRe.ReplaceAllString(cleaned, "$1")

	var value any
	if err := json.Unmarshal([]byte(cleaned), &value); err == nil {
		return value, nil
	}

	// Heuristic recovery for near-JSON with single quotes.
	converted := strings.ReplaceAll(cleaned, "'", `"`)
	if err := json.Unmarshal([]byte(converted), &value); err != nil {
		return nil, &ExtractionError{Segment: segment, Err: err}
	}
	return value, nil
}

// firstBalancedSegment finds the first balanced {...} block, then the
// first balanced [...] block, by tracking nesting depth. Returns "" when
// neither exists.
func firstBalancedSegment(text string) string {
	pairs := []struct{ open, close byte }{
		{'{', '}'},
		{'[', ']'},
	}
	for _, p := range pairs {
		start := strings.IndexByte(text, p.open)
		if start == -1 {
			continue
		}
		depth := 0
		for i := start; i < len(text); i++ {
			switch text[i] {
			case p.open:
				depth++
			case p.close:
				depth--
				if depth == 0 {
					return text[start : i+1]
				}
			}
		}
	}
	return ""
}
