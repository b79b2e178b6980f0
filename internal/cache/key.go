package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// GenerateCacheKey derives a stable key from the conversation and the
// parts of the client config that influence the result. Keyword order
// matters to the score, so it matters to the key too.
func GenerateCacheKey(conversation, domain string, keywords []string) string {
	h := sha256.New()
	h.Write([]byte(conversation))
	h.Write([]byte{0})
	h.Write([]byte(domain))
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(keywords, "\x00")))
	return hex.EncodeToString(h.Sum(nil))
}
