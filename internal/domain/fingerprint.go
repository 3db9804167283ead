package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Fingerprint produces a SHA-256 hex digest of an outage set. Each outage is
// JSON-encoded with the fixed field order of [Outage], the encodings are
// sorted, and the digest covers the joined result: equal sets hash equally
// regardless of arrival order, and any single field change alters the digest.
// A nil slice and an empty slice share one stable digest.
func Fingerprint(outages []Outage) (string, error) {
	lines := make([]string, 0, len(outages))
	for i := range outages {
		b, err := json.Marshal(outages[i])
		if err != nil {
			return "", fmt.Errorf("encode outage: %w", err)
		}
		lines = append(lines, string(b))
	}
	sort.Strings(lines)

	sum := sha256.Sum256([]byte(strings.Join(lines, "\n")))
	return hex.EncodeToString(sum[:]), nil
}
