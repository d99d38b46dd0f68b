package fireflies

import (
	"strings"

	apperrors "github.com/johnquangdev/fireflies-dl/errors"
)

// ExtractID returns the bare transcript identifier from either a raw ID
// or a Fireflies URL such as https://app.fireflies.ai/view/<id>.
func ExtractID(ref string) (string, error) {
	id := strings.TrimSpace(ref)
	if strings.Contains(id, "/") {
		id = strings.TrimRight(id, "/")
		id = id[strings.LastIndex(id, "/")+1:]
	}
	// Drop any query string or fragment carried over from a pasted URL
	if i := strings.IndexAny(id, "?#"); i >= 0 {
		id = id[:i]
	}
	if id == "" {
		return "", apperrors.ErrInvalidTranscriptRef(ref)
	}
	return id, nil
}
