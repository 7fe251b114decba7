package spotify

import (
	"net/url"
	"strings"
)

// extractID normalizes a resource identifier. Accepts a bare ID, a
// spotify:{type}:{id} URI, or an open.spotify.com URL and returns the trailing
// identifier segment. Anything else is returned unchanged; whether the
// identifier actually resolves is left to the API.
func extractID(s string) string {
	if rest, ok := strings.CutPrefix(s, "spotify:"); ok {
		if i := strings.LastIndex(rest, ":"); i >= 0 {
			return rest[i+1:]
		}
		return rest
	}

	if strings.Contains(s, "open.spotify.com/") {
		u, err := url.Parse(s)
		if err != nil {
			return s
		}
		segments := strings.Split(strings.Trim(u.Path, "/"), "/")
		if last := segments[len(segments)-1]; last != "" {
			return last
		}
	}

	return s
}

// extractIDs normalizes a list of identifiers and joins them for ?ids= params.
func extractIDs(ids []string) string {
	normalized := make([]string, len(ids))
	for i, id := range ids {
		normalized[i] = extractID(id)
	}
	return strings.Join(normalized, ",")
}
