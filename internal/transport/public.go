package transport

import "strings"

// publicPrefixes is the fixed allow-list of endpoints servable without
// credentials: listing reads and the public settings document. Requests to
// these paths never carry an Authorization header, even when a token exists.
// Admin mirrors of the listing endpoints live under /admin/ and are
// deliberately absent.
var publicPrefixes = []string{
	"/settings/public",
	"/plots",
	"/houses",
}

// isPublic classifies a request path against the public allow-list.
func isPublic(path string) bool {
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// pathClass is the metrics label for a path's classification.
func pathClass(path string) string {
	if isPublic(path) {
		return "public"
	}
	return "protected"
}
