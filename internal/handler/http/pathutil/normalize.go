package pathutil

import (
	"regexp"
	"strings"
)

// uuidSeg matches one canonical UUID path segment.
const uuidSeg = `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`

// pathPattern pairs a compiled route pattern with its normalized template.
type pathPattern struct {
	pattern  *regexp.Regexp
	template string
}

// pathPatterns lists the dynamic routes, most specific first.
// Pre-compiled at init so normalization stays cheap on the hot path.
var pathPatterns = []pathPattern{
	{pattern: regexp.MustCompile(`^/news/` + uuidSeg + `/permanent$`), template: "/news/:id/permanent"},
	{pattern: regexp.MustCompile(`^/news/` + uuidSeg + `$`), template: "/news/:id"},
}

// NormalizePath collapses ID-bearing paths to a template form so metrics
// labels keep a bounded cardinality. Static paths pass through unchanged.
//
//	NormalizePath("/news/4f2a9c1e-...")   // "/news/:id"
//	NormalizePath("/news")                // "/news"
//	NormalizePath("/auth/login")          // "/auth/login"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}
	return path
}
