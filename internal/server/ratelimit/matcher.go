package ratelimit

import (
	"strings"
)

// MatchEndpoint returns the configuration for a request, or nil when none applies.
// A configured path covers itself and every path below it ("/api/futures"
// covers "/api/futures/stream"); the longest covering path wins.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	var best *EndpointConfig
	for i := range configs {
		config := &configs[i]
		if config.Method != method || !covers(config.Path, path) {
			continue
		}
		if best == nil || len(config.Path) > len(best.Path) {
			best = config
		}
	}
	return best
}

// covers reports whether pattern equals path or is one of its parent segments.
func covers(pattern, path string) bool {
	pattern = strings.TrimSuffix(pattern, "/")
	if pattern == "" {
		return false
	}
	return path == pattern || strings.HasPrefix(path, pattern+"/")
}
