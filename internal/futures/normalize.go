// Package futures turns raw completion text into a bounded list of timeline entries.
//
// The completion service is asked for a JSON array sorted by start year, but
// nothing guarantees it honors the requested count or span, or even returns
// valid JSON. Normalize is the post-filter: it extracts what it can and clamps
// the projected entries, degrading to an empty slice instead of failing.
package futures

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/alternate-futures/internal/timeline"
	"github.com/jonathan/alternate-futures/internal/types"
)

// Anchor selects how the last known start year is determined.
type Anchor string

const (
	// AnchorGlobalMax uses the greatest start year among all returned entries.
	// Because the model's own latest entry is the maximum, a response sorted
	// ascending yields no future entries under this policy.
	AnchorGlobalMax Anchor = "global"
	// AnchorResume uses the greatest start year parsed from the user's resume.
	AnchorResume Anchor = "resume"
)

// ParseAnchor converts a flag or query value into an Anchor. Empty means global.
func ParseAnchor(s string) (Anchor, error) {
	switch Anchor(strings.ToLower(strings.TrimSpace(s))) {
	case "", AnchorGlobalMax:
		return AnchorGlobalMax, nil
	case AnchorResume:
		return AnchorResume, nil
	default:
		return "", fmt.Errorf("unknown anchor %q (expected %q or %q)", s, AnchorGlobalMax, AnchorResume)
	}
}

// Options controls clamping.
type Options struct {
	FutureCount int
	SpanYears   int
	Anchor      Anchor
	// ResumeLastStart is the latest start year from the parsed resume.
	// Only read when Anchor is AnchorResume; 0 falls back to the global max.
	ResumeLastStart int
}

// Normalize extracts entries from raw and clamps the future ones to at most
// futureCount entries starting within spanYears of the last known start year.
func Normalize(raw string, futureCount, spanYears int) []types.TimelineEntry {
	return NormalizeWithOptions(raw, Options{
		FutureCount: futureCount,
		SpanYears:   spanYears,
		Anchor:      AnchorGlobalMax,
	})
}

// NormalizeWithOptions is Normalize with an explicit anchor policy.
func NormalizeWithOptions(raw string, opts Options) []types.TimelineEntry {
	items, ok := ExtractArray(raw)
	if !ok {
		return []types.TimelineEntry{}
	}
	return Clamp(Adapt(items), opts)
}

// Clamp splits entries into past and future relative to the anchor year and
// returns the past entries in their original order followed by at most
// opts.FutureCount future entries ordered by start year.
func Clamp(entries []types.TimelineEntry, opts Options) []types.TimelineEntry {
	lastKnownStart := 0
	for _, e := range entries {
		lastKnownStart = max(lastKnownStart, timeline.StartYear(e.Year))
	}
	if opts.Anchor == AnchorResume && opts.ResumeLastStart > 0 {
		lastKnownStart = opts.ResumeLastStart
	}
	maxYear := lastKnownStart + opts.SpanYears

	past := make([]types.TimelineEntry, 0, len(entries))
	future := make([]types.TimelineEntry, 0)
	for _, e := range entries {
		start := timeline.StartYear(e.Year)
		switch {
		case start <= lastKnownStart:
			past = append(past, e)
		case start <= maxYear:
			future = append(future, e)
		}
	}

	sort.SliceStable(future, func(i, j int) bool {
		return timeline.StartYear(future[i].Year) < timeline.StartYear(future[j].Year)
	})
	if limit := max(opts.FutureCount, 0); len(future) > limit {
		future = future[:limit]
	}

	return append(past, future...)
}
