// Package timeline parses free-form career history text into dated timeline entries.
//
// The parser is a best-effort heuristic. Supported line shapes:
//
//	2021 - Title @ Company: Description
//	2021 Title at Company - Description
//	2019-2021 Title - Description
//	2021 Title
//
// Lines without a leading year are skipped.
package timeline

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/alternate-futures/internal/types"
)

var (
	// bulletRe matches one leading bullet marker and the whitespace after it.
	bulletRe = regexp.MustCompile(`^[\x{2022}*-]\s+`)

	// yearsRe matches a leading YYYY or YYYY-YYYY token (hyphen, en dash or em dash).
	yearsRe = regexp.MustCompile(`^(?:19|20|21)\d{2}(?:\s*[\x{2013}\x{2014}-]\s*(?:19|20|21)\d{2})?`)

	// restPrefixRe matches the separator left between the year token and the rest.
	restPrefixRe = regexp.MustCompile(`^\s*[-\x{2013}:]?\s*`)

	// titleAtCompanyRe: "Title @ Company: Desc" or "Title at Company - Desc".
	titleAtCompanyRe = regexp.MustCompile(`(?i)^(?P<title>[^@:-]+?)\s*(?:@|\bat\b)\s*(?P<company>[^:-]+?)\s*(?:[-:]\s*(?P<desc>.*))?$`)

	// titleDescriptionRe: "Title: Desc" or "Title - Desc".
	titleDescriptionRe = regexp.MustCompile(`^(?P<title>[^:-]+?)\s*(?:[-:]\s*(?P<desc>.*))?$`)

	trailingAtRe = regexp.MustCompile(`@+\s*$`)
)

// Parse converts multi-line text into timeline entries sorted by their year string.
// It never fails; lines it cannot interpret are dropped.
func Parse(text string) []types.TimelineEntry {
	entries := make([]types.TimelineEntry, 0)

	for _, line := range splitLines(text) {
		entry, ok := parseLine(line)
		if !ok {
			continue
		}
		entries = append(entries, entry)
	}

	// Plain string order: ranges sort by their leading year first.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Year < entries[j].Year
	})

	return entries
}

// splitLines normalizes line endings and returns the trimmed, non-blank lines.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// parseLine interprets a single trimmed line. ok is false when the line has no
// leading year or carries nothing besides the year.
func parseLine(line string) (types.TimelineEntry, bool) {
	line = bulletRe.ReplaceAllString(line, "")

	year := yearsRe.FindString(line)
	if year == "" {
		return types.TimelineEntry{}, false
	}

	rest := line[len(year):]
	rest = restPrefixRe.ReplaceAllString(rest, "")

	entry := types.TimelineEntry{Year: year}
	if title, company, desc, ok := matchTitleAtCompany(rest); ok {
		entry.Title, entry.Company, entry.Description = title, company, desc
	} else if title, desc, ok := matchTitleDescription(rest); ok {
		entry.Title, entry.Description = title, desc
	} else {
		entry.Title = strings.TrimSpace(rest)
	}

	entry.Title = strings.TrimSpace(trailingAtRe.ReplaceAllString(entry.Title, ""))
	if entry.Title == "" && entry.Company != "" {
		entry.Title, entry.Company = entry.Company, ""
	}

	if entry.IsEmpty() {
		return types.TimelineEntry{}, false
	}
	return entry, true
}

// matchTitleAtCompany applies the "Title @|at Company [sep Desc]" pattern.
func matchTitleAtCompany(rest string) (title, company, desc string, ok bool) {
	m := titleAtCompanyRe.FindStringSubmatch(rest)
	if m == nil {
		return "", "", "", false
	}
	return group(titleAtCompanyRe, m, "title"), group(titleAtCompanyRe, m, "company"), group(titleAtCompanyRe, m, "desc"), true
}

// matchTitleDescription applies the "Title [sep Desc]" pattern.
func matchTitleDescription(rest string) (title, desc string, ok bool) {
	m := titleDescriptionRe.FindStringSubmatch(rest)
	if m == nil {
		return "", "", false
	}
	return group(titleDescriptionRe, m, "title"), group(titleDescriptionRe, m, "desc"), true
}

// group returns the trimmed named capture, or "" when the group did not participate.
func group(re *regexp.Regexp, match []string, name string) string {
	idx := re.SubexpIndex(name)
	if idx < 0 || idx >= len(match) {
		return ""
	}
	return strings.TrimSpace(match[idx])
}

// LastStartYear returns the latest starting year found in parsed entries, or 0
// when there are none.
func LastStartYear(entries []types.TimelineEntry) int {
	last := 0
	for _, e := range entries {
		if len(e.Year) < 4 {
			continue
		}
		if y, err := strconv.Atoi(e.Year[:4]); err == nil && y > last {
			last = y
		}
	}
	return last
}

// StartYear returns the numeric value of the part of year before the first '-'.
// Empty or non-numeric values yield 0.
func StartYear(year string) int {
	start, _, _ := strings.Cut(year, "-")
	y, err := strconv.Atoi(strings.TrimSpace(start))
	if err != nil {
		return 0
	}
	return y
}
