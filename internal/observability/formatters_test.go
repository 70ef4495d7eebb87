package observability

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/jonathan/alternate-futures/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintTimeline(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTimeline("REAL TIMELINE", []types.TimelineEntry{
		{Year: "2018-2020", Title: "Engineer", Company: "Acme", Description: "payments"},
		{Year: "2021", Title: "Lead"},
	})
	output := buf.String()

	assert.Contains(t, output, "REAL TIMELINE")
	assert.Contains(t, output, "2018-2020")
	assert.Contains(t, output, "Engineer @ Acme")
	assert.Contains(t, output, "payments")
	assert.Contains(t, output, "Lead")
	assert.NotContains(t, output, "Lead @")
}

func TestPrintTimeline_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintTimeline("FUTURES", nil)

	assert.Contains(t, buf.String(), "FUTURES")
	assert.Contains(t, buf.String(), "(no entries)")
}

func TestPrintTimeline_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintTimeline("T", []types.TimelineEntry{
		{Year: "2020", Title: strings.Repeat("x", 200)},
	})

	assert.Contains(t, buf.String(), "...")
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
}

func TestPrintWarnings(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	warnings := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		warnings = append(warnings, fmt.Sprintf("warning %d", i))
	}
	p.PrintWarnings(warnings)
	output := buf.String()

	assert.Contains(t, output, "OUTPUT WARNINGS")
	assert.Contains(t, output, "warning 0")
	assert.Contains(t, output, "warning 4")
	assert.NotContains(t, output, "warning 5")
	assert.Contains(t, output, "... and 2 more")
}

func TestPrintWarnings_None(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintWarnings(nil)
	assert.Empty(t, buf.String())
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintError("")
	assert.Empty(t, buf.String())

	p.PrintError("Failed to generate")
	assert.Contains(t, buf.String(), "ERROR")
	assert.Contains(t, buf.String(), "Failed to generate")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab...", truncate("abcdef", 5))
	assert.Equal(t, "éé...", truncate("éééééé", 5))
}
