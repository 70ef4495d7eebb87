package timeline

import (
	"testing"

	"github.com/jonathan/alternate-futures/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_DocumentedShapes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected types.TimelineEntry
	}{
		{
			name:  "title at-sign company colon description",
			input: "2021 - Senior Engineer @ Alpha Co: Led migration",
			expected: types.TimelineEntry{
				Year: "2021", Title: "Senior Engineer", Company: "Alpha Co", Description: "Led migration",
			},
		},
		{
			name:  "title at company dash description",
			input: "2019 Junior Dev at Startup XYZ - Built tools",
			expected: types.TimelineEntry{
				Year: "2019", Title: "Junior Dev", Company: "Startup XYZ", Description: "Built tools",
			},
		},
		{
			name:  "uppercase AT keyword",
			input: "2018 Analyst AT Big Bank",
			expected: types.TimelineEntry{
				Year: "2018", Title: "Analyst", Company: "Big Bank",
			},
		},
		{
			name:  "title and description only",
			input: "2015 Freelancer - Websites for local shops",
			expected: types.TimelineEntry{
				Year: "2015", Title: "Freelancer", Description: "Websites for local shops",
			},
		},
		{
			name:     "title only",
			input:    "2012 Intern",
			expected: types.TimelineEntry{Year: "2012", Title: "Intern"},
		},
		{
			name:  "year range with hyphen",
			input: "2016-2019 Developer @ Acme",
			expected: types.TimelineEntry{
				Year: "2016-2019", Title: "Developer", Company: "Acme",
			},
		},
		{
			name:  "year range with en dash and spaces",
			input: "2016 – 2019: Developer",
			expected: types.TimelineEntry{
				Year: "2016 – 2019", Title: "Developer",
			},
		},
		{
			name:     "bullet marker stripped",
			input:    "• 2020 Lead: Ran the team",
			expected: types.TimelineEntry{Year: "2020", Title: "Lead", Description: "Ran the team"},
		},
		{
			name:     "dash bullet stripped",
			input:    "- 2020 Lead",
			expected: types.TimelineEntry{Year: "2020", Title: "Lead"},
		},
		{
			name:     "trailing at-sign removed from title",
			input:    "2022 Consultant @",
			expected: types.TimelineEntry{Year: "2022", Title: "Consultant"},
		},
		{
			name:     "word containing at is not a separator",
			input:    "2023 Data Analyst",
			expected: types.TimelineEntry{Year: "2023", Title: "Data Analyst"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := Parse(tt.input)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.expected, entries[0])
		})
	}
}

func TestParse_SkipsLinesWithoutLeadingYear(t *testing.T) {
	input := "Summary of my career\nWorked at Acme in 2019\n1899 Too early\n2200 Too late\n  \n"
	assert.Empty(t, Parse(input))
}

func TestParse_BareYearProducesNoEntry(t *testing.T) {
	assert.Empty(t, Parse("2021"))
	assert.Empty(t, Parse("2021 -"))
	assert.Empty(t, Parse("2019-2021"))
}

func TestParse_LineEndings(t *testing.T) {
	input := "2020 A\r\n2021 B\r2022 C\n\n2023 D"
	entries := Parse(input)
	require.Len(t, entries, 4)
	assert.Equal(t, "A", entries[0].Title)
	assert.Equal(t, "D", entries[3].Title)
}

func TestParse_SortsLexicographicallyByYear(t *testing.T) {
	input := "2021-2023 Lead\n1999 Paperboy\n2021 Senior\n2005-2007 Student\n2010 Junior"
	entries := Parse(input)
	require.Len(t, entries, 5)

	years := make([]string, 0, len(entries))
	for _, e := range entries {
		years = append(years, e.Year)
	}
	assert.Equal(t, []string{"1999", "2005-2007", "2010", "2021", "2021-2023"}, years)
}

func TestParse_StableForEqualYears(t *testing.T) {
	entries := Parse("2020 First\n2020 Second")
	require.Len(t, entries, 2)
	assert.Equal(t, "First", entries[0].Title)
	assert.Equal(t, "Second", entries[1].Title)
}

func TestParse_EmptyInput(t *testing.T) {
	entries := Parse("")
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestParse_EveryEntryKeepsItsSourceYear(t *testing.T) {
	input := "2001 A\nnope\n2002 B @ C\n* 2003 D: E\nfoo 2004 bar"
	for _, e := range Parse(input) {
		assert.Regexp(t, `^(19|20|21)\d{2}`, e.Year)
		assert.Contains(t, input, e.Year)
	}
}

func TestMatchTitleAtCompany(t *testing.T) {
	tests := []struct {
		rest                 string
		title, company, desc string
		ok                   bool
	}{
		{rest: "Engineer @ Acme", title: "Engineer", company: "Acme", ok: true},
		{rest: "Engineer at Acme: Shipped", title: "Engineer", company: "Acme", desc: "Shipped", ok: true},
		{rest: "Engineer at Acme - Shipped - twice", title: "Engineer", company: "Acme", desc: "Shipped - twice", ok: true},
		{rest: "Engineer", ok: false},
		{rest: "Engineer @", ok: false},
		{rest: "Senior-Engineer @ Acme", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.rest, func(t *testing.T) {
			title, company, desc, ok := matchTitleAtCompany(tt.rest)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.title, title)
			assert.Equal(t, tt.company, company)
			assert.Equal(t, tt.desc, desc)
		})
	}
}

func TestMatchTitleDescription(t *testing.T) {
	tests := []struct {
		rest        string
		title, desc string
		ok          bool
	}{
		{rest: "Founder", title: "Founder", ok: true},
		{rest: "Founder: Started things", title: "Founder", desc: "Started things", ok: true},
		{rest: "Founder - Started things", title: "Founder", desc: "Started things", ok: true},
		{rest: ": nothing before", ok: false},
		{rest: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.rest, func(t *testing.T) {
			title, desc, ok := matchTitleDescription(tt.rest)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.title, title)
			assert.Equal(t, tt.desc, desc)
		})
	}
}

func TestLastStartYear(t *testing.T) {
	entries := []types.TimelineEntry{
		{Year: "2019-2021"},
		{Year: "2021 – 2024"},
		{Year: "2020"},
	}
	assert.Equal(t, 2021, LastStartYear(entries))
	assert.Equal(t, 0, LastStartYear(nil))
}

func TestStartYear(t *testing.T) {
	tests := map[string]int{
		"2020":      2020,
		"2020-2024": 2020,
		" 2031 -":   2031,
		"":          0,
		"soon":      0,
		"-2020":     0,
		"2019–2021": 0,
	}
	for in, want := range tests {
		assert.Equal(t, want, StartYear(in), "StartYear(%q)", in)
	}
}
