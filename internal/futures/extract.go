package futures

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/jonathan/alternate-futures/internal/types"
)

// ExtractArray decodes raw as a JSON array. When raw is not valid JSON it
// retries with the text between the first '[' and the last ']'. A valid JSON
// value that is not an array is rejected without the retry.
func ExtractArray(raw string) ([]json.RawMessage, bool) {
	items, isArray, valid := decodeArray([]byte(raw))
	if valid {
		return items, isArray
	}

	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start < 0 || end < start {
		return nil, false
	}

	items, isArray, _ = decodeArray([]byte(raw[start : end+1]))
	return items, isArray
}

// decodeArray reports whether data is valid JSON and, if so, whether it is an array.
func decodeArray(data []byte) (items []json.RawMessage, isArray bool, valid bool) {
	if !json.Valid(data) {
		return nil, false, false
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false, true
	}
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, false, true
	}
	return items, true, true
}

// Adapt maps untrusted records onto TimelineEntry. "years" takes precedence
// over "year"; absent or null fields become empty strings. Elements that are
// not objects become empty entries so positions are preserved.
func Adapt(items []json.RawMessage) []types.TimelineEntry {
	entries := make([]types.TimelineEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, adaptRecord(item))
	}
	return entries
}

func adaptRecord(item json.RawMessage) types.TimelineEntry {
	var record map[string]json.RawMessage
	if err := json.Unmarshal(item, &record); err != nil || record == nil {
		return types.TimelineEntry{}
	}

	year, ok := field(record, "years")
	if !ok {
		year, _ = field(record, "year")
	}
	title, _ := field(record, "title")
	company, _ := field(record, "company")
	description, _ := field(record, "description")

	return types.TimelineEntry{
		Year:        year,
		Title:       title,
		Company:     company,
		Description: description,
	}
}

// field returns the record value under key as text. ok is false when the key
// is missing or null. Numbers and booleans keep their literal form; objects
// and arrays read as empty.
func field(record map[string]json.RawMessage, key string) (string, bool) {
	raw, exists := record[key]
	if !exists {
		return "", false
	}
	value := bytes.TrimSpace(raw)
	if len(value) == 0 || string(value) == "null" {
		return "", false
	}

	switch value[0] {
	case '"':
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return "", true
		}
		return s, true
	case '{', '[':
		return "", true
	default:
		if f, err := strconv.ParseFloat(string(value), 64); err == nil {
			return strconv.FormatFloat(f, 'f', -1, 64), true
		}
		return string(value), true
	}
}
