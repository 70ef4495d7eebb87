package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	prompt, err := Get(FuturesFile, "system")
	require.NoError(t, err)
	assert.Contains(t, prompt, "JSON array")
	assert.Contains(t, prompt, `"years":"YYYY-YYYY"`)
}

func TestGet_InvalidFile(t *testing.T) {
	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	_, err := Get(FuturesFile, "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestFormat(t *testing.T) {
	template := "Hello {{.Name}}, welcome to {{.Company}}!"
	data := map[string]string{
		"Name":    "Alice",
		"Company": "Acme Corp",
	}

	assert.Equal(t, "Hello Alice, welcome to Acme Corp!", Format(template, data))
}

func TestFormat_ValuesAreNotReexpanded(t *testing.T) {
	template := "{{.ResumeText}} / {{.SpanYears}}"
	data := map[string]string{
		"ResumeText": "I wrote {{.SpanYears}} once",
		"SpanYears":  "20",
	}

	assert.Equal(t, "I wrote {{.SpanYears}} once / 20", Format(template, data))
}

func TestFormat_EmptyData(t *testing.T) {
	template := "Hello {{.Name}}"
	assert.Equal(t, template, Format(template, map[string]string{}))
}

func TestFutures(t *testing.T) {
	system, user, err := Futures("2020 - Engineer @ Acme", 3, 12)
	require.NoError(t, err)

	assert.NotEmpty(t, system)
	assert.Contains(t, user, "2020 - Engineer @ Acme")
	assert.Contains(t, user, "append exactly 3 future roles")
	assert.Contains(t, user, "next 12 years")
	assert.NotContains(t, user, "{{.")
}

func TestCaching(t *testing.T) {
	prompt1, err := Get(FuturesFile, "user")
	require.NoError(t, err)

	prompt2, err := Get(FuturesFile, "user")
	require.NoError(t, err)

	assert.Equal(t, prompt1, prompt2)
}
