package main

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/jonathan/alternate-futures/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, types.TimelineResponse{Timeline: []types.TimelineEntry{{Year: "2020", Title: "Dev"}}}))

	var decoded types.TimelineResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Dev", decoded.Timeline[0].Title)
	assert.Equal(t, byte('\n'), buf.Bytes()[buf.Len()-1])
}

func TestReadInput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.txt")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0644))

	got, err := readInput(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", got)

	_, err = readInput(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestParseTimelineCommand(t *testing.T) {
	binaryPath := getBinaryPath(t)

	dir := t.TempDir()
	first := filepath.Join(dir, "a.txt")
	second := filepath.Join(dir, "b.html")
	require.NoError(t, os.WriteFile(first, []byte("2021 Lead at Beta\nnotes"), 0644))
	require.NoError(t, os.WriteFile(second, []byte("<ul><li>2015 Intern @ Co</li></ul>"), 0644))

	output, err := exec.Command(binaryPath, "parse-timeline", "--in", first, "--in", second).Output()
	require.NoError(t, err)

	var resp types.TimelineResponse
	require.NoError(t, json.Unmarshal(output, &resp))
	require.Len(t, resp.Timeline, 2)
	assert.Equal(t, "2015", resp.Timeline[0].Year)
	assert.Equal(t, "Beta", resp.Timeline[1].Company)
}

func TestParseTimelineCommand_MissingInput(t *testing.T) {
	binaryPath := getBinaryPath(t)

	output, err := exec.Command(binaryPath, "parse-timeline").CombinedOutput()
	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}
