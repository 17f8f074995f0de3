// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/resume-screener/pkg/types"
)

func sampleResult() types.RankedResult {
	return types.RankedResult{
		Reference: "job.txt",
		Candidates: []types.ScoredCandidate{
			{ID: "alice.pdf", Score: 0.6030227, Position: 1, Status: types.StatusScored},
			{ID: "bob.pdf", Score: 0, Position: 0, Status: types.StatusUnreadable, Error: "encrypted"},
		},
	}
}

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(sampleResult(), &buf)
	out := buf.String()

	assert.Contains(t, out, "Rank")
	assert.Contains(t, out, "60.30%")
	assert.Contains(t, out, strings.Repeat("#", 12))
	assert.Contains(t, out, "unreadable: encrypted")
	assert.Contains(t, out, "2 candidates (1 unreadable)")
	assert.Less(t, strings.Index(out, "alice.pdf"), strings.Index(out, "bob.pdf"))
}

func TestFormatTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(types.RankedResult{}, &buf)
	assert.Equal(t, "No candidates to rank.\n", buf.String())
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "short", in: "alice.pdf", want: "alice.pdf"},
		{name: "ascii", in: "abcdefghij", want: "abcde..."},
		{name: "multibyte", in: "Ž" + strings.Repeat("é", 9), want: "Žéééé..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, 8)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestFormatTable_MultibyteID(t *testing.T) {
	id := strings.Repeat("José Müller ", 6) + ".pdf"
	var buf bytes.Buffer
	FormatTable(types.RankedResult{Candidates: []types.ScoredCandidate{{ID: id, Status: types.StatusScored}}}, &buf)

	assert.True(t, utf8.ValidString(buf.String()))
	assert.Contains(t, buf.String(), "...")
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatJSON(sampleResult(), &buf))

	var got types.RankedResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleResult(), got)
	assert.Contains(t, buf.String(), `"status": "unreadable"`)
}

func TestFormatYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatYAML(sampleResult(), &buf))

	var got types.RankedResult
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleResult(), got)
}

func TestFormatCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatCSV(sampleResult(), &buf))
	want := "rank,id,score,status,error\n" +
		"1,alice.pdf,0.603023,scored,\n" +
		"2,bob.pdf,0.000000,unreadable,encrypted\n"
	assert.Equal(t, want, buf.String())
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(sampleResult(), "xml", &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		file string
		want string
	}{
		{"ranked.csv", "rank,id,score"},
		{"ranked.json", `"reference": "job.txt"`},
		{"ranked.yml", "reference: job.txt"},
		{"ranked.txt", "60.30%"},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			require.NoError(t, Export(sampleResult(), path))
			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Contains(t, string(data), tt.want)
		})
	}

	err := Export(sampleResult(), filepath.Join(dir, "ranked.xlsx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot infer export format")
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "100.00%", Percent(1))
	assert.Equal(t, "0.00%", Percent(0))
	assert.Equal(t, "12.50%", Percent(0.125))
}
