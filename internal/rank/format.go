// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/resume-screener/pkg/types"
)

const barWidth = 20

// Write renders result to w in the given format.
func Write(result types.RankedResult, format types.OutputFormat, w io.Writer) error {
	switch format {
	case types.FormatTable, "":
		FormatTable(result, w)
		return nil
	case types.FormatJSON:
		return FormatJSON(result, w)
	case types.FormatYAML:
		return FormatYAML(result, w)
	case types.FormatCSV:
		return FormatCSV(result, w)
	default:
		return fmt.Errorf("unsupported format %q: use table, json, yaml, or csv", format)
	}
}

// FormatTable writes result as a human-readable table with a percentage
// score and a bar per candidate.
func FormatTable(result types.RankedResult, w io.Writer) {
	if result.Len() == 0 {
		fmt.Fprintln(w, "No candidates to rank.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-40s  %7s  %-*s  %s\n",
		"Rank", "Candidate", "Score", barWidth, "", "Status")
	fmt.Fprintln(w, strings.Repeat("-", 90))

	for i, c := range result.Candidates {
		status := string(c.Status)
		if c.Error != "" {
			status += ": " + truncate(c.Error, 40)
		}
		fmt.Fprintf(w, "%-4d  %-40s  %7s  %-*s  %s\n",
			i+1, truncate(c.ID, 40), Percent(c.Score), barWidth, bar(c.Score), status)
	}

	fmt.Fprintf(w, "\n%d candidates", result.Len())
	if n := result.Unreadable(); n > 0 {
		fmt.Fprintf(w, " (%d unreadable)", n)
	}
	fmt.Fprintln(w)
}

// FormatJSON writes result as indented JSON.
func FormatJSON(result types.RankedResult, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// FormatYAML writes result as YAML.
func FormatYAML(result types.RankedResult, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}

// FormatCSV writes one row per candidate: rank, id, score, status, error.
func FormatCSV(result types.RankedResult, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"rank", "id", "score", "status", "error"}); err != nil {
		return err
	}
	for i, c := range result.Candidates {
		row := []string{
			strconv.Itoa(i + 1),
			c.ID,
			strconv.FormatFloat(c.Score, 'f', 6, 64),
			string(c.Status),
			c.Error,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// FormatForPath picks an output format from a file extension.
func FormatForPath(path string) (types.OutputFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return types.FormatJSON, nil
	case ".yaml", ".yml":
		return types.FormatYAML, nil
	case ".csv":
		return types.FormatCSV, nil
	case ".txt":
		return types.FormatTable, nil
	default:
		return "", fmt.Errorf("cannot infer export format from %q: use .json, .yaml, .csv, or .txt", path)
	}
}

// Export writes result to path in the format implied by its extension.
func Export(result types.RankedResult, path string) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err := Write(result, format, f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// Percent formats a score in [0, 1] as a percentage with two decimals.
func Percent(score float64) string {
	return strconv.FormatFloat(score*100, 'f', 2, 64) + "%"
}

func bar(score float64) string {
	n := int(math.Round(score * barWidth))
	return strings.Repeat("#", n)
}

// truncate shortens s to max characters, cutting on rune boundaries.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
