package report

import (
	"encoding/json"
	"fmt"
	"io"

	"abstralyze/internal/analyzer"
)

// WriteText prints the human-readable sentence → level listing followed by a
// one-line summary.
func WriteText(w io.Writer, rep analyzer.Report) error {
	for _, r := range rep.Results {
		if _, err := fmt.Fprintf(w, "%4d. %s  [level %d]\n", r.Index+1, r.Sentence, r.Level); err != nil {
			return err
		}
	}
	if rep.Stats.Count == 0 {
		_, err := fmt.Fprintln(w, "no sentences found")
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d sentences, levels %d-%d, mean %.2f (model %s)\n",
		rep.Stats.Count, rep.Stats.Min, rep.Stats.Max, rep.Stats.Mean, rep.Model)
	return err
}

// WriteJSON writes the full report as indented JSON.
func WriteJSON(w io.Writer, rep analyzer.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
