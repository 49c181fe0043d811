// Command abstralyze reads a text or PDF document, splits it into sentences,
// asks an LLM to rate the abstraction level of each one on a 1-5 scale, and
// prints the per-sentence results with optional JSON output and ASCII chart.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"abstralyze/internal/analyzer"
	"abstralyze/internal/app"
	"abstralyze/internal/chart"
	"abstralyze/internal/extract"
	"abstralyze/internal/llm"
	"abstralyze/internal/report"
)

func main() {
	var (
		graph  bool
		output string
		model  string
	)

	rootCmd := &cobra.Command{
		Use:          "abstralyze <input-file>",
		Short:        "Rate the abstraction level of each sentence in a document",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		Example: `  abstralyze essay.txt
  abstralyze essay.txt --graph
  abstralyze paper.pdf --output levels.json --model gpt-4o-mini`,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := app.Build(app.Options{Model: model})
			if err != nil {
				slog.Default().Error("failed to build dependencies", "err", err)
				return err
			}
			defer deps.Cache.Close()
			return run(cmd.Context(), deps, args[0], graph, output)
		},
	}
	rootCmd.Flags().BoolVar(&graph, "graph", false, "render an ASCII chart of the levels")
	rootCmd.Flags().StringVar(&output, "output", "", "write the full report as JSON to this file")
	rootCmd.Flags().StringVar(&model, "model", "", "override the chat model (default from LLM_MODEL)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, deps app.Deps, path string, graph bool, output string) error {
	text, err := extract.File(path)
	if err != nil {
		return err
	}

	a := analyzer.New(deps.Log, deps.LLM, deps.Cache, analyzer.Options{
		Model:    deps.Config.LLMModel,
		Attempts: deps.Config.ClassifyAttempts,
		Backoff:  deps.Config.ClassifyBackoff,
	})
	rep, err := a.Analyze(ctx, text)
	if err != nil {
		return err
	}

	if err := report.WriteText(os.Stdout, rep); err != nil {
		return err
	}
	if graph {
		levels := make([]int, len(rep.Results))
		for i, r := range rep.Results {
			levels[i] = r.Level
		}
		fmt.Print(chart.Render(levels, llm.MaxLevel))
	}
	if output != "" {
		if err := writeJSONFile(output, rep); err != nil {
			return err
		}
		deps.Log.Info("report written", "path", output)
	}
	return nil
}

func writeJSONFile(path string, rep analyzer.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := report.WriteJSON(f, rep); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
