package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"

	"abstralyze/internal/app"
	"abstralyze/internal/cache"
	"abstralyze/internal/config"
	"abstralyze/internal/llm"
)

func newTestDeps(l llm.Client) app.Deps {
	return app.Deps{
		Config: config.Config{
			LLMModel:         "test-model",
			ClassifyAttempts: 1,
		},
		Log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		LLM:   l,
		Cache: cache.NewNoOpCache(),
	}
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunWritesJSONReport(t *testing.T) {
	mockLLM := &llm.MockClient{}
	mockLLM.On("ClassifyAbstraction", mock.Anything, "Dogs bark.").Return(1, nil)
	mockLLM.On("ClassifyAbstraction", mock.Anything, "Freedom is a concept.").Return(4, nil)

	input := writeInput(t, "Dogs bark. Freedom is a concept.")
	output := filepath.Join(t.TempDir(), "report.json")

	if err := run(context.Background(), newTestDeps(mockLLM), input, false, output); err != nil {
		t.Fatalf("run: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("report file not written: %v", err)
	}
	var rep struct {
		Model   string `json:"model"`
		Results []struct {
			Sentence string `json:"sentence"`
			Level    int    `json:"level"`
		} `json:"results"`
	}
	if err := json.Unmarshal(data, &rep); err != nil {
		t.Fatalf("invalid report JSON: %v", err)
	}
	if rep.Model != "test-model" || len(rep.Results) != 2 {
		t.Errorf("unexpected report: %+v", rep)
	}
	if rep.Results[1].Sentence != "Freedom is a concept." || rep.Results[1].Level != 4 {
		t.Errorf("unexpected second result: %+v", rep.Results[1])
	}
	mockLLM.AssertExpectations(t)
}

func TestRunMissingInputFile(t *testing.T) {
	mockLLM := &llm.MockClient{}

	err := run(context.Background(), newTestDeps(mockLLM), filepath.Join(t.TempDir(), "missing.txt"), false, "")
	if err == nil {
		t.Fatal("expected error for missing input file")
	}
	mockLLM.AssertNotCalled(t, "ClassifyAbstraction", mock.Anything, mock.Anything)
}

func TestRunSurfacesClassificationFailure(t *testing.T) {
	mockLLM := &llm.MockClient{}
	mockLLM.On("ClassifyAbstraction", mock.Anything, mock.Anything).
		Return(0, errors.New("401 unauthorized"))

	input := writeInput(t, "One sentence only.")
	err := run(context.Background(), newTestDeps(mockLLM), input, false, "")
	if err == nil {
		t.Fatal("expected classification failure to propagate")
	}
}
