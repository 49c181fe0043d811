package analyzer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"abstralyze/internal/cache"
	"abstralyze/internal/llm"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAnalyzeOrdersResults(t *testing.T) {
	mockLLM := &llm.MockClient{}
	mockLLM.On("ClassifyAbstraction", mock.Anything, "One is concrete.").Return(1, nil)
	mockLLM.On("ClassifyAbstraction", mock.Anything, "Being itself is abstract.").Return(5, nil)

	a := New(testLogger(), mockLLM, cache.NewNoOpCache(), Options{Model: "test-model", Attempts: 1})
	rep, err := a.Analyze(context.Background(), "One is concrete. Being itself is abstract.")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(rep.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(rep.Results))
	}
	if rep.Results[0].Index != 0 || rep.Results[0].Level != 1 {
		t.Errorf("unexpected first result: %+v", rep.Results[0])
	}
	if rep.Results[1].Index != 1 || rep.Results[1].Level != 5 {
		t.Errorf("unexpected second result: %+v", rep.Results[1])
	}
	if rep.Model != "test-model" {
		t.Errorf("expected model carried into report, got %q", rep.Model)
	}
	if rep.Stats.Count != 2 || rep.Stats.Min != 1 || rep.Stats.Max != 5 || rep.Stats.Mean != 3 {
		t.Errorf("unexpected stats: %+v", rep.Stats)
	}
	mockLLM.AssertExpectations(t)
}

func TestAnalyzeEmptyInput(t *testing.T) {
	mockLLM := &llm.MockClient{}

	a := New(testLogger(), mockLLM, cache.NewNoOpCache(), Options{Attempts: 1})
	rep, err := a.Analyze(context.Background(), "   \n  ")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(rep.Results) != 0 || rep.Stats.Count != 0 {
		t.Errorf("expected empty report, got %+v", rep)
	}
	mockLLM.AssertNotCalled(t, "ClassifyAbstraction", mock.Anything, mock.Anything)
}

func TestAnalyzeCachesRepeatedSentences(t *testing.T) {
	mockLLM := &llm.MockClient{}
	mockLLM.On("ClassifyAbstraction", mock.Anything, "Same thing.").Return(2, nil).Once()

	a := New(testLogger(), mockLLM, cache.NewMemory(), Options{Attempts: 1})
	rep, err := a.Analyze(context.Background(), "Same thing. Same thing.")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(rep.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(rep.Results))
	}
	if rep.Results[0].Level != 2 || rep.Results[1].Level != 2 {
		t.Errorf("expected cached level reused: %+v", rep.Results)
	}
	mockLLM.AssertExpectations(t)
}

func TestAnalyzeRetriesThenSucceeds(t *testing.T) {
	mockLLM := &llm.MockClient{}
	mockLLM.On("ClassifyAbstraction", mock.Anything, "Flaky sentence.").
		Return(0, errors.New("transient")).Once()
	mockLLM.On("ClassifyAbstraction", mock.Anything, "Flaky sentence.").
		Return(4, nil).Once()

	a := New(testLogger(), mockLLM, cache.NewNoOpCache(), Options{Attempts: 3, Backoff: time.Millisecond})
	rep, err := a.Analyze(context.Background(), "Flaky sentence.")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if rep.Results[0].Level != 4 {
		t.Errorf("expected level from retry, got %d", rep.Results[0].Level)
	}
	mockLLM.AssertExpectations(t)
}

func TestAnalyzeFailureNamesSentence(t *testing.T) {
	mockLLM := &llm.MockClient{}
	mockLLM.On("ClassifyAbstraction", mock.Anything, "Fine sentence.").Return(1, nil)
	mockLLM.On("ClassifyAbstraction", mock.Anything, "Doomed sentence.").
		Return(0, errors.New("auth failed"))

	a := New(testLogger(), mockLLM, cache.NewNoOpCache(), Options{Attempts: 2, Backoff: time.Millisecond})
	_, err := a.Analyze(context.Background(), "Fine sentence. Doomed sentence.")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "sentence 2") || !strings.Contains(err.Error(), "Doomed sentence.") {
		t.Errorf("error should identify the failing sentence, got %v", err)
	}
}

func TestAnalyzeStopsOnCanceledContext(t *testing.T) {
	mockLLM := &llm.MockClient{}
	mockLLM.On("ClassifyAbstraction", mock.Anything, mock.Anything).
		Return(0, errors.New("transient"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := New(testLogger(), mockLLM, cache.NewNoOpCache(), Options{Attempts: 5, Backoff: time.Hour})
	_, err := a.Analyze(ctx, "Never finishes.")
	if err == nil || !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
}

func TestPreviewTruncatesLongSentences(t *testing.T) {
	long := strings.Repeat("あ", 100)
	got := preview(long)
	if len([]rune(got)) != 63 || !strings.HasSuffix(got, "...") {
		t.Errorf("unexpected preview %q", got)
	}
	if preview("short") != "short" {
		t.Error("short sentences must pass through unchanged")
	}
}
