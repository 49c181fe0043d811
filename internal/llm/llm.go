package llm

import "context"

// MinLevel and MaxLevel bound the abstraction scale: 1 is the most concrete
// sentence imaginable, 5 the most abstract.
const (
	MinLevel = 1
	MaxLevel = 5
)

// Client is a minimal classifier interface to allow pluggable providers.
type Client interface {
	// ClassifyAbstraction rates one sentence on the MinLevel..MaxLevel scale.
	ClassifyAbstraction(ctx context.Context, sentence string) (int, error)
}
