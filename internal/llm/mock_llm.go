package llm

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockClient is a mock implementation of Client using testify/mock.
type MockClient struct {
	mock.Mock
}

func (m *MockClient) ClassifyAbstraction(ctx context.Context, sentence string) (int, error) {
	args := m.Called(ctx, sentence)
	return args.Int(0), args.Error(1)
}
