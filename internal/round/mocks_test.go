package round

import (
	"context"

	"wordem/internal/mode"
	"wordem/internal/stats"

	"github.com/stretchr/testify/mock"
)

// --- WordSource ---

type MockWordSource struct {
	mock.Mock
}

func (m *MockWordSource) IsWord(ctx context.Context, word string, lang mode.Language) (bool, error) {
	args := m.Called(word, lang)
	return args.Bool(0), args.Error(1)
}

func (m *MockWordSource) RandomWord(ctx context.Context, lang mode.Language, length int) (string, error) {
	args := m.Called(lang, length)
	return args.String(0), args.Error(1)
}

// --- Recorder ---

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) Increment(ctx context.Context, c stats.Counter, scope mode.Scope) error {
	args := m.Called(c, scope)
	return args.Error(0)
}

func (m *MockRecorder) RecomputeWinPercentage(ctx context.Context, scope mode.Scope) error {
	args := m.Called(scope)
	return args.Error(0)
}
