package round

import (
	"context"
	"errors"
	"testing"

	"wordem/internal/guess"
	"wordem/internal/mode"
	"wordem/internal/stats"
	"wordem/internal/store"
	"wordem/internal/words"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var classic = mode.NewRules(mode.Classic, 3)

func startedRound(t *testing.T, hidden string) (*Round, *MockWordSource, *MockRecorder) {
	t.Helper()
	ws := &MockWordSource{}
	rec := &MockRecorder{}
	ws.On("RandomWord", mode.English, 5).Return(hidden, nil).Once()

	r := New(classic, ws, rec)
	require.NoError(t, r.Start(context.Background(), mode.English))
	return r, ws, rec
}

func expectFinish(rec *MockRecorder, result stats.Counter, m mode.Mode) {
	for _, scope := range []mode.Scope{mode.Global, m.Scope()} {
		rec.On("Increment", stats.Played, scope).Return(nil).Once()
		rec.On("Increment", result, scope).Return(nil).Once()
		rec.On("RecomputeWinPercentage", scope).Return(nil).Once()
	}
}

func TestRound_Start(t *testing.T) {
	r, ws, _ := startedRound(t, "crane")

	assert.Equal(t, InProgress, r.Status())
	assert.Equal(t, "CRANE", r.HiddenWord())
	assert.Equal(t, mode.English, r.Language())
	assert.Equal(t, 3, r.Remaining())
	assert.Empty(t, r.Attempts())
	ws.AssertExpectations(t)
}

func TestRound_StartWhileInProgress(t *testing.T) {
	r, _, _ := startedRound(t, "crane")
	err := r.Start(context.Background(), mode.English)
	assert.ErrorIs(t, err, ErrInProgress)
	assert.Equal(t, "CRANE", r.HiddenWord())
}

func TestRound_StartFailuresLeaveStateUnchanged(t *testing.T) {
	tests := []struct {
		name    string
		word    string
		err     error
		wantErr error
	}{
		{"not found", "", words.ErrNotFound, words.ErrNotFound},
		{"store unavailable", "", store.Unavailable("query", errors.New("locked")), store.ErrUnavailable},
		{"unknown driver error", "", errors.New("driver panic"), store.ErrUnavailable},
		{"wrong length word", "cat", nil, store.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := &MockWordSource{}
			ws.On("RandomWord", mode.English, 5).Return(tt.word, tt.err)

			r := New(classic, ws, &MockRecorder{})
			err := r.Start(context.Background(), mode.English)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, NotStarted, r.Status())
			assert.Empty(t, r.HiddenWord())
		})
	}
}

func TestRound_SubmitGuess(t *testing.T) {
	r, ws, _ := startedRound(t, "CRANE")
	ws.On("IsWord", "TRACE", mode.English).Return(true, nil)

	res, err := r.SubmitGuess(context.Background(), "trace")
	require.NoError(t, err)

	assert.Equal(t, ".==+=", res.String())
	assert.Equal(t, InProgress, r.Status())
	assert.Equal(t, 2, r.Remaining())
	require.Len(t, r.Attempts(), 1)
	assert.Equal(t, guess.Attempt{Word: "TRACE", Result: res}, r.Attempts()[0])
}

func TestRound_SubmitGuess_Rejections(t *testing.T) {
	r, ws, _ := startedRound(t, "CRANE")
	ws.On("IsWord", "ZZZZZ", mode.English).Return(false, nil)
	ws.On("IsWord", "SPEED", mode.English).Return(false, errors.New("database is locked"))

	_, err := r.SubmitGuess(context.Background(), "cran")
	assert.ErrorIs(t, err, ErrIncompleteGuess)

	_, err = r.SubmitGuess(context.Background(), "zzzzz")
	assert.ErrorIs(t, err, ErrNotAWord)

	_, err = r.SubmitGuess(context.Background(), "speed")
	assert.ErrorIs(t, err, store.ErrUnavailable)

	// None of the rejected guesses used up a slot.
	assert.Equal(t, InProgress, r.Status())
	assert.Equal(t, 3, r.Remaining())
	assert.Empty(t, r.Attempts())
}

func TestRound_Win(t *testing.T) {
	r, ws, rec := startedRound(t, "CRANE")
	ws.On("IsWord", mock.Anything, mode.English).Return(true, nil)
	expectFinish(rec, stats.Won, mode.Classic)

	var outcomes []Outcome
	r.Subscribe(func(o Outcome) { outcomes = append(outcomes, o) })

	_, err := r.SubmitGuess(context.Background(), "TRACE")
	require.NoError(t, err)
	res, err := r.SubmitGuess(context.Background(), "crane")
	require.NoError(t, err)

	assert.True(t, res.Solved())
	assert.Equal(t, Won, r.Status())
	rec.AssertExpectations(t)

	require.Len(t, outcomes, 1)
	assert.Equal(t, Won, outcomes[0].Status)
	assert.Equal(t, "CRANE", outcomes[0].HiddenWord)
	assert.Equal(t, 2, outcomes[0].Guesses())

	// Further guesses are refused.
	_, err = r.SubmitGuess(context.Background(), "crane")
	assert.ErrorIs(t, err, ErrNotInProgress)
	assert.Len(t, r.Attempts(), 2)
}

func TestRound_Lose(t *testing.T) {
	r, ws, rec := startedRound(t, "CRANE")
	ws.On("IsWord", mock.Anything, mode.English).Return(true, nil)
	expectFinish(rec, stats.Lost, mode.Classic)

	for _, w := range []string{"TRACE", "SPEED", "ERASE"} {
		_, err := r.SubmitGuess(context.Background(), w)
		require.NoError(t, err)
	}

	assert.Equal(t, Lost, r.Status())
	assert.Zero(t, r.Remaining())
	rec.AssertExpectations(t)
	rec.AssertNotCalled(t, "Increment", stats.Won, mock.Anything)
}

func TestRound_WinOnLastGuess(t *testing.T) {
	r, ws, rec := startedRound(t, "CRANE")
	ws.On("IsWord", mock.Anything, mode.English).Return(true, nil)
	expectFinish(rec, stats.Won, mode.Classic)

	for _, w := range []string{"TRACE", "SPEED", "CRANE"} {
		_, err := r.SubmitGuess(context.Background(), w)
		require.NoError(t, err)
	}
	assert.Equal(t, Won, r.Status())
}

func TestRound_Quit(t *testing.T) {
	r, _, rec := startedRound(t, "CRANE")
	rec.On("Increment", stats.Quit, mode.Global).Return(nil).Once()
	rec.On("Increment", stats.Quit, mode.Classic.Scope()).Return(nil).Once()

	var got Status
	r.Subscribe(func(o Outcome) { got = o.Status })

	require.NoError(t, r.Quit(context.Background()))
	assert.Equal(t, Abandoned, r.Status())
	assert.Equal(t, Abandoned, got)
	rec.AssertExpectations(t)

	assert.ErrorIs(t, r.Quit(context.Background()), ErrNotInProgress)
}

func TestRound_QuitBeforeStart(t *testing.T) {
	r := New(classic, &MockWordSource{}, &MockRecorder{})
	assert.ErrorIs(t, r.Quit(context.Background()), ErrNotInProgress)
	_, err := r.SubmitGuess(context.Background(), "crane")
	assert.ErrorIs(t, err, ErrNotInProgress)
}

func TestRound_StatisticsFailureKeepsOutcome(t *testing.T) {
	r, ws, rec := startedRound(t, "CRANE")
	ws.On("IsWord", "CRANE", mode.English).Return(true, nil)
	rec.On("Increment", stats.Played, mode.Global).Return(errors.New("disk I/O error"))

	res, err := r.SubmitGuess(context.Background(), "CRANE")
	assert.ErrorIs(t, err, store.ErrUnavailable)
	assert.True(t, res.Solved())
	assert.Equal(t, Won, r.Status())
}

func TestRound_Restart(t *testing.T) {
	r, ws, rec := startedRound(t, "CRANE")
	ws.On("IsWord", mock.Anything, mode.English).Return(true, nil)
	expectFinish(rec, stats.Won, mode.Classic)

	_, err := r.SubmitGuess(context.Background(), "CRANE")
	require.NoError(t, err)

	ws.On("RandomWord", mode.Spanish, 5).Return("niños", nil).Once()
	require.NoError(t, r.Start(context.Background(), mode.Spanish))

	assert.Equal(t, InProgress, r.Status())
	assert.Equal(t, "NIÑOS", r.HiddenWord())
	assert.Equal(t, mode.Spanish, r.Language())
	assert.Empty(t, r.Attempts())
}

func TestRound_Unsubscribe(t *testing.T) {
	r, _, rec := startedRound(t, "CRANE")
	rec.On("Increment", stats.Quit, mock.Anything).Return(nil)

	calls := 0
	cancel := r.Subscribe(func(Outcome) { calls++ })
	r.Subscribe(func(Outcome) { calls += 10 })
	cancel()

	require.NoError(t, r.Quit(context.Background()))
	assert.Equal(t, 10, calls)
}

func TestStatus_Finished(t *testing.T) {
	assert.False(t, NotStarted.Finished())
	assert.False(t, InProgress.Finished())
	assert.True(t, Won.Finished())
	assert.True(t, Lost.Finished())
	assert.True(t, Abandoned.Finished())
}
