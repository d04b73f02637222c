package round

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"wordem/internal/guess"
	"wordem/internal/mode"
	"wordem/internal/stats"
	"wordem/internal/store"
	"wordem/internal/words"

	"github.com/looplab/fsm"
	"github.com/rs/zerolog/log"
)

// WordSource is the word list a round draws from and validates against.
type WordSource interface {
	IsWord(ctx context.Context, word string, lang mode.Language) (bool, error)
	RandomWord(ctx context.Context, lang mode.Language, length int) (string, error)
}

// Recorder receives the statistics a round produces.
type Recorder interface {
	Increment(ctx context.Context, c stats.Counter, scope mode.Scope) error
	RecomputeWinPercentage(ctx context.Context, scope mode.Scope) error
}

// Round sequences the guesses of one hidden word. A Round is reusable:
// Start begins a fresh round once the previous one finished.
// It is not safe for concurrent use.
type Round struct {
	FSM *fsm.FSM

	rules     mode.Rules
	language  mode.Language
	words     WordSource
	stats     Recorder
	hidden    string
	attempts  []guess.Attempt
	listeners []subscription
	nextID    int
}

type subscription struct {
	id int
	fn Listener
}

// New creates a round in the NotStarted state.
func New(rules mode.Rules, words WordSource, recorder Recorder) *Round {
	r := &Round{
		rules: rules,
		words: words,
		stats: recorder,
	}
	r.FSM = fsm.NewFSM(
		string(NotStarted),
		getTransitions(),
		getCallbacks(r),
	)
	return r
}

func getTransitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: "start", Src: []string{string(NotStarted), string(Won), string(Lost), string(Abandoned)}, Dst: string(InProgress)},
		{Name: "win", Src: []string{string(InProgress)}, Dst: string(Won)},
		{Name: "lose", Src: []string{string(InProgress)}, Dst: string(Lost)},
		{Name: "quit", Src: []string{string(InProgress)}, Dst: string(Abandoned)},
	}
}

func getCallbacks(r *Round) map[string]fsm.Callback {
	finished := func(_ context.Context, e *fsm.Event) {
		r.publish(Outcome{
			Status:     Status(e.Dst),
			HiddenWord: r.hidden,
			Attempts:   r.Attempts(),
		})
	}
	return fsm.Callbacks{
		"enter_state": func(_ context.Context, e *fsm.Event) {
			log.Debug().
				Str("mode", r.rules.Mode.String()).
				Str("event", e.Event).
				Str("from", e.Src).
				Str("to", e.Dst).
				Msg("round transition")
		},
		"enter_" + string(Won):       finished,
		"enter_" + string(Lost):      finished,
		"enter_" + string(Abandoned): finished,
	}
}

// Start draws a hidden word for the round's mode and language and resets
// the guesses. On a word store failure the round is left unchanged.
func (r *Round) Start(ctx context.Context, lang mode.Language) error {
	if !r.FSM.Can("start") {
		return ErrInProgress
	}

	word, err := r.words.RandomWord(ctx, lang, r.rules.WordLength)
	if err != nil {
		return fmt.Errorf("start %s round: %w", r.rules.Mode, storeError(err))
	}
	hidden := guess.Canonical(word)
	if guess.Length(hidden) != r.rules.WordLength {
		return fmt.Errorf("%w: word list returned %q for a %d-letter word",
			store.ErrUnavailable, word, r.rules.WordLength)
	}

	if err := r.FSM.Event(ctx, "start"); err != nil {
		return err
	}
	r.hidden = hidden
	r.language = lang
	r.attempts = nil

	log.Info().Str("mode", r.rules.Mode.String()).Str("language", lang.Code()).Msg("round started")
	return nil
}

// SubmitGuess evaluates a full-length guess against the hidden word.
// Rejected guesses (ErrIncompleteGuess, ErrNotAWord, store failures) do not
// use up a guess. A solved guess wins the round; the last allowed unsolved
// guess loses it.
func (r *Round) SubmitGuess(ctx context.Context, word string) (guess.Result, error) {
	if r.Status() != InProgress {
		return nil, ErrNotInProgress
	}

	word = guess.Canonical(word)
	if n := guess.Length(word); n != r.rules.WordLength {
		return nil, fmt.Errorf("%w: %d of %d letters", ErrIncompleteGuess, n, r.rules.WordLength)
	}

	ok, err := r.words.IsWord(ctx, word, r.language)
	if err != nil {
		return nil, fmt.Errorf("check guess: %w", storeError(err))
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotAWord, word)
	}

	res, err := guess.Evaluate(r.hidden, word)
	if err != nil {
		return nil, err
	}
	r.attempts = append(r.attempts, guess.Attempt{Word: word, Result: res})

	log.Debug().
		Str("mode", r.rules.Mode.String()).
		Int("attempt", len(r.attempts)).
		Str("result", res.String()).
		Msg("guess evaluated")

	switch {
	case res.Solved():
		err = r.finish(ctx, "win", stats.Won)
	case len(r.attempts) >= r.rules.GuessLimit:
		err = r.finish(ctx, "lose", stats.Lost)
	}
	return res, err
}

// Quit abandons the running round and counts it as quit.
func (r *Round) Quit(ctx context.Context) error {
	if r.Status() != InProgress {
		return ErrNotInProgress
	}
	if err := r.FSM.Event(ctx, "quit"); err != nil {
		return err
	}
	for _, scope := range r.scopes() {
		if err := r.stats.Increment(ctx, stats.Quit, scope); err != nil {
			return fmt.Errorf("record quit: %w", storeError(err))
		}
	}
	log.Info().Str("mode", r.rules.Mode.String()).Int("guesses", len(r.attempts)).Msg("round abandoned")
	return nil
}

// finish moves the round to its terminal state, then records the game for
// the global and mode scopes. The outcome stands even if recording fails.
func (r *Round) finish(ctx context.Context, event string, result stats.Counter) error {
	if err := r.FSM.Event(ctx, event); err != nil {
		return err
	}
	log.Info().
		Str("mode", r.rules.Mode.String()).
		Str("outcome", string(r.Status())).
		Int("guesses", len(r.attempts)).
		Msg("round finished")

	for _, scope := range r.scopes() {
		for _, c := range []stats.Counter{stats.Played, result} {
			if err := r.stats.Increment(ctx, c, scope); err != nil {
				return fmt.Errorf("record %s: %w", result, storeError(err))
			}
		}
		if err := r.stats.RecomputeWinPercentage(ctx, scope); err != nil {
			return fmt.Errorf("record %s: %w", result, storeError(err))
		}
	}
	return nil
}

// Subscribe registers l for Won, Lost and Abandoned outcomes.
// The returned function removes the subscription.
func (r *Round) Subscribe(l Listener) (cancel func()) {
	id := r.nextID
	r.nextID++
	r.listeners = append(r.listeners, subscription{id: id, fn: l})
	return func() {
		r.listeners = slices.DeleteFunc(r.listeners, func(s subscription) bool { return s.id == id })
	}
}

func (r *Round) publish(o Outcome) {
	for _, s := range slices.Clone(r.listeners) {
		s.fn(o)
	}
}

func (r *Round) scopes() []mode.Scope {
	return []mode.Scope{mode.Global, r.rules.Mode.Scope()}
}

// Status returns the current state of the round.
func (r *Round) Status() Status {
	return Status(r.FSM.Current())
}

// Rules returns the mode rules the round was created with.
func (r *Round) Rules() mode.Rules {
	return r.rules
}

// Language returns the language of the current round.
func (r *Round) Language() mode.Language {
	return r.language
}

// HiddenWord returns the canonical hidden word, empty before Start.
func (r *Round) HiddenWord() string {
	return r.hidden
}

// Attempts returns a copy of the guesses submitted so far.
func (r *Round) Attempts() []guess.Attempt {
	return slices.Clone(r.attempts)
}

// Remaining is the number of guesses left.
func (r *Round) Remaining() int {
	return max(r.rules.GuessLimit-len(r.attempts), 0)
}

// storeError keeps word store and statistics failures distinguishable:
// NotFound and Unavailable pass through, anything else becomes Unavailable.
func storeError(err error) error {
	if errors.Is(err, words.ErrNotFound) || errors.Is(err, store.ErrUnavailable) {
		return err
	}
	return store.Unavailable("store", err)
}
