package stats

import (
	"context"
	"fmt"

	"wordem/internal/mode"

	"github.com/samber/lo"
)

// Report holds every counter of one scope, as shown on the statistics screen.
type Report struct {
	Scope  mode.Scope
	Values map[Counter]int
}

// Get returns the value of a counter, zero if absent.
func (r Report) Get(c Counter) int {
	return r.Values[c]
}

// Rows returns (title, value) pairs in display order.
func (r Report) Rows() [][2]string {
	return lo.Map(Counters(), func(c Counter, _ int) [2]string {
		v := fmt.Sprint(r.Get(c))
		if c == WinPercentage {
			v += "%"
		}
		return [2]string{c.Title(), v}
	})
}

// LoadReport reads every counter of scope.
func LoadReport(ctx context.Context, reader Reader, scope mode.Scope) (Report, error) {
	r := Report{Scope: scope, Values: make(map[Counter]int, len(Counters()))}
	for _, c := range Counters() {
		v, err := reader.Read(ctx, c, scope)
		if err != nil {
			return Report{}, fmt.Errorf("load %s statistics: %w", scope, err)
		}
		r.Values[c] = v
	}
	return r, nil
}

// LoadReports reads the global report followed by one report per mode.
func LoadReports(ctx context.Context, reader Reader) ([]Report, error) {
	reports := make([]Report, 0, len(mode.Scopes()))
	for _, scope := range mode.Scopes() {
		r, err := LoadReport(ctx, reader, scope)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, nil
}

// MostPlayed returns the mode report with the most games played, if any game was played.
func MostPlayed(reports []Report) (Report, bool) {
	modes := lo.Filter(reports, func(r Report, _ int) bool { return r.Scope != mode.Global })
	if len(modes) == 0 {
		return Report{}, false
	}
	best := lo.MaxBy(modes, func(a, b Report) bool { return a.Get(Played) > b.Get(Played) })
	return best, best.Get(Played) > 0
}
