package memo

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

type TimeSpan = timespan.TimeSpan

// Outcome classifies a single call of a memoized callable.
type Outcome int

const (
	// Hit means the result came from the table.
	Hit Outcome = iota
	// Miss means the wrapped callable ran and its result was stored.
	Miss
	// Failure means the wrapped callable failed and nothing was stored.
	Failure
)

func (o Outcome) String() string {
	switch o {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

// Event describes one call of a memoized callable. Span covers the table
// lookup plus, on a miss or failure, the wrapped computation; for a hit that
// waited on a concurrent computation it includes the wait.
type Event struct {
	MemoID  string
	Outcome Outcome
	Span    TimeSpan
	Err     error
}

func newEvent(memoID string, outcome Outcome, start time.Time, err error) Event {
	return Event{
		MemoID:  memoID,
		Outcome: outcome,
		Span:    timespan.BetweenTimes(start, time.Now()),
		Err:     err,
	}
}

// Stats are cumulative counters of a memoized callable.
type Stats struct {
	Hits     uint64
	Misses   uint64
	Failures uint64
}
