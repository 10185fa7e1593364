package queue

import (
	"context"
	"sync"
	"time"
)

// DayFormat keys the counter by calendar day in server-local time.
const DayFormat = "2006-01-02"

// Sequencer issues day-scoped queue positions from a single mutex-owned
// counter. Two concurrent callers can never observe the same number,
// and numbers restart at 1 on day rollover.
type Sequencer struct {
	mu   sync.Mutex
	day  string
	last int
}

func NewSequencer() *Sequencer {
	return &Sequencer{}
}

// NextSequenceNumber reserves the next position for the given service
// day. A cancelled context issues no number; once the lock is taken the
// increment always commits, so cancellation can make the day sequence
// sparse but never duplicated or out of order.
func (s *Sequencer) NextSequenceNumber(ctx context.Context, day time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	key := day.Format(DayFormat)

	s.mu.Lock()
	defer s.mu.Unlock()

	// The day only rolls forward. A request stamped just before
	// midnight can land after the first new-day reservation; resetting
	// on its stale key would reissue numbers already handed out, so
	// stale keys draw from the current day's counter instead.
	if key > s.day {
		s.day = key
		s.last = 0
	}
	s.last++
	return s.last, nil
}

// Current returns the last number issued for the given day without
// reserving one. Used by status displays only.
func (s *Sequencer) Current(day time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.day != day.Format(DayFormat) {
		return 0
	}
	return s.last
}
