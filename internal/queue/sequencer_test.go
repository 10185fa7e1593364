package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextSequenceNumber_StartsAtOne(t *testing.T) {
	s := NewSequencer()
	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)

	n, err := s.NextSequenceNumber(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = s.NextSequenceNumber(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestNextSequenceNumber_DayRollover(t *testing.T) {
	s := NewSequencer()
	monday := time.Date(2025, 3, 10, 23, 50, 0, 0, time.Local)
	tuesday := monday.AddDate(0, 0, 1)

	for i := 0; i < 5; i++ {
		_, err := s.NextSequenceNumber(context.Background(), monday)
		require.NoError(t, err)
	}

	n, err := s.NextSequenceNumber(context.Background(), tuesday)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "counter must reset on day rollover")
}

func TestNextSequenceNumber_StaleDayDoesNotReset(t *testing.T) {
	s := NewSequencer()
	beforeMidnight := time.Date(2025, 3, 10, 23, 59, 59, 0, time.Local)
	afterMidnight := time.Date(2025, 3, 11, 0, 0, 1, 0, time.Local)

	// A check-in stamped before midnight arrives after the first
	// new-day reservation. It must not reset the counter.
	n1, err := s.NextSequenceNumber(context.Background(), afterMidnight)
	require.NoError(t, err)
	assert.Equal(t, 1, n1)

	n2, err := s.NextSequenceNumber(context.Background(), beforeMidnight)
	require.NoError(t, err)

	n3, err := s.NextSequenceNumber(context.Background(), afterMidnight)
	require.NoError(t, err)

	assert.NotEqual(t, n1, n2, "stale-day reservation reused a number")
	assert.NotEqual(t, n1, n3, "counter reset reissued a number for the same day")
	assert.Equal(t, 2, n2)
	assert.Equal(t, 3, n3)
}

func TestNextSequenceNumber_SameDayDifferentTimes(t *testing.T) {
	s := NewSequencer()
	morning := time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local)
	evening := time.Date(2025, 3, 10, 19, 30, 0, 0, time.Local)

	_, err := s.NextSequenceNumber(context.Background(), morning)
	require.NoError(t, err)

	n, err := s.NextSequenceNumber(context.Background(), evening)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestNextSequenceNumber_CancelledContext(t *testing.T) {
	s := NewSequencer()
	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.NextSequenceNumber(ctx, day)
	assert.Error(t, err)
	assert.Equal(t, 0, s.Current(day), "cancelled request must not consume a number")
}

func TestNextSequenceNumber_Concurrent(t *testing.T) {
	s := NewSequencer()
	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)

	const n = 200
	results := make(chan int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			num, err := s.NextSequenceNumber(context.Background(), day)
			if err != nil {
				t.Error(err)
				return
			}
			results <- num
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int]bool)
	for num := range results {
		if seen[num] {
			t.Fatalf("duplicate sequence number %d", num)
		}
		seen[num] = true
	}

	// Dense run 1..n with no gaps under normal operation.
	require.Len(t, seen, n)
	for i := 1; i <= n; i++ {
		assert.True(t, seen[i], "missing sequence number %d", i)
	}
}
