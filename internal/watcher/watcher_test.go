//go:build unit

package watcher

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"courtbook/internal/domain/slot"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWatcher(now time.Time) *Watcher {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(nil, nil, nil, config.DefaultWatchList(), clock.NewMockClock(now), logger)
}

func record(courtID int64, date string, hour int) SlotRecord {
	start := time.Date(2024, 6, 1, hour, 0, 0, 0, time.UTC)
	return SlotRecord{
		CourtID: courtID,
		Date:    date,
		Start:   start,
		End:     start.Add(time.Hour),
	}
}

func TestNewSlots(t *testing.T) {
	t.Run("only records absent from the previous poll", func(t *testing.T) {
		prev := []SlotRecord{record(7, "2024-06-01", 9), record(7, "2024-06-01", 10)}
		current := []SlotRecord{record(7, "2024-06-01", 10), record(7, "2024-06-01", 11)}

		fresh := newSlots(prev, current)
		require.Len(t, fresh, 1)
		assert.Equal(t, 11, fresh[0].Start.Hour())
	})

	t.Run("identical polls produce nothing", func(t *testing.T) {
		records := []SlotRecord{record(7, "2024-06-01", 9)}
		assert.Empty(t, newSlots(records, records))
	})

	t.Run("empty previous poll reports everything", func(t *testing.T) {
		current := []SlotRecord{record(7, "2024-06-01", 9), record(7, "2024-06-01", 10)}
		assert.Len(t, newSlots(nil, current), 2)
	})
}

func TestTargetDates(t *testing.T) {
	// 2024-06-01 is a Saturday.
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	t.Run("no weekday filter scans every day ahead", func(t *testing.T) {
		w := testWatcher(now)
		dates := w.targetDates(config.WatchTarget{DaysAhead: 3})
		assert.Equal(t, []string{"2024-06-01", "2024-06-02", "2024-06-03"}, dates)
	})

	t.Run("weekday filter keeps matching days only", func(t *testing.T) {
		w := testWatcher(now)
		dates := w.targetDates(config.WatchTarget{DaysAhead: 7, Days: []string{"Mon", "Wed"}})
		assert.Equal(t, []string{"2024-06-03", "2024-06-05"}, dates)
	})
}

func TestWithinWindow(t *testing.T) {
	at := func(hour, minute int) slot.Slot {
		start := time.Date(2024, 6, 1, hour, minute, 0, 0, time.UTC)
		return slot.Slot{Start: start, End: start.Add(time.Hour), Available: true}
	}
	target := config.WatchTarget{TimeFrom: "18:00", TimeTo: "22:00"}

	assert.False(t, withinWindow(at(17, 30), target))
	assert.True(t, withinWindow(at(18, 0), target))
	assert.True(t, withinWindow(at(21, 30), target))
	assert.False(t, withinWindow(at(22, 0), target))

	t.Run("unparseable bound disables that side", func(t *testing.T) {
		open := config.WatchTarget{TimeFrom: "whenever", TimeTo: "22:00"}
		assert.True(t, withinWindow(at(6, 0), open))
		assert.False(t, withinWindow(at(23, 0), open))
	})
}

func TestWeekdayEnabled(t *testing.T) {
	assert.True(t, weekdayEnabled(time.Monday, nil))
	assert.True(t, weekdayEnabled(time.Monday, []string{"Mon", "Fri"}))
	assert.False(t, weekdayEnabled(time.Tuesday, []string{"Mon", "Fri"}))
}

func TestSlotRecordKey(t *testing.T) {
	a := record(7, "2024-06-01", 9)
	b := record(7, "2024-06-01", 9)
	c := record(8, "2024-06-01", 9)

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}
