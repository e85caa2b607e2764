package watcher

import (
	"context"
	"log/slog"
	"time"

	"courtbook/internal/domain/slot"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/config"

	"github.com/robfig/cron/v3"
)

// AvailabilityFetcher is the slice of the API client the watcher needs.
type AvailabilityFetcher interface {
	Availability(ctx context.Context, courtID int64, date string) (*slot.Day, error)
}

// Watcher polls availability for configured targets on a cron schedule,
// diffs each poll against the previous snapshot and notifies about slots
// that were not free before. The first poll of a target seeds the
// snapshot silently.
type Watcher struct {
	fetcher  AvailabilityFetcher
	store    *SnapshotStore
	notifier Notifier
	targets  *config.WatchList
	clock    clock.Clock
	logger   *slog.Logger
	cron     *cron.Cron
}

func New(
	fetcher AvailabilityFetcher,
	store *SnapshotStore,
	notifier Notifier,
	targets *config.WatchList,
	clk clock.Clock,
	logger *slog.Logger,
) *Watcher {
	return &Watcher{
		fetcher:  fetcher,
		store:    store,
		notifier: notifier,
		targets:  targets,
		clock:    clk,
		logger:   logger,
	}
}

// Start schedules periodic checks. cronSpec is a standard 5-field cron
// expression.
func (w *Watcher) Start(cronSpec string) error {
	w.cron = cron.New()
	_, err := w.cron.AddFunc(cronSpec, func() {
		w.CheckAll(context.Background())
	})
	if err != nil {
		return err
	}
	w.cron.Start()
	w.logger.Info("watcher started", "cron", cronSpec, "targets", len(w.targets.Targets))
	return nil
}

// Stop halts the schedule and waits for a running check to finish.
func (w *Watcher) Stop() {
	if w.cron == nil {
		return
	}
	<-w.cron.Stop().Done()
}

// Targets exposes the configured watch list (read-only).
func (w *Watcher) Targets() []config.WatchTarget {
	return w.targets.Targets
}

// CheckAll polls every configured target once.
func (w *Watcher) CheckAll(ctx context.Context) {
	for _, target := range w.targets.Targets {
		if err := w.checkTarget(ctx, target); err != nil {
			w.logger.Warn("watch check failed", "target", target.ID, "error", err)
		}
	}
}

func (w *Watcher) checkTarget(ctx context.Context, target config.WatchTarget) error {
	current := w.collectFreeSlots(ctx, target)

	prev, seeded, err := w.store.Load(ctx, target.ID)
	if err != nil {
		return err
	}

	if !seeded {
		// First sight of this target: remember what is free now, notify
		// nothing. Everything already free is not "news".
		w.logger.Info("watch target seeded", "target", target.ID, "free_slots", len(current))
		return w.store.Save(ctx, target.ID, current)
	}

	fresh := newSlots(prev, current)
	if len(fresh) > 0 {
		w.logger.Info("new slots found", "target", target.ID, "count", len(fresh))
		if err := w.notifier.NotifyNewSlots(target, fresh); err != nil {
			w.logger.Warn("notification failed", "target", target.ID, "error", err)
		}
	}

	// Saving every poll drops slots that got booked meanwhile, so a slot
	// freed again later notifies again.
	return w.store.Save(ctx, target.ID, current)
}

// collectFreeSlots gathers the available slots for every interesting
// date of a target. Individual fetch failures are logged and skipped so
// one bad day does not sink the whole poll.
func (w *Watcher) collectFreeSlots(ctx context.Context, target config.WatchTarget) []SlotRecord {
	records := make([]SlotRecord, 0)
	for _, date := range w.targetDates(target) {
		day, err := w.fetcher.Availability(ctx, target.CourtID, date)
		if err != nil {
			w.logger.Warn("availability fetch failed",
				"target", target.ID, "court_id", target.CourtID, "date", date, "error", err)
			continue
		}
		for _, s := range day.FreeSlots() {
			if !withinWindow(s, target) {
				continue
			}
			records = append(records, SlotRecord{
				CourtID:  target.CourtID,
				Date:     date,
				Start:    s.Start,
				End:      s.End,
				Price:    s.PricePerSlot,
				Currency: s.Currency,
			})
		}
	}
	return records
}

// targetDates generates the calendar dates to poll: the next DaysAhead
// days, filtered by the target's weekday set.
func (w *Watcher) targetDates(target config.WatchTarget) []string {
	dates := make([]string, 0, target.DaysAhead)
	now := w.clock.Now()

	for i := 0; i < target.DaysAhead; i++ {
		date := now.AddDate(0, 0, i)
		if !weekdayEnabled(date.Weekday(), target.Days) {
			continue
		}
		dates = append(dates, date.Format("2006-01-02"))
	}
	return dates
}

func weekdayEnabled(day time.Weekday, enabled []string) bool {
	if len(enabled) == 0 {
		return true
	}
	short := day.String()[:3] // "Mon", "Tue", ...
	for _, d := range enabled {
		if d == short {
			return true
		}
	}
	return false
}

// withinWindow checks the slot start against the target's HH:MM window.
// An unparseable bound disables that side of the window.
func withinWindow(s slot.Slot, target config.WatchTarget) bool {
	start := s.Start
	minutes := start.Hour()*60 + start.Minute()

	if from, err := time.Parse("15:04", target.TimeFrom); err == nil {
		if minutes < from.Hour()*60+from.Minute() {
			return false
		}
	}
	if to, err := time.Parse("15:04", target.TimeTo); err == nil {
		if minutes >= to.Hour()*60+to.Minute() {
			return false
		}
	}
	return true
}

// newSlots returns the records in current that were absent from prev.
func newSlots(prev, current []SlotRecord) []SlotRecord {
	seen := make(map[string]bool, len(prev))
	for _, r := range prev {
		seen[r.Key()] = true
	}

	fresh := make([]SlotRecord, 0)
	for _, r := range current {
		if !seen[r.Key()] {
			fresh = append(fresh, r)
		}
	}
	return fresh
}
