package watcher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// snapshotTTL bounds how long a poll result stays relevant; a watcher
// that has not run for a day starts over from a silent seed.
const snapshotTTL = 24 * time.Hour

// SlotRecord is one free slot as remembered between polls.
type SlotRecord struct {
	CourtID  int64     `json:"court_id"`
	Date     string    `json:"date"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Price    *float64  `json:"price,omitempty"`
	Currency string    `json:"currency,omitempty"`
}

// Key identifies a slot across polls for diffing.
func (r SlotRecord) Key() string {
	return fmt.Sprintf("%d_%s_%s", r.CourtID, r.Date, r.Start.Format(time.RFC3339))
}

// SnapshotStore keeps the last-seen free slots per watch target in redis.
type SnapshotStore struct {
	client *redis.Client
}

func NewSnapshotStore(client *redis.Client) *SnapshotStore {
	return &SnapshotStore{client: client}
}

func (s *SnapshotStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func snapshotKey(targetID string) string {
	return fmt.Sprintf("watch:slots:%s", targetID)
}

// Save stores the current free slots for a target with a TTL.
func (s *SnapshotStore) Save(ctx context.Context, targetID string, records []SlotRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, snapshotKey(targetID), data, snapshotTTL).Err()
}

// Load returns the previous snapshot for a target. A missing key yields
// (nil, false, nil): the target has never been polled (or the snapshot
// expired) and must be seeded silently.
func (s *SnapshotStore) Load(ctx context.Context, targetID string) ([]SlotRecord, bool, error) {
	val, err := s.client.Get(ctx, snapshotKey(targetID)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var records []SlotRecord
	if err := json.Unmarshal([]byte(val), &records); err != nil {
		return nil, false, err
	}
	return records, true, nil
}

func (s *SnapshotStore) Delete(ctx context.Context, targetID string) error {
	return s.client.Del(ctx, snapshotKey(targetID)).Err()
}
