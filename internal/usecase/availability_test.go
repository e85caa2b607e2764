//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"courtbook/internal/domain/slot"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fetchFunc func(ctx context.Context, courtID int64, date string) (*slot.Day, error)

func (f fetchFunc) Availability(ctx context.Context, courtID int64, date string) (*slot.Day, error) {
	return f(ctx, courtID, date)
}

func TestAvailabilityQuery(t *testing.T) {
	t.Run("load stores the snapshot", func(t *testing.T) {
		q := usecase.NewAvailabilityQuery(fetchFunc(func(_ context.Context, courtID int64, date string) (*slot.Day, error) {
			return &slot.Day{CourtID: courtID, Date: date}, nil
		}))

		day, err := q.Load(context.Background(), 7, "2024-06-01")
		require.NoError(t, err)
		assert.Equal(t, "2024-06-01", day.Date)
		assert.Equal(t, day, q.Snapshot())
	})

	t.Run("fetch error leaves the previous snapshot", func(t *testing.T) {
		fail := false
		q := usecase.NewAvailabilityQuery(fetchFunc(func(_ context.Context, courtID int64, date string) (*slot.Day, error) {
			if fail {
				return nil, errs.New("backend down")
			}
			return &slot.Day{CourtID: courtID, Date: date}, nil
		}))

		_, err := q.Load(context.Background(), 7, "2024-06-01")
		require.NoError(t, err)

		fail = true
		_, err = q.Load(context.Background(), 7, "2024-06-02")
		require.Error(t, err)
		assert.Equal(t, "2024-06-01", q.Snapshot().Date)
	})

	t.Run("late response of a superseded load is discarded", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})

		q := usecase.NewAvailabilityQuery(fetchFunc(func(_ context.Context, courtID int64, date string) (*slot.Day, error) {
			if date == "2024-06-01" {
				close(started)
				<-release
			}
			return &slot.Day{CourtID: courtID, Date: date}, nil
		}))

		firstErr := make(chan error, 1)
		go func() {
			_, err := q.Load(context.Background(), 7, "2024-06-01")
			firstErr <- err
		}()

		<-started
		second, err := q.Load(context.Background(), 7, "2024-06-02")
		require.NoError(t, err)
		assert.Equal(t, "2024-06-02", second.Date)

		close(release)
		err = <-firstErr
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrSuperseded))

		// The older response never overwrites the newer snapshot.
		assert.Equal(t, "2024-06-02", q.Snapshot().Date)
	})
}
