package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/goleak"

	"github.com/fitfusion/fusion/internal/models"
	"github.com/fitfusion/fusion/internal/workout"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestClient(t *testing.T) *Client {
	t.Helper()

	c, err := NewClient(filepath.Join(t.TempDir(), "fusion_test.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}

func rec(date, exercise string, duration, calories int) workout.Record {
	return workout.Record{
		Date:     date,
		Exercise: exercise,
		Duration: duration,
		Calories: calories,
	}
}

func TestAppendAndRead(t *testing.T) {
	c := newTestClient(t)

	_, err := c.AppendWorkout("alice", rec("2024-03-02", "Squats", 60, 6))
	require.NoError(t, err)

	doc, err := c.AppendWorkout("alice", rec("2024-03-01", "Push-ups", 120, 16))
	require.NoError(t, err)
	assert.NotEmpty(t, doc.ID.String())
	assert.Equal(t, "Push-ups", doc.Exercise)

	_, err = c.AppendWorkout("bob", rec("2024-03-01", "Burpees", 30, 3))
	require.NoError(t, err)

	got, err := c.Workouts("alice")
	require.NoError(t, err)

	assert.Equal(t, workout.Collection{
		rec("2024-03-01", "Push-ups", 120, 16),
		rec("2024-03-02", "Squats", 60, 6),
	}, got)

	got, err = c.Workouts("carol")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSameDayKeepsInsertionOrder(t *testing.T) {
	now := time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)

	c, err := NewClient(
		filepath.Join(t.TempDir(), "fusion_test.db"),
		WithNow(func() time.Time {
			now = now.Add(time.Minute)
			return now
		}),
	)
	require.NoError(t, err)

	defer c.Close()

	for _, name := range []string{"Squats", "Lunges", "Plank"} {
		_, err = c.AppendWorkout("alice", rec("2024-03-01", name, 60, 5))
		require.NoError(t, err)
	}

	got, err := c.Workouts("alice")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Squats", got[0].Exercise)
	assert.Equal(t, "Lunges", got[1].Exercise)
	assert.Equal(t, "Plank", got[2].Exercise)
}

func TestEmptyUser(t *testing.T) {
	c := newTestClient(t)

	_, err := c.AppendWorkout("", rec("2024-03-01", "Squats", 60, 6))
	require.ErrorIs(t, err, ErrEmptyUser)

	_, err = c.Workouts("")
	require.ErrorIs(t, err, ErrEmptyUser)

	_, err = c.Profile("")
	require.ErrorIs(t, err, ErrEmptyUser)
}

func TestProfile(t *testing.T) {
	c := newTestClient(t)

	_, err := c.Profile("alice")
	require.ErrorIs(t, err, ErrProfileNotFound)

	require.NoError(t, c.SaveProfile("alice", models.Profile{Name: "Alice", Age: 31}))

	p, err := c.Profile("alice")
	require.NoError(t, err)
	assert.Equal(t, models.Profile{Name: "Alice", Age: 31}, p)
}

func TestWatch(t *testing.T) {
	c := newTestClient(t)

	_, err := c.AppendWorkout("alice", rec("2024-03-01", "Squats", 60, 6))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())

	ch, err := c.Watch(ctx, "alice")
	require.NoError(t, err)

	initial := <-ch
	assert.Len(t, initial, 1)

	_, err = c.AppendWorkout("bob", rec("2024-03-01", "Plank", 60, 4))
	require.NoError(t, err)

	_, err = c.AppendWorkout("alice", rec("2024-03-02", "Lunges", 60, 5))
	require.NoError(t, err)

	next := <-ch
	assert.Len(t, next, 2)
	assert.Equal(t, "Lunges", next[1].Exercise)

	cancel()

	for range ch {
	}
}

func TestWatchLatestWins(t *testing.T) {
	c := newTestClient(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := c.Watch(ctx, "alice")
	require.NoError(t, err)

	for i := range 3 {
		_, err = c.AppendWorkout("alice", rec("2024-03-01", "Squats", 60+i, 6))
		require.NoError(t, err)
	}

	// the unread initial snapshot was replaced by the newest one
	got := <-ch
	assert.Len(t, got, 3)

	select {
	case extra := <-ch:
		t.Fatalf("unexpected snapshot: %v", extra)
	default:
	}
}

func TestConcurrentAppendsPublishNewestLast(t *testing.T) {
	c := newTestClient(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := c.Watch(ctx, "alice")
	require.NoError(t, err)

	<-ch

	const n = 20

	var wg sync.WaitGroup

	for i := range n {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := c.AppendWorkout("alice", rec("2024-03-01", "Squats", 60+i, 6))
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	got := <-ch
	assert.Len(t, got, n)
}

func TestWatchRacingClose(t *testing.T) {
	c, err := NewClient(filepath.Join(t.TempDir(), "fusion_test.db"))
	require.NoError(t, err)

	var wg sync.WaitGroup

	for range 10 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			ch, err := c.Watch(context.Background(), "alice")
			if err != nil {
				return
			}

			for range ch {
			}
		}()
	}

	require.NoError(t, c.Close())

	wg.Wait()
}

func TestCloseEndsWatch(t *testing.T) {
	c, err := NewClient(filepath.Join(t.TempDir(), "fusion_test.db"))
	require.NoError(t, err)

	ch, err := c.Watch(context.Background(), "alice")
	require.NoError(t, err)

	<-ch

	require.NoError(t, c.Close())

	_, ok := <-ch
	assert.False(t, ok)
}

func TestSecondInstanceFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fusion_test.db")

	c, err := NewClient(path)
	require.NoError(t, err)

	defer c.Close()

	_, err = NewClient(path)
	require.ErrorIs(t, err, ErrFusionRunning)
}

func TestReopen(t *testing.T) {
	c := newTestClient(t)

	_, err := c.AppendWorkout("alice", rec("2024-03-01", "Squats", 60, 6))
	require.NoError(t, err)

	require.NoError(t, c.Close())
	require.NoError(t, c.Open())

	got, err := c.Workouts("alice")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestMigrateRekeysLegacyDocuments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fusion_test.db")

	db, err := bolt.Open(path, 0o600, nil)
	require.NoError(t, err)

	docs := []models.StoredWorkout{
		models.NewStoredWorkout(rec("2024-03-05", "Squats", 60, 6), time.Now()),
		models.NewStoredWorkout(rec("2024-03-01", "Plank", 90, 4), time.Now()),
	}

	err = db.Update(func(tx *bolt.Tx) error {
		users, err := tx.CreateBucketIfNotExists([]byte(usersBucket))
		if err != nil {
			return err
		}

		wb, err := users.CreateBucket([]byte("alice"))
		if err != nil {
			return err
		}

		wb, err = wb.CreateBucket([]byte(workoutsBucket))
		if err != nil {
			return err
		}

		for i, d := range docs {
			v, err := json.Marshal(d)
			if err != nil {
				return err
			}

			// legacy keys: insertion order only
			err = wb.Put([]byte{byte('a' + i)}, v)
			if err != nil {
				return err
			}
		}

		return nil
	})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	c, err := NewClient(path)
	require.NoError(t, err)

	defer c.Close()

	err = c.View(func(tx *bolt.Tx) error {
		wb := tx.Bucket([]byte(usersBucket)).
			Bucket([]byte("alice")).
			Bucket([]byte(workoutsBucket))

		k, _ := wb.Cursor().First()
		assert.Equal(t, string(workoutKey(&docs[1])), string(k))

		assert.Nil(t, wb.Get([]byte("a")))

		return nil
	})
	require.NoError(t, err)

	err = c.View(func(tx *bolt.Tx) error {
		assert.Equal(t, schemaVersion, storedVersion(tx))
		return nil
	})
	require.NoError(t, err)
}
