// Package store persists workout records per user and streams snapshots of
// them to subscribers
package store

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/fitfusion/fusion/internal/models"
	"github.com/fitfusion/fusion/internal/workout"
)

const (
	usersBucket    = "users"
	metaBucket     = "meta"
	workoutsBucket = "workouts"
	profileKey     = "profile"
	versionKey     = "schema_version"
	keyTimeLayout  = "20060102T150405.000000000"
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
	now  func() time.Time
	done chan struct{}
	subs map[string]map[*subscriber]struct{}
	path string
	mu   sync.Mutex
	wg   sync.WaitGroup

	// writeMu orders appends with their published snapshots.
	writeMu sync.Mutex
}

type subscriber struct {
	ch chan workout.Collection
}

// Option configures a Client.
type Option func(*Client)

// WithNow overrides the clock used to stamp stored documents.
func WithNow(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// workoutKey orders documents by calendar date, then by creation time.
func workoutKey(w *models.StoredWorkout) []byte {
	return []byte(
		w.Date + "|" + w.CreatedAt.UTC().Format(keyTimeLayout) + "|" + w.ID.String(),
	)
}

func (c *Client) AppendWorkout(
	user string,
	rec workout.Record,
) (models.StoredWorkout, error) {
	if user == "" {
		return models.StoredWorkout{}, ErrEmptyUser
	}

	doc := models.NewStoredWorkout(rec, c.now())

	value, err := json.Marshal(doc)
	if err != nil {
		return models.StoredWorkout{}, err
	}

	var snapshot workout.Collection

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	err = c.Update(func(tx *bolt.Tx) error {
		b, err := userBucket(tx, user)
		if err != nil {
			return err
		}

		wb, err := b.CreateBucketIfNotExists([]byte(workoutsBucket))
		if err != nil {
			return err
		}

		err = wb.Put(workoutKey(&doc), value)
		if err != nil {
			return err
		}

		snapshot, err = readWorkouts(wb)

		return err
	})
	if err != nil {
		return models.StoredWorkout{}, err
	}

	slog.Debug(
		"workout stored",
		slog.String("user", user),
		slog.String("id", doc.ID.String()),
	)

	c.publish(user, snapshot)

	return doc, nil
}

func (c *Client) Workouts(user string) (workout.Collection, error) {
	if user == "" {
		return nil, ErrEmptyUser
	}

	var coll workout.Collection

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(usersBucket)).Bucket([]byte(user))
		if b == nil {
			return nil
		}

		wb := b.Bucket([]byte(workoutsBucket))
		if wb == nil {
			return nil
		}

		var err error

		coll, err = readWorkouts(wb)

		return err
	})

	return coll, err
}

func (c *Client) SaveProfile(user string, p models.Profile) error {
	if user == "" {
		return ErrEmptyUser
	}

	value, err := json.Marshal(p)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		b, err := userBucket(tx, user)
		if err != nil {
			return err
		}

		return b.Put([]byte(profileKey), value)
	})
}

func (c *Client) Profile(user string) (models.Profile, error) {
	var p models.Profile

	if user == "" {
		return p, ErrEmptyUser
	}

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(usersBucket)).Bucket([]byte(user))
		if b == nil {
			return ErrProfileNotFound.Fmt(user)
		}

		v := b.Get([]byte(profileKey))
		if len(v) == 0 {
			return ErrProfileNotFound.Fmt(user)
		}

		return json.Unmarshal(v, &p)
	})

	return p, err
}

func (c *Client) Watch(
	ctx context.Context,
	user string,
) (<-chan workout.Collection, error) {
	initial, err := c.Workouts(user)
	if err != nil {
		return nil, err
	}

	sub := &subscriber{ch: make(chan workout.Collection, 1)}

	c.mu.Lock()

	if c.done == nil {
		c.mu.Unlock()
		return nil, ErrClosed
	}

	if c.subs[user] == nil {
		c.subs[user] = make(map[*subscriber]struct{})
	}

	c.subs[user][sub] = struct{}{}
	sub.ch <- initial
	done := c.done

	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()

		select {
		case <-ctx.Done():
		case <-done:
		}

		c.mu.Lock()
		defer c.mu.Unlock()

		if _, ok := c.subs[user][sub]; ok {
			delete(c.subs[user], sub)
			close(sub.ch)
		}
	}()

	return sub.ch, nil
}

// publish replaces any snapshot a subscriber has not consumed yet with the
// latest one, so slow readers never block writers.
func (c *Client) publish(user string, snapshot workout.Collection) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for sub := range c.subs[user] {
		select {
		case <-sub.ch:
		default:
		}

		sub.ch <- snapshot
	}
}

func (c *Client) Open() error {
	db, err := openDB(c.path)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.DB = db
	c.done = make(chan struct{})
	c.mu.Unlock()

	return nil
}

// Close ends all watches and releases the database lock.
func (c *Client) Close() error {
	c.mu.Lock()

	if c.done != nil {
		close(c.done)
		c.done = nil
	}

	c.mu.Unlock()

	c.wg.Wait()

	return c.DB.Close()
}

func userBucket(tx *bolt.Tx, user string) (*bolt.Bucket, error) {
	return tx.Bucket([]byte(usersBucket)).CreateBucketIfNotExists([]byte(user))
}

func readWorkouts(wb *bolt.Bucket) (workout.Collection, error) {
	var coll workout.Collection

	err := wb.ForEach(func(_, v []byte) error {
		var doc models.StoredWorkout

		err := json.Unmarshal(v, &doc)
		if err != nil {
			return err
		}

		coll = append(coll, doc.ToRecord())

		return nil
	})
	if err != nil {
		return nil, err
	}

	coll.SortByDate()

	return coll, nil
}

// open creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, ErrFusionRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string, opts ...Option) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(usersBucket))
		if err != nil {
			return err
		}

		_, err = tx.CreateBucketIfNotExists([]byte(metaBucket))
		if err != nil {
			return err
		}

		return migrate(tx)
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	c := &Client{
		DB:   db,
		path: dbPath,
		now:  time.Now,
		done: make(chan struct{}),
		subs: make(map[string]map[*subscriber]struct{}),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}
