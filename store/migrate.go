package store

import (
	"bytes"
	"encoding/json"
	"strconv"

	"go.etcd.io/bbolt"

	"github.com/fitfusion/fusion/internal/models"
)

const schemaVersion = 1

// rekeyWorkouts moves every document whose key differs from workoutKey so
// that bucket order is date order, then creation order within a date.
func rekeyWorkouts(tx *bbolt.Tx) error {
	users := tx.Bucket([]byte(usersBucket))

	return users.ForEachBucket(func(user []byte) error {
		wb := users.Bucket(user).Bucket([]byte(workoutsBucket))
		if wb == nil {
			return nil
		}

		type entry struct {
			key, value []byte
		}

		var stale []entry

		err := wb.ForEach(func(k, v []byte) error {
			var doc models.StoredWorkout

			err := json.Unmarshal(v, &doc)
			if err != nil {
				return err
			}

			if !bytes.Equal(k, workoutKey(&doc)) {
				stale = append(stale, entry{
					key:   bytes.Clone(k),
					value: bytes.Clone(v),
				})
			}

			return nil
		})
		if err != nil {
			return err
		}

		for _, e := range stale {
			var doc models.StoredWorkout

			err = json.Unmarshal(e.value, &doc)
			if err != nil {
				return err
			}

			err = wb.Delete(e.key)
			if err != nil {
				return err
			}

			err = wb.Put(workoutKey(&doc), e.value)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func storedVersion(tx *bbolt.Tx) int {
	v := tx.Bucket([]byte(metaBucket)).Get([]byte(versionKey))

	n, err := strconv.Atoi(string(v))
	if err != nil {
		return 0
	}

	return n
}

func migrate(tx *bbolt.Tx) error {
	if storedVersion(tx) >= schemaVersion {
		return nil
	}

	err := rekeyWorkouts(tx)
	if err != nil {
		return err
	}

	return tx.Bucket([]byte(metaBucket)).Put(
		[]byte(versionKey),
		[]byte(strconv.Itoa(schemaVersion)),
	)
}
