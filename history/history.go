/*
Package history archives benchmark results in a Bolt file so that a run can be
compared against earlier ones.

**Layout.**
A root bucket "runs" holds one nested bucket per case label. Keys inside a
label bucket are big-endian sequence numbers assigned by Bolt, so a cursor
walks records oldest first.

**Values** are msgpack encodings of Record.
*/
package history

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.etcd.io/bbolt"
)

var ErrNotFound = errors.New("not found")

var runsBucket = []byte("runs")

type Options struct {
	Logger *slog.Logger

	// IsTesting trades durability for speed.
	IsTesting bool

	// Timeout bounds waiting for the file lock held by another process.
	Timeout time.Duration
}

type Archive struct {
	bdb *bbolt.DB
	log *slog.Logger
}

func Open(path string, opt Options) (*Archive, error) {
	bopt := *bbolt.DefaultOptions
	bopt.Timeout = opt.Timeout
	if bopt.Timeout == 0 {
		bopt.Timeout = 10 * time.Second
	}
	if opt.IsTesting {
		bopt.NoSync = true
		bopt.NoFreelistSync = true
	}

	bdb, err := bbolt.Open(path, 0666, &bopt)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	err = bdb.Update(func(btx *bbolt.Tx) error {
		_, err := btx.CreateBucketIfNotExists(runsBucket)
		return err
	})
	if err != nil {
		bdb.Close()
		return nil, fmt.Errorf("history: init: %w", err)
	}

	log := opt.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Archive{bdb: bdb, log: log}, nil
}

func (a *Archive) Close() error {
	err := a.bdb.Close()
	if err != nil {
		return fmt.Errorf("history: closing: %w", err)
	}
	return nil
}

func (a *Archive) Path() string {
	return a.bdb.Path()
}

// Append stores rec under its label and assigns rec.Seq.
func (a *Archive) Append(rec *Record) error {
	if rec.Label == "" {
		return fmt.Errorf("history: record without label")
	}
	err := a.bdb.Update(func(btx *bbolt.Tx) error {
		b, err := btx.Bucket(runsBucket).CreateBucketIfNotExists([]byte(rec.Label))
		if err != nil {
			return err
		}
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		raw, err := encodeRecord(rec)
		if err != nil {
			return err
		}
		if err := b.Put(seqKey(seq), raw); err != nil {
			return err
		}
		rec.Seq = seq
		return nil
	})
	if err != nil {
		return fmt.Errorf("history: append %q: %w", rec.Label, err)
	}
	a.log.Debug("history: APPEND", "label", rec.Label, "seq", rec.Seq, "best", rec.Best)
	return nil
}

// List returns every record of label, oldest first.
func (a *Archive) List(label string) ([]*Record, error) {
	var recs []*Record
	err := a.each(label, false, func(rec *Record) bool {
		recs = append(recs, rec)
		return true
	})
	return recs, err
}

// Latest returns the most recently appended record of label.
func (a *Archive) Latest(label string) (*Record, error) {
	var found *Record
	err := a.each(label, true, func(rec *Record) bool {
		found = rec
		return false
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("history: %q: %w", label, ErrNotFound)
	}
	return found, nil
}

// Best returns the record of label with the shortest best run among those
// measured on the given workload.
func (a *Archive) Best(label string, steps int, seed uint64) (*Record, error) {
	var found *Record
	err := a.each(label, false, func(rec *Record) bool {
		if rec.Steps == steps && rec.Seed == seed && (found == nil || rec.Best < found.Best) {
			found = rec
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("history: %q steps=%d seed=%d: %w", label, steps, seed, ErrNotFound)
	}
	return found, nil
}

// Labels returns every label with at least one record, in byte order.
func (a *Archive) Labels() ([]string, error) {
	var labels []string
	err := a.bdb.View(func(btx *bbolt.Tx) error {
		return btx.Bucket(runsBucket).ForEach(func(k, v []byte) error {
			if v == nil {
				labels = append(labels, string(k))
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("history: labels: %w", err)
	}
	return labels, nil
}

func (a *Archive) each(label string, reverse bool, f func(rec *Record) bool) error {
	err := a.bdb.View(func(btx *bbolt.Tx) error {
		b := btx.Bucket(runsBucket).Bucket([]byte(label))
		if b == nil {
			return nil
		}
		c := b.Cursor()
		k, v := c.First()
		if reverse {
			k, v = c.Last()
		}
		for k != nil {
			rec, err := decodeRecord(v)
			if err != nil {
				return err
			}
			rec.Seq = binary.BigEndian.Uint64(k)
			if !f(rec) {
				return nil
			}
			if reverse {
				k, v = c.Prev()
			} else {
				k, v = c.Next()
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("history: %q: %w", label, err)
	}
	return nil
}

func seqKey(seq uint64) []byte {
	return binary.BigEndian.AppendUint64(nil, seq)
}
