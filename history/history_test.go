package history

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func setup(t testing.TB) (*Archive, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.db")
	a, err := Open(path, Options{
		IsTesting: true,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a, path
}

func record(label string, best time.Duration, steps int) *Record {
	return &Record{
		Label:     label,
		Time:      time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC),
		GoVersion: "go1.23",
		Steps:     steps,
		Runs:      10,
		Best:      best,
		Median:    best + time.Millisecond,
		Mean:      best + 2*time.Millisecond,
		Checksum:  1667447891,
	}
}

func TestAppendAndList(t *testing.T) {
	a, _ := setup(t)

	r1 := record("insert", 30*time.Millisecond, 100_000)
	r2 := record("insert", 20*time.Millisecond, 100_000)
	r3 := record("dispatch", 50*time.Millisecond, 100_000)
	require.NoError(t, a.Append(r1))
	require.NoError(t, a.Append(r2))
	require.NoError(t, a.Append(r3))
	assert.Equal(t, uint64(1), r1.Seq)
	assert.Equal(t, uint64(2), r2.Seq)
	assert.Equal(t, uint64(1), r3.Seq)

	recs, err := a.List("insert")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, r1.Seq, recs[0].Seq)
	assert.Equal(t, r2.Seq, recs[1].Seq)
	assert.Equal(t, r1.Best, recs[0].Best)
	assert.Equal(t, r1.Median, recs[0].Median)
	assert.Equal(t, r1.Checksum, recs[0].Checksum)
	assert.Equal(t, r1.GoVersion, recs[0].GoVersion)
	assert.True(t, r1.Time.Equal(recs[0].Time))

	recs, err = a.List("missing")
	require.NoError(t, err)
	assert.Empty(t, recs)

	labels, err := a.Labels()
	require.NoError(t, err)
	assert.Equal(t, []string{"dispatch", "insert"}, labels)
}

func TestLatestAndBest(t *testing.T) {
	a, _ := setup(t)

	require.NoError(t, a.Append(record("insert", 30*time.Millisecond, 100_000)))
	require.NoError(t, a.Append(record("insert", 20*time.Millisecond, 100_000)))
	require.NoError(t, a.Append(record("insert", 5*time.Millisecond, 1000)))
	require.NoError(t, a.Append(record("insert", 25*time.Millisecond, 100_000)))

	latest, err := a.Latest("insert")
	require.NoError(t, err)
	assert.Equal(t, uint64(4), latest.Seq)
	assert.Equal(t, 25*time.Millisecond, latest.Best)

	best, err := a.Best("insert", 100_000, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), best.Seq)
	assert.Equal(t, 20*time.Millisecond, best.Best)

	best, err = a.Best("insert", 1000, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), best.Seq)

	_, err = a.Best("insert", 100_000, 7)
	assert.True(t, errors.Is(err, ErrNotFound), "%v", err)

	_, err = a.Latest("missing")
	assert.True(t, errors.Is(err, ErrNotFound), "%v", err)
}

func TestAppendRequiresLabel(t *testing.T) {
	a, _ := setup(t)
	assert.Error(t, a.Append(&Record{}))
}

func TestReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	a, err := Open(path, Options{IsTesting: true})
	require.NoError(t, err)
	require.NoError(t, a.Append(record("insert", time.Millisecond, 10)))
	assert.Equal(t, path, a.Path())
	require.NoError(t, a.Close())

	a, err = Open(path, Options{IsTesting: true})
	require.NoError(t, err)
	defer a.Close()
	recs, err := a.List("insert")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 10, recs[0].Steps)

	require.NoError(t, a.Append(record("insert", time.Millisecond, 10)))
	latest, err := a.Latest("insert")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), latest.Seq)
}

func TestCorruptValue(t *testing.T) {
	a, _ := setup(t)
	require.NoError(t, a.Append(record("insert", time.Millisecond, 10)))

	require.NoError(t, a.bdb.Update(func(btx *bbolt.Tx) error {
		return btx.Bucket(runsBucket).Bucket([]byte("insert")).Put(seqKey(1), []byte{0xc1})
	}))

	_, err := a.List("insert")
	var de *DataError
	require.True(t, errors.As(err, &de), "%v", err)
	assert.Equal(t, []byte{0xc1}, de.Data)
	assert.Contains(t, err.Error(), "(1) c1")
}

func TestRecordString(t *testing.T) {
	r := record("insert", 20*time.Millisecond, 100_000)
	r.Seq = 3
	assert.Equal(t, "#3 2026-10-16T12:00:00Z insert: best 20ms median 21ms (10 runs, steps=100000 seed=0) checksum 1667447891", r.String())
}
