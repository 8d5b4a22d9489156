package history

import (
	"bytes"
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

type Record struct {
	Seq uint64 `msgpack:"-"`

	Label     string    `msgpack:"l"`
	Time      time.Time `msgpack:"tm"`
	GoVersion string    `msgpack:"go,omitempty"`

	Steps int    `msgpack:"n"`
	Seed  uint64 `msgpack:"s"`
	Runs  int    `msgpack:"r"`

	Best   time.Duration `msgpack:"b"`
	Median time.Duration `msgpack:"m"`
	Mean   time.Duration `msgpack:"a"`

	AllocBytes uint64 `msgpack:"al,omitempty"`
	Checksum   int64  `msgpack:"c"`
}

func (rec *Record) String() string {
	return fmt.Sprintf("#%d %s %s: best %v median %v (%d runs, steps=%d seed=%d) checksum %d",
		rec.Seq, rec.Time.Format(time.RFC3339), rec.Label, rec.Best, rec.Median, rec.Runs, rec.Steps, rec.Seed, rec.Checksum)
}

func encodeRecord(rec *Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.GetEncoder()
	enc.Reset(&buf)
	enc.SetSortMapKeys(true)
	err := enc.Encode(rec)
	msgpack.PutEncoder(enc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s using MsgPack: %w", rec.Label, err)
	}
	return buf.Bytes(), nil
}

func decodeRecord(raw []byte) (*Record, error) {
	var r bytes.Reader
	r.Reset(raw)
	dec := msgpack.GetDecoder()
	dec.Reset(&r)
	rec := new(Record)
	err := dec.Decode(rec)
	msgpack.PutDecoder(dec)
	if err != nil {
		return nil, dataErrf(raw, err, "failed to decode msgpack into %T", rec)
	}
	return rec, nil
}
