// Package dataset generates, loads and fingerprints the synthetic key/string
// data sets replayed into every benchmarked container.
package dataset

import (
	"encoding/binary"

	"github.com/spaolacci/murmur3"

	gomap "github.com/pyihe/mapbench/map"
)

type Record struct {
	Key   uint64
	Value string
}

// Dataset holds records ordered by ascending key, one record per key.
// It is never modified after Read returns.
type Dataset struct {
	records []Record
}

func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

// Range visits records in ascending key order until f returns false.
func (d *Dataset) Range(f gomap.RangeFunc[uint64, string]) {
	if d == nil {
		return
	}
	for _, r := range d.records {
		if !f(r.Key, r.Value) {
			return
		}
	}
}

// Records returns a copy of the records.
func (d *Dataset) Records() []Record {
	if d == nil {
		return nil
	}
	out := make([]Record, len(d.records))
	copy(out, d.records)
	return out
}

// Fingerprint is an order independent digest of the dataset content.
func (d *Dataset) Fingerprint() uint64 {
	return FingerprintRange(d.Range)
}

// FingerprintRange digests whatever the range function visits. Two
// collections holding the same key/value pairs produce the same value
// regardless of their iteration order.
func FingerprintRange(rangeFn func(f gomap.RangeFunc[uint64, string])) uint64 {
	var (
		sum   uint64
		count uint64
		buf   []byte
	)
	rangeFn(func(key uint64, value string) bool {
		buf = binary.LittleEndian.AppendUint64(buf[:0], key)
		buf = append(buf, value...)
		sum += murmur3.Sum64(buf)
		count++
		return true
	})
	return sum ^ murmur3.Sum64(binary.LittleEndian.AppendUint64(nil, count))
}
