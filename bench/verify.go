package bench

import (
	"github.com/pkg/errors"

	"github.com/pyihe/mapbench/dataset"
	gomap "github.com/pyihe/mapbench/map"
)

var (
	ErrSizeMismatch  = errors.New("container size differs from data set")
	ErrMissingKey    = errors.New("key missing from container")
	ErrValueMismatch = errors.New("container value differs from data set")
	ErrFingerprint   = errors.New("container fingerprint differs from data set")
)

// Verify checks that c holds exactly the records of ds. It is not timed and
// must run after Run.
func Verify(ds *dataset.Dataset, c gomap.Container[uint64, string]) error {
	if ds.Len() != c.Len() {
		return errors.Wrapf(ErrSizeMismatch, "want %d, got %d", ds.Len(), c.Len())
	}

	var err error
	ds.Range(func(key uint64, value string) bool {
		got, ok := c.Get(key)
		switch {
		case !ok:
			err = errors.Wrapf(ErrMissingKey, "key %d", key)
		case got != value:
			err = errors.Wrapf(ErrValueMismatch, "key %d: want %q, got %q", key, value, got)
		}
		return err == nil
	})
	if err != nil {
		return err
	}

	if want, got := ds.Fingerprint(), dataset.FingerprintRange(c.Range); want != got {
		return errors.Wrapf(ErrFingerprint, "want %x, got %x", want, got)
	}
	return nil
}
