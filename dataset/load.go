package dataset

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var ErrMalformed = errors.New("malformed record")

// Load reads the data file at path. When the file cannot be opened the
// returned dataset is empty and err describes why. A malformed record ends
// the read; the records before it are kept and err wraps ErrMalformed.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return &Dataset{}, errors.Wrap(err, "open data file")
	}
	defer f.Close()

	ds, err := Read(f)
	return ds, errors.Wrapf(err, "read %s", path)
}

// Read parses whitespace separated key/value pairs from r. Reading stops at
// end of input, at a key that is not an unsigned decimal integer or at a key
// with no value after it. Later duplicates of a key replace earlier ones.
func Read(r io.Reader) (*Dataset, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<30)
	sc.Split(bufio.ScanWords)

	byKey := make(map[uint64]string)
	var err error
	for sc.Scan() {
		key, perr := strconv.ParseUint(sc.Text(), 10, 64)
		if perr != nil {
			err = errors.Wrapf(ErrMalformed, "key %q", sc.Text())
			break
		}
		if !sc.Scan() {
			if err = sc.Err(); err == nil {
				err = errors.Wrapf(ErrMalformed, "key %d has no value", key)
			}
			break
		}
		byKey[key] = sc.Text()
	}
	if err == nil {
		err = sc.Err()
	}

	keys := maps.Keys(byKey)
	slices.Sort(keys)
	ds := &Dataset{records: make([]Record, len(keys))}
	for i, k := range keys {
		ds.records[i] = Record{Key: k, Value: byKey[k]}
	}
	return ds, err
}
