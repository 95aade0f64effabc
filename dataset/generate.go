package dataset

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Generate writes selectionSize records to path, creating or truncating it.
// Record i has the value '0'+i%10 repeated stringSize times. Negative sizes
// are treated as zero.
func Generate(path string, selectionSize, stringSize int) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create data file")
	}
	defer f.Close()

	if err = write(f, selectionSize, stringSize); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return errors.Wrap(f.Close(), "close data file")
}

func write(f *os.File, selectionSize, stringSize int) error {
	if stringSize < 0 {
		stringSize = 0
	}
	w := bufio.NewWriter(f)
	var patterns [10]string
	for d := range patterns {
		patterns[d] = strings.Repeat(string(rune('0'+d)), stringSize)
	}

	buf := make([]byte, 0, 24+stringSize)
	for i := 0; i < selectionSize; i++ {
		buf = strconv.AppendInt(buf[:0], int64(i), 10)
		buf = append(buf, ' ')
		buf = append(buf, patterns[i%10]...)
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return w.Flush()
}
