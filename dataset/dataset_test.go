package dataset

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gomap "github.com/pyihe/mapbench/map"
)

func toMap(ds *Dataset) map[uint64]string {
	out := make(map[uint64]string, ds.Len())
	ds.Range(func(key uint64, value string) bool {
		out[key] = value
		return true
	})
	return out
}

func TestGenerateLoad_Scenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "d.txt")
	require.NoError(t, Generate(path, 5, 3))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0 000\n1 111\n2 222\n3 333\n4 444\n", string(b))

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []Record{
		{0, "000"}, {1, "111"}, {2, "222"}, {3, "333"}, {4, "444"},
	}, ds.Records())
}

func TestGenerateLoad_RoundTrip(t *testing.T) {
	cases := []struct{ selection, size int }{
		{0, 0}, {0, 5}, {1, 0}, {10, 1}, {37, 16}, {1000, 4},
	}
	for _, c := range cases {
		path := filepath.Join(t.TempDir(), "data.txt")
		require.NoError(t, Generate(path, c.selection, c.size))

		ds, err := Load(path)
		if c.size == 0 && c.selection > 0 {
			// empty values are not representable, the single key is left without a value
			require.True(t, errors.Is(err, ErrMalformed))
			continue
		}
		require.NoError(t, err)
		require.Equal(t, c.selection, ds.Len())
		i := 0
		ds.Range(func(key uint64, value string) bool {
			assert.Equal(t, uint64(i), key)
			assert.Equal(t, strings.Repeat(string(rune('0'+i%10)), c.size), value)
			i++
			return true
		})
	}
}

func TestGenerate_NegativeSizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neg.txt")
	require.NoError(t, Generate(path, -3, 2))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, b)

	require.NoError(t, Generate(path, 2, -1))
	b, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0 \n1 \n", string(b))
}

func TestGenerate_Unwritable(t *testing.T) {
	err := Generate(filepath.Join(t.TempDir(), "missing", "d.txt"), 5, 3)
	assert.Error(t, err)
}

func TestLoad_Missing(t *testing.T) {
	ds, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
	require.NotNil(t, ds)
	assert.Equal(t, 0, ds.Len())
}

func TestRead_Malformed(t *testing.T) {
	ds, err := Read(strings.NewReader("0 aaa\n1 bbb\nXYZ garbage\n"))
	assert.True(t, errors.Is(err, ErrMalformed))
	assert.Equal(t, map[uint64]string{0: "aaa", 1: "bbb"}, toMap(ds))

	ds, err = Read(strings.NewReader("5 five\n-1 minus\n6 six\n"))
	assert.True(t, errors.Is(err, ErrMalformed))
	assert.Equal(t, map[uint64]string{5: "five"}, toMap(ds))

	// a key token with trailing letters is rejected as a whole
	ds, err = Read(strings.NewReader("4 four\n12abc\n13 thirteen\n"))
	assert.True(t, errors.Is(err, ErrMalformed))
	assert.Equal(t, map[uint64]string{4: "four"}, toMap(ds))
}

func TestRead_PartialOnReadError(t *testing.T) {
	boom := errors.New("disk gone")
	r := io.MultiReader(strings.NewReader("1 one\n2 two\n"), iotest.ErrReader(boom))

	ds, err := Read(r)
	assert.True(t, errors.Is(err, boom))
	assert.False(t, errors.Is(err, ErrMalformed))
	assert.Equal(t, map[uint64]string{1: "one", 2: "two"}, toMap(ds))
}

func TestRead_Duplicates(t *testing.T) {
	ds, err := Read(strings.NewReader("3 first\n1 one\n3 second\n2 two\n3 third\n"))
	require.NoError(t, err)
	assert.Equal(t, []Record{{1, "one"}, {2, "two"}, {3, "third"}}, ds.Records())
}

func TestRead_Whitespace(t *testing.T) {
	ds, err := Read(strings.NewReader("  7\tseven 8\n\neight\n"))
	require.NoError(t, err)
	assert.Equal(t, map[uint64]string{7: "seven", 8: "eight"}, toMap(ds))
}

func TestRead_Ascending(t *testing.T) {
	faker := gofakeit.New(1)
	var sb strings.Builder
	want := make(map[uint64]string)
	for i := 0; i < 300; i++ {
		k := faker.Uint64() % 10000
		v := faker.LetterN(8)
		want[k] = v
		sb.WriteString(strconv.FormatUint(k, 10) + " " + v + "\n")
	}

	ds, err := Read(strings.NewReader(sb.String()))
	require.NoError(t, err)
	assert.Equal(t, want, toMap(ds))

	var prev uint64
	first := true
	ds.Range(func(key uint64, _ string) bool {
		if !first {
			assert.Greater(t, key, prev)
		}
		prev, first = key, false
		return true
	})
}

func TestFingerprint(t *testing.T) {
	a, err := Read(strings.NewReader("1 a\n2 b\n3 c\n"))
	require.NoError(t, err)
	b, err := Read(strings.NewReader("3 c\n1 a\n2 b\n"))
	require.NoError(t, err)
	c, err := Read(strings.NewReader("1 a\n2 b\n3 d\n"))
	require.NoError(t, err)
	d, err := Read(strings.NewReader("1 a\n2 b\n"))
	require.NoError(t, err)

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), d.Fingerprint())

	reversed := func(f gomap.RangeFunc[uint64, string]) {
		recs := a.Records()
		for i := len(recs) - 1; i >= 0; i-- {
			if !f(recs[i].Key, recs[i].Value) {
				return
			}
		}
	}
	assert.Equal(t, a.Fingerprint(), FingerprintRange(reversed))

	m := gomap.NewMap[uint64, string]()
	b.Range(func(key uint64, value string) bool {
		m.Insert(key, value)
		return true
	})
	assert.Equal(t, a.Fingerprint(), FingerprintRange(m.Range))
}
