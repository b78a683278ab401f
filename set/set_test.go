package set

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/infinivision/flatset/constant"
	"github.com/infinivision/flatset/errmsg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSet(t *testing.T, v Variant) (*set, string) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Path = filepath.Join(t.TempDir(), "nested", "dir", "flat.set")
	cfg.Variant = v
	cfg.LogWriter = io.Discard
	s, err := Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, cfg.Path
}

func writeLines(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lines.txt")
	require.NoError(t, os.WriteFile(path, []byte(data), 0664))
	return path
}

func TestFixedScenario(t *testing.T) {
	s, path := newTestSet(t, Fixed)
	n, err := s.Load(writeLines(t, "banana\napple\ncherry\n"))
	require.NoError(t, err)
	require.Equal(t, int64(3), n)
	require.Equal(t, 6, s.Stride())

	require.NoError(t, s.Sort())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "apple bananacherry", string(data))

	require.Equal(t, int64(1), s.Search([]byte("banana")))
	require.Equal(t, int64(0), s.Search([]byte("apple")))
	require.Equal(t, constant.NotFound, s.Search([]byte("bana")))
	require.Equal(t, constant.NotFound, s.Search([]byte("notinfile")))
}

func TestLoadSortSearch(t *testing.T) {
	for _, v := range []Variant{Growing, Fixed} {
		t.Run(fmt.Sprintf("variant-%d", v), func(t *testing.T) {
			var lines []string
			for i := 0; i < 2000; i++ {
				lines = append(lines, fmt.Sprintf("host-%d.example%s.com", i*7919%2000, strings.Repeat("x", i%37)))
			}
			s, _ := newTestSet(t, v)
			n, err := s.Load(writeLines(t, strings.Join(lines, "\r\n")))
			require.NoError(t, err)
			require.Equal(t, int64(len(lines)), n)
			require.Equal(t, n, s.Len())

			require.NoError(t, s.Sort())
			for _, l := range lines {
				i := s.Search([]byte(l))
				require.NotEqual(t, constant.NotFound, i, l)
			}
			require.False(t, s.Contains([]byte("notinfile")))
			require.False(t, s.Contains([]byte("host-1")))
		})
	}
}

func TestSortIdempotent(t *testing.T) {
	s, path := newTestSet(t, Growing)
	_, err := s.Load(writeLines(t, "pear\nfig\nplum\nkiwi\napple\nlime\n"))
	require.NoError(t, err)

	require.NoError(t, s.Sort())
	once, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, s.Sort())
	twice, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, once, twice)
}

func TestAddGrowth(t *testing.T) {
	s, path := newTestSet(t, Growing)
	var vals []string
	for i := 1; i <= 64; i += 5 {
		v := fmt.Sprintf("%02d%s", i, strings.Repeat("v", i))
		vals = append(vals, v)
		require.NoError(t, s.Add([]byte(v)))
	}
	require.Equal(t, int64(len(vals)), s.Len())
	require.GreaterOrEqual(t, s.Stride(), len(vals[len(vals)-1]))

	// before sorting the records keep insertion order
	require.NoError(t, s.a.Flush())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	w := s.Stride()
	require.Len(t, data, len(vals)*w)
	for i, v := range vals {
		require.Equal(t, v, string(bytes.TrimRight(data[i*w:(i+1)*w], "\x00")))
	}

	require.NoError(t, s.Sort())
	for _, v := range vals {
		require.True(t, s.Contains([]byte(v)), v)
	}
}

func TestLoadThenAdd(t *testing.T) {
	s, _ := newTestSet(t, Growing)
	_, err := s.Load(writeLines(t, "alpha\nbeta"))
	require.NoError(t, err)
	require.NoError(t, s.Add([]byte("a-value-much-longer-than-the-initial-stride")))
	require.NoError(t, s.Add([]byte("gamma")))
	require.NoError(t, s.Sort())
	for _, v := range []string{"alpha", "beta", "gamma", "a-value-much-longer-than-the-initial-stride"} {
		require.True(t, s.Contains([]byte(v)), v)
	}
}

func TestEmptyAndSingle(t *testing.T) {
	s, _ := newTestSet(t, Growing)
	require.NoError(t, s.Sort())
	require.Equal(t, constant.NotFound, s.Search([]byte("anything")))
	require.Equal(t, constant.NotFound, s.Search(nil))

	s, _ = newTestSet(t, Growing)
	require.NoError(t, s.Add([]byte("only")))
	require.NoError(t, s.Sort())
	require.Equal(t, int64(0), s.Search([]byte("only")))
	require.Equal(t, constant.NotFound, s.Search([]byte("onl")))
}

func TestQueryLongerThanStride(t *testing.T) {
	s, _ := newTestSet(t, Fixed)
	_, err := s.Load(writeLines(t, "abc\nde\n"))
	require.NoError(t, err)
	require.NoError(t, s.Sort())
	require.Equal(t, constant.NotFound, s.Search([]byte("abcd")))
}

func TestMutateAfterSort(t *testing.T) {
	s, _ := newTestSet(t, Growing)
	require.NoError(t, s.Add([]byte("a")))
	require.NoError(t, s.Sort())
	require.True(t, errors.Is(s.Add([]byte("b")), errmsg.AlreadySorted))
	_, err := s.Load(writeLines(t, "c\n"))
	require.True(t, errors.Is(err, errmsg.AlreadySorted))
}

func TestClosed(t *testing.T) {
	s, _ := newTestSet(t, Growing)
	require.NoError(t, s.Add([]byte("a")))
	require.NoError(t, s.Close())
	require.True(t, errors.Is(s.Add([]byte("b")), errmsg.Closed))
	require.True(t, errors.Is(s.Sort(), errmsg.Closed))
	require.Equal(t, constant.NotFound, s.Search([]byte("a")))
	require.NoError(t, s.Close())
}

func TestOpenRemovesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flat.set")
	require.NoError(t, os.WriteFile(path, []byte("stale content"), 0664))
	cfg := DefaultConfig()
	cfg.Path = path
	cfg.LogWriter = io.Discard
	s, err := Open(cfg)
	require.NoError(t, err)
	defer s.Close()
	require.Zero(t, s.Len())
	st, err := os.Stat(path)
	require.NoError(t, err)
	require.Zero(t, st.Size())
}

func TestOpenNotDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0664))
	cfg := DefaultConfig()
	cfg.Path = filepath.Join(file, "flat.set")
	_, err := Open(cfg)
	require.True(t, errors.Is(err, errmsg.NotDirectory))
}

func TestConcurrentSearch(t *testing.T) {
	s, _ := newTestSet(t, Growing)
	var lines []string
	for i := 0; i < 500; i++ {
		lines = append(lines, fmt.Sprintf("line-%04d", i))
	}
	_, err := s.Load(writeLines(t, strings.Join(lines, "\n")))
	require.NoError(t, err)
	require.NoError(t, s.Sort())

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := g; i < len(lines); i += 8 {
				assert.Equal(t, int64(i), s.Search([]byte(lines[i])))
			}
		}(g)
	}
	wg.Wait()
}
