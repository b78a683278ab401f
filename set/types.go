package set

import (
	"io"
	"sync"

	"github.com/infinivision/flatset/array"
	"github.com/infinivision/flatset/record"
	"github.com/infinivision/flatset/region"
	"github.com/infinivision/flatset/scratch"
	"github.com/nnsgmsone/damrey/logger"
)

type Variant int

const (
	// Growing pads with zero bytes and widens every record whenever a
	// longer value arrives.
	Growing Variant = iota
	// Fixed pads with spaces and sizes the stride to the longest line of
	// a two pass load.
	Fixed
)

/*
Set is a sorted set of byte strings kept in a flat file of fixed-stride records.
Load, Add and Sort must not run concurrently with any other call. After Sort,
Search and Contains may be called from any number of goroutines.
*/
type Set interface {
	Close() error

	Sort() error
	Add([]byte) error
	Load(string) (int64, error)

	Len() int64
	Stride() int
	Contains([]byte) bool
	Search([]byte) int64
}

type Config struct {
	Path           string // backing file
	Variant        Variant
	LogWriter      io.Writer
	ReadBufferSize int // read and write-behind buffer size
}

type set struct {
	sync.Mutex
	closed bool
	sorted bool
	cfg    Config
	f      record.Filler
	a      array.Array
	rg     region.Region // cached read-only view for Search
	log    logger.Log
	pool   scratch.Pool
}
