package loader

import (
	"io"

	"github.com/infinivision/flatset/array"
)

// Loader ingests a newline separated stream into an array and returns the
// number of records written. Carriage returns are dropped and a final line
// without a newline is kept.
type Loader interface {
	Load(io.ReadSeeker) (int64, error)
}

// fixed sizes the stride to the longest line in a first pass.
type fixed struct {
	size int
	a    array.Array
}

// growing widens the whole array whenever a line outgrows the stride.
type growing struct {
	size int
	a    array.Array
}
