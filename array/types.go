package array

import (
	"github.com/infinivision/flatset/disk"
	"github.com/infinivision/flatset/record"
	"github.com/infinivision/flatset/region"
)

// Array is a file of Len() consecutive records of Stride() bytes. It keeps no
// header: length and stride live only in the handle.
type Array interface {
	Close() error
	Flush() error
	Len() int64
	Stride() int
	Filler() record.Filler
	Reset(int) error
	Resize(int) error
	Append([]byte) error
	Map() (region.Region, error)
}

type array struct {
	n       int64 // record count, pending included
	flushed int64 // records already on disk
	stride  int
	limit   int
	f       record.Filler
	pending []byte
	d       disk.Disk
}
