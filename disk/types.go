package disk

import (
	"os"
)

type Disk interface {
	Fd() int
	Close() error
	Flush() error
	Truncate(int64) error
	WriteAt(int64, []byte) error
}

type disk struct {
	fp *os.File
}
