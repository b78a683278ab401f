package disk

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/infinivision/flatset/constant"
	"github.com/infinivision/flatset/errmsg"
)

// New opens path for reading and writing, creating it if missing. When
// truncate is set any previous content is dropped.
func New(path string, truncate bool) (*disk, error) {
	flag := os.O_CREATE | os.O_RDWR
	if truncate {
		flag |= os.O_TRUNC
	}
	fp, err := os.OpenFile(path, flag, constant.FileMode)
	if err != nil {
		return nil, err
	}
	return &disk{fp}, nil
}

func (d *disk) Fd() int {
	return int(d.fp.Fd())
}

func (d *disk) Close() error {
	return d.fp.Close()
}

func (d *disk) Flush() error {
	return d.fp.Sync()
}

func (d *disk) Truncate(size int64) error {
	if err := d.fp.Truncate(size); err != nil {
		return errors.Wrapf(err, "truncate to %d", size)
	}
	return nil
}

func (d *disk) WriteAt(o int64, buf []byte) error {
	n, err := d.fp.WriteAt(buf, o)
	switch {
	case err != nil:
		return errors.Wrapf(err, "write %d bytes at %d", len(buf), o)
	case n != len(buf):
		return errmsg.WriteFailed
	}
	return nil
}
