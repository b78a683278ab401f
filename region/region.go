package region

import (
	"github.com/cockroachdb/errors"
	"github.com/infinivision/flatset/errmsg"
	"golang.org/x/sys/unix"
)

// New maps the first size bytes of fd. A zero size yields an empty region
// without a mapping.
func New(fd int, size int64, stride int) (*region, error) {
	if size == 0 {
		return &region{owner: true, stride: stride}, nil
	}
	buf, err := unix.Mmap(fd, 0, int(size), unix.PROT_WRITE|unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, errors.Wrapf(err, "mmap %d bytes", size)
	}
	return &region{owner: true, stride: stride, buf: buf}, nil
}

func (r *region) Close() error {
	if !r.owner || r.buf == nil {
		return nil
	}
	buf := r.buf
	r.buf = nil
	return unix.Munmap(buf)
}

func (r *region) Flush() error {
	if r.buf == nil {
		return nil
	}
	return unix.Msync(r.buf, unix.MS_SYNC)
}

func (r *region) Stride() int {
	return r.stride
}

func (r *region) Records() int64 {
	if r.stride == 0 {
		return 0
	}
	return int64(len(r.buf) / r.stride)
}

func (r *region) Random() error {
	return r.advise(unix.MADV_RANDOM)
}

func (r *region) WillNeed() error {
	return r.advise(unix.MADV_WILLNEED)
}

// View returns a region sharing the mapping under another stride. Closing
// the view does not unmap.
func (r *region) View(stride int) Region {
	return &region{owner: false, stride: stride, buf: r.buf}
}

func (r *region) ReadAt(i int64, buf []byte) error {
	o, err := r.offset(i, buf)
	if err != nil {
		return err
	}
	if copy(buf[:r.stride], r.buf[o:o+int64(r.stride)]) != r.stride {
		return errmsg.ReadFailed
	}
	return nil
}

func (r *region) WriteAt(i int64, buf []byte) error {
	o, err := r.offset(i, buf)
	if err != nil {
		return err
	}
	if copy(r.buf[o:o+int64(r.stride)], buf[:r.stride]) != r.stride {
		return errmsg.WriteFailed
	}
	return nil
}

func (r *region) offset(i int64, buf []byte) (int64, error) {
	o := i * int64(r.stride)
	switch {
	case i < 0:
		return 0, errors.Wrapf(errmsg.OutOfRange, "index %d", i)
	case o+int64(r.stride) > int64(len(r.buf)):
		return 0, errors.Wrapf(errmsg.OutOfRange, "index %d of %d", i, r.Records())
	case len(buf) < r.stride:
		return 0, errors.Wrapf(errmsg.OutOfRange, "buffer %d smaller than stride %d", len(buf), r.stride)
	}
	return o, nil
}

func (r *region) advise(advice int) error {
	if r.buf == nil {
		return nil
	}
	return unix.Madvise(r.buf, advice)
}
