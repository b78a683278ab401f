package array

import (
	"github.com/cockroachdb/errors"
	"github.com/infinivision/flatset/disk"
	"github.com/infinivision/flatset/errmsg"
	"github.com/infinivision/flatset/record"
	"github.com/infinivision/flatset/region"
)

// New wraps an empty backing file. Appended records are buffered up to
// limit bytes before they are written.
func New(d disk.Disk, stride int, f record.Filler, limit int) *array {
	return &array{d: d, stride: stride, f: f, limit: limit}
}

func (a *array) Close() error {
	if err := a.Flush(); err != nil {
		a.d.Close()
		return err
	}
	if err := a.d.Flush(); err != nil {
		a.d.Close()
		return err
	}
	return a.d.Close()
}

func (a *array) Flush() error {
	if len(a.pending) == 0 {
		return nil
	}
	if err := a.d.WriteAt(a.flushed*int64(a.stride), a.pending); err != nil {
		return err
	}
	a.flushed = a.n
	a.pending = a.pending[:0]
	return nil
}

func (a *array) Len() int64 {
	return a.n
}

func (a *array) Stride() int {
	return a.stride
}

func (a *array) Filler() record.Filler {
	return a.f
}

// Reset drops every record and starts over with the given stride.
func (a *array) Reset(stride int) error {
	a.n, a.flushed = 0, 0
	a.pending = a.pending[:0]
	a.stride = stride
	return a.d.Truncate(0)
}

// Resize rewrites every record to the wider stride. Records are moved from
// the last to the first: record i lands on [i*stride', (i+1)*stride') which
// only overlaps old records with index >= i, all of which already moved.
func (a *array) Resize(stride int) error {
	switch {
	case stride < a.stride:
		return errors.Wrapf(errmsg.StrideShrink, "%d -> %d", a.stride, stride)
	case stride == a.stride:
		return nil
	}
	if err := a.Flush(); err != nil {
		return err
	}
	if err := a.d.Truncate(a.n * int64(stride)); err != nil {
		return err
	}
	if a.n > 0 {
		r, err := region.New(a.d.Fd(), a.n*int64(stride), stride)
		if err != nil {
			return err
		}
		if err := move(r, a.n, a.stride, a.f); err != nil {
			r.Close()
			return errors.Wrapf(err, "resize %d -> %d", a.stride, stride)
		}
		if err := r.Close(); err != nil {
			return err
		}
	}
	a.stride = stride
	return nil
}

// Append encodes v into a new record slot. v must fit the current stride.
func (a *array) Append(v []byte) error {
	if len(v) > a.stride {
		return errors.Wrapf(errmsg.OutOfRange, "value of %d bytes exceeds stride %d", len(v), a.stride)
	}
	o := len(a.pending)
	a.pending = append(a.pending, make([]byte, a.stride)...)
	record.Encode(a.pending[o:], v, a.f)
	a.n++
	if len(a.pending) >= a.limit {
		return a.Flush()
	}
	return nil
}

// Map flushes pending records and maps all of them.
func (a *array) Map() (region.Region, error) {
	if err := a.Flush(); err != nil {
		return nil, err
	}
	r, err := region.New(a.d.Fd(), a.n*int64(a.stride), a.stride)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func move(r region.Region, n int64, old int, f record.Filler) error {
	if err := r.WillNeed(); err != nil {
		return err
	}
	src := r.View(old)
	buf := make([]byte, r.Stride())
	for i := n - 1; i >= 0; i-- {
		if err := src.ReadAt(i, buf); err != nil {
			return err
		}
		record.Pad(buf[old:], f)
		if err := r.WriteAt(i, buf); err != nil {
			return err
		}
	}
	return nil
}
