package loader

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/infinivision/flatset/array"
	"github.com/infinivision/flatset/constant"
	"github.com/infinivision/flatset/stride"
)

func NewFixed(a array.Array, size int) *fixed {
	if size <= 0 {
		size = constant.ReadBufferSize
	}
	return &fixed{size, a}
}

func NewGrowing(a array.Array, size int) *growing {
	if size <= 0 {
		size = constant.ReadBufferSize
	}
	return &growing{size, a}
}

func (l *fixed) Load(src io.ReadSeeker) (int64, error) {
	width, err := longest(src, l.size)
	if err != nil {
		return 0, err
	}
	if width == 0 {
		width = 1
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return 0, errors.Wrap(err, "rewind source")
	}
	if err := l.a.Reset(width); err != nil {
		return 0, err
	}
	line := make([]byte, 0, width)
	err = scan(src, l.size, func(b byte) error {
		if b == constant.Newline {
			err := l.a.Append(line)
			line = line[:0]
			return err
		}
		line = append(line, b)
		return nil
	})
	if err != nil {
		return 0, err
	}
	if len(line) > 0 {
		if err := l.a.Append(line); err != nil {
			return 0, err
		}
	}
	return l.a.Len(), l.a.Flush()
}

func (l *growing) Load(src io.ReadSeeker) (int64, error) {
	if err := l.a.Reset(constant.InitialStride); err != nil {
		return 0, err
	}
	line := make([]byte, 0, constant.InitialStride)
	err := scan(src, l.size, func(b byte) error {
		if b == constant.Newline {
			err := l.a.Append(line)
			line = line[:0]
			return err
		}
		if len(line) == l.a.Stride() {
			if err := l.a.Resize(stride.Next(len(line) + 1)); err != nil {
				return err
			}
		}
		line = append(line, b)
		return nil
	})
	if err != nil {
		return 0, err
	}
	if len(line) > 0 {
		if err := l.a.Append(line); err != nil {
			return 0, err
		}
	}
	return l.a.Len(), l.a.Flush()
}

// longest returns the length of the longest line of src.
func longest(src io.ReadSeeker, size int) (int, error) {
	var n, width int

	err := scan(src, size, func(b byte) error {
		if b == constant.Newline {
			n = 0
			return nil
		}
		if n++; n > width {
			width = n
		}
		return nil
	})
	return width, err
}

// scan feeds fn every byte of r except carriage returns.
func scan(r io.Reader, size int, fn func(byte) error) error {
	buf := make([]byte, size)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			if b == constant.CarriageReturn {
				continue
			}
			if err := fn(b); err != nil {
				return err
			}
		}
		switch {
		case err == io.EOF:
			return nil
		case err != nil:
			return errors.Wrap(err, "read source")
		}
	}
}
