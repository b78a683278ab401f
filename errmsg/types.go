package errmsg

import "github.com/cockroachdb/errors"

var (
	Closed        = errors.New("store closed")
	OutOfRange    = errors.New("record index out of range")
	ReadFailed    = errors.New("read failed")
	WriteFailed   = errors.New("write failed")
	NotDirectory  = errors.New("not directory")
	AlreadySorted = errors.New("store already sorted")
	StrideShrink  = errors.New("stride can not shrink")
)
