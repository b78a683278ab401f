package region

// Region is a read-write memory mapping of a backing file viewed as an
// array of fixed-stride records. Every access is bounds-checked against
// index*stride+stride <= mapped length.
type Region interface {
	Close() error
	Flush() error
	Stride() int
	Records() int64
	Random() error
	WillNeed() error
	View(int) Region
	ReadAt(int64, []byte) error
	WriteAt(int64, []byte) error
}

type region struct {
	owner  bool
	stride int
	buf    []byte
}
