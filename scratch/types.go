package scratch

import "sync"

// Pool hands out record-sized buffers. A buffer belongs to one caller
// between Get and Put.
type Pool interface {
	Get(int) *[]byte
	Put(*[]byte)
}

type pool struct {
	p sync.Pool
}
