package scratch

func New() *pool {
	return &pool{}
}

// Get returns a buffer of exactly size bytes, reusing a pooled one unless it
// is too small.
func (p *pool) Get(size int) *[]byte {
	if v, ok := p.p.Get().(*[]byte); ok && cap(*v) >= size {
		*v = (*v)[:size]
		return v
	}
	buf := make([]byte, size)
	return &buf
}

func (p *pool) Put(buf *[]byte) {
	p.p.Put(buf)
}
