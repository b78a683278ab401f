package constant

const (
	InitialStride   = 20
	StrideIncrement = 4
)

const (
	ReadBufferSize = 1 << 15 // 32KB
)

const (
	Space = byte(' ')  // filler of the fixed variant
	Zero  = byte(0x00) // filler of the growing variant
)

const (
	Newline        = byte('\n')
	CarriageReturn = byte('\r')
)

const (
	FileMode = 0664
	DirMode  = 0775
)

const (
	NotFound = int64(-1)
)
