package record

import "github.com/infinivision/flatset/constant"

// Filler is the byte that pads a value out to the record stride. It must lie
// outside the alphabet of stored values.
type Filler byte

const (
	SpaceFiller = Filler(constant.Space)
	ZeroFiller  = Filler(constant.Zero)
)
