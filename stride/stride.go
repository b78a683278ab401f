package stride

import "github.com/infinivision/flatset/constant"

// Next returns the stride to grow to when a value of length required must fit.
func Next(required int) int {
	if required < constant.InitialStride {
		return constant.InitialStride
	}
	return required + constant.StrideIncrement
}
