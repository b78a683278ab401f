package search

import (
	"github.com/infinivision/flatset/constant"
	"github.com/infinivision/flatset/record"
	"github.com/infinivision/flatset/region"
)

// Search binary-searches the first n sorted records of r for q, staging each
// probe in buf. It returns the index of a matching record or
// constant.NotFound. Any of several equal records may be returned.
func Search(r region.Region, n int64, q []byte, f record.Filler, buf []byte) (int64, error) {
	if n == 0 || len(q) > r.Stride() {
		return constant.NotFound, nil
	}
	low, high := int64(0), n-1
	for low <= high {
		mid := int64(uint64(low+high) >> 1)
		if err := r.ReadAt(mid, buf); err != nil {
			return constant.NotFound, err
		}
		switch cmp := record.CompareQuery(buf[:r.Stride()], q, f); {
		case cmp > 0:
			low = mid + 1
		case cmp < 0:
			high = mid - 1
		default:
			return mid, nil
		}
	}
	return constant.NotFound, nil
}
