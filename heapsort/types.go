package heapsort

import "github.com/infinivision/flatset/region"

type sorter struct {
	a, b []byte // scratch records
	r    region.Region
}
