package heapsort

import (
	"github.com/infinivision/flatset/record"
	"github.com/infinivision/flatset/region"
)

// Sort orders the first n records of r in place. Besides the mapping it
// only needs two records worth of memory.
func Sort(r region.Region, n int64) error {
	if n < 2 {
		return nil
	}
	s := &sorter{
		r: r,
		a: make([]byte, r.Stride()),
		b: make([]byte, r.Stride()),
	}
	for i := n/2 - 1; i >= 0; i-- {
		if err := s.siftDown(i, n-1); err != nil {
			return err
		}
	}
	for end := n - 1; end > 0; end-- {
		if err := s.swap(0, end); err != nil {
			return err
		}
		if err := s.siftDown(0, end-1); err != nil {
			return err
		}
	}
	return nil
}

// siftDown restores the max-heap property of [root, end].
func (s *sorter) siftDown(root, end int64) error {
	for root*2+1 <= end {
		child := root*2 + 1
		top := root
		if err := s.r.ReadAt(root, s.a); err != nil {
			return err
		}
		if err := s.r.ReadAt(child, s.b); err != nil {
			return err
		}
		if record.Compare(s.b, s.a) > 0 {
			top = child
			s.a, s.b = s.b, s.a
		}
		if child+1 <= end {
			if err := s.r.ReadAt(child+1, s.b); err != nil {
				return err
			}
			if record.Compare(s.b, s.a) > 0 {
				top = child + 1
				s.a, s.b = s.b, s.a
			}
		}
		if top == root {
			return nil
		}
		// s.a holds the greater child
		if err := s.r.ReadAt(root, s.b); err != nil {
			return err
		}
		if err := s.r.WriteAt(root, s.a); err != nil {
			return err
		}
		if err := s.r.WriteAt(top, s.b); err != nil {
			return err
		}
		root = top
	}
	return nil
}

func (s *sorter) swap(i, j int64) error {
	if i == j {
		return nil
	}
	if err := s.r.ReadAt(i, s.a); err != nil {
		return err
	}
	if err := s.r.ReadAt(j, s.b); err != nil {
		return err
	}
	if err := s.r.WriteAt(i, s.b); err != nil {
		return err
	}
	return s.r.WriteAt(j, s.a)
}
