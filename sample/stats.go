package sample

import (
	"math"
)

// Stats describes what a Reader went through. Min and Max are NaN until a
// valid point has been seen.
type Stats struct {
	Lines    int
	Comments int
	Dropped  int
	Count    int
	Min      float64
	Max      float64
}

func Summarize(points []Point) Stats {
	s := Stats{
		Min: math.NaN(),
		Max: math.NaN(),
	}
	for _, pt := range points {
		s.Lines++
		s.add(pt)
	}
	return s
}

func (s Stats) Empty() bool {
	return s.Count == 0
}

func (s Stats) Merge(other Stats) Stats {
	s.Lines += other.Lines
	s.Comments += other.Comments
	s.Dropped += other.Dropped
	if other.Count > 0 {
		if s.Count == 0 || other.Min < s.Min {
			s.Min = other.Min
		}
		if s.Count == 0 || other.Max > s.Max {
			s.Max = other.Max
		}
	}
	s.Count += other.Count
	return s
}

func (s *Stats) add(pt Point) {
	if s.Count == 0 || pt.Value < s.Min {
		s.Min = pt.Value
	}
	if s.Count == 0 || pt.Value > s.Max {
		s.Max = pt.Value
	}
	s.Count++
}
