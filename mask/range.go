package mask

import "sort"

// Range is a half-open span of document offsets: [From, To).
type Range struct {
	From int
	To   int
}

func (r Range) IsEmpty() bool { return r.To <= r.From }

func (r Range) Len() int {
	if r.IsEmpty() {
		return 0
	}
	return r.To - r.From
}

// Contains reports whether off lies inside r.
func (r Range) Contains(off int) bool { return off >= r.From && off < r.To }

// Merge drops empty ranges, sorts the rest and coalesces overlapping or
// touching ranges. The result is sorted, pairwise disjoint and never aliases
// the input.
func Merge(ranges []Range) []Range {
	if len(ranges) == 0 {
		return nil
	}

	sorted := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		if r.IsEmpty() {
			continue
		}
		sorted = append(sorted, r)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].From != sorted[j].From {
			return sorted[i].From < sorted[j].From
		}
		return sorted[i].To < sorted[j].To
	})

	merged := make([]Range, 0, len(sorted))
	for _, r := range sorted {
		if len(merged) == 0 {
			merged = append(merged, r)
			continue
		}
		last := &merged[len(merged)-1]
		if r.From <= last.To {
			last.To = maxInt(last.To, r.To)
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// Subtract returns the parts of base not covered by remove, in ascending
// order. Both inputs are normalized with Merge first.
func Subtract(base, remove []Range) []Range {
	b := Merge(base)
	s := Merge(remove)

	out := make([]Range, 0, len(b))
	for _, br := range b {
		cursor := br.From
		for _, sr := range s {
			if sr.To <= cursor {
				continue
			}
			if sr.From >= br.To {
				break
			}
			if sr.From > cursor {
				out = append(out, Range{From: cursor, To: sr.From})
			}
			cursor = sr.To
			if cursor >= br.To {
				break
			}
		}
		if cursor < br.To {
			out = append(out, Range{From: cursor, To: br.To})
		}
	}
	return out
}

// Clip intersects every range with bound and drops what falls outside.
func Clip(ranges []Range, bound Range) []Range {
	out := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		if r.To <= bound.From || r.From >= bound.To {
			continue
		}
		c := Range{From: maxInt(r.From, bound.From), To: minInt(r.To, bound.To)}
		if c.IsEmpty() {
			continue
		}
		out = append(out, c)
	}
	return out
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
