package domain

import "sort"

// Mode is the most frequent value of a tally. Valid is false when nothing
// was counted.
type Mode[K comparable] struct {
	Value K
	Count int
	Valid bool
}

type Count[K comparable] struct {
	Value K
	Count int
}

// Tally counts occurrences per key and remembers the order in which keys
// were first seen. Among keys sharing the highest count, the first seen
// wins, so results are stable for a given input order.
type Tally[K comparable] struct {
	counts map[K]int
	order  []K
}

func NewTally[K comparable]() *Tally[K] {
	return &Tally[K]{counts: map[K]int{}}
}

func (t *Tally[K]) Add(key K) {
	if _, seen := t.counts[key]; !seen {
		t.order = append(t.order, key)
	}
	t.counts[key]++
}

func (t *Tally[K]) Len() int { return len(t.order) }

func (t *Tally[K]) Mode() Mode[K] {
	var mode Mode[K]
	for _, key := range t.order {
		if n := t.counts[key]; n > mode.Count {
			mode = Mode[K]{Value: key, Count: n, Valid: true}
		}
	}
	return mode
}

// Counts lists every key by descending count, ties in first-seen order.
func (t *Tally[K]) Counts() []Count[K] {
	out := make([]Count[K], 0, len(t.order))
	for _, key := range t.order {
		out = append(out, Count[K]{Value: key, Count: t.counts[key]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
