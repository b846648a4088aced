// Package lsh implements a locality-sensitive hash index over 128-bit
// Hamming space, used to find approximate nearest neighbors among rBRIEF
// descriptors without a full pairwise comparison.
package lsh

import (
	"math/rand"

	"orbfeatures/internal/rbrief"
)

const descriptorBits = 128

// table is one hash table: a set of K distinct bit positions sampled from
// the descriptor, and a map from the projection of those bits to every
// value that produced it.
type table[T any] struct {
	positions []int
	buckets   map[uint64][]entry[T]
}

type entry[T any] struct {
	descriptor rbrief.Descriptor
	value      T
}

func (tb *table[T]) key(d rbrief.Descriptor) uint64 {
	var key uint64
	for i, pos := range tb.positions {
		if d.Bit(pos) {
			key |= 1 << uint(i)
		}
	}
	return key
}

// Index is a locality-sensitive hash index of descriptors to values of
// type T. L independent tables, each keyed by K randomly chosen bit
// positions, are unioned at query time to assemble a candidate set; the
// true Hamming distance is then computed only over that candidate set.
type Index[T any] struct {
	k       int
	tables  []*table[T]
	linear  []entry[T] // used only when k == 0
}

// New builds an Index with L tables of K bit positions each, sampled
// without replacement from [0, descriptorBits) using rng. K == 0 degrades
// to a single bucket holding every inserted entry, i.e. exhaustive linear
// scan: useful for small corpora or as a correctness baseline.
func New[T any](l, k int, rng *rand.Rand) *Index[T] {
	idx := &Index[T]{k: k}
	if k == 0 {
		return idx
	}
	idx.tables = make([]*table[T], l)
	for i := range idx.tables {
		idx.tables[i] = &table[T]{
			positions: samplePositions(k, rng),
			buckets:   make(map[uint64][]entry[T]),
		}
	}
	return idx
}

func samplePositions(k int, rng *rand.Rand) []int {
	perm := rng.Perm(descriptorBits)
	positions := make([]int, k)
	copy(positions, perm[:k])
	return positions
}

// Insert adds a descriptor/value pair to the index.
func (idx *Index[T]) Insert(d rbrief.Descriptor, value T) {
	if idx.k == 0 {
		idx.linear = append(idx.linear, entry[T]{descriptor: d, value: value})
		return
	}
	for _, tb := range idx.tables {
		key := tb.key(d)
		tb.buckets[key] = append(tb.buckets[key], entry[T]{descriptor: d, value: value})
	}
}

// Get returns the value whose descriptor is nearest to query in Hamming
// distance, among every entry found in a matching bucket across all
// tables, provided that distance does not exceed maxDistance. Ties are
// broken in favor of the first entry encountered. ok is false if no
// candidate is within maxDistance.
func (idx *Index[T]) Get(query rbrief.Descriptor, maxDistance int) (distance int, value T, ok bool) {
	best := maxDistance + 1

	consider := func(e entry[T]) {
		d := query.HammingDistance(e.descriptor)
		if d < best {
			best = d
			distance = d
			value = e.value
			ok = true
		}
	}

	if idx.k == 0 {
		for _, e := range idx.linear {
			consider(e)
		}
		return
	}

	for _, tb := range idx.tables {
		key := tb.key(query)
		for _, e := range tb.buckets[key] {
			consider(e)
		}
	}
	return
}
