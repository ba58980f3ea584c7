package tile

import "sort"

// Multiset is the map-keyed representation the decomposer uses for its
// set-style operations: add/remove/has. Every value must stay within 0..4.
type Multiset map[Tile]int

// NewMultiset builds a Multiset from a slice of tiles (e.g. a parsed hand).
func NewMultiset(tiles []Tile) Multiset {
	m := make(Multiset, len(tiles))
	for _, t := range tiles {
		m[t]++
	}
	return m
}

// Add returns a new Multiset with one more copy of t.
func (m Multiset) Add(t Tile) Multiset {
	out := m.clone()
	out[t]++
	return out
}

// Remove returns a new Multiset with one fewer copy of t. Removing a tile
// not present, or reducing below zero, is a caller bug and panics.
func (m Multiset) Remove(t Tile) Multiset {
	out := m.clone()
	if out[t] <= 0 {
		panic("tile: Remove called on tile with zero count")
	}
	out[t]--
	if out[t] == 0 {
		delete(out, t)
	}
	return out
}

func (m Multiset) clone() Multiset {
	out := make(Multiset, len(m))
	for t, c := range m {
		out[t] = c
	}
	return out
}

// Count returns how many copies of t are present.
func (m Multiset) Count(t Tile) int { return m[t] }

// Total returns the sum of all counts.
func (m Multiset) Total() int {
	n := 0
	for _, c := range m {
		n += c
	}
	return n
}

// Sorted returns the distinct tiles present, in canonical order.
func (m Multiset) Sorted() []Tile {
	out := make([]Tile, 0, len(m))
	for t := range m {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Expand returns every tile in the multiset repeated by its count, in
// canonical order. Useful for reconstructing a flat hand slice.
func (m Multiset) Expand() []Tile {
	out := make([]Tile, 0, m.Total())
	for _, t := range m.Sorted() {
		for i := 0; i < m[t]; i++ {
			out = append(out, t)
		}
	}
	return out
}

// Counts is the dense 34-length array form shanten's hot loop uses.
type Counts [34]int

// ToCounts converts a Multiset to its dense array form.
func (m Multiset) ToCounts() Counts {
	var c Counts
	for t, n := range m {
		c[t.Index()] = n
	}
	return c
}

// ToMultiset converts a dense array back to a Multiset.
func (c Counts) ToMultiset() Multiset {
	m := make(Multiset)
	for i, n := range c {
		if n > 0 {
			m[FromIndex(i)] = n
		}
	}
	return m
}

// Total sums all 34 slots.
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Plus returns a copy of c with one more copy of the tile at index i.
func (c Counts) Plus(i int) Counts {
	out := c
	out[i]++
	return out
}
