// Package meld defines the three meld kinds (sequence, triplet, quad) and
// their open/closed provenance, following spec §3/§4.2.
package meld

import "github.com/sullenb/agari/tile"

// Kind distinguishes the three meld shapes.
type Kind uint8

const (
	Sequence Kind = iota
	Triplet
	Quad
)

// QuadKind distinguishes how a quad was formed; it alone determines a
// quad's openness (spec §3: "Closed counts as concealed ... Open and
// PromotedFromTriplet count as open").
type QuadKind uint8

const (
	QuadClosed QuadKind = iota
	QuadOpen
	QuadPromotedFromTriplet
)

// Meld is the tagged value from spec §3. For a Sequence, Tile holds the
// lowest of the three consecutive tiles; its other two tiles are derived.
// For a Triplet or Quad, Tile is the repeated tile.
type Meld struct {
	Kind     Kind
	Tile     tile.Tile
	Open     bool     // meaningful for Sequence and Triplet
	QuadKind QuadKind // meaningful for Quad
}

// NewSequence constructs a sequence meld. start must be suited with
// value 1..7; this is not re-validated here (the decomposer only ever
// builds valid sequences).
func NewSequence(start tile.Tile, open bool) Meld {
	return Meld{Kind: Sequence, Tile: start, Open: open}
}

// NewTriplet constructs a triplet meld.
func NewTriplet(t tile.Tile, open bool) Meld {
	return Meld{Kind: Triplet, Tile: t, Open: open}
}

// NewQuad constructs a quad meld of the given kind.
func NewQuad(t tile.Tile, kind QuadKind) Meld {
	return Meld{Kind: Quad, Tile: t, QuadKind: kind}
}

// IsOpen reports whether the meld counts as open for scoring.
func (m Meld) IsOpen() bool {
	if m.Kind == Quad {
		return m.QuadKind != QuadClosed
	}
	return m.Open
}

// IsConcealed is the negation of IsOpen.
func (m Meld) IsConcealed() bool { return !m.IsOpen() }

// IsSequence reports whether m is a sequence.
func (m Meld) IsSequence() bool { return m.Kind == Sequence }

// IsTripletOrQuad reports whether m is a triplet or a quad.
func (m Meld) IsTripletOrQuad() bool { return m.Kind == Triplet || m.Kind == Quad }

// Tiles returns the (3 or 4) tiles that make up this meld, in ascending
// order for sequences.
func (m Meld) Tiles() []tile.Tile {
	switch m.Kind {
	case Sequence:
		return []tile.Tile{
			m.Tile,
			tile.Suited(m.Tile.Suit, m.Tile.Value+1),
			tile.Suited(m.Tile.Suit, m.Tile.Value+2),
		}
	case Triplet:
		return []tile.Tile{m.Tile, m.Tile, m.Tile}
	default: // Quad
		return []tile.Tile{m.Tile, m.Tile, m.Tile, m.Tile}
	}
}

// Contains reports whether the winning tile t is one of this meld's tiles,
// by tile identity (suit/value or honor), ignoring position.
func (m Meld) Contains(t tile.Tile) bool {
	for _, mt := range m.Tiles() {
		if mt == t {
			return true
		}
	}
	return false
}
