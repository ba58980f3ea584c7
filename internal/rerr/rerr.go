// Package rerr defines the engine's typed error kinds, grouped as
// sentinel values the way the reference node/session/error groupings in
// this corpus do, but carrying a Kind so callers can branch on error
// category rather than on a specific sentinel.
package rerr

import "fmt"

// Kind is one of the five error categories named in spec §7.
type Kind uint8

const (
	KindParse Kind = iota
	KindInvalidHandSize
	KindTileOverflow
	KindNoValidDecomposition
	KindNoYaku
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse error"
	case KindInvalidHandSize:
		return "invalid hand size"
	case KindTileOverflow:
		return "tile overflow"
	case KindNoValidDecomposition:
		return "no valid decomposition"
	case KindNoYaku:
		return "no yaku"
	default:
		return "unknown error"
	}
}

// Error is the engine's single error type. Two Errors compare equal for
// errors.Is purposes when they share a Kind, regardless of Msg, so
// callers can match against the package-level sentinels below without
// caring about the message text attached to a particular occurrence.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is implements the errors.Is matching protocol: an *Error matches
// another *Error with the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New builds an Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Sentinel values for errors.Is comparisons against a bare kind, e.g.
// errors.Is(err, rerr.ErrNoYaku).
var (
	ErrParse                = &Error{Kind: KindParse}
	ErrInvalidHandSize      = &Error{Kind: KindInvalidHandSize}
	ErrTileOverflow         = &Error{Kind: KindTileOverflow}
	ErrNoValidDecomposition = &Error{Kind: KindNoValidDecomposition}
	ErrNoYaku               = &Error{Kind: KindNoYaku}
)
