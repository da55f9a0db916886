package poker

import "fmt"

// ParseErrorKind identifies why a hand failed to parse.
type ParseErrorKind int

const (
	// InvalidLength means the input, after removing whitespace, is not 4 characters.
	InvalidLength ParseErrorKind = iota + 1
	// InvalidFormat means a rank or suit character is outside its alphabet.
	InvalidFormat
	// DuplicateCard means both cards are the same card.
	DuplicateCard
)

// String returns a snake_case identifier for the kind, used on the wire.
func (k ParseErrorKind) String() string {
	switch k {
	case InvalidLength:
		return "invalid_length"
	case InvalidFormat:
		return "invalid_format"
	case DuplicateCard:
		return "duplicate_card"
	default:
		return "unknown"
	}
}

// ParseError is returned by ParseHand.
type ParseError struct {
	Kind  ParseErrorKind
	Input string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case InvalidLength:
		return fmt.Sprintf("invalid hand %q: expected 4 characters such as AhKd", e.Input)
	case InvalidFormat:
		return fmt.Sprintf("invalid hand %q: ranks are AKQJT98765432 and suits are cdhs", e.Input)
	case DuplicateCard:
		return fmt.Sprintf("invalid hand %q: both cards are the same", e.Input)
	default:
		return fmt.Sprintf("invalid hand %q", e.Input)
	}
}

// Is matches any *ParseError of the same kind, so errors.Is(err, ErrDuplicateCard)
// works regardless of the input that failed.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

var (
	ErrInvalidLength = &ParseError{Kind: InvalidLength}
	ErrInvalidFormat = &ParseError{Kind: InvalidFormat}
	ErrDuplicateCard = &ParseError{Kind: DuplicateCard}
)
