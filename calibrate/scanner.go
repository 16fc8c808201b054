package calibrate

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Kind is the class of a single input byte.
type Kind int

const (
	Letter Kind = iota
	Digit
	LineBreak
	EndOfInput
)

func (k Kind) String() string {
	switch k {
	case Letter:
		return "Letter"
	case Digit:
		return "Digit"
	case LineBreak:
		return "LineBreak"
	case EndOfInput:
		return "EndOfInput"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Char is a classified input byte. Raw is 0 for EndOfInput.
type Char struct {
	Kind Kind
	Raw  byte
}

// ErrMalformedInput is matched by every error the Scanner returns.
var ErrMalformedInput = errors.New("malformed input")

// MalformedInputError reports a non-ASCII byte in the input.
type MalformedInputError struct {
	Offset int
	Byte   byte
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input: non-ASCII byte %#02x at offset %d", e.Byte, e.Offset)
}

func (e *MalformedInputError) Unwrap() error { return ErrMalformedInput }

// Scanner classifies src one byte at a time.
type Scanner struct {
	src []byte
	off int
}

// NewScanner returns a Scanner positioned at the start of src.
func NewScanner(src []byte) *Scanner {
	return &Scanner{src: src}
}

// Offset returns the offset of the next byte to be read.
func (s *Scanner) Offset() int { return s.off }

// Next consumes one byte and returns its classification. Once the input is
// exhausted it returns EndOfInput on every call. A non-ASCII byte is not
// consumed; Next keeps returning the same *MalformedInputError.
func (s *Scanner) Next() (Char, error) {
	if s.off >= len(s.src) {
		return Char{Kind: EndOfInput}, nil
	}
	b := s.src[s.off]
	if b >= utf8.RuneSelf {
		return Char{}, &MalformedInputError{Offset: s.off, Byte: b}
	}
	s.off++
	switch {
	case b == '\n':
		return Char{Kind: LineBreak, Raw: b}, nil
	case '0' <= b && b <= '9':
		return Char{Kind: Digit, Raw: b}, nil
	}
	return Char{Kind: Letter, Raw: b}, nil
}
