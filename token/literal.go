package token

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// LiteralKind tells which field of a Literal is meaningful.
type LiteralKind int

const (
	LitInteger LiteralKind = iota
	LitFloat
	LitBoolean
)

func (k LiteralKind) String() string {
	switch k {
	case LitInteger:
		return "integer"
	case LitFloat:
		return "float"
	case LitBoolean:
		return "boolean"
	default:
		return "literal(?)"
	}
}

// Literal is an immediate value written in the source. Integers are kept as
// their 64-bit pattern; negative numbers are stored two's complement.
type Literal struct {
	Kind  LiteralKind
	Int   uint64
	Float float64
	Bool  bool
}

// Integer returns an integer literal.
func Integer(v uint64) Literal { return Literal{Kind: LitInteger, Int: v} }

// Float returns a float literal.
func Float(v float64) Literal { return Literal{Kind: LitFloat, Float: v} }

// Boolean returns a boolean literal.
func Boolean(v bool) Literal { return Literal{Kind: LitBoolean, Bool: v} }

// BitCast reinterprets the two's complement bits of v as an unsigned
// integer. -1 becomes 0xFFFFFFFFFFFFFFFF. No bits are changed.
func BitCast(v int64) uint64 {
	return uint64(v)
}

// ParseLiteral parses word as an unsigned integer, then a signed integer,
// then a float, then true or false, in that order. Character and string
// literals are recognised but rejected.
func ParseLiteral(word string) (Literal, error) {
	if v, err := strconv.ParseUint(word, 10, 64); err == nil {
		return Integer(v), nil
	}

	if v, err := strconv.ParseInt(word, 10, 64); err == nil {
		return Integer(BitCast(v)), nil
	}

	if v, err := strconv.ParseFloat(word, 64); err == nil {
		return Float(v), nil
	}

	switch word {
	case "true":
		return Boolean(true), nil
	case "false":
		return Boolean(false), nil
	}

	if isQuoted(word, '\'') {
		return Literal{}, fmt.Errorf("%w: character literal %s", ErrUnsupported, word)
	}

	if isQuoted(word, '"') {
		return Literal{}, fmt.Errorf("%w: string literal %s", ErrUnsupported, word)
	}

	return Literal{}, fmt.Errorf("%w: %q", ErrInvalidIdentifier, word)
}

func isQuoted(word string, quote byte) bool {
	return len(word) >= 2 &&
		word[0] == quote &&
		strings.LastIndexByte(word, quote) == len(word)-1
}

// Bytes encodes the literal into exactly size bytes, native byte order.
//
// Booleans take one byte (1 or 0). Floats use their float32 pattern when size
// is 4 and their float64 pattern otherwise. Integers are truncated to 1, 2, 4
// or 8 bytes. Any encoding shorter than size is zero-extended, longer ones are
// cut.
func (l Literal) Bytes(size int) []byte {
	var buf []byte

	switch l.Kind {
	case LitBoolean:
		buf = []byte{0}
		if l.Bool {
			buf[0] = 1
		}
	case LitFloat:
		if size == 4 {
			buf = binary.NativeEndian.AppendUint32(nil, math.Float32bits(float32(l.Float)))
		} else {
			buf = binary.NativeEndian.AppendUint64(nil, math.Float64bits(l.Float))
		}
	default:
		switch size {
		case 1:
			buf = []byte{uint8(l.Int)}
		case 2:
			buf = binary.NativeEndian.AppendUint16(nil, uint16(l.Int))
		case 4:
			buf = binary.NativeEndian.AppendUint32(nil, uint32(l.Int))
		default:
			buf = binary.NativeEndian.AppendUint64(nil, l.Int)
		}
	}

	return fit(buf, size)
}

func fit(buf []byte, size int) []byte {
	if size < 0 {
		size = 0
	}
	if len(buf) >= size {
		return buf[:size]
	}
	out := make([]byte, size)
	copy(out, buf)
	return out
}

func (l Literal) String() string {
	switch l.Kind {
	case LitFloat:
		return strconv.FormatFloat(l.Float, 'g', -1, 64)
	case LitBoolean:
		return strconv.FormatBool(l.Bool)
	default:
		return strconv.FormatUint(l.Int, 10)
	}
}
