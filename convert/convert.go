// Package convert turns option argument strings into Go values with
// getopt-friendly semantics: explicit bases, prefix auto-detection,
// two's-complement wraparound for negated unsigned values and optional
// magnitude suffixes.
package convert

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Integer covers the built-in integer types accepted by ToInteger and
// ToScaled.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Suffix selects how a single trailing magnitude letter (k, m, g, t, p
// or e, case-insensitive) after the digits is interpreted.
type Suffix int

const (
	// SuffixNone treats magnitude letters as trailing garbage.
	SuffixNone Suffix = iota
	// SuffixDecimal scales by powers of 1000 (k=10^3 .. e=10^18).
	SuffixDecimal
	// SuffixBinary scales by powers of 1024 (k=2^10 .. e=2^60).
	SuffixBinary
)

var (
	// ErrSyntax reports input that is not a number in the requested base.
	ErrSyntax = errors.New("invalid syntax")
	// ErrRange reports a number that does not fit the target type.
	ErrRange = errors.New("value out of range")
)

var decimalScale = map[byte]uint64{
	'k': 1e3, 'm': 1e6, 'g': 1e9, 't': 1e12, 'p': 1e15, 'e': 1e18,
}

var binaryScale = map[byte]uint64{
	'k': 1 << 10, 'm': 1 << 20, 'g': 1 << 30, 't': 1 << 40, 'p': 1 << 50, 'e': 1 << 60,
}

func syntaxError(s string) error {
	return fmt.Errorf("converting %q: %w", s, ErrSyntax)
}

func rangeError(s string) error {
	return fmt.Errorf("converting %q: %w", s, ErrRange)
}

// ToInteger converts s to T in the given base. A single leading '-' is
// accepted for unsigned targets too and wraps at T's width, so "-1" as
// uint8 is 255. Base 0 auto-detects 0x/0X (hex), 0b/0B (binary) and a
// leading zero (octal); bases 16 and 2 skip their optional prefix. The
// digits must span the whole input.
func ToInteger[T Integer](s string, base int) (T, error) {
	return ToScaled[T](s, base, SuffixNone)
}

// ToScaled is ToInteger with magnitude suffix handling: digits may be
// followed by one scale letter, the scaled value then has to fit T.
// Suffix letters that are valid digits in the base (such as e in hex)
// are consumed as digits.
func ToScaled[T Integer](s string, base int, suffix Suffix) (T, error) {
	var zero T

	digits := s
	negative := false
	if strings.HasPrefix(digits, "-") {
		digits = digits[1:]
		negative = true
	}

	switch base {
	case 16:
		if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
			digits = digits[2:]
		}
	case 2:
		if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'b' || digits[1] == 'B') {
			digits = digits[2:]
		}
	case 0:
		base = 10
		if len(digits) > 1 && digits[0] == '0' {
			switch digits[1] {
			case 'x', 'X':
				digits = digits[2:]
				base = 16
			case 'b', 'B':
				digits = digits[2:]
				base = 2
			default:
				digits = digits[1:]
				base = 8
			}
		}
	}

	// Longest run of valid digits, like strtol. What remains is either
	// nothing or a single magnitude letter.
	end := 0
	for end < len(digits) {
		d := digitValue(digits[end])
		if d < 0 || d >= base {
			break
		}
		end++
	}
	if end == 0 {
		return zero, syntaxError(s)
	}

	multiplier := uint64(1)
	if rest := digits[end:]; len(rest) > 0 {
		if suffix == SuffixNone || len(rest) > 1 {
			return zero, syntaxError(s)
		}
		table := decimalScale
		if suffix == SuffixBinary {
			table = binaryScale
		}
		m, ok := table[lower(rest[0])]
		if !ok {
			return zero, syntaxError(s)
		}
		multiplier = m
	}

	mag, err := strconv.ParseUint(digits[:end], base, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return zero, rangeError(s)
		}
		return zero, syntaxError(s)
	}

	if multiplier > 1 {
		if mag > math.MaxUint64/multiplier {
			return zero, rangeError(s)
		}
		mag *= multiplier
	}

	bits := reflect.TypeOf(zero).Bits()
	if isSigned(zero) {
		limit := uint64(1)<<(bits-1) - 1
		if negative {
			limit++
		}
		if mag > limit {
			return zero, rangeError(s)
		}
	} else {
		limit := uint64(math.MaxUint64) >> (64 - bits)
		if mag > limit {
			return zero, rangeError(s)
		}
	}

	if negative {
		mag = -mag
	}

	return T(mag), nil
}

// ToBool converts the usual boolean words, case-insensitively:
// yes/true/on/1 and no/false/off/0. Anything else is a syntax error.
func ToBool(s string) (bool, error) {
	for _, w := range [...]string{"yes", "true", "on", "1"} {
		if strings.EqualFold(s, w) {
			return true, nil
		}
	}
	for _, w := range [...]string{"no", "false", "off", "0"} {
		if strings.EqualFold(s, w) {
			return false, nil
		}
	}

	return false, syntaxError(s)
}

func isSigned[T Integer](zero T) bool {
	return zero-1 < zero
}

func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	}

	return -1
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}

	return c
}
