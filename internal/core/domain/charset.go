package domain

import "strings"

// Class sizes used for entropy and search-space estimation.
const (
	LowerSize  = 26
	UpperSize  = 26
	DigitSize  = 10
	SymbolSize = 32
)

// CharClasses records which character classes occur in a password.
type CharClasses struct {
	Lower  bool
	Upper  bool
	Digit  bool
	Symbol bool
}

// ClassOf puts every rune in exactly one class. Runes outside A-Z, a-z and
// 0-9 count as symbols, including non-ASCII ones.
func ClassOf(r rune) CharClass {
	switch {
	case r >= 'a' && r <= 'z':
		return ClassLower
	case r >= 'A' && r <= 'Z':
		return ClassUpper
	case r >= '0' && r <= '9':
		return ClassDigit
	default:
		return ClassSymbol
	}
}

func Classify(password string) CharClasses {
	var c CharClasses
	for _, r := range password {
		switch ClassOf(r) {
		case ClassLower:
			c.Lower = true
		case ClassUpper:
			c.Upper = true
		case ClassDigit:
			c.Digit = true
		default:
			c.Symbol = true
		}
	}
	return c
}

// Size is the sum of the sizes of the classes present, 0 when none are.
func (c CharClasses) Size() int {
	size := 0
	if c.Lower {
		size += LowerSize
	}
	if c.Upper {
		size += UpperSize
	}
	if c.Digit {
		size += DigitSize
	}
	if c.Symbol {
		size += SymbolSize
	}
	return size
}

func (c CharClasses) Count() int {
	n := 0
	for _, present := range []bool{c.Lower, c.Upper, c.Digit, c.Symbol} {
		if present {
			n++
		}
	}
	return n
}

// Alphabet concatenates the alphabets of the present classes in the order
// lowercase, uppercase, digits, symbols.
func (c CharClasses) Alphabet() string {
	var b strings.Builder
	if c.Lower {
		b.WriteString(CharsetLower)
	}
	if c.Upper {
		b.WriteString(CharsetUpper)
	}
	if c.Digit {
		b.WriteString(CharsetDigits)
	}
	if c.Symbol {
		b.WriteString(CharsetSymbols)
	}
	return b.String()
}
