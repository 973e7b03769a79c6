package algorithm

import (
	"math/big"
	"unicode/utf8"

	"passwordSecurityDemo/internal/core/domain"
)

// BruteForce enumerates every string of a fixed length over a charset. The
// attempt index is read as a number in base len(charset), most significant
// digit first.
type BruteForce struct {
	charset   []rune
	positions map[rune]int
	length    int
}

// CharsetFor builds the enumeration charset from the classes present in
// password, falling back to lowercase letters.
func CharsetFor(password string) string {
	if alphabet := domain.Classify(password).Alphabet(); alphabet != "" {
		return alphabet
	}
	return domain.CharsetLower
}

func NewBruteForce(password string) *BruteForce {
	return NewBruteForceCharset(CharsetFor(password), utf8.RuneCountInString(password))
}

func NewBruteForceCharset(charset string, length int) *BruteForce {
	if charset == "" {
		charset = domain.CharsetLower
	}
	if length < 0 {
		length = 0
	}

	runes := []rune(charset)
	positions := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, seen := positions[r]; !seen {
			positions[r] = i
		}
	}

	return &BruteForce{
		charset:   runes,
		positions: positions,
		length:    length,
	}
}

func (b *BruteForce) Charset() string {
	return string(b.charset)
}

func (b *BruteForce) Length() int {
	return b.length
}

// Space is base^length, the number of distinct candidates.
func (b *BruteForce) Space() *big.Int {
	base := big.NewInt(int64(len(b.charset)))
	return new(big.Int).Exp(base, big.NewInt(int64(b.length)), nil)
}

// AttemptAt maps index to its candidate. Indices outside [0, Space()) wrap.
func (b *BruteForce) AttemptAt(index *big.Int) string {
	base := big.NewInt(int64(len(b.charset)))
	n := new(big.Int).Set(index)
	digit := new(big.Int)

	out := make([]rune, b.length)
	for pos := b.length - 1; pos >= 0; pos-- {
		n.DivMod(n, base, digit)
		out[pos] = b.charset[digit.Int64()]
	}
	return string(out)
}

// IndexOf is the inverse of AttemptAt. It reports false when s has the
// wrong length or holds a character outside the charset.
func (b *BruteForce) IndexOf(s string) (*big.Int, bool) {
	if utf8.RuneCountInString(s) != b.length {
		return nil, false
	}

	base := big.NewInt(int64(len(b.charset)))
	n := new(big.Int)
	for _, r := range s {
		pos, ok := b.positions[r]
		if !ok {
			return nil, false
		}
		n.Mul(n, base)
		n.Add(n, big.NewInt(int64(pos)))
	}
	return n, true
}

func (b *BruteForce) Attempt(index uint64) string {
	return b.AttemptAt(new(big.Int).SetUint64(index))
}

func (b *BruteForce) Name() domain.MethodID {
	return domain.MethodBruteForce
}

func (b *BruteForce) Bijective() bool {
	return true
}
