package algorithm

import (
	"strings"

	"passwordSecurityDemo/internal/core/domain"
)

var dictionaryWords = []string{
	"password", "123456", "admin", "qwerty", "letmein", "welcome", "monkey",
	"dragon", "master", "hello", "login", "abc123", "password123", "admin123",
	"root", "toor", "pass", "test", "user", "guest", "demo", "sample",
}

// Applied in this order once the plain word list is exhausted.
var dictionaryRules = []string{"none", "append_123", "append_bang", "append_1", "uppercase", "capitalize"}

// Dictionary walks a short list of common words, then cycles the same words
// through a handful of variations.
type Dictionary struct {
	words []string
	rules []string
}

func NewDictionary() *Dictionary {
	return &Dictionary{
		words: dictionaryWords,
		rules: dictionaryRules,
	}
}

func (d *Dictionary) Attempt(index uint64) string {
	n := uint64(len(d.words))
	if index < n {
		return d.words[index]
	}

	word := d.words[index%n]
	rule := d.rules[(index/n)%uint64(len(d.rules))]
	return d.applyRule(word, rule)
}

func (d *Dictionary) applyRule(word, rule string) string {
	switch rule {
	case "append_123":
		return word + "123"
	case "append_bang":
		return word + "!"
	case "append_1":
		return word + "1"
	case "uppercase":
		return strings.ToUpper(word)
	case "capitalize":
		if word == "" {
			return word
		}
		return strings.ToUpper(word[:1]) + word[1:]
	default:
		return word
	}
}

func (d *Dictionary) Period() uint64 {
	return uint64(len(d.words) * len(d.rules))
}

func (d *Dictionary) Name() domain.MethodID {
	return domain.MethodDictionary
}

func (d *Dictionary) Bijective() bool {
	return false
}
