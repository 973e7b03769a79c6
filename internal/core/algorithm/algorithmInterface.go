package algorithm

import (
	"passwordSecurityDemo/internal/core/domain"
)

// Generator produces the candidate shown for a given attempt index.
type Generator interface {
	Attempt(index uint64) string
	Name() domain.MethodID
	// Bijective reports whether every index maps to a distinct candidate of
	// the password's length, so the password appears exactly at its index.
	Bijective() bool
}

// Cyclic is implemented by generators whose attempts repeat every Period
// indices, starting from index 0.
type Cyclic interface {
	Period() uint64
}

var generators = map[domain.MethodID]func(password string) Generator{
	domain.MethodBruteForce: func(password string) Generator { return NewBruteForce(password) },
	domain.MethodDictionary: func(string) Generator { return NewDictionary() },
	domain.MethodSmart:      func(string) Generator { return NewSmart() },
}

// NewGenerator returns the attempt generator for method, targeting password.
func NewGenerator(method domain.MethodID, password string) (Generator, error) {
	build, ok := generators[method]
	if !ok {
		return nil, domain.ErrUnknownMethod
	}
	return build(password), nil
}
