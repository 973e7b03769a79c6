package domain

// AttackMethod describes one of the fixed attack strategies.
type AttackMethod struct {
	ID                MethodID `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	AttemptsPerSecond float64  `json:"attemptsPerSecond"`
	// CharsetSize overrides the password-derived charset when nonzero.
	CharsetSize int `json:"charsetSize"`
}

var attackMethods = []AttackMethod{
	{
		ID:                MethodBruteForce,
		Name:              "Brute Force",
		Description:       "Try every possible combination systematically (1M attempts/sec)",
		AttemptsPerSecond: 1_000_000,
	},
	{
		ID:                MethodDictionary,
		Name:              "Dictionary Attack",
		Description:       "Try common words and variations first (10K attempts/sec)",
		AttemptsPerSecond: 10_000,
		CharsetSize:       10_000,
	},
	{
		ID:                MethodSmart,
		Name:              "Smart Attack",
		Description:       "Use patterns and common substitutions (100K attempts/sec)",
		AttemptsPerSecond: 100_000,
	},
}

// AttackMethods returns the methods in display order. The slice is a copy.
func AttackMethods() []AttackMethod {
	out := make([]AttackMethod, len(attackMethods))
	copy(out, attackMethods)
	return out
}

func LookupMethod(id MethodID) (AttackMethod, error) {
	for _, m := range attackMethods {
		if m.ID == id {
			return m, nil
		}
	}
	return AttackMethod{}, ErrUnknownMethod
}

// DefaultMethod is brute force, the first method offered.
func DefaultMethod() AttackMethod {
	return attackMethods[0]
}

func (id MethodID) Valid() bool {
	_, err := LookupMethod(id)
	return err == nil
}

// CommonWords is the reference list used by the dictionary and smart
// estimates.
var CommonWords = []string{
	"password", "123456", "qwerty", "admin", "welcome", "login", "monkey", "dragon", "letmein", "football",
	"iloveyou", "abc123", "starwars", "hello", "freedom", "whatever", "qazwsx", "trustno1", "baseball", "master",
}
