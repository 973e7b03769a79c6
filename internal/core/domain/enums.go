package domain

type MethodID string
type StrengthLevel string
type SecurityLevel string
type CharClass int

const (
	// Attack methods
	MethodBruteForce MethodID = "brute-force"
	MethodDictionary MethodID = "dictionary"
	MethodSmart      MethodID = "smart"

	// Password strength levels
	StrengthWeak   StrengthLevel = "weak"
	StrengthFair   StrengthLevel = "fair"
	StrengthGood   StrengthLevel = "good"
	StrengthStrong StrengthLevel = "strong"

	// Attack resistance levels shown on the dashboard
	SecurityExcellent SecurityLevel = "excellent"
	SecurityGood      SecurityLevel = "good"
	SecurityFair      SecurityLevel = "fair"
	SecurityPoor      SecurityLevel = "poor"
)

const (
	ClassLower CharClass = iota
	ClassUpper
	ClassDigit
	ClassSymbol
)

var (
	CharsetLower  = "abcdefghijklmnopqrstuvwxyz"
	CharsetUpper  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	CharsetDigits = "0123456789"
	// The 32 printable ASCII punctuation characters.
	CharsetSymbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	CharsetAll     = CharsetLower + CharsetUpper + CharsetDigits + CharsetSymbols
)

type CrackingError string

const (
	ErrNoCharacterClass CrackingError = "NO_CHARACTER_CLASS"
	ErrInvalidLength    CrackingError = "INVALID_LENGTH"
	ErrEmptyPassword    CrackingError = "EMPTY_PASSWORD"
	ErrUnknownMethod    CrackingError = "UNKNOWN_METHOD"
	ErrInvalidSpeed     CrackingError = "INVALID_SPEED"
	ErrSimulatorClosed  CrackingError = "SIMULATOR_CLOSED"
)

func (e CrackingError) Error() string {
	return string(e)
}
