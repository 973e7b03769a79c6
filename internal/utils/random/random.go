package random

import (
	"crypto/rand"
	"math/big"

	"github.com/pkg/errors"
)

// GenerateRandomString draws length runes uniformly from charset using the
// operating system's CSPRNG.
func GenerateRandomString(charset string, length int) (string, error) {
	alphabet := []rune(charset)
	if length <= 0 || len(alphabet) == 0 {
		return "", nil
	}

	limit := big.NewInt(int64(len(alphabet)))
	result := make([]rune, length)
	for i := range result {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", errors.Wrap(err, "read random source")
		}
		result[i] = alphabet[n.Int64()]
	}
	return string(result), nil
}
