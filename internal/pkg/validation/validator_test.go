package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string  `validate:"required"`
	Speed float64 `validate:"gte=1"`
}

func TestStruct(t *testing.T) {
	require.NoError(t, Struct(sample{Name: "ok", Speed: 1}))

	err := Struct(sample{Speed: 0.5})
	require.Error(t, err)
	assert.ElementsMatch(t, []string{"sample.Name:required", "sample.Speed:gte"}, FieldErrors(err))
}

func TestFieldErrors_NotValidation(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}
