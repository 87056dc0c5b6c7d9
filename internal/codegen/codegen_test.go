package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCryptoGenerator_Next(t *testing.T) {
	gen := CryptoGenerator{}

	for _, length := range []int{RoomCodeLength, QuestionIDLength} {
		code, err := gen.Next(length)
		assert.NoError(t, err)
		assert.Len(t, code, length)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(alphabet, r), "unexpected rune %q", r)
		}
	}
}

func TestCryptoGenerator_CodesAreDistinct(t *testing.T) {
	gen := CryptoGenerator{}

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := gen.Next(RoomCodeLength)
		assert.NoError(t, err)
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}
