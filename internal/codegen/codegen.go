// Package codegen produces the random identifiers the quiz hands out to
// clients: short shareable room codes and long question ids.
package codegen

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const (
	// RoomCodeLength is the length of human-shareable room codes.
	RoomCodeLength = 6
	// QuestionIDLength is the length of question ids. Long enough that ids
	// are not guessable even though they are treated as plain identifiers.
	QuestionIDLength = 64
)

// Generator yields random alphanumeric codes of a requested length.
type Generator interface {
	Next(length int) (string, error)
}

// CryptoGenerator draws codes from crypto/rand. Short room codes are not
// guaranteed collision-free; callers creating rooms must retry on conflict.
type CryptoGenerator struct{}

var _ Generator = CryptoGenerator{}

// Next returns a random code of the given length.
func (CryptoGenerator) Next(length int) (string, error) {
	max := big.NewInt(int64(len(alphabet)))
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		buf[i] = alphabet[n.Int64()]
	}
	return string(buf), nil
}
