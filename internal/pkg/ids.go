package pkg

import (
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"
)

const (
	gameIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	gameIDLength   = 6
)

// GenerateNewSessionID - returns a fresh session identifier.
func GenerateNewSessionID() string {
	return uuid.NewString()
}

// GenerateGameID - returns a short join code a player can type by hand.
// The alphabet skips easily confused characters (0/O, 1/I).
func GenerateGameID() (string, error) {
	code := make([]byte, gameIDLength)
	max := big.NewInt(int64(len(gameIDAlphabet)))

	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = gameIDAlphabet[n.Int64()]
	}

	return string(code), nil
}
