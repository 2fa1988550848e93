package session

import "golang.org/x/exp/rand"

const codeLength = 4
const maxRetries = 100

var letters = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// GenerateCode creates a random 4-letter uppercase code spectators use to
// find a session. It checks against existing codes to avoid duplicates.
func GenerateCode(rng *rand.Rand, existing map[string]bool) string {
	for i := 0; i < maxRetries; i++ {
		code := randomCode(rng)
		if !existing[code] {
			return code
		}
	}
	// Fallback: extremely unlikely with 26^4 = 456,976 combinations
	return randomCode(rng)
}

func randomCode(rng *rand.Rand) string {
	b := make([]rune, codeLength)
	for i := range b {
		b[i] = letters[rng.Intn(len(letters))]
	}
	return string(b)
}
