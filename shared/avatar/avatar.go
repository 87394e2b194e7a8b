// Package avatar derives user avatars from opaque seed strings.
// Rendering happens client side via dicebear (https://avatars.dicebear.com);
// the backend only ever stores the seed.
package avatar

import (
	"fmt"
	"math/rand/v2"
)

const (
	seedAlphabet = "abcdefghijklmnopqrstuvwxyz1234567890"
	seedLength   = 7

	avatarStyle = "pixel-art"
)

// RandomSeed returns a new opaque avatar seed.
func RandomSeed() string {
	seed := make([]byte, seedLength)
	for i := range seed {
		seed[i] = seedAlphabet[rand.IntN(len(seedAlphabet))]
	}

	return string(seed)
}

// URL returns the dicebear render URL for a seed.
func URL(avatarSeed string) string {
	return fmt.Sprintf("https://avatars.dicebear.com/api/%s/%s.svg", avatarStyle, avatarSeed)
}
