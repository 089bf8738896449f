// Random selection backed by a cryptographic source
package random

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// Default entropy source
var Reader io.Reader = rand.Reader

// Generates random integer between two numbers (including the min/max) from source
func NumberInRange(source io.Reader, min, max int) (randomNumber int, err error) {
	// Ensure min < max
	if min > max {
		err = fmt.Errorf("min must be less than or equal to max")
		return
	}
	if source == nil {
		source = Reader
	}

	// Generate a random number in [min, max]
	n, err := rand.Int(source, big.NewInt(int64(max-min+1)))
	if err != nil {
		err = fmt.Errorf("failed reading in range: %w", err)
		return
	}

	randomNumber = int(n.Int64()) + min
	return
}

// Picks one element of a non-empty slice
func Pick[T any](source io.Reader, choices []T) (choice T, err error) {
	if len(choices) == 0 {
		err = fmt.Errorf("no choices to pick from")
		return
	}

	index, err := NumberInRange(source, 0, len(choices)-1)
	if err != nil {
		return
	}
	choice = choices[index]
	return
}
