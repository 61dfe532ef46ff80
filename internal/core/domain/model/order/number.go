package order

import (
	"fmt"
	"math/rand/v2"
)

// NewNumber generates a public order number of the form "R" followed by nine
// digits. The number addresses the order at the API boundary; uniqueness is
// enforced by the persistence layer.
func NewNumber() string {
	return fmt.Sprintf("R%09d", rand.IntN(1_000_000_000))
}
