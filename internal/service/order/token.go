package order

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// tokenPrefix is printed on pickup slips; the suffix keeps tokens short
// enough to read out at the counter.
const tokenPrefix = "ORD"

var tokenSpace = big.NewInt(100_000_000)

// newOrderToken draws a random 8-digit pickup token. The space is small
// enough that collisions are treated as expected: callers must verify
// uniqueness against the store and redraw on conflict.
func newOrderToken() (string, error) {
	n, err := rand.Int(rand.Reader, tokenSpace)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%08d", tokenPrefix, n.Int64()), nil
}
