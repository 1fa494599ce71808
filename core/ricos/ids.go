package ricos

import (
	"math/rand"
	"strconv"
)

// IDSource hands out node identifiers. Identifiers need not be globally
// unique. Implementations are not safe for concurrent use; create one per
// conversion.
type IDSource interface {
	NextID() string
}

// Counter is a deterministic IDSource yielding "1", "2", "3"...
type Counter struct {
	n int
}

func (c *Counter) NextID() string {
	c.n++
	return strconv.Itoa(c.n)
}

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// idLength matches the short identifiers the editor generates itself.
const idLength = 5

// RandomIDs yields short random lowercase alphanumeric identifiers.
type RandomIDs struct {
	r *rand.Rand
}

// NewRandomIDs returns a RandomIDs seeded with seed. Equal seeds give equal
// sequences.
func NewRandomIDs(seed int64) *RandomIDs {
	return &RandomIDs{r: rand.New(rand.NewSource(seed))}
}

func (g *RandomIDs) NextID() string {
	b := make([]byte, idLength)
	for i := range b {
		b[i] = idAlphabet[g.r.Intn(len(idAlphabet))]
	}
	return string(b)
}
