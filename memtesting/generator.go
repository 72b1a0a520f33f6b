package memtesting

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/uuid"
)

// TestGenerator produces deterministic pseudo random block payloads and
// unique variable names for address space tests.
type TestGenerator struct {
	T   *testing.T
	Rng *rand.Rand
}

func NewTestGenerator(t *testing.T, seed int64) TestGenerator {
	return TestGenerator{
		T:   t,
		Rng: rand.New(rand.NewSource(seed)),
	}
}

// Payload returns n pseudo random bytes. Same seed, same call sequence, same
// bytes.
func (g *TestGenerator) Payload(n int) []byte {
	b := make([]byte, n)
	// Read on a seeded *rand.Rand never errors
	_, _ = g.Rng.Read(b)
	return b
}

// PayloadSized returns a payload of random length in [1, maxLen], and the
// length chosen.
func (g *TestGenerator) PayloadSized(maxLen int) ([]byte, int) {
	n := 1 + g.Rng.Intn(maxLen)
	return g.Payload(n), n
}

// VarName returns a unique symbolic name with the given prefix. Names are
// uuid based and so unique across generators regardless of seed.
func (g *TestGenerator) VarName(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}
