package chromosome

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// CompareTo orders c against other by fitness. A nil other yields -1, equal
// fitness (including both unset) yields 0, and 1 is returned only when both
// are evaluated and c is strictly fitter.
func (c *Chromosome) CompareTo(other *Chromosome) int {
	if other == nil {
		return -1
	}
	if c.hasFitness == other.hasFitness && (!c.hasFitness || c.fitness == other.fitness) {
		return 0
	}
	if c.hasFitness && other.hasFitness && c.fitness > other.fitness {
		return 1
	}
	return -1
}

// Compare is the nil-safe form of CompareTo.
func Compare(a, b *Chromosome) int {
	if a == nil {
		if b == nil {
			return 0
		}
		return -1
	}
	return a.CompareTo(b)
}

// Less reports whether a is strictly less fit than b. A nil a is less than any
// non-nil b; the same instance is never less than itself.
func Less(a, b *Chromosome) bool {
	if a == b {
		return false
	}
	if a == nil {
		return true
	}
	if b == nil {
		return false
	}
	return a.hasFitness && b.hasFitness && a.fitness < b.fitness
}

func Greater(a, b *Chromosome) bool {
	return Less(b, a)
}

func Equal(a, b *Chromosome) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.CompareTo(b) == 0
}

func NotEqual(a, b *Chromosome) bool {
	return !Equal(a, b)
}

// Equals reports fitness equality with another chromosome. Values of any
// other type are never equal.
func (c *Chromosome) Equals(other any) bool {
	o, ok := other.(*Chromosome)
	if !ok || o == nil {
		return false
	}
	return c.CompareTo(o) == 0
}

// Hash returns 0 for an unevaluated chromosome and HashFitness otherwise.
func (c *Chromosome) Hash() uint64 {
	if !c.hasFitness {
		return 0
	}
	return HashFitness(c.fitness)
}

func HashFitness(fitness float64) uint64 {
	if fitness == 0 {
		fitness = 0 // fold -0 into +0
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(fitness))
	return xxhash.Sum64(buf[:])
}
