package chromosome

import "testing"

type indexEncoding struct {
	calls int
}

func (e *indexEncoding) GenerateGene(index int) Gene {
	e.calls++
	return NewGene(index * 10)
}

type nilEncoding struct{}

func (nilEncoding) GenerateGene(int) Gene {
	return Gene{}
}

func newTestChromosome(t *testing.T, length int) *Chromosome {
	t.Helper()
	c, err := New(length, &indexEncoding{})
	if err != nil {
		t.Fatalf("new chromosome: %v", err)
	}
	return c
}

func newScored(t *testing.T, fitness float64) *Chromosome {
	t.Helper()
	c := newTestChromosome(t, MinLength)
	c.SetFitness(fitness)
	return c
}

func intGenes(values ...int) []Gene {
	genes := make([]Gene, len(values))
	for i, v := range values {
		genes[i] = NewGene(v)
	}
	return genes
}
