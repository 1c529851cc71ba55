package genecore

import (
	"errors"
	"testing"
)

func TestGenerateChromosomeFillsGenes(t *testing.T) {
	enc := EncodingFunc(func(index int) Gene { return NewGene(index + 1) })
	c, err := GenerateChromosome(3, enc)
	if err != nil {
		t.Fatalf("generate chromosome: %v", err)
	}
	for i, g := range c.Genes() {
		if g.Value() != i+1 {
			t.Fatalf("gene %d: expected %d, got %v", i, i+1, g.Value())
		}
	}
	if _, ok := c.Fitness(); ok {
		t.Fatal("expected fitness unset")
	}
}

func TestGenerateChromosomeRejectsUnsetGenes(t *testing.T) {
	enc := EncodingFunc(func(int) Gene { return Gene{} })
	if _, err := GenerateChromosome(2, enc); !errors.Is(err, ErrUnsetGene) {
		t.Fatalf("expected unset gene error, got %v", err)
	}
	if _, err := GenerateChromosome(1, enc); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestOrderingThroughFacade(t *testing.T) {
	enc := EncodingFunc(func(index int) Gene { return NewGene(index) })
	a, err := NewChromosome(MinLength, enc)
	if err != nil {
		t.Fatalf("new a: %v", err)
	}
	b := a.Clone()
	a.SetFitness(1)
	b.SetFitness(2)
	if !Less(a, b) || !Greater(b, a) || Equal(a, b) || !NotEqual(a, b) {
		t.Fatal("unexpected ordering between a=1 and b=2")
	}
	if Compare(b, a) != 1 || b.Hash() != HashFitness(2) {
		t.Fatal("unexpected compare or hash result")
	}
}
