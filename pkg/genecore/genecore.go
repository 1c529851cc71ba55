package genecore

import "genecore/internal/chromosome"

const MinLength = chromosome.MinLength

type (
	Gene       = chromosome.Gene
	Encoding   = chromosome.Encoding
	Chromosome = chromosome.Chromosome
)

var (
	ErrInvalidArgument = chromosome.ErrInvalidArgument
	ErrIndexOutOfRange = chromosome.ErrIndexOutOfRange
	ErrNullArgument    = chromosome.ErrNullArgument
	ErrUnsetGene       = chromosome.ErrUnsetGene
)

// EncodingFunc adapts a plain function to the Encoding interface.
type EncodingFunc func(index int) Gene

func (f EncodingFunc) GenerateGene(index int) Gene {
	return f(index)
}

func NewGene(value any) Gene {
	return chromosome.NewGene(value)
}

// NewChromosome allocates a chromosome of the given length with unset genes.
func NewChromosome(length int, encoding Encoding) (*Chromosome, error) {
	return chromosome.New(length, encoding)
}

// GenerateChromosome allocates a chromosome and fills every gene from the
// encoding.
func GenerateChromosome(length int, encoding Encoding) (*Chromosome, error) {
	c, err := chromosome.New(length, encoding)
	if err != nil {
		return nil, err
	}
	c.CreateGenes()
	if err := chromosome.ValidateGenes(c); err != nil {
		return nil, err
	}
	return c, nil
}

func Compare(a, b *Chromosome) int       { return chromosome.Compare(a, b) }
func Less(a, b *Chromosome) bool         { return chromosome.Less(a, b) }
func Greater(a, b *Chromosome) bool      { return chromosome.Greater(a, b) }
func Equal(a, b *Chromosome) bool        { return chromosome.Equal(a, b) }
func NotEqual(a, b *Chromosome) bool     { return chromosome.NotEqual(a, b) }
func HashFitness(fitness float64) uint64 { return chromosome.HashFitness(fitness) }

func ValidateGenes(c *Chromosome) error        { return chromosome.ValidateGenes(c) }
func ValidateAll(cs []*Chromosome) error       { return chromosome.ValidateAll(cs) }
func AnyHasRepeatedGene(cs []*Chromosome) bool { return chromosome.AnyHasRepeatedGene(cs) }
