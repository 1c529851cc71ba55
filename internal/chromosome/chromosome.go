package chromosome

import (
	"fmt"
	"strconv"
	"strings"
)

// MinLength is the smallest number of genes a chromosome may hold.
const MinLength = 2

// Encoding supplies encoding-specific gene values. An encoding is shared by a
// chromosome and all of its clones.
type Encoding interface {
	GenerateGene(index int) Gene
}

// Chromosome is an ordered, resizable sequence of genes with a cached fitness
// score. Any structural change drops the cached fitness.
//
// A Chromosome is not safe for concurrent mutation.
type Chromosome struct {
	encoding   Encoding
	genes      []Gene
	fitness    float64
	hasFitness bool
}

func New(length int, encoding Encoding) (*Chromosome, error) {
	if err := validateLength(length); err != nil {
		return nil, err
	}
	if encoding == nil {
		return nil, fmt.Errorf("%w: encoding is required", ErrNullArgument)
	}
	return &Chromosome{
		encoding: encoding,
		genes:    make([]Gene, length),
	}, nil
}

func validateLength(length int) error {
	if length < MinLength {
		return fmt.Errorf("%w: the minimum length for a chromosome is %d genes, got %d", ErrInvalidArgument, MinLength, length)
	}
	return nil
}

func (c *Chromosome) Length() int {
	return len(c.genes)
}

func (c *Chromosome) Gene(index int) (Gene, error) {
	if index < 0 || index >= len(c.genes) {
		return Gene{}, fmt.Errorf("%w: there is no gene on index %d", ErrIndexOutOfRange, index)
	}
	return c.genes[index], nil
}

// Genes returns a snapshot of the gene sequence.
func (c *Chromosome) Genes() []Gene {
	return append([]Gene(nil), c.genes...)
}

// GenerateGene asks the encoding for a value at index and stores it. Fitness
// is left untouched.
func (c *Chromosome) GenerateGene(index int) error {
	if index < 0 || index >= len(c.genes) {
		return fmt.Errorf("%w: there is no gene on index %d to be generated", ErrIndexOutOfRange, index)
	}
	c.genes[index] = c.encoding.GenerateGene(index)
	return nil
}

// CreateGenes fills every slot from the encoding.
func (c *Chromosome) CreateGenes() {
	for i := range c.genes {
		c.genes[i] = c.encoding.GenerateGene(i)
	}
}

func (c *Chromosome) ReplaceGene(index int, gene Gene) error {
	if index < 0 || index >= len(c.genes) {
		return fmt.Errorf("%w: there is no gene on index %d to be replaced", ErrIndexOutOfRange, index)
	}
	c.genes[index] = gene
	c.invalidateFitness()
	return nil
}

// ReplaceGenes writes genes into consecutive slots from startIndex. Genes that
// would run past the last slot are dropped.
func (c *Chromosome) ReplaceGenes(startIndex int, genes []Gene) error {
	if genes == nil {
		return fmt.Errorf("%w: genes are required", ErrNullArgument)
	}
	if startIndex < 0 || startIndex >= len(c.genes) {
		return fmt.Errorf("%w: there is no gene on index %d to be replaced", ErrIndexOutOfRange, startIndex)
	}
	copy(c.genes[startIndex:], genes)
	c.invalidateFitness()
	return nil
}

// Resize truncates or extends the gene sequence. New slots hold unset genes.
func (c *Chromosome) Resize(newLength int) error {
	if err := validateLength(newLength); err != nil {
		return err
	}
	if newLength <= len(c.genes) {
		c.genes = append([]Gene(nil), c.genes[:newLength]...)
	} else {
		resized := make([]Gene, newLength)
		copy(resized, c.genes)
		c.genes = resized
	}
	c.invalidateFitness()
	return nil
}

func (c *Chromosome) Fitness() (float64, bool) {
	return c.fitness, c.hasFitness
}

func (c *Chromosome) SetFitness(fitness float64) {
	c.fitness = fitness
	c.hasFitness = true
}

func (c *Chromosome) ClearFitness() {
	c.invalidateFitness()
}

func (c *Chromosome) invalidateFitness() {
	c.fitness = 0
	c.hasFitness = false
}

// Clone returns an independent copy with the same genes, fitness and encoding.
func (c *Chromosome) Clone() *Chromosome {
	out := *c
	out.genes = append([]Gene(nil), c.genes...)
	return &out
}

// CreateNew returns a fresh chromosome of the same length and encoding with
// every gene generated and fitness unset.
func (c *Chromosome) CreateNew() (*Chromosome, error) {
	out, err := New(len(c.genes), c.encoding)
	if err != nil {
		return nil, err
	}
	out.CreateGenes()
	return out, nil
}

func (c *Chromosome) String() string {
	var b strings.Builder
	b.WriteString("genes=[")
	for i, gene := range c.genes {
		if i > 0 {
			b.WriteByte(' ')
		}
		if !gene.IsSet() {
			b.WriteString("_")
			continue
		}
		b.WriteString(gene.String())
	}
	b.WriteString("] fitness=")
	if c.hasFitness {
		b.WriteString(strconv.FormatFloat(c.fitness, 'g', -1, 64))
	} else {
		b.WriteString("unset")
	}
	return b.String()
}
