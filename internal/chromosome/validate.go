package chromosome

import "fmt"

// ValidateGenes fails when any slot of c is still unset, typically because an
// encoding generated a nil value.
func ValidateGenes(c *Chromosome) error {
	if c == nil {
		return nil
	}
	for i, gene := range c.genes {
		if !gene.IsSet() {
			return fmt.Errorf("%w: chromosome %s has no value on index %d", ErrUnsetGene, c, i)
		}
	}
	return nil
}

func ValidateAll(chromosomes []*Chromosome) error {
	for _, c := range chromosomes {
		if err := ValidateGenes(c); err != nil {
			return err
		}
	}
	return nil
}

// AnyHasRepeatedGene reports whether some chromosome holds the same gene value
// in two different slots.
func AnyHasRepeatedGene(chromosomes []*Chromosome) bool {
	for _, c := range chromosomes {
		if c == nil {
			continue
		}
		for i := range c.genes {
			for j := i + 1; j < len(c.genes); j++ {
				if c.genes[i].Equal(c.genes[j]) {
					return true
				}
			}
		}
	}
	return false
}
