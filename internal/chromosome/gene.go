package chromosome

import (
	"fmt"
	"reflect"
)

// Gene holds a single encoded value. The zero Gene is the unset sentinel.
type Gene struct {
	value any
}

func NewGene(value any) Gene {
	return Gene{value: value}
}

func (g Gene) Value() any {
	return g.value
}

func (g Gene) IsSet() bool {
	return g.value != nil
}

// Equal reports whether both genes hold deeply equal values. Two unset genes
// are equal.
func (g Gene) Equal(other Gene) bool {
	return reflect.DeepEqual(g.value, other.value)
}

func (g Gene) String() string {
	if g.value == nil {
		return ""
	}
	return fmt.Sprintf("%v", g.value)
}
