package hes

import "fmt"

// VariantError is the panic value raised when a tagged union carries no known
// variant. It always indicates a programming error.
type VariantError struct {
	Op   string
	Kind Kind
}

func variantErr(op string, k Kind) error {
	return &VariantError{Op: op, Kind: k}
}

func (e *VariantError) Error() string {
	return fmt.Sprintf("%s: no record variant for %v", e.Op, e.Kind)
}
