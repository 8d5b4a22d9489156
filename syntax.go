package hes

import "fmt"

// Syntax is implemented by every record variant.
type Syntax interface {
	ProductWith(n int64) int64
}

// Row is the constraint of the typed Program accessors. Only A, B and C
// satisfy it.
type Row[T any] interface {
	Syntax
	column(p *Program) *[]T
	kind() Kind
	wrap() AnySyntax
}

type Kind uint8

const (
	KindA Kind = 1 + iota
	KindB
	KindC
)

func (k Kind) Valid() bool {
	return k >= KindA && k <= KindC
}

func (k Kind) String() string {
	switch k {
	case KindA:
		return "A"
	case KindB:
		return "B"
	case KindC:
		return "C"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

type A struct {
	V, W, Q, R, T, U, I, O, P, A, S, D int64
}

func (r A) ProductWith(n int64) int64 {
	return r.V*r.W - r.Q*r.R + r.T*r.U - r.I*r.O + r.P*r.A - r.S + r.D*n
}

func (A) column(p *Program) *[]A { return &p.a }
func (A) kind() Kind             { return KindA }
func (r A) wrap() AnySyntax      { return AnySyntax{kind: KindA, a: r} }

type B struct {
	V, W, Q, R int64
}

func (r B) ProductWith(n int64) int64 {
	return r.V*r.W - r.Q*r.R + n
}

func (B) column(p *Program) *[]B { return &p.b }
func (B) kind() Kind             { return KindB }
func (r B) wrap() AnySyntax      { return AnySyntax{kind: KindB, b: r} }

type C struct {
	X, Y, Z, W, Q, R, T, U, I, O int64
}

func (r C) ProductWith(n int64) int64 {
	return r.X*r.Y + r.Z - r.W*r.Q + r.R*r.T + r.U - r.I + r.O*n
}

func (C) column(p *Program) *[]C { return &p.c }
func (C) kind() Kind             { return KindC }
func (r C) wrap() AnySyntax      { return AnySyntax{kind: KindC, c: r} }
