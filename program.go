package hes

import "fmt"

// Program stores records in one append-only column per variant.
type Program struct {
	a []A
	b []B
	c []C
}

func NewProgram() *Program {
	return &Program{}
}

// Insert appends row to its variant's column.
func Insert[T Row[T]](p *Program, row T) ID[T] {
	col := row.column(p)
	*col = append(*col, row)
	return ID[T]{raw: len(*col) - 1}
}

// At returns the row id refers to. An id from another Program, or one that
// was never issued, may panic with an index out of range.
func At[T Row[T]](p *Program, id ID[T]) T {
	var zero T
	return (*zero.column(p))[id.raw]
}

func Len[T Row[T]](p *Program) int {
	var zero T
	return len(*zero.column(p))
}

// InsertAny appends row to the column of the variant it holds. It panics with
// *VariantError, leaving p untouched, if row holds no variant.
func (p *Program) InsertAny(row AnySyntax) AnyID {
	switch row.kind {
	case KindA:
		return AnyIDOf(Insert(p, row.a))
	case KindB:
		return AnyIDOf(Insert(p, row.b))
	case KindC:
		return AnyIDOf(Insert(p, row.c))
	default:
		panic(variantErr("InsertAny", row.kind))
	}
}

func (p *Program) AtAny(id AnyID) AnySyntax {
	switch id.kind {
	case KindA:
		return AnySyntax{kind: KindA, a: p.a[id.raw]}
	case KindB:
		return AnySyntax{kind: KindB, b: p.b[id.raw]}
	case KindC:
		return AnySyntax{kind: KindC, c: p.c[id.raw]}
	default:
		panic(variantErr("AtAny", id.kind))
	}
}

type Counts struct {
	A int
	B int
	C int
}

func (c Counts) Total() int {
	return c.A + c.B + c.C
}

func (c Counts) String() string {
	return fmt.Sprintf("A=%d B=%d C=%d", c.A, c.B, c.C)
}

func (p *Program) Counts() Counts {
	return Counts{A: len(p.a), B: len(p.b), C: len(p.c)}
}

func (p *Program) Len() int {
	return len(p.a) + len(p.b) + len(p.c)
}

func (p *Program) String() string {
	return "Program{" + p.Counts().String() + "}"
}
