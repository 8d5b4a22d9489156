package hes

// AnySyntax holds exactly one record of A, B or C. The zero value holds none
// and is rejected by Program.InsertAny.
type AnySyntax struct {
	kind Kind
	a    A
	b    B
	c    C
}

func AnyOf[T Row[T]](row T) AnySyntax {
	return row.wrap()
}

func (s AnySyntax) Kind() Kind {
	return s.kind
}

func (s AnySyntax) A() (A, bool) {
	return s.a, s.kind == KindA
}

func (s AnySyntax) B() (B, bool) {
	return s.b, s.kind == KindB
}

func (s AnySyntax) C() (C, bool) {
	return s.c, s.kind == KindC
}

// ProductWith dispatches to the held variant.
func (s AnySyntax) ProductWith(n int64) int64 {
	switch s.kind {
	case KindA:
		return s.a.ProductWith(n)
	case KindB:
		return s.b.ProductWith(n)
	case KindC:
		return s.c.ProductWith(n)
	default:
		panic(variantErr("ProductWith", s.kind))
	}
}

// Syntax returns the held record as an interface value.
func (s AnySyntax) Syntax() Syntax {
	switch s.kind {
	case KindA:
		return s.a
	case KindB:
		return s.b
	case KindC:
		return s.c
	default:
		panic(variantErr("Syntax", s.kind))
	}
}
