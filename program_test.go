package hes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedRoundTrip(t *testing.T) {
	p := NewProgram()
	a := aFor(0)
	b1, b2 := bFor(10), bFor(20)
	c := cFor(30)

	ida := Insert(p, a)
	idb1 := Insert(p, b1)
	idb2 := Insert(p, b2)
	idc := Insert(p, c)

	assert.Equal(t, 0, ida.Raw())
	assert.Equal(t, 0, idb1.Raw())
	assert.Equal(t, 1, idb2.Raw())
	assert.Equal(t, 0, idc.Raw())

	assert.Equal(t, a, At(p, ida))
	assert.Equal(t, b1, At(p, idb1))
	assert.Equal(t, b2, At(p, idb2))
	assert.Equal(t, c, At(p, idc))

	assert.Equal(t, 1, Len[A](p))
	assert.Equal(t, 2, Len[B](p))
	assert.Equal(t, 1, Len[C](p))
	assert.Equal(t, Counts{A: 1, B: 2, C: 1}, p.Counts())
	assert.Equal(t, 4, p.Len())
	assert.Equal(t, "Program{A=1 B=2 C=1}", p.String())
	assert.Equal(t, "B#1", idb2.String())
}

func TestErasedRoundTrip(t *testing.T) {
	p := NewProgram()
	d := NewDriver(0)
	for range 300 {
		row := SyntaxFor(d.Next())
		id := p.InsertAny(row)
		assert.Equal(t, row.Kind(), id.Kind())
		assert.Equal(t, row, p.AtAny(id))
	}
	assert.Equal(t, 300, p.Len())
}

func TestErasedIDMatchesTypedInsert(t *testing.T) {
	erased, typed := NewProgram(), NewProgram()
	d := NewDriver(7)
	for range 1000 {
		row := SyntaxFor(d.Next())
		id := erased.InsertAny(row)
		switch row.Kind() {
		case KindA:
			a, _ := row.A()
			want := Insert(typed, a)
			got, ok := id.A()
			require.True(t, ok)
			require.Equal(t, want, got)
		case KindB:
			b, _ := row.B()
			want := Insert(typed, b)
			got, ok := id.B()
			require.True(t, ok)
			require.Equal(t, want, got)
		case KindC:
			c, _ := row.C()
			want := Insert(typed, c)
			got, ok := id.C()
			require.True(t, ok)
			require.Equal(t, want, got)
		default:
			t.Fatalf("unexpected kind %v", row.Kind())
		}
	}
	assert.Equal(t, typed.Counts(), erased.Counts())
}

func TestAnyIDAccessors(t *testing.T) {
	p := NewProgram()
	Insert(p, bFor(1))
	id := AnyIDOf(Insert(p, bFor(2)))
	assert.Equal(t, KindB, id.Kind())
	assert.Equal(t, 1, id.Raw())
	assert.Equal(t, "B#1", id.String())

	_, ok := id.A()
	assert.False(t, ok)
	idb, ok := id.B()
	assert.True(t, ok)
	assert.Equal(t, bFor(2), At(p, idb))
	_, ok = id.C()
	assert.False(t, ok)
}

func TestInsertAnyRejectsUnknownVariant(t *testing.T) {
	p := NewProgram()
	p.InsertAny(SyntaxFor(94848))

	assert.PanicsWithError(t, "InsertAny: no record variant for Kind(0)", func() {
		p.InsertAny(AnySyntax{})
	})
	assert.PanicsWithError(t, "InsertAny: no record variant for Kind(9)", func() {
		p.InsertAny(AnySyntax{kind: 9, a: aFor(0)})
	})
	assert.Equal(t, Counts{A: 1}, p.Counts())

	defer func() {
		e, ok := recover().(*VariantError)
		require.True(t, ok)
		assert.Equal(t, "InsertAny", e.Op)
		assert.Equal(t, Kind(0), e.Kind)
	}()
	p.InsertAny(AnySyntax{})
}

func TestAtAnyRejectsUnknownVariant(t *testing.T) {
	p := NewProgram()
	p.InsertAny(SyntaxFor(94848))
	assert.PanicsWithError(t, "AtAny: no record variant for Kind(0)", func() {
		p.AtAny(AnyID{})
	})
}

func TestAtOutOfRangePanics(t *testing.T) {
	p := NewProgram()
	Insert(p, aFor(0))
	assert.Panics(t, func() {
		At(p, ID[A]{raw: 1})
	})
	assert.Panics(t, func() {
		p.AtAny(AnyID{kind: KindC, raw: 0})
	})
}
