package hes

import "fmt"

// ID addresses a row of variant T inside the Program that issued it.
type ID[T Row[T]] struct {
	raw int
}

func (id ID[T]) Raw() int {
	return id.raw
}

func (id ID[T]) String() string {
	var zero T
	return fmt.Sprintf("%v#%d", zero.kind(), id.raw)
}

// AnyID is an ID of any variant, tagged with the variant it belongs to.
type AnyID struct {
	kind Kind
	raw  int
}

func AnyIDOf[T Row[T]](id ID[T]) AnyID {
	var zero T
	return AnyID{kind: zero.kind(), raw: id.raw}
}

func (id AnyID) Kind() Kind {
	return id.kind
}

// Raw returns the slot index of whichever variant is active.
func (id AnyID) Raw() int {
	return id.raw
}

func (id AnyID) A() (ID[A], bool) {
	return ID[A]{raw: id.raw}, id.kind == KindA
}

func (id AnyID) B() (ID[B], bool) {
	return ID[B]{raw: id.raw}, id.kind == KindB
}

func (id AnyID) C() (ID[C], bool) {
	return ID[C]{raw: id.raw}, id.kind == KindC
}

func (id AnyID) String() string {
	return fmt.Sprintf("%v#%d", id.kind, id.raw)
}
