package hes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverSequence(t *testing.T) {
	d := NewDriver(0)
	var got []uint64
	for range 10 {
		got = append(got, d.Next())
	}
	assert.Equal(t, []uint64{94848, 793917, 57580, 340466, 373009, 642185, 140038, 556325, 791502, 963396}, got)
	assert.Equal(t, uint64(963396), d.Seed())
}

func TestDriverIsDeterministic(t *testing.T) {
	for _, seed := range []uint64{0, 1, 999_999, 1 << 40} {
		d1, d2 := NewDriver(seed), NewDriver(seed)
		for i := 0; i < 10_000; i++ {
			v1, v2 := d1.Next(), d2.Next()
			require.Equal(t, v1, v2, "seed %d step %d", seed, i)
			require.Less(t, v1, uint64(driverModulus))
		}
	}
}

func TestSyntaxFor(t *testing.T) {
	s := SyntaxFor(94848)
	assert.Equal(t, KindA, s.Kind())
	a, _ := s.A()
	assert.Equal(t, A{V: 0, W: 1, Q: 2, R: 3, T: 4, U: 5, I: 6, O: 7, P: 8, A: 9, S: 10, D: 11}, a)

	s = SyntaxFor(57580)
	assert.Equal(t, KindB, s.Kind())
	b, _ := s.B()
	assert.Equal(t, B{V: 57580, W: 1, Q: 2, R: 3}, b)

	s = SyntaxFor(340466)
	assert.Equal(t, KindC, s.Kind())
	c, _ := s.C()
	assert.Equal(t, C{
		X: 340466, Y: 340467, Z: 340468, W: 340469, Q: 340470,
		R: 340471, T: 340472, U: 340473, I: 340474, O: 340475,
	}, c)
}
