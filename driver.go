package hes

const (
	driverIncrement  = 2432
	driverMultiplier = 39
	driverModulus    = 1_000_001
)

// Driver generates the pseudo-random seed sequence every workload runs on.
// The same starting seed always yields the same sequence.
type Driver struct {
	seed uint64
}

func NewDriver(seed uint64) *Driver {
	return &Driver{seed: seed}
}

func (d *Driver) Seed() uint64 {
	return d.seed
}

// Next advances the driver and returns the new seed.
func (d *Driver) Next() uint64 {
	d.seed = (d.seed + driverIncrement) * driverMultiplier % driverModulus
	return d.seed
}

// SyntaxFor derives the record a workload inserts for seed.
func SyntaxFor(seed uint64) AnySyntax {
	switch seed % 3 {
	case 0:
		return AnyOf(aFor(seed))
	case 1:
		return AnyOf(bFor(seed))
	default:
		return AnyOf(cFor(seed))
	}
}

func aFor(uint64) A {
	return A{V: 0, W: 1, Q: 2, R: 3, T: 4, U: 5, I: 6, O: 7, P: 8, A: 9, S: 10, D: 11}
}

func bFor(seed uint64) B {
	return B{V: int64(seed), W: 1, Q: 2, R: 3}
}

func cFor(seed uint64) C {
	n := int64(seed)
	return C{
		X: n, Y: n + 1, Z: n + 2, W: n + 3, Q: n + 4,
		R: n + 5, T: n + 6, U: n + 7, I: n + 8, O: n + 9,
	}
}
