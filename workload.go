package hes

// Workload parameterizes every benchmark procedure.
type Workload struct {
	Steps int
	Seed  uint64
}

// DefaultWorkload is the workload the reference checksums are known for.
var DefaultWorkload = Workload{Steps: 100_000, Seed: 0}

type MixedResult struct {
	Sum    int64
	Counts Counts
}

// MixedDispatch inserts w.Steps records through InsertAny, then performs
// w.Steps lookups through AtAny, summing ProductWith of every looked up row.
func MixedDispatch(w Workload) MixedResult {
	p := NewProgram()
	d := NewDriver(w.Seed)

	ids := make([]AnyID, 0, w.Steps)
	for range w.Steps {
		ids = append(ids, p.InsertAny(SyntaxFor(d.Next())))
	}

	var sum int64
	for range w.Steps {
		seed := d.Next()
		id := ids[seed%uint64(len(ids))]
		sum += p.AtAny(id).ProductWith(int64(seed % 100))
	}
	return MixedResult{Sum: sum, Counts: p.Counts()}
}

type InsertionResult struct {
	Sum    int64
	Counts Counts
}

// PrepareInsertion generates the records of w in driver order.
func PrepareInsertion(w Workload) []AnySyntax {
	d := NewDriver(w.Seed)
	rows := make([]AnySyntax, 0, w.Steps)
	for range w.Steps {
		rows = append(rows, SyntaxFor(d.Next()))
	}
	return rows
}

// InsertReversed inserts rows last to first into a fresh Program through
// InsertAny, summing the returned slot indices.
func InsertReversed(rows []AnySyntax) InsertionResult {
	p := NewProgram()
	var sum int64
	for i := len(rows) - 1; i >= 0; i-- {
		sum += int64(p.InsertAny(rows[i]).Raw())
	}
	return InsertionResult{Sum: sum, Counts: p.Counts()}
}

// Populate fills a fresh Program with the records of w using only the typed
// path.
func Populate(w Workload) *Program {
	p := NewProgram()
	d := NewDriver(w.Seed)
	for range w.Steps {
		seed := d.Next()
		switch seed % 3 {
		case 0:
			Insert(p, aFor(seed))
		case 1:
			Insert(p, bFor(seed))
		default:
			Insert(p, cFor(seed))
		}
	}
	return p
}

// MonomorphicInsertion copies every column of src, last row first, into a
// fresh Program through Insert, summing the returned slot indices.
func MonomorphicInsertion(src *Program) InsertionResult {
	p := NewProgram()
	sum := copyReversed[A](p, src)
	sum += copyReversed[B](p, src)
	sum += copyReversed[C](p, src)
	return InsertionResult{Sum: sum, Counts: p.Counts()}
}

func copyReversed[T Row[T]](dst, src *Program) int64 {
	var sum int64
	for i := Len[T](src) - 1; i >= 0; i-- {
		sum += int64(Insert(dst, At(src, ID[T]{raw: i})).Raw())
	}
	return sum
}

// MonomorphicScan walks every column through At, summing ProductWith(i % 100)
// for the row in slot i.
func MonomorphicScan(p *Program) int64 {
	return scan[A](p) + scan[B](p) + scan[C](p)
}

func scan[T Row[T]](p *Program) int64 {
	var sum int64
	n := Len[T](p)
	for i := 0; i < n; i++ {
		sum += At(p, ID[T]{raw: i}).ProductWith(int64(i % 100))
	}
	return sum
}
