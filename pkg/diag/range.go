package diag

// Ranger is implemented by anything that occupies a span of source code, such
// as a parsed command or word.
type Ranger interface {
	// Range returns the span.
	Range() Ranging
}

// Ranging is the span [From, To) of byte indices into a source. Embedding it
// makes a struct a [Ranger].
//
// It is not called Range so that embedding it gives a Range method instead
// of a Range field.
type Ranging struct {
	From int
	To   int
}

// Range returns r.
func (r Ranging) Range() Ranging { return r }

// PointRanging returns the empty span at p.
func PointRanging(p int) Ranging {
	return Ranging{p, p}
}

// MixedRanging returns the span covering a through b: it starts where a
// starts and ends where b ends.
func MixedRanging(a, b Ranger) Ranging {
	return Ranging{a.Range().From, b.Range().To}
}
