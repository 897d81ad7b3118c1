package rail

// Unit is the empty payload carried by a success that has no value to report.
type Unit struct{}

// Pair is an ordered pair payload, produced by the two-value fit adapters.
type Pair[A, B any] struct {
	A A
	B B
}

type Tuple3[A, B, C any] struct {
	A A
	B B
	C C
}

type Tuple4[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

type Tuple5[A, B, C, D, E any] struct {
	A A
	B B
	C C
	D D
	E E
}
