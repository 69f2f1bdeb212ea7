package game

// MineSource picks mine positions during board creation. *rand.Rand satisfies it.
type MineSource interface {
	// Intn returns an index in [0, n)
	Intn(n int) int
}

// FixedSource replays a fixed list of linear indices (row*cols + col). Once the
// list is exhausted it counts upwards from 0, so placement always terminates.
// Indices are reduced modulo n.
type FixedSource struct {
	Indices []int
	next    int
}

func NewFixedSource(indices ...int) *FixedSource {
	return &FixedSource{Indices: indices}
}

func (source *FixedSource) Intn(n int) int {
	var idx int
	if source.next < len(source.Indices) {
		idx = source.Indices[source.next]
	} else {
		idx = source.next - len(source.Indices)
	}
	source.next++

	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}
