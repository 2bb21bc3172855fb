package chess

type zobristTable struct {
	cells  [BoardSize * BoardSize][2]uint64
	pieces [PiecesCount][2]uint64
	side   uint64
}

var zobrist = func() (z zobristTable) {
	rng := splitmix64{state: 0x9e3779b97f4a7c15 ^ BoardSize}
	for i := range z.cells {
		z.cells[i] = [2]uint64{rng.next(), rng.next()}
	}
	for i := range z.pieces {
		z.pieces[i] = [2]uint64{rng.next(), rng.next()}
	}
	z.side = rng.next()
	return
}()

func side(t Turn) int {
	if t == Player2 {
		return 1
	}
	return 0
}

// Hash keys the position: cell owners, the player to move and both pools.
func (g Game) Hash() (hash uint64) {
	for i, d := range Dots {
		if t := g.Board.At(d); t != Empty {
			hash ^= zobrist.cells[i][side(t)]
		}
	}

	for piece := range Piece(PiecesCount) {
		if g.Player1Pool.Has(piece) {
			hash ^= zobrist.pieces[piece][0]
		}
		if g.Player2Pool.Has(piece) {
			hash ^= zobrist.pieces[piece][1]
		}
	}

	if g.NowPlayer == Player2 {
		hash ^= zobrist.side
	}
	return
}

type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
