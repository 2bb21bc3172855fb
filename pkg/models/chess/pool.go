package chess

import (
	"encoding/json"
	"math/bits"
)

// Pool is the set of templates a player still holds, bit i standing for Piece(i).
type Pool uint32

const FullPool Pool = 1<<PiecesCount - 1

func (p Pool) Has(piece Piece) bool {
	return piece.Valid() && p>>piece&1 == 1
}

func (p Pool) Remove(piece Piece) Pool {
	return p &^ (1 << piece)
}

func (p Pool) Len() int {
	return bits.OnesCount32(uint32(p))
}

func (p Pool) Full() bool {
	return p == FullPool
}

func (p Pool) Empty() bool {
	return p == 0
}

// Pieces lists the held templates in catalog order.
func (p Pool) Pieces() (pieces []Piece) {
	for piece := range Piece(PiecesCount) {
		if p.Has(piece) {
			pieces = append(pieces, piece)
		}
	}
	return
}

// Area sums the occupied cells of the held templates.
func (p Pool) Area() (area int) {
	for _, piece := range p.Pieces() {
		area += piece.Size()
	}
	return
}

func (p Pool) MarshalJSON() ([]byte, error) {
	pieces := p.Pieces()
	if pieces == nil {
		pieces = []Piece{}
	}
	return json.Marshal(pieces)
}

func (p *Pool) UnmarshalJSON(data []byte) error {
	var pieces []Piece
	if err := json.Unmarshal(data, &pieces); err != nil {
		return err
	}
	*p = 0
	for _, piece := range pieces {
		if !piece.Valid() {
			return ErrUnknownPiece
		}
		*p |= 1 << piece
	}
	return nil
}
