package chess

import (
	"errors"
	"fmt"
)

var ErrUnknownPiece = errors.New("unknown piece")

// Piece indexes Catalog.
type Piece int8

const (
	NoPiece     Piece = -1
	PiecesCount       = 21
	Monomino    Piece = 0
)

type PieceTemplate struct {
	ID    string
	Shape Shape
}

// Catalog is the Blokus Duo piece set, smallest first.
var Catalog = [PiecesCount]PieceTemplate{
	{"I1", NewShape("#")},
	{"I2", NewShape("##")},
	{"I3", NewShape("###")},
	{"V3", NewShape("#.", "##")},
	{"I4", NewShape("####")},
	{"L4", NewShape("#..", "###")},
	{"T4", NewShape("###", ".#.")},
	{"O4", NewShape("##", "##")},
	{"Z4", NewShape("##.", ".##")},
	{"I5", NewShape("#####")},
	{"F5", NewShape(".##", "##.", ".#.")},
	{"L5", NewShape("#...", "####")},
	{"N5", NewShape(".###", "##..")},
	{"P5", NewShape("##", "##", "#.")},
	{"T5", NewShape("###", ".#.", ".#.")},
	{"U5", NewShape("#.#", "###")},
	{"V5", NewShape("#..", "#..", "###")},
	{"W5", NewShape("#..", "##.", ".##")},
	{"X5", NewShape(".#.", "###", ".#.")},
	{"Y5", NewShape(".#..", "####")},
	{"Z5", NewShape("##.", ".#.", ".##")},
}

// TotalArea is the number of cells covered by one full set.
var TotalArea = func() (area int) {
	for _, t := range Catalog {
		area += t.Shape.Size()
	}
	return
}()

func ParsePiece(id string) (Piece, error) {
	for i, t := range Catalog {
		if t.ID == id {
			return Piece(i), nil
		}
	}
	return NoPiece, fmt.Errorf("%w: %q", ErrUnknownPiece, id)
}

func (p Piece) Valid() bool {
	return p >= 0 && p < PiecesCount
}

func (p Piece) ID() string {
	if !p.Valid() {
		return ""
	}
	return Catalog[p].ID
}

func (p Piece) String() string {
	return p.ID()
}

func (p Piece) Shape() Shape {
	return Catalog[p].Shape
}

func (p Piece) Size() int {
	return Catalog[p].Shape.Size()
}

func (p Piece) MarshalText() ([]byte, error) {
	return []byte(p.ID()), nil
}

func (p *Piece) UnmarshalText(text []byte) (err error) {
	if len(text) == 0 {
		*p = NoPiece
		return nil
	}
	*p, err = ParsePiece(string(text))
	return
}

// Rotation is a clockwise rotation in degrees: 0, 90, 180 or 270.
type Rotation int

const (
	Rotate0   Rotation = 0
	Rotate90  Rotation = 90
	Rotate180 Rotation = 180
	Rotate270 Rotation = 270
)

var Rotations = [...]Rotation{Rotate0, Rotate90, Rotate180, Rotate270}

func (r Rotation) Valid() bool {
	return r%90 == 0 && r >= 0 && r < 360
}

// Quarter is the number of clockwise quarter turns.
func (r Rotation) Quarter() int {
	return (int(r)/90%4 + 4) % 4
}

// PieceInstance is one player's copy of a template in a chosen orientation.
type PieceInstance struct {
	Piece    Piece    `json:"piece"`
	Player   Turn     `json:"player"`
	Rotation Rotation `json:"rotation"`
	Mirrored bool     `json:"mirrored"`
}

// Shape resolves the instance orientation against the template.
func (p PieceInstance) Shape() Shape {
	return orientations[p.Piece][b2i(p.Mirrored)][p.Rotation.Quarter()]
}

// Orientation is a geometrically distinct variant of a template.
type Orientation struct {
	Rotation Rotation
	Mirrored bool
	Shape    Shape
	Cells    []Dot
}

var (
	orientations [PiecesCount][2][4]Shape
	distinct     [PiecesCount][]Orientation
)

func init() {
	for p := range Piece(PiecesCount) {
		seen := make(map[Shape]struct{})
		for _, mirrored := range [...]bool{false, true} {
			for _, rotation := range Rotations {
				shape := p.Shape().Transform(rotation, mirrored)
				orientations[p][b2i(mirrored)][rotation.Quarter()] = shape
				if _, c := seen[shape]; c {
					continue
				}
				seen[shape] = struct{}{}
				distinct[p] = append(distinct[p], Orientation{
					Rotation: rotation,
					Mirrored: mirrored,
					Shape:    shape,
					Cells:    shape.Cells(),
				})
			}
		}
	}
}

// Orientations lists the variants of p with symmetric duplicates removed, in
// (unmirrored 0..270, mirrored 0..270) order.
func Orientations(p Piece) []Orientation {
	return distinct[p]
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
