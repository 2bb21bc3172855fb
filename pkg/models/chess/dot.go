package chess

import "fmt"

const (
	BoardSize = 14
	D         = 8
	dotMod    = 1 << D
	dotMask   = dotMod - 1
)

// Dot is a board cell packed as (row << D) + col.
type Dot int

func NewDot(x, y int) Dot {
	return Dot((x << D) + y)
}

func (d Dot) X() int {
	return int(d) >> D
}

func (d Dot) Y() int {
	return int(d) & dotMask
}

func (d Dot) String() string {
	return fmt.Sprintf("(%d, %d)", d.X(), d.Y())
}

func InBoard(x, y int) bool {
	return x >= 0 && x < BoardSize && y >= 0 && y < BoardSize
}

// Dots lists every board cell in row-major order.
var Dots = func() (dots []Dot) {
	for i := range BoardSize {
		for j := range BoardSize {
			dots = append(dots, NewDot(i, j))
		}
	}
	return
}()

var (
	orthogonal = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonal   = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)
