package main

import (
	"fmt"
	"strings"

	"github.com/HuXin0817/blokus-duo/pkg/models/chess"
	"github.com/logrusorgru/aurora"
)

type Painter struct {
	aurora.Aurora
}

func NewPainter(colors bool) *Painter {
	return &Painter{Aurora: aurora.NewAurora(colors)}
}

func (p *Painter) cell(t chess.Turn) string {
	switch t {
	case chess.Player1:
		return p.Blue("■").String()
	case chess.Player2:
		return p.Red("■").String()
	}
	return p.Gray(8, "·").String()
}

func (p *Painter) player(t chess.Turn) string {
	if t == chess.Player2 {
		return p.Red(t).String()
	}
	return p.Blue(t).String()
}

// Board draws the grid with row and column indices, plus the running scores.
func (p *Painter) Board(g chess.Game) string {
	var sb strings.Builder
	sb.WriteString("   ")
	for c := range chess.BoardSize {
		fmt.Fprintf(&sb, "%2d", c)
	}
	sb.WriteByte('\n')

	for r := range chess.BoardSize {
		fmt.Fprintf(&sb, "%2d ", r)
		for c := range chess.BoardSize {
			sb.WriteByte(' ')
			sb.WriteString(p.cell(g.Board[r][c]))
		}
		sb.WriteByte('\n')
	}

	fmt.Fprintf(&sb, "%s %d (%d left)  %s %d (%d left)",
		p.player(chess.Player1), g.Player1Score, g.Player1Pool.Len(),
		p.player(chess.Player2), g.Player2Score, g.Player2Pool.Len())
	return sb.String()
}

func (p *Painter) Move(m chess.Move) string {
	return fmt.Sprintf("%s plays %s", p.player(m.Player), p.Bold(m))
}

func (p *Painter) Pass(t chess.Turn) string {
	return fmt.Sprintf("%s has no legal move and passes", p.player(t))
}

func (p *Painter) Result(g chess.Game) string {
	if g.Winner == chess.Draw {
		return p.Yellow(fmt.Sprintf("Draw, %d to %d", g.Player1Score, g.Player2Score)).String()
	}

	return p.Yellow(fmt.Sprintf("%s wins, %d to %d", g.Winner, g.Player1Score, g.Player2Score)).String()
}
