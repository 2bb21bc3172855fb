package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/HuXin0817/blokus-duo/pkg/models/chess"
	"github.com/HuXin0817/blokus-duo/pkg/models/model"
)

var ErrBadInput = errors.New("want: <piece> <rotation> <m|-> <row> <col>")

type Player interface {
	// NextMove picks a move for the player to move; ok is false when there is none.
	NextMove(ctx context.Context, g chess.Game) (m chess.Move, ok bool, err error)
}

type AIPlayer struct {
	Session  Session
	Depth    int
	Progress bool
}

func (p *AIPlayer) NextMove(ctx context.Context, g chess.Game) (chess.Move, bool, error) {
	var bar *model.Bar
	progress := func(done, total int) {
		if !p.Progress {
			return
		}

		if bar == nil {
			bar = model.NewBar(total, fmt.Sprintf("%s thinking...", g.NowPlayer))
		}
		bar.Goto(done)
	}

	defer func() {
		if bar != nil {
			bar.Close()
			fmt.Println()
		}
	}()

	return p.Session.BestMove(ctx, g, p.Depth, progress)
}

type HumanPlayer struct {
	Input  *bufio.Scanner
	Output io.Writer
}

func (p *HumanPlayer) NextMove(ctx context.Context, g chess.Game) (chess.Move, bool, error) {
	if !g.HasMoves(g.NowPlayer) {
		return chess.Move{}, false, nil
	}

	for ctx.Err() == nil {
		fmt.Fprintf(p.Output, "%s> ", g.NowPlayer)
		if !p.Input.Scan() {
			if err := p.Input.Err(); err != nil {
				return chess.Move{}, false, err
			}
			return chess.Move{}, false, io.EOF
		}

		m, err := ParseMove(p.Input.Text(), g.NowPlayer)
		if err == nil {
			err = g.Validate(m)
		}

		if err != nil {
			fmt.Fprintln(p.Output, err)
			continue
		}

		return m, true, nil
	}

	return chess.Move{}, false, ctx.Err()
}

// ParseMove reads "<piece> <rotation> <m|-> <row> <col>", for example "L5 90 m 4 4".
func ParseMove(line string, player chess.Turn) (m chess.Move, err error) {
	fields := strings.Fields(line)
	if len(fields) != 5 {
		return m, ErrBadInput
	}

	if m.Piece, err = chess.ParsePiece(fields[0]); err != nil {
		return m, err
	}

	rotation, err := strconv.Atoi(fields[1])
	if err != nil {
		return m, ErrBadInput
	}
	m.Rotation = chess.Rotation(rotation)

	switch fields[2] {
	case "m", "M":
		m.Mirrored = true
	case "-":
	default:
		return m, ErrBadInput
	}

	if m.Row, err = strconv.Atoi(fields[3]); err != nil {
		return m, ErrBadInput
	}

	if m.Col, err = strconv.Atoi(fields[4]); err != nil {
		return m, ErrBadInput
	}

	m.Player = player
	return m, nil
}
