package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/HuXin0817/blokus-duo/pkg/models/chess"
	"github.com/zeromicro/go-zero/core/logx"
)

func main() {
	initConfig()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var s Session = &LocalSession{}
	if *ServerConf != "" {
		s = NewRemoteSession(*ServerConf)
	}

	g, err := s.Start(ctx)
	if err != nil {
		logx.Must(err)
	}

	painter := NewPainter(bool(Color))
	stdin := bufio.NewScanner(os.Stdin)
	players := map[chess.Turn]Player{
		chess.Player1: newPlayer(s, bool(AI1), *Depth1Conf, stdin),
		chess.Player2: newPlayer(s, bool(AI2), *Depth2Conf, stdin),
	}

	fmt.Println(painter.Board(g))
	for !g.GameOver {
		m, ok, err := players[g.NowPlayer].NextMove(ctx, g)
		if err != nil {
			logx.Errorf("%s: %v", g.NowPlayer, err)
			return
		}

		if !ok {
			logx.Errorf("%s has no legal move", g.NowPlayer)
			return
		}

		next, err := s.Play(ctx, g, m)
		if err != nil {
			logx.Errorf("play %s: %v", m, err)
			continue
		}

		fmt.Println(painter.Move(m))
		if !next.GameOver && next.NowPlayer == m.Player {
			fmt.Println(painter.Pass(-m.Player))
		}

		g = next
		fmt.Println(painter.Board(g))
	}

	fmt.Println(painter.Result(g))
}

func newPlayer(s Session, ai bool, depth int, stdin *bufio.Scanner) Player {
	if !ai {
		return &HumanPlayer{Input: stdin, Output: os.Stdout}
	}

	return &AIPlayer{Session: s, Depth: depth, Progress: bool(Progress)}
}
