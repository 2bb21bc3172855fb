package assess

import (
	"math"
	"runtime"
	"sort"
	"time"

	"github.com/HuXin0817/blokus-duo/pkg/models/chess"
)

const INF = math.MaxFloat64

// Stats describes the work done by one top-level search.
type Stats struct {
	Nodes     int
	TableHits int
	Cutoffs   int
	TableSize int
	RootMoves int
	Elapsed   time.Duration
}

type searcher struct {
	root       chess.Turn
	weights    Weights
	table      *table
	tableLimit int
	yield      func()
	progress   func(done, total int)
	stats      *Stats
}

type Option func(*searcher)

// WithYield replaces the hook run after each root move; runtime.Gosched by default.
func WithYield(yield func()) Option {
	return func(s *searcher) {
		s.yield = yield
	}
}

// WithProgress reports the number of finished root moves.
func WithProgress(progress func(done, total int)) Option {
	return func(s *searcher) {
		s.progress = progress
	}
}

// WithStats fills stats when the search returns.
func WithStats(stats *Stats) Option {
	return func(s *searcher) {
		s.stats = stats
	}
}

func WithWeights(weights Weights) Option {
	return func(s *searcher) {
		s.weights = weights
	}
}

// WithTableLimit bounds the number of positions the transposition table keeps.
func WithTableLimit(limit int) Option {
	return func(s *searcher) {
		s.tableLimit = limit
	}
}

func newSearcher(root chess.Turn, options ...Option) *searcher {
	s := &searcher{
		root:     root,
		weights:  DefaultWeights,
		yield:    runtime.Gosched,
		progress: func(int, int) {},
		stats:    &Stats{},
	}

	for _, option := range options {
		option(s)
	}

	s.table = newTable(s.tableLimit)
	return s
}

// OrderedMoves returns the legal moves of the player to move, larger pieces first.
// Moves of equal size keep generation order.
func OrderedMoves(g chess.Game) []chess.Move {
	moves := g.Moves()
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].Size() > moves[j].Size()
	})
	return moves
}

// FindBestMove searches depth plies for the player to move. ok is false when that
// player has no legal move, which callers treat as a pass.
// Ties go to the first move in OrderedMoves order.
func FindBestMove(g chess.Game, depth int, options ...Option) (best chess.Move, ok bool) {
	start := time.Now()
	s := newSearcher(g.NowPlayer, options...)
	defer s.finish(start)

	moves := OrderedMoves(g)
	s.stats.RootMoves = len(moves)
	if len(moves) == 0 {
		return
	}

	depth = max(depth, 1)
	bestScore := -INF
	for i, m := range moves {
		score := s.minimax(g.Place(m), depth-1, bestScore, INF, false)
		if !ok || score > bestScore {
			best, bestScore, ok = m, score, true
		}

		s.progress(i+1, len(moves))
		s.yield()
	}

	return
}

// ScoreMove is the value FindBestMove assigns to the root move m at the same depth.
// Workers scoring root moves independently reach the same choice as one FindBestMove call.
func ScoreMove(g chess.Game, m chess.Move, depth int, options ...Option) float64 {
	start := time.Now()
	s := newSearcher(g.NowPlayer, options...)
	defer s.finish(start)

	s.stats.RootMoves = 1
	return s.minimax(g.Place(m), max(depth, 1)-1, -INF, INF, false)
}

func (s *searcher) finish(start time.Time) {
	s.stats.TableSize = s.table.len()
	s.stats.Elapsed = time.Since(start)
}

func (s *searcher) evaluate(g chess.Game) float64 {
	return s.weights.Evaluate(g, s.root)
}

// minimax is alpha-beta over Place successors. A node without legal moves is a leaf:
// passes are not expanded.
func (s *searcher) minimax(g chess.Game, depth int, alpha, beta float64, maximizing bool) (score float64) {
	s.stats.Nodes++
	if depth <= 0 || g.GameOver {
		return s.evaluate(g)
	}

	key := g.Hash()
	if e, c := s.table.probe(key, depth); c {
		s.stats.TableHits++
		switch e.bound {
		case exact:
			return e.score
		case lowerBound:
			alpha = math.Max(alpha, e.score)
		case upperBound:
			beta = math.Min(beta, e.score)
		}
		if beta <= alpha {
			return e.score
		}
	}

	moves := OrderedMoves(g)
	if len(moves) == 0 {
		score = s.evaluate(g)
		s.table.store(key, entry{score: score, depth: depth, bound: exact})
		return
	}

	alphaOrigin, betaOrigin := alpha, beta
	if maximizing {
		score = -INF
	} else {
		score = INF
	}

	for _, m := range moves {
		eval := s.minimax(g.Place(m), depth-1, alpha, beta, !maximizing)
		if maximizing {
			score = math.Max(score, eval)
			alpha = math.Max(alpha, score)
		} else {
			score = math.Min(score, eval)
			beta = math.Min(beta, score)
		}

		if beta <= alpha {
			s.stats.Cutoffs++
			break
		}
	}

	e := entry{score: score, depth: depth, bound: exact}
	switch {
	case score <= alphaOrigin:
		e.bound = upperBound
	case score >= betaOrigin:
		e.bound = lowerBound
	}
	s.table.store(key, e)
	return
}
