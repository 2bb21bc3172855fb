package logic

import "github.com/HuXin0817/blokus-duo/serve/internal/config"

// searchDepth resolves a requested depth; zero selects the configured default.
func searchDepth(c config.Config, depth int) (int, error) {
	if depth == 0 {
		depth = c.Search.DefaultDepth
	}

	if depth < 1 || depth > c.Search.MaxDepth {
		return 0, ErrDepthOutOfRange
	}

	return depth, nil
}
