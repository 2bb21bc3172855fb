package assess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableDepthGate(t *testing.T) {
	tt := newTable(0)
	tt.store(1, entry{score: 3, depth: 2})

	e, c := tt.probe(1, 2)
	assert.True(t, c)
	assert.Equal(t, 3.0, e.score)

	_, c = tt.probe(1, 3)
	assert.False(t, c)

	tt.store(1, entry{score: 5, depth: 1})
	e, _ = tt.probe(1, 1)
	assert.Equal(t, 3.0, e.score)

	tt.store(1, entry{score: 7, depth: 4, bound: lowerBound})
	e, _ = tt.probe(1, 4)
	assert.Equal(t, 7.0, e.score)
	assert.Equal(t, lowerBound, e.bound)
}

func TestTableLimit(t *testing.T) {
	tt := newTable(2)
	tt.store(1, entry{depth: 1})
	tt.store(2, entry{depth: 1})
	tt.store(3, entry{depth: 1})
	assert.Equal(t, 2, tt.len())

	_, c := tt.probe(3, 1)
	assert.False(t, c)

	tt.store(2, entry{score: 9, depth: 2})
	e, c := tt.probe(2, 2)
	assert.True(t, c)
	assert.Equal(t, 9.0, e.score)
}
