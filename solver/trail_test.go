package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrailPush(t *testing.T) {
	tr := newTrail(4)
	assert.Equal(t, 0, tr.currentLevel())
	assert.Equal(t, Undef, tr.valueOf(1))

	tr.push(1, false) // Propagation at level 0.
	assert.Equal(t, 0, tr.currentLevel())
	assert.Equal(t, True, tr.valueOf(1))

	tr.push(-2, true) // Decision opens level 1.
	assert.Equal(t, 1, tr.currentLevel())
	assert.Equal(t, False, tr.valueOf(2))
	assert.Equal(t, True, tr.litValue(-2))
	assert.Equal(t, False, tr.litValue(2))

	tr.push(3, false) // Propagation joins level 1.
	assert.Equal(t, []trailEntry{{1, 0}, {-2, 1}, {3, 1}}, tr.entries)

	assert.Panics(t, func() { tr.push(-1, false) }, "pushing an assigned variable should panic")
}

func TestTrailClauseStatus(t *testing.T) {
	tr := newTrail(4)
	tr.push(-1, true)
	tr.push(-2, false)

	assert.True(t, tr.isClauseFalse(NewClause(lits(1, 2))))
	assert.False(t, tr.isClauseFalse(NewClause(lits(1, 3))), "an undefined literal breaks falsity")
	assert.False(t, tr.isClauseFalse(NewClause(lits(-1, 2))))

	l, ok := tr.isClauseUnit(NewClause(lits(1, 2, 3)))
	require.True(t, ok)
	assert.Equal(t, Lit(3), l)

	_, ok = tr.isClauseUnit(NewClause(lits(1, 3, 4)))
	assert.False(t, ok, "two undefined literals: not unit")

	_, ok = tr.isClauseUnit(NewClause(lits(-1, 3)))
	assert.False(t, ok, "a satisfied clause is not unit")

	_, ok = tr.isClauseUnit(NewClause(lits(1, 2)))
	assert.False(t, ok, "a false clause is not unit")

	st, _ := tr.status(NewClause(lits(3, 4)))
	assert.Equal(t, Many, st)
}

func TestTrailFirstUndefined(t *testing.T) {
	tr := newTrail(3)
	assert.Equal(t, Lit(1), tr.firstUndefined())
	tr.push(1, true)
	tr.push(-3, false)
	assert.Equal(t, Lit(2), tr.firstUndefined())
	tr.push(-2, false)
	assert.Equal(t, NullLit, tr.firstUndefined())
}

func TestTrailLastAsserted(t *testing.T) {
	tr := newTrail(4)
	tr.push(1, true)
	tr.push(2, false)
	tr.push(3, true)

	l, ok := tr.lastAsserted(NewClause(lits(1, 2)))
	require.True(t, ok)
	assert.Equal(t, Lit(2), l, "stack position decides, not level")

	l, ok = tr.lastAsserted(NewClause(lits(1, 3)))
	require.True(t, ok)
	assert.Equal(t, Lit(3), l)

	_, ok = tr.lastAsserted(NewClause(lits(-1, 4)))
	assert.False(t, ok, "opposite polarity is not on the trail")
}

func TestTrailCountAtCurrentLevel(t *testing.T) {
	tr := newTrail(5)
	tr.push(1, true)
	tr.push(2, true)
	tr.push(3, false)
	tr.push(-4, false)

	assert.Equal(t, 3, tr.countAtCurrentLevel(NewClause(lits(1, 2, 3, -4))), "1 is below the current level")
	assert.Equal(t, 1, tr.countAtCurrentLevel(NewClause(lits(2, 4))), "4 has the wrong polarity")
	assert.Equal(t, 0, tr.countAtCurrentLevel(NewClause(lits(1, 5))))
}

func TestTrailBackjumpTo(t *testing.T) {
	tr := newTrail(5)
	tr.push(1, false)
	tr.push(2, true)
	tr.push(3, false)
	tr.push(-4, true)
	tr.push(5, false)

	removed := tr.backjumpTo(3)
	assert.Equal(t, lits(5, -4, 3), removed, "popped literals, most recent first, target included")
	assert.Equal(t, 1, tr.currentLevel(), "level of the new top entry")
	assert.Equal(t, Undef, tr.valueOf(3))
	assert.Equal(t, Undef, tr.valueOf(4))
	assert.Equal(t, Undef, tr.valueOf(5))
	assert.Equal(t, True, tr.valueOf(2))

	removed = tr.backjumpTo(1)
	assert.Equal(t, lits(2, 1), removed)
	assert.Equal(t, 0, tr.currentLevel(), "empty trail is back at level 0")
	assert.Empty(t, tr.entries)

	assert.Panics(t, func() { tr.backjumpTo(3) }, "target must be on the trail")
}

func TestTrailClear(t *testing.T) {
	tr := newTrail(3)
	tr.push(1, true)
	tr.push(-2, false)
	tr.clear()
	assert.Equal(t, 0, tr.currentLevel())
	assert.Empty(t, tr.entries)
	for v := Var(1); v <= 3; v++ {
		assert.Equal(t, Undef, tr.valueOf(v))
	}
}

func TestTrailString(t *testing.T) {
	tr := newTrail(3)
	tr.push(1, true)
	tr.push(-2, false)
	assert.Equal(t, "[ p1 ~p2 u3 ]", tr.String())
}
