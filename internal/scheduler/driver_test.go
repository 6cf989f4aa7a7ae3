package scheduler_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcalvez/srscore/internal/scheduler"
	"github.com/jcalvez/srscore/pkg/clock"
	"github.com/jcalvez/srscore/pkg/oid"
)

// NextCard never returns the same identifier twice in a row as long as a
// distinct entry is available further in the queue.
func TestNextCard_AvoidsImmediateRepetition(t *testing.T) {
	setupDeterministicEnvironment()
	st := newFakeStore()

	a := &scheduler.Card{OID: oid.New(), FactOID: oid.New(), Grade: scheduler.Forgot, Lapses: 1, LastRep: 0}
	b := &scheduler.Card{OID: oid.New(), FactOID: oid.New(), Grade: scheduler.Forgot, Lapses: 1, LastRep: 1}
	st.add(a)
	st.add(b)

	clk := clock.NewTestClockAt(time.Unix(10*scheduler.Day, 0).UTC())
	engine := scheduler.NewEngine(st, clk, nil, nil, nil)

	first, err := engine.NextCard(false)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := engine.NextCard(false)
	require.NoError(t, err)
	if second != nil {
		assert.NotEqual(t, first.OID, second.OID, "driver must not repeat the same card back to back when an alternative exists")
	}
}

// The hopeless case: if the only entry left is the one just shown, it is
// returned anyway rather than spinning forever.
func TestNextCard_HopelessCaseReturnsSameCard(t *testing.T) {
	setupDeterministicEnvironment()
	st := newFakeStore()

	a := &scheduler.Card{OID: oid.New(), FactOID: oid.New(), Grade: scheduler.Forgot, Lapses: 1, LastRep: 0}
	st.add(a)

	clk := clock.NewTestClockAt(time.Unix(10*scheduler.Day, 0).UTC())
	engine := scheduler.NewEngine(st, clk, nil, nil, nil)

	require.NoError(t, engine.RebuildQueue(false))
	q := engine.QueueSnapshot()
	require.Len(t, q, 2, "a single relearn card is queued twice by stage 2")

	first, err := engine.NextCard(false)
	require.NoError(t, err)
	require.Equal(t, a.OID, first.OID)

	second, err := engine.NextCard(false)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, a.OID, second.OID, "with no alternative, the driver must return the same card again")
}

func TestIsPrefetchAllowed(t *testing.T) {
	setupDeterministicEnvironment()
	st := newFakeStore()

	a := &scheduler.Card{OID: oid.New(), FactOID: oid.New(), Grade: scheduler.Forgot, Lapses: 1, LastRep: 0}
	b := &scheduler.Card{OID: oid.New(), FactOID: oid.New(), Grade: scheduler.Forgot, Lapses: 1, LastRep: 1}
	c := &scheduler.Card{OID: oid.New(), FactOID: oid.New(), Grade: scheduler.Forgot, Lapses: 1, LastRep: 2}
	st.add(a)
	st.add(b)
	st.add(c)

	clk := clock.NewTestClockAt(time.Unix(10*scheduler.Day, 0).UTC())
	engine := scheduler.NewEngine(st, clk, nil, nil, nil)
	require.NoError(t, engine.RebuildQueue(false))

	q := engine.QueueSnapshot()
	require.GreaterOrEqual(t, len(q), 3)

	headCard := &scheduler.Card{OID: q[0]}
	assert.False(t, engine.IsPrefetchAllowed(headCard), "grading the card at the head of the queue must not allow a prefetch")

	other := &scheduler.Card{OID: oid.New()}
	assert.True(t, engine.IsPrefetchAllowed(other), "grading a card not at the head, with enough entries queued, allows a prefetch")
}

func TestRemoveFromQueueIfPresent(t *testing.T) {
	setupDeterministicEnvironment()
	st := newFakeStore()
	a := &scheduler.Card{OID: oid.New(), FactOID: oid.New(), Grade: scheduler.Forgot, Lapses: 1, LastRep: 0}
	st.add(a)

	clk := clock.NewTestClockAt(time.Unix(10*scheduler.Day, 0).UTC())
	engine := scheduler.NewEngine(st, clk, nil, nil, nil)
	require.NoError(t, engine.RebuildQueue(false))
	require.Equal(t, 2, containsOID(engine.QueueSnapshot(), a.OID))

	engine.RemoveFromQueueIfPresent(a)
	assert.Equal(t, 0, containsOID(engine.QueueSnapshot(), a.OID))

	// Tolerates absence.
	engine.RemoveFromQueueIfPresent(a)
}
