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

func containsOID(ids []oid.OID, id oid.OID) int {
	n := 0
	for _, v := range ids {
		if v == id {
			n++
		}
	}
	return n
}

// Sister-card exclusion: two unseen cards sharing a fact, only one
// appears in the queue after a stage-4 rebuild.
func TestRebuildQueue_SisterCardExclusion(t *testing.T) {
	setupDeterministicEnvironment()
	st := newFakeStore()

	fact := oid.New()
	a1 := &scheduler.Card{OID: oid.New(), FactOID: fact, Grade: scheduler.Unseen}
	a2 := &scheduler.Card{OID: oid.New(), FactOID: fact, Grade: scheduler.Unseen}
	st.add(a1)
	st.add(a2)

	clk := clock.NewTestClockAt(time.Unix(1_000_000, 0).UTC())
	engine := scheduler.NewEngine(st, clk, nil, nil, nil)

	require.NoError(t, engine.RebuildQueue(false))

	q := engine.QueueSnapshot()
	require.NotEmpty(t, q)
	haveA1 := containsOID(q, a1.OID) > 0
	haveA2 := containsOID(q, a2.OID) > 0
	assert.True(t, haveA1 != haveA2, "exactly one sister card should be queued, not both or neither")
}

// A stage-2/3 duplicate: a forgotten card's identifier is queued twice
// in succession; grading it out of FORGOT removes exactly one
// occurrence.
func TestGradeAnswer_RemovesOneDuplicateOnLeavingForgot(t *testing.T) {
	setupDeterministicEnvironment()
	st := newFakeStore()

	card := &scheduler.Card{OID: oid.New(), FactOID: oid.New(), Grade: scheduler.Forgot, Lapses: 1, LastRep: 0}
	st.add(card)

	clk := clock.NewTestClockAt(time.Unix(10*scheduler.Day, 0).UTC())
	engine := scheduler.NewEngine(st, clk, nil, nil, nil)

	require.NoError(t, engine.RebuildQueue(false))

	before := engine.QueueSnapshot()
	require.Equal(t, 2, containsOID(before, card.OID), "stage 2 must append the forgotten card's id twice")

	_, err := engine.GradeAnswer(card, scheduler.LessSmall, false, 0)
	require.NoError(t, err)

	after := engine.QueueSnapshot()
	assert.Equal(t, 1, containsOID(after, card.OID), "leaving FORGOT must splice out exactly one occurrence")
}

func TestRebuildQueue_StageAdvancesWhenDueEmpty(t *testing.T) {
	setupDeterministicEnvironment()
	st := newFakeStore()
	unseen := &scheduler.Card{OID: oid.New(), FactOID: oid.New(), Grade: scheduler.Unseen}
	st.add(unseen)

	clk := clock.NewTestClockAt(time.Unix(0, 0).UTC())
	engine := scheduler.NewEngine(st, clk, nil, nil, nil)

	require.NoError(t, engine.RebuildQueue(false))
	q := engine.QueueSnapshot()
	require.Len(t, q, 1)
	assert.Equal(t, unseen.OID, q[0])
}
