package scheduler

import "github.com/jcalvez/srscore/pkg/oid"

// CardRef is the (card, fact) pair returned by the store's queue-feeding
// queries — enough to drive sister-card exclusion without loading the
// full card.
type CardRef struct {
	CardOID oid.OID
	FactOID oid.OID
}

// Sort keys accepted by the queries below.
const (
	SortByInterval     = "interval"
	SortByIntervalDesc = "-interval"
	SortByLastRep      = "last_rep"
)

// Criterion lets an external learning-theory policy veto or adjust a
// card's state after every grading. The default is a no-op; this seam is
// named but intentionally not built out further.
type Criterion interface {
	ApplyToCard(card *Card)
}

// NoopCriterion applies no changes.
type NoopCriterion struct{}

func (NoopCriterion) ApplyToCard(*Card) {}

// Store is the card/fact persistence layer the engine consumes. It never
// mutates a Card by itself except through Card(); mutations produced by
// GradeAnswer are written back by the host.
type Store interface {
	CardsDueForRetRep(adjustedNow int64, sortKey string, limit int) ([]CardRef, error)
	CardsToRelearn(grade Grade, sortKey string) ([]CardRef, error)
	CardsNewMemorising(grade Grade) ([]CardRef, error)
	CardsUnseen(limit int) ([]CardRef, error)
	CardsLearnAhead(maxNextRep int64, sortKey string) ([]CardRef, error)

	Card(id oid.OID) (*Card, error)

	SisterCardCountScheduledBetween(card *Card, lo, hi int64) (int, error)

	ScheduledCount(adjustedNow int64) (int, error)
	NonMemorisedCount() (int, error)
	ActiveCount() (int, error)
	CardCountScheduledBetween(lo, hi int64) (int, error)
	CardCountScheduledNDaysAgo(adjustedNow int64, k int) (int, error)

	IsLoaded() (bool, error)
	CurrentCriterion() Criterion
}

// UISurface is the two opaque messages the engine may need to surface:
// the 15-cards-memorised warning and an internal-error signal for a
// FORGOT card caught carrying a non-zero scheduled interval.
type UISurface interface {
	Warn(message string)
	InternalError(message string)
}

// NoopUISurface discards every message, useful for tests and headless use.
type NoopUISurface struct{}

func (NoopUISurface) Warn(string)          {}
func (NoopUISurface) InternalError(string) {}
