package scheduler_test

import (
	"github.com/jcalvez/srscore/internal/scheduler"
	"github.com/jcalvez/srscore/pkg/oid"
)

// fakeStore is an in-memory scheduler.Store used across the package's
// tests, avoiding any dependency on the SQLite-backed implementation.
type fakeStore struct {
	cards            map[oid.OID]*scheduler.Card
	loaded           bool
	scheduledCount   int
	nonMemorised     int
	activeOverride   int
	sisterCollisions map[oid.OID]int // cardOID -> remaining collisions before avoidSisterCards succeeds
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		cards:            make(map[oid.OID]*scheduler.Card),
		loaded:           true,
		sisterCollisions: make(map[oid.OID]int),
	}
}

func (s *fakeStore) add(card *scheduler.Card) {
	s.cards[card.OID] = card
}

func (s *fakeStore) CardsDueForRetRep(adjustedNow int64, sortKey string, limit int) ([]scheduler.CardRef, error) {
	var refs []scheduler.CardRef
	for _, c := range s.cards {
		if c.Grade >= 1 && c.NextRep <= adjustedNow {
			refs = append(refs, scheduler.CardRef{CardOID: c.OID, FactOID: c.FactOID})
		}
	}
	return refs, nil
}

func (s *fakeStore) CardsToRelearn(grade scheduler.Grade, sortKey string) ([]scheduler.CardRef, error) {
	var refs []scheduler.CardRef
	for _, c := range s.cards {
		if c.Grade == grade && c.Lapses > 0 {
			refs = append(refs, scheduler.CardRef{CardOID: c.OID, FactOID: c.FactOID})
		}
	}
	return refs, nil
}

func (s *fakeStore) CardsNewMemorising(grade scheduler.Grade) ([]scheduler.CardRef, error) {
	var refs []scheduler.CardRef
	for _, c := range s.cards {
		if c.Grade == grade && c.Lapses == 0 {
			refs = append(refs, scheduler.CardRef{CardOID: c.OID, FactOID: c.FactOID})
		}
	}
	return refs, nil
}

func (s *fakeStore) CardsUnseen(limit int) ([]scheduler.CardRef, error) {
	var refs []scheduler.CardRef
	for _, c := range s.cards {
		if c.Grade == scheduler.Unseen {
			refs = append(refs, scheduler.CardRef{CardOID: c.OID, FactOID: c.FactOID})
			if len(refs) == limit {
				break
			}
		}
	}
	return refs, nil
}

func (s *fakeStore) CardsLearnAhead(maxNextRep int64, sortKey string) ([]scheduler.CardRef, error) {
	var refs []scheduler.CardRef
	for _, c := range s.cards {
		if c.Grade >= 1 && c.NextRep <= maxNextRep {
			refs = append(refs, scheduler.CardRef{CardOID: c.OID, FactOID: c.FactOID})
		}
	}
	return refs, nil
}

func (s *fakeStore) Card(id oid.OID) (*scheduler.Card, error) {
	return s.cards[id], nil
}

func (s *fakeStore) SisterCardCountScheduledBetween(card *scheduler.Card, lo, hi int64) (int, error) {
	remaining := s.sisterCollisions[card.OID]
	if remaining > 0 {
		s.sisterCollisions[card.OID] = remaining - 1
		return 1, nil
	}
	return 0, nil
}

func (s *fakeStore) ScheduledCount(adjustedNow int64) (int, error) { return s.scheduledCount, nil }
func (s *fakeStore) NonMemorisedCount() (int, error)               { return s.nonMemorised, nil }
func (s *fakeStore) ActiveCount() (int, error) {
	if s.activeOverride != 0 {
		return s.activeOverride, nil
	}
	return len(s.cards), nil
}
func (s *fakeStore) CardCountScheduledBetween(lo, hi int64) (int, error) {
	count := 0
	for _, c := range s.cards {
		if c.NextRep >= lo && c.NextRep < hi {
			count++
		}
	}
	return count, nil
}
func (s *fakeStore) CardCountScheduledNDaysAgo(adjustedNow int64, k int) (int, error) {
	count := 0
	lo, hi := adjustedNow-int64(k+1)*scheduler.Day, adjustedNow-int64(k)*scheduler.Day
	for _, c := range s.cards {
		if c.NextRep >= lo && c.NextRep < hi {
			count++
		}
	}
	return count, nil
}
func (s *fakeStore) IsLoaded() (bool, error)                       { return s.loaded, nil }
func (s *fakeStore) CurrentCriterion() scheduler.Criterion         { return scheduler.NoopCriterion{} }
