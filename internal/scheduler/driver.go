package scheduler

import "github.com/jcalvez/srscore/pkg/oid"

// NextCard pops the next card to show, rebuilding the queue if it is
// empty, and avoiding showing the same card twice in a row unless doing
// so is unavoidable (the "hopeless case").
func (e *Engine) NextCard(learnAhead bool) (*Card, error) {
	if len(e.cardIDsInQueue) == 0 {
		if err := e.RebuildQueue(learnAhead); err != nil {
			return nil, err
		}
		if len(e.cardIDsInQueue) == 0 {
			return nil, nil
		}
	}

	cardID := e.cardIDsInQueue[0]
	e.cardIDsInQueue = e.cardIDsInQueue[1:]

	if e.hasCardIDLast {
		for cardID == e.cardIDLast {
			if len(e.cardIDsInQueue) == 0 {
				if err := e.RebuildQueue(learnAhead); err != nil {
					return nil, err
				}
				if len(e.cardIDsInQueue) == 0 {
					return nil, nil
				}
				if allEqual(e.cardIDsInQueue, cardID) {
					return e.store.Card(cardID)
				}
			}
			cardID = e.cardIDsInQueue[0]
			e.cardIDsInQueue = e.cardIDsInQueue[1:]
		}
	}

	e.cardIDLast = cardID
	e.hasCardIDLast = true
	return e.store.Card(cardID)
}

func allEqual(ids []oid.OID, id oid.OID) bool {
	for _, v := range ids {
		if v != id {
			return false
		}
	}
	return true
}

// IsPrefetchAllowed reports whether the host may display a new card
// before processing the grading of cardToGrade. Grading a former grade-0
// card may splice a queue occurrence out, so prefetching is disallowed
// when that occurrence is the very next one up.
func (e *Engine) IsPrefetchAllowed(cardToGrade *Card) bool {
	if len(e.cardIDsInQueue) > 0 && cardToGrade.OID == e.cardIDsInQueue[0] {
		return false
	}
	return len(e.cardIDsInQueue) >= 3
}

// RemoveFromQueueIfPresent removes both occurrences of card's identifier
// from the queue, tolerating their absence.
func (e *Engine) RemoveFromQueueIfPresent(card *Card) {
	e.cardIDsInQueue, _ = removeFirstOID(e.cardIDsInQueue, card.OID)
	e.cardIDsInQueue, _ = removeFirstOID(e.cardIDsInQueue, card.OID)
}
