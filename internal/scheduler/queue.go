package scheduler

// RebuildQueue walks the five stages of the queue builder in order,
// resuming at e.stage, enforcing sister-card exclusion via the
// fact-in-queue set and the non-memorised-in-hand limit.
//
// Each stage may early-return once it has produced a useful working set;
// otherwise it advances e.stage and falls through to the next one.
func (e *Engine) RebuildQueue(learnAhead bool) error {
	loaded, err := e.store.IsLoaded()
	if err != nil {
		return err
	}
	if !loaded {
		return nil
	}
	active, err := e.store.ActiveCount()
	if err != nil {
		return err
	}
	if active == 0 {
		return nil
	}

	e.cardIDsInQueue = nil
	e.factIDsInQueue = nil
	e.inLearnAhead = false

	const limit = 50
	nonMemorisedInQueue := 0

	// Stage 1 — due today, shortest interval first: a day late on a short
	// interval hurts more than a day late on a long one.
	if e.stage == 1 {
		refs, err := e.store.CardsDueForRetRep(AdjustedNow(e.clock), SortByInterval, limit)
		if err != nil {
			return err
		}
		for _, ref := range refs {
			e.cardIDsInQueue = append(e.cardIDsInQueue, ref.CardOID)
			e.factIDsInQueue = append(e.factIDsInQueue, ref.FactOID)
		}
		if len(e.cardIDsInQueue) > 0 {
			return nil
		}
		e.stage = 2
	}

	// Stage 2 — relearn forgotten cards, in the order they were marked
	// forgotten. Each gets appended twice so the learner sees it again
	// within this same rebuild before another one happens.
	if e.stage == 2 {
		refs, err := e.store.CardsToRelearn(Forgot, SortByLastRep)
		if err != nil {
			return err
		}
		for _, ref := range refs {
			if containsOID(e.factIDsInQueue, ref.FactOID) {
				continue
			}
			if nonMemorisedInQueue < limit {
				e.cardIDsInQueue = append(e.cardIDsInQueue, ref.CardOID, ref.CardOID)
				e.factIDsInQueue = append(e.factIDsInQueue, ref.FactOID)
				nonMemorisedInQueue++
			}
			if nonMemorisedInQueue == limit {
				break
			}
		}
		if nonMemorisedInQueue == limit {
			return nil
		}
		if len(e.cardIDsInQueue) == 0 {
			e.stage = 3
		}
	}

	// Stage 3 — cards seen but not yet committed to retention (grade
	// still FORGOT). Use <= so stage 1/2 results carried into this rebuild
	// still count toward the hand.
	if e.stage <= 3 {
		refs, err := e.store.CardsNewMemorising(Forgot)
		if err != nil {
			return err
		}
		for _, ref := range refs {
			if containsOID(e.factIDsInQueue, ref.FactOID) {
				continue
			}
			if nonMemorisedInQueue < limit {
				e.cardIDsInQueue = append(e.cardIDsInQueue, ref.CardOID, ref.CardOID)
				e.factIDsInQueue = append(e.factIDsInQueue, ref.FactOID)
				nonMemorisedInQueue++
			}
			if nonMemorisedInQueue == limit {
				break
			}
		}
		if nonMemorisedInQueue == limit {
			return nil
		}
		if len(e.cardIDsInQueue) == 0 {
			e.stage = 4
		}
	}

	// Stage 4 — unseen cards. First pass stays away from sister cards
	// (those already queued or memorised this session); if that leaves
	// the queue nearly empty, a desperate second pass only avoids cards
	// already queued.
	if e.stage <= 4 {
		refs, err := e.store.CardsUnseen(limit)
		if err != nil {
			return err
		}
		for _, ref := range refs {
			if containsOID(e.factIDsInQueue, ref.FactOID) || containsOID(e.factIDsMemorised, ref.FactOID) {
				continue
			}
			e.cardIDsInQueue = append(e.cardIDsInQueue, ref.CardOID)
			e.factIDsInQueue = append(e.factIDsInQueue, ref.FactOID)
			nonMemorisedInQueue++
			if nonMemorisedInQueue == limit {
				if !e.newOnly {
					e.stage = 2
				} else {
					e.stage = 3
				}
				return nil
			}
		}

		if len(e.factIDsInQueue) <= 2 {
			refs, err := e.store.CardsUnseen(limit)
			if err != nil {
				return err
			}
			for _, ref := range refs {
				if containsOID(e.factIDsInQueue, ref.FactOID) {
					continue
				}
				e.cardIDsInQueue = append(e.cardIDsInQueue, ref.CardOID)
				e.factIDsInQueue = append(e.factIDsInQueue, ref.FactOID)
				nonMemorisedInQueue++
				if nonMemorisedInQueue == limit {
					if !e.newOnly {
						e.stage = 2
					} else {
						e.stage = 3
					}
					return nil
				}
			}
		}

		if len(e.cardIDsInQueue) == 0 {
			e.stage = 5
		}
	}

	// Stage 5 — learn ahead, only if explicitly requested. Cards due
	// within 7 days are offered early, but only those whose own interval
	// is already long enough (>= 34 days) to be safe to advance-study.
	if !learnAhead {
		if !e.newOnly {
			e.stage = 2
		} else {
			e.stage = 3
		}
		return nil
	}

	maxNextRep := AdjustedNow(e.clock) + 7*Day
	refs, err := e.store.CardsLearnAhead(maxNextRep, SortByIntervalDesc)
	if err != nil {
		return err
	}
	for _, ref := range refs {
		card, err := e.store.Card(ref.CardOID)
		if err != nil {
			return err
		}
		if (card.NextRep-card.LastRep)/Day < 34 {
			continue
		}
		e.cardIDsInQueue = append(e.cardIDsInQueue, ref.CardOID)
		e.inLearnAhead = true
	}

	e.stage = 2
	return nil
}
