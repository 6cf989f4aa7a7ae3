package scheduler

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/jcalvez/srscore/internal/corelog"
)

var initialIntervalByGrade = [6]int64{0, Day, Day, Day, 2 * Day, 4 * Day}

func calculateInitialInterval(grade Grade) int64 {
	return initialIntervalByGrade[grade]
}

var noiseOffsets = []int64{-2 * Day, -1 * Day, 0, Day, 2 * Day}

// GradeAnswer is the grading state machine. Given the card's current
// state and the learner's new grade, it computes the new interval and,
// unless dryRun is set, mutates the card, splices a duplicate queue entry
// out when appropriate, runs hooks and emits a repetition log event.
//
// thinkingTime is how long the learner spent on this repetition; it only
// feeds the log event.
func (e *Engine) GradeAnswer(card *Card, newGrade Grade, dryRun bool, thinkingTime time.Duration) (int64, error) {
	if !dryRun {
		if err := e.hooks.Fire(ChannelBeforeRepetition, card); err != nil {
			return 0, err
		}
	}

	if dryRun {
		card = card.Clone()
	}

	scheduledInterval, ok := TrueScheduledInterval(card)
	if !ok {
		e.ui.InternalError("Internal error: interval not zero.")
	}

	now := e.clock.Now().Unix()
	var actualInterval int64
	if card.Grade == Unseen {
		actualInterval = 0
	} else {
		actualInterval = now - card.LastRep
	}

	oldGrade := card.Grade

	if !dryRun && oldGrade == Forgot && newGrade != Forgot {
		e.factIDsMemorised = append(e.factIDsMemorised, card.FactOID)
	}

	var newInterval int64

	switch {
	case oldGrade == Unseen:
		card.Easiness = 2.0
		card.AcqReps = 1
		card.AcqRepsSinceLapse = 1
		newInterval = calculateInitialInterval(newGrade)

	case oldGrade == Forgot && newGrade == Forgot:
		card.AcqReps++
		card.AcqRepsSinceLapse++
		newInterval = 0

	case oldGrade == Forgot && newGrade != Forgot:
		card.AcqReps++
		card.AcqRepsSinceLapse++
		switch newGrade {
		case LessBig, LessSmall, Same:
			newInterval = Day
		case MoreSmall:
			newInterval = 2 * Day
		case MoreBig:
			newInterval = 4 * Day
		}

		// card.Grade is still Forgot here (that's this branch's own
		// guard) — the duplicate queue entry left behind by stage 2/3
		// is spliced out exactly once, regardless of how this case was
		// reached.
		if !dryRun && card.Grade == Forgot {
			e.cardIDsInQueue, _ = removeFirstOID(e.cardIDsInQueue, card.OID)
		}

	case oldGrade != Forgot && newGrade == Forgot:
		card.RetReps++
		card.Lapses++
		card.AcqRepsSinceLapse = 0
		card.RetRepsSinceLapse = 0
		newInterval = 0

	default: // oldGrade != Forgot && newGrade != Forgot
		card.RetReps++
		card.RetRepsSinceLapse++

		switch newGrade {
		case LessSmall, LessBig:
			factor := int64(2)
			if newGrade == LessBig {
				factor = 3
			}
			reduced := actualInterval / factor
			newInterval = scheduledInterval
			if reduced < newInterval {
				newInterval = reduced
			}
			if newInterval < 2.5*Day {
				newInterval = Day
			}
		case Same:
			newInterval = actualInterval
		case MoreSmall, MoreBig:
			factor := int64(2)
			if newGrade == MoreBig {
				factor = 3
			}
			newInterval = actualInterval * factor
			if newInterval < 2*Day {
				newInterval = 2 * Day
			}
		}

		// Pathological case: learning ahead the same card repeatedly on
		// the same day can drive actual_interval to 0.
		if newInterval < Day {
			newInterval = Day
		}
	}

	if newInterval > MaxTotal {
		newInterval = MaxTotal
	}
	diff := newInterval - scheduledInterval
	if diff > MaxIncrease {
		diff = MaxIncrease
	}
	newInterval = scheduledInterval + diff

	addNoise := false

	for _, tag := range card.Tags {
		if !strings.HasPrefix(tag, ReminderTagPrefix) {
			continue
		}
		numDays, err := strconv.Atoi(tag[len(ReminderTagPrefix):])
		if err != nil {
			continue
		}
		intMax := int64(numDays) * Day
		if newInterval > intMax {
			newInterval = intMax
		}
		if newInterval >= intMax-Day {
			addNoise = true
		}
	}

	if newInterval/Day >= 40 && (newGrade == Same || newGrade == MoreSmall || newGrade == MoreBig) {
		addNoise = true
	}

	if addNoise {
		newInterval += noiseOffsets[rand.Intn(len(noiseOffsets))]
	}

	if dryRun {
		return newInterval, nil
	}

	card.Grade = newGrade
	card.LastRep = now
	if newGrade != Forgot {
		card.NextRep = MidnightUTC(card.LastRep + newInterval)
		if err := e.avoidSisterCards(card); err != nil {
			return newInterval, err
		}
	} else {
		card.NextRep = card.LastRep
	}

	if len(e.factIDsMemorised) == 15 && !e.warnedAboutTooManyCards {
		e.ui.Warn("You've memorised 15 new or failed cards. If you do this for many days, you could get a big workload later.")
		e.warnedAboutTooManyCards = true
	}

	if criterion := e.store.CurrentCriterion(); criterion != nil {
		criterion.ApplyToCard(card)
	}
	if err := e.hooks.Fire(ChannelAfterRepetition, card); err != nil {
		return newInterval, err
	}

	e.logger.Repetition(corelog.RepetitionEvent{
		CardOID:            card.OID.String(),
		ScheduledInterval:  scheduledInterval,
		ActualInterval:     actualInterval,
		ThinkingTimeMillis: thinkingTime.Milliseconds(),
	})

	return newInterval, nil
}

// avoidSisterCards increments next_rep by a day at a time until no sister
// card is already scheduled in [next_rep, next_rep+Day).
func (e *Engine) avoidSisterCards(card *Card) error {
	for {
		count, err := e.store.SisterCardCountScheduledBetween(card, card.NextRep, card.NextRep+Day)
		if err != nil {
			return err
		}
		if count == 0 {
			return nil
		}
		card.NextRep += Day
	}
}
