// Package scheduler implements the SM-2-derived spaced-repetition engine:
// the grading state machine, the multi-stage queue builder, the queue
// driver, and the reporting helpers built on top of them.
package scheduler

import (
	"github.com/jcalvez/srscore/pkg/oid"
)

// Grade is the learner's recall strength for a single repetition.
type Grade int

const (
	Unseen      Grade = -1
	Forgot      Grade = 0
	LessBig     Grade = 1
	LessSmall   Grade = 2
	Same        Grade = 3
	MoreSmall   Grade = 4
	MoreBig     Grade = 5
)

const (
	Hour = 3600
	Day  = 24 * Hour

	// MaxIncrease caps how much a single grading can grow the interval by.
	MaxIncrease = 30 * Day
	// MaxTotal caps the absolute scheduled interval.
	MaxTotal = 360 * Day
)

// ReminderTagPrefix marks a tag of the form "Reminder::ReminderN" capping
// the scheduled interval of the card it is attached to at N days.
const ReminderTagPrefix = "Reminder::Reminder"

// Card is the unit of scheduling: one side of a flashcard, carrying a
// reference to the fact it was generated from (sister cards share a fact).
type Card struct {
	OID     oid.OID
	FactOID oid.OID
	Tags    []string

	Grade             Grade
	Easiness          float64
	AcqReps           int
	AcqRepsSinceLapse int
	RetReps           int
	RetRepsSinceLapse int
	Lapses            int

	// LastRep is POSIX seconds the card was last graded, or -1 if never.
	LastRep int64
	// NextRep is midnight-UTC of the date the card is next due.
	NextRep int64
}

// HasTag reports whether the card carries the given tag verbatim.
func (c *Card) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Clone returns a value copy of the card, used by grade_answer's dry-run
// mode so the original is never mutated.
func (c *Card) Clone() *Card {
	clone := *c
	clone.Tags = append([]string(nil), c.Tags...)
	return &clone
}
