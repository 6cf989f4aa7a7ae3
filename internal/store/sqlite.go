package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/jcalvez/srscore/internal/scheduler"
	"github.com/jcalvez/srscore/pkg/oid"
)

// SQLiteStore implements scheduler.Store over a SQLite database. Every
// query below mirrors a single external collaborator method consumed by
// the engine; none of them mutate the card, matching the engine's
// read-then-host-persists contract.
type SQLiteStore struct {
	db *DB
}

func NewSQLiteStore(db *DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) client() *sql.DB {
	return s.db.Client()
}

func tagsToColumn(tags []string) string {
	return strings.Join(tags, ",")
}

func tagsFromColumn(col string) []string {
	if col == "" {
		return nil
	}
	return strings.Split(col, ",")
}

func scanCardRefs(rows *sql.Rows) ([]scheduler.CardRef, error) {
	defer rows.Close()
	var refs []scheduler.CardRef
	for rows.Next() {
		var cardOID, factOID string
		if err := rows.Scan(&cardOID, &factOID); err != nil {
			return nil, err
		}
		refs = append(refs, scheduler.CardRef{
			CardOID: oid.OID(cardOID),
			FactOID: oid.OID(factOID),
		})
	}
	return refs, rows.Err()
}

// CardsDueForRetRep returns retention-phase cards (grade >= 1; FORGOT
// cards are stage 2/3's job, not stage 1's) whose next_rep has come (or
// passed), shortest scheduled interval first — being a day late hurts
// more on a short interval than on a long one. The sortKey argument is
// accepted for interface compatibility; this query always orders by
// ascending interval, which is what "due today" means in practice.
func (s *SQLiteStore) CardsDueForRetRep(adjustedNow int64, sortKey string, limit int) ([]scheduler.CardRef, error) {
	rows, err := s.client().Query(`
		SELECT oid, fact_oid
		FROM card
		WHERE grade >= 1 AND next_rep <= ?
		ORDER BY (next_rep - last_rep) ASC
		LIMIT ?;`, adjustedNow, limit)
	if err != nil {
		return nil, err
	}
	return scanCardRefs(rows)
}

// CardsToRelearn returns cards currently at the given grade (FORGOT, in
// the engine's own usage) that had already been committed to the
// retention phase at least once (lapses > 0), oldest last_rep first —
// these are the cards we got wrong again after having known them.
func (s *SQLiteStore) CardsToRelearn(grade scheduler.Grade, sortKey string) ([]scheduler.CardRef, error) {
	rows, err := s.client().Query(`
		SELECT oid, fact_oid
		FROM card
		WHERE grade = ? AND lapses > 0
		ORDER BY last_rep ASC;`, int(grade))
	if err != nil {
		return nil, err
	}
	return scanCardRefs(rows)
}

// CardsNewMemorising returns cards sitting at the given grade that have
// never yet been committed to the retention phase (lapses == 0) — seen
// before, but still in first-time acquisition.
func (s *SQLiteStore) CardsNewMemorising(grade scheduler.Grade) ([]scheduler.CardRef, error) {
	rows, err := s.client().Query(`
		SELECT oid, fact_oid
		FROM card
		WHERE grade = ? AND lapses = 0;`, int(grade))
	if err != nil {
		return nil, err
	}
	return scanCardRefs(rows)
}

// CardsUnseen returns cards never graded (grade == Unseen).
func (s *SQLiteStore) CardsUnseen(limit int) ([]scheduler.CardRef, error) {
	rows, err := s.client().Query(`
		SELECT oid, fact_oid
		FROM card
		WHERE grade = ?
		LIMIT ?;`, int(scheduler.Unseen), limit)
	if err != nil {
		return nil, err
	}
	return scanCardRefs(rows)
}

// CardsLearnAhead returns cards due within the learn-ahead horizon,
// longest scheduled interval first (only long-interval cards are safe to
// advance-study, so the caller filters further by loading each card).
func (s *SQLiteStore) CardsLearnAhead(maxNextRep int64, sortKey string) ([]scheduler.CardRef, error) {
	rows, err := s.client().Query(`
		SELECT oid, fact_oid
		FROM card
		WHERE grade >= 1 AND next_rep <= ?
		ORDER BY (next_rep - last_rep) DESC;`, maxNextRep)
	if err != nil {
		return nil, err
	}
	return scanCardRefs(rows)
}

// Card loads a single card by its identifier.
func (s *SQLiteStore) Card(id oid.OID) (*scheduler.Card, error) {
	var (
		factOID  string
		tagsCol  string
		grade    int
	)
	card := &scheduler.Card{OID: id}
	err := s.client().QueryRow(`
		SELECT
			fact_oid, tags, grade, easiness,
			acq_reps, acq_reps_since_lapse,
			ret_reps, ret_reps_since_lapse,
			lapses, last_rep, next_rep
		FROM card
		WHERE oid = ?;`, string(id)).Scan(
		&factOID, &tagsCol, &grade, &card.Easiness,
		&card.AcqReps, &card.AcqRepsSinceLapse,
		&card.RetReps, &card.RetRepsSinceLapse,
		&card.Lapses, &card.LastRep, &card.NextRep,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("card %s not found", id)
	}
	if err != nil {
		return nil, err
	}
	card.FactOID = oid.OID(factOID)
	card.Tags = tagsFromColumn(tagsCol)
	card.Grade = scheduler.Grade(grade)
	return card, nil
}

// SisterCardCountScheduledBetween counts sister cards (same fact, other
// card) already scheduled within [lo, hi).
func (s *SQLiteStore) SisterCardCountScheduledBetween(card *scheduler.Card, lo, hi int64) (int, error) {
	var count int
	err := s.client().QueryRow(`
		SELECT count(*)
		FROM card
		WHERE fact_oid = ? AND oid != ? AND next_rep >= ? AND next_rep < ?;`,
		string(card.FactOID), string(card.OID), lo, hi).Scan(&count)
	return count, err
}

func (s *SQLiteStore) ScheduledCount(adjustedNow int64) (int, error) {
	var count int
	err := s.client().QueryRow(`SELECT count(*) FROM card WHERE grade >= 1 AND next_rep <= ?;`, adjustedNow).Scan(&count)
	return count, err
}

func (s *SQLiteStore) NonMemorisedCount() (int, error) {
	var count int
	err := s.client().QueryRow(`SELECT count(*) FROM card WHERE grade = ?;`, int(scheduler.Forgot)).Scan(&count)
	return count, err
}

func (s *SQLiteStore) ActiveCount() (int, error) {
	var count int
	err := s.client().QueryRow(`SELECT count(*) FROM card;`).Scan(&count)
	return count, err
}

func (s *SQLiteStore) CardCountScheduledBetween(lo, hi int64) (int, error) {
	var count int
	err := s.client().QueryRow(`SELECT count(*) FROM card WHERE next_rep >= ? AND next_rep < ?;`, lo, hi).Scan(&count)
	return count, err
}

// CardCountScheduledNDaysAgo is the historical counterpart of
// CardCountScheduledBetween: it counts cards whose next_rep fell in the
// day window ending k days before adjustedNow (k=0: today, k=1:
// yesterday, ...), same next_rep-relative-to-now basis as the forward
// case, just offset backwards instead of forwards.
func (s *SQLiteStore) CardCountScheduledNDaysAgo(adjustedNow int64, k int) (int, error) {
	var count int
	err := s.client().QueryRow(`
		SELECT count(*) FROM card
		WHERE next_rep >= ? AND next_rep < ?;`,
		adjustedNow-int64(k+1)*scheduler.Day, adjustedNow-int64(k)*scheduler.Day).Scan(&count)
	return count, err
}

func (s *SQLiteStore) IsLoaded() (bool, error) {
	var count int
	if err := s.client().QueryRow(`SELECT count(*) FROM fact;`).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *SQLiteStore) CurrentCriterion() scheduler.Criterion {
	return scheduler.NoopCriterion{}
}

/* Writes (not part of scheduler.Store; the host calls these explicitly
   after GradeAnswer mutates a card in memory). */

func (s *SQLiteStore) InsertFact(id oid.OID) error {
	_, err := s.client().Exec(`INSERT INTO fact(oid) VALUES (?);`, string(id))
	return err
}

func (s *SQLiteStore) InsertCard(card *scheduler.Card) error {
	_, err := s.client().Exec(`
		INSERT INTO card(
			oid, fact_oid, tags, grade, easiness,
			acq_reps, acq_reps_since_lapse,
			ret_reps, ret_reps_since_lapse,
			lapses, last_rep, next_rep
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		string(card.OID), string(card.FactOID), tagsToColumn(card.Tags),
		int(card.Grade), card.Easiness,
		card.AcqReps, card.AcqRepsSinceLapse,
		card.RetReps, card.RetRepsSinceLapse,
		card.Lapses, card.LastRep, card.NextRep,
	)
	return err
}

func (s *SQLiteStore) UpdateCard(card *scheduler.Card) error {
	_, err := s.client().Exec(`
		UPDATE card SET
			tags = ?, grade = ?, easiness = ?,
			acq_reps = ?, acq_reps_since_lapse = ?,
			ret_reps = ?, ret_reps_since_lapse = ?,
			lapses = ?, last_rep = ?, next_rep = ?
		WHERE oid = ?;`,
		tagsToColumn(card.Tags), int(card.Grade), card.Easiness,
		card.AcqReps, card.AcqRepsSinceLapse,
		card.RetReps, card.RetRepsSinceLapse,
		card.Lapses, card.LastRep, card.NextRep,
		string(card.OID),
	)
	return err
}

func (s *SQLiteStore) DeleteCard(id oid.OID) error {
	_, err := s.client().Exec(`DELETE FROM card WHERE oid = ?;`, string(id))
	return err
}
