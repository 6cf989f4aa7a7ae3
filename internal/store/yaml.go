package store

import (
	"io"

	"github.com/jcalvez/srscore/internal/scheduler"
	"github.com/jcalvez/srscore/pkg/oid"
	"gopkg.in/yaml.v3"
)

// CardFile is the YAML-serializable shape of a Card, used for
// import/export and test fixtures, following the object Read/Write idiom
// used throughout this code base.
type CardFile struct {
	OID     string   `yaml:"oid"`
	FactOID string   `yaml:"fact_oid"`
	Tags    []string `yaml:"tags,omitempty"`

	Grade             int     `yaml:"grade"`
	Easiness          float64 `yaml:"easiness"`
	AcqReps           int     `yaml:"acq_reps"`
	AcqRepsSinceLapse int     `yaml:"acq_reps_since_lapse"`
	RetReps           int     `yaml:"ret_reps"`
	RetRepsSinceLapse int     `yaml:"ret_reps_since_lapse"`
	Lapses            int     `yaml:"lapses"`
	LastRep           int64   `yaml:"last_rep"`
	NextRep           int64   `yaml:"next_rep"`
}

func toCardFile(c *scheduler.Card) *CardFile {
	return &CardFile{
		OID:               c.OID.String(),
		FactOID:           c.FactOID.String(),
		Tags:              c.Tags,
		Grade:             int(c.Grade),
		Easiness:          c.Easiness,
		AcqReps:           c.AcqReps,
		AcqRepsSinceLapse: c.AcqRepsSinceLapse,
		RetReps:           c.RetReps,
		RetRepsSinceLapse: c.RetRepsSinceLapse,
		Lapses:            c.Lapses,
		LastRep:           c.LastRep,
		NextRep:           c.NextRep,
	}
}

func (f *CardFile) toCard() *scheduler.Card {
	return &scheduler.Card{
		OID:               oid.OID(f.OID),
		FactOID:           oid.OID(f.FactOID),
		Tags:              f.Tags,
		Grade:             scheduler.Grade(f.Grade),
		Easiness:          f.Easiness,
		AcqReps:           f.AcqReps,
		AcqRepsSinceLapse: f.AcqRepsSinceLapse,
		RetReps:           f.RetReps,
		RetRepsSinceLapse: f.RetRepsSinceLapse,
		Lapses:            f.Lapses,
		LastRep:           f.LastRep,
		NextRep:           f.NextRep,
	}
}

// WriteCard serializes a card as YAML.
func WriteCard(w io.Writer, card *scheduler.Card) error {
	return yaml.NewEncoder(w).Encode(toCardFile(card))
}

// ReadCard deserializes a card from YAML.
func ReadCard(r io.Reader) (*scheduler.Card, error) {
	var f CardFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, err
	}
	return f.toCard(), nil
}

// ReadCards deserializes a YAML document containing a list of cards,
// used for bulk import/fixtures.
func ReadCards(r io.Reader) ([]*scheduler.Card, error) {
	var files []*CardFile
	if err := yaml.NewDecoder(r).Decode(&files); err != nil {
		return nil, err
	}
	cards := make([]*scheduler.Card, 0, len(files))
	for _, f := range files {
		cards = append(cards, f.toCard())
	}
	return cards, nil
}

// WriteCards serializes a list of cards as a single YAML document.
func WriteCards(w io.Writer, cards []*scheduler.Card) error {
	files := make([]*CardFile, 0, len(cards))
	for _, c := range cards {
		files = append(files, toCardFile(c))
	}
	return yaml.NewEncoder(w).Encode(files)
}
