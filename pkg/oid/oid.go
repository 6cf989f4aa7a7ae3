package oid

// OID is a stable, opaque identifier for a card or a fact.
type OID string

const Nil = OID("")

// IsNil reports whether the OID is unset.
func (o OID) IsNil() bool {
	return string(o) == ""
}

// String returns the OID as a string.
func (o OID) String() string {
	return string(o)
}

/* Constructors */

func New() OID {
	return generator.New()
}

func NewFromBytes(b []byte) OID {
	return generator.NewFromBytes(b)
}

/* Parser */

// MustParse parses an OID or panics if the format is not valid.
func MustParse(s string) OID {
	if len(s) != 40 {
		panic("invalid OID")
	}
	return OID(s)
}

// ParseOrNil parses an OID or returns Nil.
func ParseOrNil(s string) OID {
	if len(s) != 40 {
		return Nil
	}
	return OID(s)
}
