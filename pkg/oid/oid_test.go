package oid_test

import (
	"regexp"
	"testing"

	"github.com/jcalvez/srscore/pkg/oid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reOID matches the Git commit ID format
var reOID = regexp.MustCompile(`\w{40}`)

func TestNewOID(t *testing.T) {
	oid1 := oid.New()
	oid2 := oid.New()
	require.NotEqual(t, oid1, oid2)
	assert.Regexp(t, reOID, oid1)
}

func TestNewOIDFromBytes(t *testing.T) {
	bytes1 := []byte{97, 98, 99, 100, 101, 102}
	bytes2 := []byte{98, 98, 99, 100, 101, 102}
	oid1 := oid.NewFromBytes(bytes1)
	oid2 := oid.NewFromBytes(bytes2)
	require.NotEqual(t, oid1, oid2)
	require.Equal(t, oid1, oid.NewFromBytes(bytes1)) // Does not change
	assert.Regexp(t, reOID, oid1)
}

func TestOID(t *testing.T) {
	t.Run("IsNil", func(t *testing.T) {
		assert.True(t, oid.Nil.IsNil())
		assert.False(t, oid.OID("f3aaf5433ec0357844d88f860c42e044fe44ee61").IsNil())
	})

	t.Run("MustParse", func(t *testing.T) {
		assert.Equal(t, oid.OID("f3aaf5433ec0357844d88f860c42e044fe44ee61"),
			oid.MustParse("f3aaf5433ec0357844d88f860c42e044fe44ee61"))
		assert.Panics(t, func() { oid.MustParse("too-short") })
	})

	t.Run("ParseOrNil", func(t *testing.T) {
		assert.Equal(t, oid.Nil, oid.ParseOrNil("too-short"))
	})
}
