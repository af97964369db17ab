package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVocabulary_LastDefinitionWins(t *testing.T) {
	v := NewVocabulary("test",
		Term{"a", "A"},
		Term{"b", "B"},
		Term{"a", "AA"},
		Term{"b", "B"},
	)

	to, ok := v.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "AA", to)
	assert.Equal(t, []string{"a", "b"}, v.Keys())
	assert.Equal(t, 2, v.Len())
	assert.Len(t, v.Duplicates(), 2)
	assert.Equal(t, []Duplicate{{Key: "a", Previous: "A", Value: "AA"}}, v.Conflicts())

	_, ok = v.Lookup("c")
	assert.False(t, ok)
}

func TestFundStatusVocabulary_RepeatedKeyIsHarmless(t *testing.T) {
	dups := FundStatusVocabulary.Duplicates()
	require.Len(t, dups, 1)
	assert.Equal(t, "Semi-Open Ended", dups[0].Key)
	assert.False(t, dups[0].Conflicting())
	assert.Empty(t, FundStatusVocabulary.Conflicts())
}

func TestPrimarySectorVocabulary_HotelConflict(t *testing.T) {
	conflicts := PrimarySectorVocabulary.Conflicts()
	require.Len(t, conflicts, 1)
	assert.Equal(t, Duplicate{Key: "Hotel", Previous: "Hospitality", Value: "Hotels & Leisure"}, conflicts[0])

	to, _ := PrimarySectorVocabulary.Lookup("Hotel")
	assert.Equal(t, "Hotels & Leisure", to)
}

func TestVocabularies_OnlyKnownConflicts(t *testing.T) {
	var names []string
	for _, v := range Vocabularies() {
		if len(v.Conflicts()) > 0 {
			names = append(names, v.Name())
		}
	}
	assert.Equal(t, []string{"Sector - Primary"}, names)
}

// A canonical value must never itself be a key mapping elsewhere, otherwise
// a second run over curated data would change it again.
func TestVocabularies_ChainFree(t *testing.T) {
	for _, v := range Vocabularies() {
		for _, key := range v.Keys() {
			to, _ := v.Lookup(key)
			next, ok := v.Lookup(to)
			if ok && next != to {
				t.Errorf("%s: %q -> %q -> %q", v.Name(), key, to, next)
			}
		}
	}
}
