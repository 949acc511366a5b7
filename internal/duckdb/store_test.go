package duckdb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/trinuc/internal/trinuc"
)

const testFASTA = ">seq1\nACGTACGTAC"

func openInMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openInMemory(t)
	assert.NotNil(t, s.DB())
	assert.Empty(t, s.Path())
}

func TestStoreAndLookup(t *testing.T) {
	s := openInMemory(t)

	mutations := "G3C, A1T, G5C, X1T, C99T, G3G, G7A"
	want := trinuc.Aggregate(testFASTA, mutations)
	key := trinuc.Fingerprint(testFASTA, mutations)

	require.NoError(t, s.Store(key, want))

	got, found, err := s.Lookup(key)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, want, got)
}

func TestStoreAndLookup_EmptySequence(t *testing.T) {
	s := openInMemory(t)

	want := trinuc.Aggregate("", "G3C")
	key := trinuc.Fingerprint("", "G3C")
	require.NoError(t, s.Store(key, want))

	got, found, err := s.Lookup(key)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, want, got)
	assert.Len(t, got.Counts, trinuc.CatalogSize)
}

func TestLookupMissing(t *testing.T) {
	s := openInMemory(t)

	got, found, err := s.Lookup("nope")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestStoreReplacesKey(t *testing.T) {
	s := openInMemory(t)

	require.NoError(t, s.Store("k", trinuc.Aggregate(testFASTA, "G3C")))
	require.NoError(t, s.Store("k", trinuc.Aggregate(testFASTA, "G7A")))

	got, found, err := s.Lookup("k")
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, got.Outcomes, 1)
	assert.Equal(t, "G7A", got.Outcomes[0].Token)
	assert.Equal(t, 1, got.Counts["C[G>A]T"])
	assert.Zero(t, got.Counts["C[G>C]T"])

	n, err := s.RunCount()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStore_FailedAppendLeavesNoEntry(t *testing.T) {
	s := openInMemory(t)

	key := trinuc.Fingerprint(testFASTA, "G3C, G5C")
	require.NoError(t, s.Store(key, trinuc.Aggregate(testFASTA, "G3C")))

	// An extra column makes every count row append fail.
	_, err := s.DB().Exec(`DROP TABLE run_counts`)
	require.NoError(t, err)
	_, err = s.DB().Exec(`CREATE TABLE run_counts (run_key VARCHAR, context VARCHAR, n BIGINT, extra VARCHAR)`)
	require.NoError(t, err)

	require.Error(t, s.Store(key, trinuc.Aggregate(testFASTA, "G3C, G5C")))

	got, found, err := s.Lookup(key)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)

	var outcomes int
	require.NoError(t, s.DB().QueryRow(`SELECT count(*) FROM run_outcomes WHERE run_key=?`, key).Scan(&outcomes))
	assert.Zero(t, outcomes)
}

func TestSearchByContext(t *testing.T) {
	s := openInMemory(t)

	require.NoError(t, s.Store("a", trinuc.Aggregate(testFASTA, "G3C, G3C")))
	require.NoError(t, s.Store("b", trinuc.Aggregate(testFASTA, "G3C, G7A")))

	hits, err := s.SearchByContext("C[G>C]T")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 2, "b": 1}, hits)

	hits, err = s.SearchByContext("T[T>G]T")
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestClear(t *testing.T) {
	s := openInMemory(t)

	require.NoError(t, s.Store("a", trinuc.Aggregate(testFASTA, "G3C")))
	require.NoError(t, s.Clear())

	n, err := s.RunCount()
	require.NoError(t, err)
	assert.Zero(t, n)

	_, found, err := s.Lookup("a")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAggregatorWithStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache", "trinuc.duckdb")
	s, err := Open(path)
	require.NoError(t, err)

	res, err := trinuc.NewAggregator(s).Run(testFASTA, "G3C, A1T")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Reopen to make sure the result survives on disk.
	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	cached, found, err := s.Lookup(trinuc.Fingerprint(testFASTA, "G3C, A1T"))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, res, cached)
}
