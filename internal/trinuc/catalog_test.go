package trinuc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllContexts_SizeAndUniqueness(t *testing.T) {
	contexts := AllContexts()
	require.Len(t, contexts, CatalogSize)

	seen := make(map[string]bool, len(contexts))
	for _, c := range contexts {
		assert.False(t, seen[c], "duplicate context %s", c)
		seen[c] = true
	}
}

func TestAllContexts_Order(t *testing.T) {
	contexts := AllContexts()

	tests := []struct {
		index int
		want  string
	}{
		{0, "A[A>C]A"},
		{1, "A[A>C]C"},
		{3, "A[A>C]T"},
		{4, "A[A>G]A"},
		{11, "A[A>T]T"},
		{12, "A[C>A]A"},
		{48, "C[A>C]A"},
		{96, "G[A>C]A"},
		{191, "T[T>G]T"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, contexts[tt.index], "index %d", tt.index)
	}
}

func TestAllContexts_Deterministic(t *testing.T) {
	assert.Equal(t, AllContexts(), AllContexts())
}

func TestAllContexts_ReturnsCopy(t *testing.T) {
	contexts := AllContexts()
	contexts[0] = "mutated"

	assert.Equal(t, "A[A>C]A", AllContexts()[0])
	assert.True(t, IsCanonical("A[A>C]A"))
}

func TestAllContexts_Shape(t *testing.T) {
	for _, c := range AllContexts() {
		require.Len(t, c, 7)
		assert.Equal(t, byte('['), c[1])
		assert.Equal(t, byte('>'), c[3])
		assert.Equal(t, byte(']'), c[5])
		assert.NotEqual(t, c[2], c[4], "ref equals alt in %s", c)
		for _, i := range []int{0, 2, 4, 6} {
			assert.True(t, strings.IndexByte(Bases, c[i]) >= 0, "non-ACGT base in %s", c)
		}
	}
}

func TestIsCanonical(t *testing.T) {
	tests := []struct {
		ctx  string
		want bool
	}{
		{"C[G>C]T", true},
		{"T[T>G]T", true},
		{"N[A>T]C", false},
		{"A[G>G]T", false},
		{"R[A>T]C", false},
		{"c[g>c]t", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.ctx, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCanonical(tt.ctx))
		})
	}
}

func TestFormatContext(t *testing.T) {
	assert.Equal(t, "C[G>C]T", FormatContext('C', 'G', 'C', 'T'))
	assert.Equal(t, "N[A>T]C", FormatContext('N', 'A', 'T', 'C'))
}
