package output

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inodb/trinuc/internal/trinuc"
)

func TestRenderResultTable(t *testing.T) {
	res := trinuc.Aggregate(testFASTA, "G3C, A1T, G5C")
	table := RenderResultTable(res)

	assert.Contains(t, table, "C[G>C]T")
	assert.Contains(t, table, "N[A>T]C")
	assert.Contains(t, table, "not counted")
	assert.Contains(t, table, "Reference mismatch at position 5: expected G, found A")
}

func TestRenderSpectrumTable(t *testing.T) {
	res := trinuc.Aggregate(testFASTA, "G3C, G7A, G3C")
	table := RenderSpectrumTable(res.Counts)

	assert.Contains(t, table, "C[G>C]T")
	assert.Contains(t, table, "C[G>A]T")
	assert.Contains(t, table, "0.667")
	assert.NotContains(t, table, "A[A>C]A")
}
