// Package trinuc derives trinucleotide substitution contexts for point
// mutations and tallies them over the 192-entry context catalog.
package trinuc

// Bases is the nucleotide alphabet in catalog order.
const Bases = "ACGT"

// CatalogSize is the number of canonical trinucleotide substitution contexts:
// 4 flanking bases before, 4 reference bases, 3 alternate bases, 4 after.
const CatalogSize = 192

var (
	catalog      []string
	catalogIndex map[string]int
)

func init() {
	catalog = make([]string, 0, CatalogSize)
	for i := 0; i < len(Bases); i++ {
		before := Bases[i]
		for j := 0; j < len(Bases); j++ {
			ref := Bases[j]
			for k := 0; k < len(Bases); k++ {
				alt := Bases[k]
				if alt == ref {
					continue
				}
				for l := 0; l < len(Bases); l++ {
					catalog = append(catalog, FormatContext(before, ref, alt, Bases[l]))
				}
			}
		}
	}

	catalogIndex = make(map[string]int, len(catalog))
	for i, c := range catalog {
		catalogIndex[c] = i
	}
}

// AllContexts returns the canonical contexts in catalog order
// (before, then ref, then alt, then after, each over A,C,G,T).
// The returned slice is a copy.
func AllContexts() []string {
	out := make([]string, len(catalog))
	copy(out, catalog)
	return out
}

// IsCanonical reports whether ctx is one of the 192 catalog entries.
func IsCanonical(ctx string) bool {
	_, ok := catalogIndex[ctx]
	return ok
}

// FormatContext builds the before[ref>alt]after notation.
func FormatContext(before, ref, alt, after byte) string {
	return string([]byte{before, '[', ref, '>', alt, ']', after})
}
