// Package vcf reads single-base substitutions from VCF files so they can
// be contextualised as mutation tokens.
package vcf

import "strconv"

// Variant is one record (one ALT allele) from a VCF file.
type Variant struct {
	Chrom  string // Chromosome name (e.g., "12", "chr12")
	Pos    int64  // 1-based position
	ID     string // Variant identifier (e.g., rs ID)
	Ref    string // Reference allele
	Alt    string // Alternate allele (single allele after splitting)
	Filter string // Filter status (PASS or filter name)
}

// Token renders the variant in <Ref><Pos><Alt> mutation token form.
// Indels and symbolic alleles produce tokens that fail to parse as
// substitutions, so they surface as malformed rather than vanishing.
func (v *Variant) Token() string {
	return v.Ref + strconv.FormatInt(v.Pos, 10) + v.Alt
}

// NormalizeChrom returns the chromosome name without "chr" prefix.
func (v *Variant) NormalizeChrom() string {
	if len(v.Chrom) > 3 && v.Chrom[:3] == "chr" {
		return v.Chrom[3:]
	}
	return v.Chrom
}
