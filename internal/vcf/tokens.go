package vcf

import (
	"strings"
)

// TokenOptions selects which records become mutation tokens.
type TokenOptions struct {
	Chrom    string // only records on this chromosome ("chr" prefix ignored); empty keeps all
	PassOnly bool   // skip records whose FILTER is neither PASS nor "."
}

// Tokens reads every record from p and returns mutation tokens in file
// order, one per ALT allele.
func Tokens(p *Parser, opts TokenOptions) ([]string, error) {
	chrom := strings.TrimPrefix(opts.Chrom, "chr")

	var tokens []string
	for {
		v, err := p.Next()
		if err != nil {
			return nil, err
		}
		if v == nil {
			return tokens, nil
		}

		if chrom != "" && v.NormalizeChrom() != chrom {
			continue
		}
		if opts.PassOnly && v.Filter != "PASS" && v.Filter != "." {
			continue
		}

		for _, allele := range SplitMultiAllelic(v) {
			tokens = append(tokens, allele.Token())
		}
	}
}

// LooksLikeVCF reports whether path names a VCF file or text starts with
// a VCF header.
func LooksLikeVCF(path, head string) bool {
	lower := strings.TrimSuffix(strings.ToLower(path), ".gz")
	if strings.HasSuffix(lower, ".vcf") {
		return true
	}
	return strings.HasPrefix(head, "##fileformat=VCF") || strings.HasPrefix(head, "#CHROM")
}
