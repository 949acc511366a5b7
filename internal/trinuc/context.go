package trinuc

// FlankSentinel stands in for a flanking base that falls off either end of
// the sequence.
const FlankSentinel = 'N'

// Context is a mutation placed in its trinucleotide context.
type Context struct {
	Before   byte
	Ref      byte
	Alt      byte
	After    byte
	Position int
	Notation string // before[ref>alt]after
}

// IsCanonical reports whether the context is one of the 192 catalog entries.
// Edge positions (N flank), non-ACGT flanks and ref == alt are not.
func (c Context) IsCanonical() bool {
	return IsCanonical(c.Notation)
}

// Contextualise validates m against seq and derives its flanking bases.
//
// The position must fall inside the sequence and the base found there must
// equal m.Ref. At either end of the sequence the missing flank is reported
// as FlankSentinel rather than as an error.
func Contextualise(seq string, m Mutation) (Context, *MutationError) {
	idx := m.Position - 1
	if idx < 0 || idx >= len(seq) {
		return Context{}, errOutOfRange(m.positionText(), len(seq))
	}

	actual := seq[idx]
	if actual != m.Ref {
		return Context{}, errMismatch(m.Position, m.Ref, actual)
	}

	before := byte(FlankSentinel)
	if idx > 0 {
		before = seq[idx-1]
	}
	after := byte(FlankSentinel)
	if idx < len(seq)-1 {
		after = seq[idx+1]
	}

	return Context{
		Before:   before,
		Ref:      m.Ref,
		Alt:      m.Alt,
		After:    after,
		Position: m.Position,
		Notation: FormatContext(before, m.Ref, m.Alt, after),
	}, nil
}
