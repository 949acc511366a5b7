package trinuc

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Mutation is a parsed single-base substitution such as G123C.
type Mutation struct {
	Ref      byte // reference base
	Position int  // 1-based position in the reference sequence
	Alt      byte // alternate base

	// digits holds the position text when it does not fit in an int.
	// Position is then larger than any sequence can be.
	digits string
}

var reMutation = regexp.MustCompile(`^([ACGT])(\d+)([ACGT])$`)

// ParseMutation parses a token of the form <Base><Position><Base>.
// Matching is case-insensitive and surrounding whitespace is ignored.
// Tokens with identical reference and alternate bases are accepted.
func ParseMutation(token string) (Mutation, bool) {
	m := reMutation.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(token)))
	if m == nil {
		return Mutation{}, false
	}

	mut := Mutation{Ref: m[1][0], Alt: m[3][0]}

	// \d+ guarantees the only possible failure is a range error.
	pos, err := strconv.Atoi(m[2])
	if err != nil {
		mut.Position = math.MaxInt
		mut.digits = strings.TrimLeft(m[2], "0")
		return mut, true
	}
	mut.Position = pos
	return mut, true
}

// positionText renders the position as written in the token, minus
// leading zeros.
func (m Mutation) positionText() string {
	if m.digits != "" {
		return m.digits
	}
	return strconv.Itoa(m.Position)
}

// SplitTokens splits comma-separated mutation text into trimmed, non-empty
// tokens, preserving input order.
func SplitTokens(text string) []string {
	parts := strings.Split(text, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		tokens = append(tokens, p)
	}
	return tokens
}
