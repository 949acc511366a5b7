package trinuc

import "strings"

// ParseFASTA turns reference text into a single uppercase sequence.
// Lines starting with '>' are headers and are dropped wherever they occur;
// all other lines are trimmed and concatenated, so multi-record input is
// merged into one sequence. Characters are not validated here.
func ParseFASTA(raw string) string {
	var sb strings.Builder
	sb.Grow(len(raw))

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, ">") {
			continue
		}
		sb.WriteString(line)
	}

	return strings.ToUpper(sb.String())
}
