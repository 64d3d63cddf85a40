package eval

import (
	"basic/parser"
	"basic/types"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// lookupLabel resolves a jump target
func (in *Interpreter) lookupLabel(pos parser.Position, label string) (int, error) {
	if index, ok := in.prog.Labels[label]; ok {
		return index, nil
	}
	if hint := in.suggestLabel(label); hint != "" {
		return 0, in.errorAt(pos, types.E_LABEL, "label %s not found (did you mean %s?)", label, hint)
	}
	return 0, in.errorAt(pos, types.E_LABEL, "label %s not found", label)
}

// suggestLabel finds the closest defined label to a misspelled one
func (in *Interpreter) suggestLabel(label string) string {
	candidates := make([]string, 0, len(in.prog.Labels))
	for name := range in.prog.Labels {
		candidates = append(candidates, name)
	}
	return closestLabel(label, candidates)
}

func closestLabel(target string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	sort.Strings(candidates)

	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) > 0 {
		sort.Stable(ranks)
		return ranks[0].Target
	}

	// Not a subsequence of any label: fall back to edit distance for typos
	best, bestDist := "", len(target)/3+1
	for _, c := range candidates {
		d := fuzzy.LevenshteinDistance(strings.ToLower(target), strings.ToLower(c))
		if d <= bestDist && (best == "" || d < bestDist) {
			best, bestDist = c, d
		}
	}
	return best
}
