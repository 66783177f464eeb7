package normalize

import "strings"

// ParameterMatcher resolves a raw column/key name to a canonical parameter.
// Matchers are tried in order; the first hit wins.
type ParameterMatcher interface {
	Match(rawKey string, canonical []string) (string, bool)
}

// CollapseKey normalizes a raw name for comparison: lowercase, with
// whitespace, underscores and common punctuation removed.
func CollapseKey(key string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(key) {
		switch r {
		case ' ', '\t', '_', '-', '(', ')', '%', '.', '/':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ExactMatcher matches a collapsed raw key against collapsed canonical names.
type ExactMatcher struct{}

func (ExactMatcher) Match(rawKey string, canonical []string) (string, bool) {
	collapsed := CollapseKey(rawKey)
	for _, param := range canonical {
		if collapsed == CollapseKey(param) {
			return param, true
		}
	}
	return "", false
}

// AliasMatcher matches against a fixed alias table per canonical parameter.
type AliasMatcher struct {
	aliases map[string][]string
}

// NewAliasMatcher builds an alias matcher from a canonical->aliases table.
func NewAliasMatcher(aliases map[string][]string) AliasMatcher {
	return AliasMatcher{aliases: aliases}
}

func (m AliasMatcher) Match(rawKey string, canonical []string) (string, bool) {
	collapsed := CollapseKey(rawKey)
	for _, param := range canonical {
		for _, alias := range m.aliases[param] {
			if collapsed == alias {
				return param, true
			}
		}
	}
	return "", false
}

// SubstringMatcher is the last-resort fuzzy containment match: either the
// collapsed raw key contains the collapsed canonical name or vice versa.
// Too-short fragments are ignored to avoid single-letter collisions.
type SubstringMatcher struct{}

func (SubstringMatcher) Match(rawKey string, canonical []string) (string, bool) {
	collapsed := CollapseKey(rawKey)
	if len(collapsed) < 2 {
		return "", false
	}
	for _, param := range canonical {
		cp := CollapseKey(param)
		if len(cp) < 2 {
			continue
		}
		if strings.Contains(collapsed, cp) || strings.Contains(cp, collapsed) {
			return param, true
		}
	}
	return "", false
}

// MatcherChain tries each matcher in sequence.
type MatcherChain []ParameterMatcher

// DefaultMatcherChain is the ordered cascade the normalizer uses:
// exact -> alias table -> normalized substring.
func DefaultMatcherChain(aliases map[string][]string) MatcherChain {
	return MatcherChain{ExactMatcher{}, NewAliasMatcher(aliases), SubstringMatcher{}}
}

// Match resolves rawKey through the chain.
func (c MatcherChain) Match(rawKey string, canonical []string) (string, bool) {
	for _, m := range c {
		if param, ok := m.Match(rawKey, canonical); ok {
			return param, true
		}
	}
	return "", false
}
