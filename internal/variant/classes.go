package variant

import "strings"

// ClassSet is an ordered, duplicate-free sequence of class tokens.
type ClassSet []string

// String joins the tokens with single spaces.
func (c ClassSet) String() string {
	return strings.Join(c, " ")
}

// Contains reports whether token is present.
func (c ClassSet) Contains(token string) bool {
	for _, t := range c {
		if t == token {
			return true
		}
	}
	return false
}

// Fields splits a raw class string on whitespace.
func Fields(classes string) []string {
	return strings.Fields(classes)
}

// Join merges class strings into one, splitting each on whitespace and
// dropping repeated tokens while keeping the first occurrence in place.
func Join(inputs ...string) string {
	var tokens []string
	for _, input := range inputs {
		tokens = append(tokens, strings.Fields(input)...)
	}
	return dedupe(tokens).String()
}

func dedupe(tokens []string) ClassSet {
	out := make(ClassSet, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	return out
}
