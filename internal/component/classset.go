package component

import "strings"

// ClassSet is an ordered, de-duplicated set of class tokens. The zero value is
// an empty set. A ClassSet is never mutated after construction.
type ClassSet struct {
	tokens []string
	index  map[string]struct{}
}

// NewClassSet builds a set from tokens, keeping the first occurrence of each
// and dropping empty strings.
func NewClassSet(tokens ...string) ClassSet {
	set := ClassSet{index: make(map[string]struct{}, len(tokens))}
	for _, token := range tokens {
		if token == "" {
			continue
		}
		if _, seen := set.index[token]; seen {
			continue
		}
		set.index[token] = struct{}{}
		set.tokens = append(set.tokens, token)
	}
	return set
}

// ParseClassSet splits a whitespace-separated class attribute value.
func ParseClassSet(value string) ClassSet {
	return NewClassSet(strings.Fields(value)...)
}

// Len returns the number of tokens.
func (s ClassSet) Len() int {
	return len(s.tokens)
}

// Tokens returns a copy of the tokens in insertion order.
func (s ClassSet) Tokens() []string {
	out := make([]string, len(s.tokens))
	copy(out, s.tokens)
	return out
}

// Contains reports whether token is in the set.
func (s ClassSet) Contains(token string) bool {
	_, ok := s.index[token]
	return ok
}

// SubsetOf reports whether every token of s is present in other.
func (s ClassSet) SubsetOf(other ClassSet) bool {
	if len(s.tokens) > len(other.tokens) {
		return false
	}
	for _, token := range s.tokens {
		if !other.Contains(token) {
			return false
		}
	}
	return true
}

// Without returns the tokens of s that are not in other, in s's order.
func (s ClassSet) Without(other ClassSet) ClassSet {
	kept := make([]string, 0, len(s.tokens))
	for _, token := range s.tokens {
		if !other.Contains(token) {
			kept = append(kept, token)
		}
	}
	return NewClassSet(kept...)
}

// Union returns s followed by the tokens of others not already present.
func (s ClassSet) Union(others ...ClassSet) ClassSet {
	all := append([]string(nil), s.tokens...)
	for _, other := range others {
		all = append(all, other.tokens...)
	}
	return NewClassSet(all...)
}

// String joins the tokens with single spaces.
func (s ClassSet) String() string {
	return strings.Join(s.tokens, " ")
}
