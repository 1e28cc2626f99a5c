package event

import "strings"

// Topic is a hierarchical notification name using dot notation.
type Topic string

// Wildcards accepted in subscription patterns.
const (
	WildcardSingle = "*"
	WildcardMulti  = "**"
	Separator      = "."
)

// String returns the topic as a string.
func (t Topic) String() string { return string(t) }

// Segments splits the topic on the separator.
func (t Topic) Segments() []string {
	if t == "" {
		return nil
	}
	return strings.Split(string(t), Separator)
}

// IsWildcard reports whether the topic contains a wildcard segment.
func (t Topic) IsWildcard() bool {
	return strings.Contains(string(t), WildcardSingle)
}

// IsValid reports whether the topic is non-empty with no empty segments.
func (t Topic) IsValid() bool {
	if t == "" {
		return false
	}
	for _, seg := range t.Segments() {
		if seg == "" {
			return false
		}
	}
	return true
}

// Matches reports whether the concrete topic t matches pattern.
func (t Topic) Matches(pattern Topic) bool {
	if !pattern.IsWildcard() {
		return t == pattern
	}
	return matchSegments(t.Segments(), pattern.Segments())
}

func matchSegments(topic, pattern []string) bool {
	for len(pattern) > 0 {
		p := pattern[0]
		if p == WildcardMulti {
			rest := pattern[1:]
			if len(rest) == 0 {
				return true
			}
			for i := 0; i <= len(topic); i++ {
				if matchSegments(topic[i:], rest) {
					return true
				}
			}
			return false
		}
		if len(topic) == 0 {
			return false
		}
		if p != WildcardSingle && p != topic[0] {
			return false
		}
		topic, pattern = topic[1:], pattern[1:]
	}
	return len(topic) == 0
}
