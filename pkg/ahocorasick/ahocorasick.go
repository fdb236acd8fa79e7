// Package ahocorasick implements Aho-Corasick multi-pattern substring
// matching. The failure classifier uses it to test a line against the whole
// keyword set in a single O(line length) pass instead of one
// strings.Contains call per keyword.
//
// Patterns are matched case-insensitively, substring containment only — no
// word boundaries. The Matcher is immutable after New and safe for
// concurrent Match calls.
package ahocorasick

import "unicode"

// Matcher is a case-insensitive Aho-Corasick automaton.
type Matcher struct {
	root     *node
	patterns []string
}

type node struct {
	children map[rune]*node
	fail     *node
	terminal bool
}

// New builds a matcher from the given patterns. Empty patterns are ignored.
func New(patterns []string) *Matcher {
	m := &Matcher{
		root:     &node{children: make(map[rune]*node)},
		patterns: patterns,
	}
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		m.insert(pattern)
	}
	m.linkFailures()
	return m
}

func (m *Matcher) insert(pattern string) {
	current := m.root
	for _, r := range pattern {
		r = toLower(r)
		next, ok := current.children[r]
		if !ok {
			next = &node{children: make(map[rune]*node)}
			current.children[r] = next
		}
		current = next
	}
	current.terminal = true
}

// linkFailures wires failure links breadth-first. A node's failure link
// points at the longest proper suffix of its path that is also a prefix of
// some pattern; terminal state propagates along the link.
func (m *Matcher) linkFailures() {
	queue := make([]*node, 0, len(m.root.children))
	for _, child := range m.root.children {
		child.fail = m.root
		queue = append(queue, child)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for r, child := range current.children {
			queue = append(queue, child)

			fail := current.fail
			for fail != nil {
				if next, ok := fail.children[r]; ok {
					child.fail = next
					child.terminal = child.terminal || next.terminal
					break
				}
				fail = fail.fail
			}
			if child.fail == nil {
				child.fail = m.root
			}
		}
	}
}

// Match reports whether any pattern occurs anywhere in text.
func (m *Matcher) Match(text string) bool {
	if len(m.patterns) == 0 {
		return false
	}

	current := m.root
	for _, r := range text {
		r = toLower(r)

		for current != m.root {
			if _, ok := current.children[r]; ok {
				break
			}
			current = current.fail
		}
		if next, ok := current.children[r]; ok {
			current = next
		}

		if current.terminal {
			return true
		}
	}
	return false
}

// PatternCount returns the number of patterns the matcher was built from.
func (m *Matcher) PatternCount() int {
	return len(m.patterns)
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	if r < 128 {
		return r
	}
	return unicode.ToLower(r)
}
