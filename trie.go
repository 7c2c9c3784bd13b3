package trie

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// ForceRemove can be passed as the count to RemoveN to delete a word regardless of
// how many times it was added.
const ForceRemove = -1

// Trie is a data structure for storing common prefixes to strings for efficient comparison
// and retrieval. Every stored word carries a multiplicity: adding a word twice stores it once
// with a count of two.
//
// A Trie is not safe for concurrent use, and it must not be modified while one of the
// sequences returned by its methods is being consumed.
type Trie struct {
	root *node
}

// node is a node in a Trie which contains a map of runes to more node pointers.
// if count is positive, this indicates that the node defines the end of a word that
// was added count times.
type node struct {
	children map[rune]*node
	count    int
}

// New creates a new trie holding the given words, each added once.
func New(words ...string) *Trie {
	t := &Trie{root: newNode()}
	for _, word := range words {
		t.Add(word)
	}
	return t
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

func (n *node) terminal() bool {
	return n.count > 0
}

// symbols returns the edge labels of n in ascending order, which makes every traversal
// of the trie deterministic.
func (n *node) symbols() []rune {
	return slices.Sorted(maps.Keys(n.children))
}

// find follows the path spelled by word and returns the node it ends at, or nil.
func (t *Trie) find(word string) *node {
	current := t.root
	for _, r := range word {
		next, ok := current.children[r]
		if !ok {
			return nil
		}
		current = next
	}
	return current
}

// Contains reports whether word was added to the trie. A word that is only a prefix of
// stored words is not contained.
func (t *Trie) Contains(word string) bool {
	n := t.find(word)
	return n != nil && n.terminal()
}

// HasPrefix reports whether some stored word starts with word. A stored word is its own
// prefix, and the empty string is a prefix of every non-empty trie.
func (t *Trie) HasPrefix(word string) bool {
	n := t.find(word)
	return n != nil && (n.terminal() || len(n.children) > 0)
}

// Get returns the multiplicity of word, and false if word is not stored.
func (t *Trie) Get(word string) (int, bool) {
	n := t.find(word)
	if n == nil || !n.terminal() {
		return 0, false
	}
	return n.count, true
}

// Add inserts word once.
func (t *Trie) Add(word string) {
	t.AddN(word, 1)
}

// AddN inserts word count times.
// WARNING, this function will panic if count is not positive.
func (t *Trie) AddN(word string, count int) {
	if count < 1 {
		panic(fmt.Sprintf("trie: invalid count %d for %q", count, word))
	}
	current := t.root
	for _, r := range word {
		child, ok := current.children[r]
		if !ok {
			child = newNode()
			current.children[r] = child
		}
		current = child
	}
	current.count += count
}

// Remove removes a single occurrence of word. It reports whether the last occurrence
// was removed.
func (t *Trie) Remove(word string) bool {
	return t.RemoveN(word, 1)
}

// Delete removes word no matter how many times it was added. It reports whether word
// was stored.
func (t *Trie) Delete(word string) bool {
	return t.RemoveN(word, ForceRemove)
}

// RemoveN removes count occurrences of word, or all of them when count is ForceRemove.
// It returns true only when the word is gone from the trie as a result of this call; a
// word that is still stored with a positive count, or that was never stored, yields false.
// Any other non-positive count removes nothing.
func (t *Trie) RemoveN(word string, count int) bool {
	runes := []rune(word)
	path := make([]*node, 0, len(runes)+1)
	path = append(path, t.root)
	current := t.root
	for _, r := range runes {
		next, ok := current.children[r]
		if !ok {
			return false
		}
		current = next
		path = append(path, current)
	}
	if !current.terminal() {
		return false
	}
	if count != ForceRemove {
		if count < 1 {
			return false
		}
		current.count -= count
		if current.count > 0 {
			return false
		}
	}
	current.count = 0
	// prune
	for i := len(runes); i > 0; i-- {
		parent := path[i-1]
		child := path[i]
		if len(child.children) == 0 && !child.terminal() {
			delete(parent.children, runes[i-1])
		} else {
			break
		}
	}
	return true
}

// All returns every distinct stored word once, in ascending rune order.
func (t *Trie) All() iter.Seq[string] {
	return t.List(true)
}

// List is like All, but when unique is false a word that was added n times is
// produced n times.
func (t *Trie) List(unique bool) iter.Seq[string] {
	return func(yield func(string) bool) {
		t.root.walk(nil, func(word []rune, count int) bool {
			if unique {
				count = 1
			}
			w := string(word)
			for range count {
				if !yield(w) {
					return false
				}
			}
			return true
		})
	}
}

// walk calls f for every terminal node below n, depth first, with the word spelled by the
// path to it. It stops as soon as f returns false.
func (n *node) walk(path []rune, f func(word []rune, count int) bool) bool {
	if n.terminal() && !f(path, n.count) {
		return false
	}
	for _, r := range n.symbols() {
		if !n.children[r].walk(append(path, r), f) {
			return false
		}
	}
	return true
}

// Len returns the number of distinct words in the trie.
func (t *Trie) Len() int {
	total := 0
	t.root.walk(nil, func([]rune, int) bool {
		total++
		return true
	})
	return total
}

// Total returns the number of words in the trie, counting multiplicity.
func (t *Trie) Total() int {
	total := 0
	t.root.walk(nil, func(_ []rune, count int) bool {
		total += count
		return true
	})
	return total
}

// Fill adds every word of exactly length symbols drawn from alphabet, each with a count
// of one. Words already present are reset to a count of one.
func (t *Trie) Fill(alphabet []rune, length int) {
	if length < 0 {
		return
	}
	t.root.fill(alphabet, length)
}

func (n *node) fill(alphabet []rune, length int) {
	if length == 0 {
		n.count = 1
		return
	}
	for _, r := range alphabet {
		child, ok := n.children[r]
		if !ok {
			child = newNode()
			n.children[r] = child
		}
		child.fill(alphabet, length-1)
	}
}
