package trie

import (
	"sort"
	"strings"
)

// NodeIndex is the position of a node in the arena.
type NodeIndex int

const root NodeIndex = 0

// arenaNode is a single trie node. Children are referenced by index into
// the arena rather than by pointer.
type arenaNode struct {
	children map[rune]NodeIndex
	// word is set when a complete word ends here.
	word  string
	isEnd bool
}

// Trie stores words in an arena of nodes and answers prefix queries.
// It is used to resolve abbreviated commands ("dig" -> "digit").
// The zero value is not usable; call New.
type Trie struct {
	nodes []arenaNode
}

// New returns a Trie holding words.
func New(words ...string) *Trie {
	t := &Trie{nodes: make([]arenaNode, 1, 64)}
	t.nodes[root] = arenaNode{children: make(map[rune]NodeIndex)}
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

func (t *Trie) newNode() NodeIndex {
	idx := NodeIndex(len(t.nodes))
	t.nodes = append(t.nodes, arenaNode{children: make(map[rune]NodeIndex)})
	return idx
}

// Insert adds word. Inserting the same word twice is a no-op.
func (t *Trie) Insert(word string) {
	current := root
	for _, r := range word {
		next, ok := t.nodes[current].children[r]
		if !ok {
			next = t.newNode()
			t.nodes[current].children[r] = next
		}
		current = next
	}
	t.nodes[current].isEnd = true
	t.nodes[current].word = word
}

// Contains reports whether word was inserted.
func (t *Trie) Contains(word string) bool {
	idx, ok := t.find(word)
	return ok && t.nodes[idx].isEnd
}

// Complete returns every inserted word starting with prefix, sorted.
func (t *Trie) Complete(prefix string) []string {
	idx, ok := t.find(prefix)
	if !ok {
		return nil
	}
	var words []string
	t.collect(idx, &words)
	sort.Strings(words)
	return words
}

// Resolve returns the word prefix abbreviates. An exact match wins over
// longer completions. It returns the candidates when the prefix is
// ambiguous and ok is false with no candidates when nothing matches.
func (t *Trie) Resolve(prefix string) (word string, candidates []string, ok bool) {
	if prefix == "" {
		return "", nil, false
	}
	if t.Contains(prefix) {
		return prefix, nil, true
	}
	candidates = t.Complete(prefix)
	if len(candidates) == 1 {
		return candidates[0], nil, true
	}
	return "", candidates, false
}

func (t *Trie) find(prefix string) (NodeIndex, bool) {
	current := root
	for _, r := range prefix {
		next, ok := t.nodes[current].children[r]
		if !ok {
			return 0, false
		}
		current = next
	}
	return current, true
}

func (t *Trie) collect(idx NodeIndex, out *[]string) {
	node := t.nodes[idx]
	if node.isEnd {
		*out = append(*out, node.word)
	}
	for _, child := range node.children {
		t.collect(child, out)
	}
}

// String returns the trie structure, children in sorted order and '*'
// marking the end of a word.
func (t *Trie) String() string {
	return t.debugStringNode(root)
}

func (t *Trie) debugStringNode(idx NodeIndex) string {
	node := t.nodes[idx]
	var sb strings.Builder
	if node.isEnd {
		sb.WriteString("*")
	}

	keys := make([]rune, 0, len(node.children))
	for r := range node.children {
		keys = append(keys, r)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, r := range keys {
		sb.WriteRune(r)
		sb.WriteString("(")
		sb.WriteString(t.debugStringNode(node.children[r]))
		sb.WriteString(")")
	}
	return sb.String()
}
