package anglicize

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// trieNode is one node of the transliteration trie. A node may carry both
// a spelling and children: the path so far is a complete match that a
// following byte (for example a combining accent) could still extend.
type trieNode struct {
	xlat string
	next map[byte]int32
}

// The trie is stored as an arena of nodes addressed by index, with the
// root at index 0. It is built once from the correspondence table and
// never mutated afterwards, so any number of streams may walk it
// concurrently.
var xlatNodes = buildTrie(xlatEntries)

const trieRoot int32 = 0

func buildTrie(entries []xlatEntry) []trieNode {
	nodes := make([]trieNode, 1, 2*len(entries))
	for _, e := range entries {
		cur := trieRoot
		for i := 0; i < len(e.from); i++ {
			b := e.from[i]
			if nodes[cur].next == nil {
				nodes[cur].next = make(map[byte]int32)
			}

			child, ok := nodes[cur].next[b]
			if !ok {
				nodes = append(nodes, trieNode{})
				child = int32(len(nodes) - 1)
				nodes[cur].next[b] = child
			}

			cur = child
		}

		nodes[cur].xlat = e.to
	}

	return nodes
}

// childOf returns the node reached from n by consuming b.
func childOf(n int32, b byte) (int32, bool) {
	child, ok := xlatNodes[n].next[b]

	return child, ok
}

// spelling returns the ASCII spelling of a node, "" for intermediate nodes
// and for the few sequences that are deliberately dropped (the Cyrillic
// soft sign).
func spelling(n int32) string {
	return xlatNodes[n].xlat
}

// leaf reports whether a node has no continuation edges.
func leaf(n int32) bool {
	return len(xlatNodes[n].next) == 0
}

// Sequences returns every source byte sequence the engine recognizes,
// sorted lexicographically.
func Sequences() []string {
	seen := make(map[string]struct{}, len(xlatEntries))
	for _, e := range xlatEntries {
		seen[e.from] = struct{}{}
	}

	keys := maps.Keys(seen)
	slices.Sort(keys)

	return keys
}
